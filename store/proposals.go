// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// verifyProposalInput verifies the user provided proposal fields. The
// creation time is used to verify the deadline.
func verifyProposalInput(in ProposalInput, createdAt time.Time) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return ValidationError{Field: "title", Reason: "required"}
	case strings.TrimSpace(in.Description) == "":
		return ValidationError{Field: "description", Reason: "required"}
	case in.Deadline.IsZero():
		return ValidationError{Field: "deadline", Reason: "required"}
	case !in.Deadline.After(createdAt):
		return ValidationError{Field: "deadline",
			Reason: "must be after the creation time"}
	case in.Threshold <= 0 || in.Threshold > 100:
		return ValidationError{Field: "threshold",
			Reason: "must be in the range (0, 100]"}
	}
	switch in.TokenType {
	case TokenGOV, TokenPRIV, TokenBoth:
	default:
		return ValidationError{Field: "tokentype",
			Reason: "invalid token type '" + string(in.TokenType) + "'"}
	}
	for k, v := range in.RequiredTokens {
		if k != TokenGOV && k != TokenPRIV {
			return ValidationError{Field: "requiredtokens",
				Reason: "invalid token '" + string(k) + "'"}
		}
		if v.IsNegative() {
			return ValidationError{Field: "requiredtokens",
				Reason: "negative amount for " + string(k)}
		}
	}
	return nil
}

// CreateProposal creates a new pending proposal at the head of the proposal
// collection and returns its ID.
func (s *Store) CreateProposal(in ProposalInput) (string, error) {
	log.Tracef("CreateProposal: %v", in.Title)

	createdAt := s.now()
	err := verifyProposalInput(in, createdAt)
	if err != nil {
		return "", err
	}

	s.Lock()
	creator := in.Creator
	if creator == "" && s.wallet != nil {
		creator = s.wallet.Address
	}
	p := Proposal{
		ID:                uuid.New().String(),
		Title:             strings.TrimSpace(in.Title),
		Description:       strings.TrimSpace(in.Description),
		Creator:           creator,
		CreatedAt:         createdAt,
		Deadline:          in.Deadline,
		Status:            ProposalStatusPending,
		VoteCount:         0,
		ParticipationRate: 0,
		EligibleVoters:    in.EligibleVoters,
		RequiredTokens:    in.RequiredTokens,
		TokenType:         in.TokenType,
		Threshold:         in.Threshold,
	}
	p = p.copy()
	s.proposals = append([]Proposal{p}, s.proposals...)
	s.Unlock()

	log.Infof("Proposal created: %v %v", p.ID, p.Title)

	s.events.Emit(EventProposalCreated, p.ID)

	return p.ID, nil
}

// Proposal returns a copy of the proposal. The returned bool is false when
// the proposal does not exist.
func (s *Store) Proposal(id string) (*Proposal, bool) {
	s.RLock()
	defer s.RUnlock()

	i := s.proposalIndex(id)
	if i < 0 {
		return nil, false
	}
	p := s.proposals[i].copy()
	return &p, true
}

// Proposals returns copies of the proposals that match the filter, newest
// first. Guest sessions only see closed proposals.
func (s *Store) Proposals(f ProposalFilter) []Proposal {
	s.RLock()
	defer s.RUnlock()

	ps := make([]Proposal, 0, len(s.proposals))
	for _, p := range s.proposals {
		switch {
		case s.guest && p.Status != ProposalStatusClosed:
			continue
		case f.Status != "" && p.Status != f.Status:
			continue
		case f.TokenType != "" && p.TokenType != f.TokenType:
			continue
		}
		ps = append(ps, p.copy())
	}
	return ps
}

// proposalIndex returns the index of the proposal in the proposal
// collection or -1 when it does not exist. The caller must hold the lock.
func (s *Store) proposalIndex(id string) int {
	for i, p := range s.proposals {
		if p.ID == id {
			return i
		}
	}
	return -1
}
