// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/privacyvote/daogov/util"
	"github.com/privacyvote/daogov/wallet"
	"github.com/privacyvote/daogov/zkproof"
	"github.com/shopspring/decimal"
)

// verifyChoice returns a ValidationError if the choice is not valid.
func verifyChoice(c Choice) error {
	switch c {
	case ChoiceYes, ChoiceNo, ChoiceAbstain:
		return nil
	}
	return ValidationError{Field: "choice",
		Reason: "invalid choice '" + string(c) + "'"}
}

// tokenAmount returns the wallet balance that backs a vote on a proposal of
// the provided token type.
func tokenAmount(w *wallet.Wallet, t Token) decimal.Decimal {
	switch t {
	case TokenGOV:
		return w.Balance
	case TokenPRIV:
		return w.SecondaryBalance
	default:
		return w.Balance.Add(w.SecondaryBalance)
	}
}

// hasRequiredTokens returns whether the wallet holds every token amount that
// the proposal requires.
func hasRequiredTokens(w *wallet.Wallet, p Proposal) bool {
	for k, v := range p.RequiredTokens {
		if tokenAmount(w, k).LessThan(v) {
			return false
		}
	}
	return true
}

// GenerateProof generates a standalone proof for the choice of the connected
// wallet. The proof status moves from generating to either success or
// error. Only one proof may be generated at a time.
func (s *Store) GenerateProof(ctx context.Context, c Choice) (string, error) {
	log.Tracef("GenerateProof: %v", c)

	if err := verifyChoice(c); err != nil {
		return "", err
	}

	s.Lock()
	if s.wallet == nil {
		s.Unlock()
		return "", ErrNotConnected
	}
	if s.proofStatus == ProofStatusGenerating {
		s.Unlock()
		return "", ErrProofInProgress
	}
	s.proofStatus = ProofStatusGenerating
	s.proof = ""
	s.proofErr = ""
	s.proofSeq++
	seq := s.proofSeq
	voter := s.wallet.Address
	s.Unlock()

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	st := zkproof.Statement{
		Voter:  voter,
		Choice: string(c),
	}
	proof, err := s.prover.Prove(ctx, st)
	if err == nil {
		err = s.prover.Verify(proof, st)
	}
	err = opErr(err)

	s.Lock()
	defer s.Unlock()

	// The proof is discarded when the wallet disconnected, reconnected or
	// switched to guest mode while it was being generated. Those already
	// reset the proof state.
	if s.proofSeq != seq {
		return "", ErrNotConnected
	}
	if s.conn == nil {
		s.resetProof()
		return "", ErrNotConnected
	}
	if err != nil {
		s.proofStatus = ProofStatusError
		s.proofErr = err.Error()
		log.Debugf("Proof generation failed: %v", err)
		return "", err
	}
	s.proofStatus = ProofStatusSuccess
	s.proof = proof

	return proof, nil
}

// ProofStatus returns the status of the latest proof generation.
func (s *Store) ProofStatus() ProofStatus {
	s.RLock()
	defer s.RUnlock()

	return s.proofStatus
}

// SubmitVote commits a vote of the connected wallet on the proposal. The
// commitment binds the choice to the secret; the same choice and secret are
// required to reveal the vote later. The proposal vote count is incremented
// by exactly one.
//
// A wallet may only vote once per proposal.
func (s *Store) SubmitVote(ctx context.Context, proposalID string, c Choice, secret string) (*Vote, error) {
	log.Tracef("SubmitVote: %v %v", proposalID, c)

	if err := verifyChoice(c); err != nil {
		return nil, err
	}
	if secret == "" {
		return nil, ValidationError{Field: "secret", Reason: "required"}
	}

	// Verify the vote before waiting for the commitment so that the user
	// gets an immediate answer.
	s.RLock()
	w, session, err := s.verifyVote(proposalID)
	s.RUnlock()
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	err = util.Sleep(ctx, s.delay)
	if err != nil {
		return nil, opErr(err)
	}
	commitment := zkproof.Commit(proposalID, w.Address, string(c), secret)
	st := zkproof.Statement{
		Voter:      w.Address,
		Choice:     string(c),
		Commitment: commitment,
	}
	proof, err := s.prover.Prove(ctx, st)
	if err != nil {
		return nil, opErr(err)
	}
	if err := s.prover.Verify(proof, st); err != nil {
		return nil, errors.Wrapf(err, "vote proof %v", proposalID)
	}

	s.Lock()
	// The state may have changed while the commitment was prepared
	w2, session2, err := s.verifyVote(proposalID)
	if err != nil {
		s.Unlock()
		return nil, err
	}
	if session2 != session {
		s.Unlock()
		return nil, ErrNotConnected
	}
	i := s.proposalIndex(proposalID)
	p := &s.proposals[i]
	v := Vote{
		ProposalID:  proposalID,
		Voter:       w2.Address,
		Choice:      c,
		Commitment:  commitment,
		Revealed:    false,
		Timestamp:   s.now(),
		ZKProof:     proof,
		TokenAmount: tokenAmount(w2, p.TokenType),
		TokenType:   p.TokenType,
	}
	s.votes = append(s.votes, v)
	p.VoteCount++
	if p.EligibleVoters > 0 {
		p.ParticipationRate = participationRate(p.VoteCount, p.EligibleVoters)
	}
	s.Unlock()

	log.Infof("Vote submitted: %v %v", proposalID, v.Voter)

	s.events.Emit(EventVoteSubmitted, proposalID)

	return &v, nil
}

// participationRate returns the percent of eligible voters that voted,
// capped at 100.
func participationRate(votes, eligible uint64) float64 {
	if votes >= eligible {
		return 100
	}
	return float64(votes) / float64(eligible) * 100
}

// verifyVote verifies that the connected wallet may vote on the proposal.
// The caller must hold the lock.
func (s *Store) verifyVote(proposalID string) (*wallet.Wallet, string, error) {
	if s.wallet == nil {
		return nil, "", ErrNotConnected
	}
	i := s.proposalIndex(proposalID)
	if i < 0 {
		return nil, "", ErrProposalNotFound
	}
	p := s.proposals[i]
	if p.Status == ProposalStatusClosed {
		return nil, "", ErrProposalClosed
	}
	if s.voteIndex(proposalID, s.wallet.Address) >= 0 {
		return nil, "", ErrDuplicateVote
	}
	if !hasRequiredTokens(s.wallet, p) {
		return nil, "", ErrInsufficientTokens
	}
	return s.wallet, s.conn.SessionHash, nil
}

// RevealVote reveals the vote of the connected wallet on the proposal. The
// choice and secret must match the vote commitment.
func (s *Store) RevealVote(ctx context.Context, proposalID string, c Choice, secret string) error {
	log.Tracef("RevealVote: %v", proposalID)

	if err := verifyChoice(c); err != nil {
		return err
	}
	if !s.IsConnected() {
		return ErrNotConnected
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	err := util.Sleep(ctx, s.delay)
	if err != nil {
		return opErr(err)
	}

	s.Lock()
	if s.wallet == nil {
		s.Unlock()
		return ErrNotConnected
	}
	voter := s.wallet.Address
	i := s.voteIndex(proposalID, voter)
	if i < 0 {
		s.Unlock()
		return ErrVoteNotFound
	}
	v := &s.votes[i]
	if !zkproof.VerifyCommitment(v.Commitment, proposalID, voter,
		string(c), secret) {
		s.Unlock()
		return ErrRevealMismatch
	}
	v.Revealed = true
	s.Unlock()

	log.Infof("Vote revealed: %v %v", proposalID, voter)

	s.events.Emit(EventVoteRevealed, proposalID)

	return nil
}

// voteIndex returns the index of the vote of the voter on the proposal or -1
// when it does not exist. The caller must hold the lock.
func (s *Store) voteIndex(proposalID, voter string) int {
	for i, v := range s.votes {
		if v.ProposalID == proposalID && v.Voter == voter {
			return i
		}
	}
	return -1
}

// HasVoted returns whether the connected wallet voted on the proposal. It
// returns false when no wallet is connected.
func (s *Store) HasVoted(proposalID string) bool {
	_, ok := s.UserVote(proposalID)
	return ok
}

// UserVote returns a copy of the vote of the connected wallet on the
// proposal. The returned bool is false when no wallet is connected or the
// wallet has not voted.
func (s *Store) UserVote(proposalID string) (*Vote, bool) {
	s.RLock()
	defer s.RUnlock()

	if s.wallet == nil {
		return nil, false
	}
	i := s.voteIndex(proposalID, s.wallet.Address)
	if i < 0 {
		return nil, false
	}
	v := s.votes[i]
	return &v, true
}

// Votes returns a copy of all votes in the order they were cast.
func (s *Store) Votes() []Vote {
	s.RLock()
	defer s.RUnlock()

	vs := make([]Vote, len(s.votes))
	copy(vs, s.votes)
	return vs
}
