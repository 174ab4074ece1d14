// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"strings"

	"github.com/google/uuid"
)

func verifyProjectInput(in ProjectInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return ValidationError{Field: "name", Reason: "required"}
	case strings.TrimSpace(in.Description) == "":
		return ValidationError{Field: "description", Reason: "required"}
	}
	switch in.Type {
	case ProjectTypePublic, ProjectTypePrivate:
	default:
		return ValidationError{Field: "type",
			Reason: "invalid project type '" + string(in.Type) + "'"}
	}
	for _, c := range Categories() {
		if in.Category == c {
			return nil
		}
	}
	return ValidationError{Field: "category",
		Reason: "invalid category '" + string(in.Category) + "'"}
}

// CreateProject creates a new temporary project at the head of the
// temporary project collection and returns its ID. The ID carries the
// TemporaryProjectPrefix.
func (s *Store) CreateProject(in ProjectInput) (string, error) {
	log.Tracef("CreateProject: %v", in.Name)

	err := verifyProjectInput(in)
	if err != nil {
		return "", err
	}

	s.Lock()
	creator := in.Creator
	if creator == "" && s.wallet != nil {
		creator = s.wallet.Address
	}
	p := TemporaryProject{
		ID:              TemporaryProjectPrefix + uuid.New().String(),
		Name:            strings.TrimSpace(in.Name),
		Description:     strings.TrimSpace(in.Description),
		Type:            in.Type,
		Category:        in.Category,
		Creator:         creator,
		CreatedAt:       s.now(),
		MemberCount:     1,
		ProposalCount:   0,
		ActiveVotes:     0,
		GovernanceToken: in.GovernanceToken,
		Social:          in.Social,
		HasDetailedInfo: false,
	}
	p = p.copy()
	s.projects = append([]TemporaryProject{p}, s.projects...)
	s.Unlock()

	log.Infof("Project created: %v %v", p.ID, p.Name)

	s.events.Emit(EventProjectCreated, p.ID)

	return p.ID, nil
}

// TemporaryProjects returns copies of the temporary projects, newest first.
func (s *Store) TemporaryProjects() []TemporaryProject {
	s.RLock()
	defer s.RUnlock()

	ps := make([]TemporaryProject, 0, len(s.projects))
	for _, p := range s.projects {
		ps = append(ps, p.copy())
	}
	return ps
}

// TemporaryProject returns a copy of the temporary project. The returned
// bool is false when the project does not exist.
func (s *Store) TemporaryProject(id string) (*TemporaryProject, bool) {
	s.RLock()
	defer s.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			c := p.copy()
			return &c, true
		}
	}
	return nil, false
}
