// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned by every operation that requires a
	// connected wallet when no wallet is connected.
	ErrNotConnected = errors.New("wallet not connected")

	// ErrUnknownWalletKind is returned when no provider exists for the
	// requested wallet kind.
	ErrUnknownWalletKind = errors.New("unknown wallet kind")

	// ErrProposalNotFound is returned when a proposal does not exist.
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrProposalClosed is returned when a vote is cast on a closed
	// proposal.
	ErrProposalClosed = errors.New("proposal closed")

	// ErrVoteNotFound is returned when the connected wallet has not voted
	// on the proposal.
	ErrVoteNotFound = errors.New("vote not found")

	// ErrDuplicateVote is returned when the connected wallet has already
	// voted on the proposal.
	ErrDuplicateVote = errors.New("duplicate vote")

	// ErrRevealMismatch is returned when a revealed choice and secret do
	// not match the vote commitment.
	ErrRevealMismatch = errors.New("reveal does not match commitment")

	// ErrInsufficientTokens is returned when the wallet does not hold the
	// tokens that the proposal requires.
	ErrInsufficientTokens = errors.New("insufficient tokens")

	// ErrProofInProgress is returned when a proof is requested while
	// another one is being generated.
	ErrProofInProgress = errors.New("proof generation in progress")

	// ErrTimeout is returned when an operation exceeds the operation
	// timeout.
	ErrTimeout = errors.New("operation timed out")
)

// ValidationError is returned when user provided input is invalid.
type ValidationError struct {
	Field  string
	Reason string
}

// Error satisfies the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %v: %v", e.Field, e.Reason)
}
