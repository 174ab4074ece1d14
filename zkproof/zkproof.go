// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zkproof contains the vote commitment scheme and the provers that
// attach a proof of eligibility to a vote.
//
// A commitment binds a voter to a choice without disclosing it. It is the
// blake256 hash of the proposal ID, the voter address, the choice and a
// voter provided secret. The commitment is revealed by presenting the
// choice and the secret again.
package zkproof

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// Statement is the public input of a proof.
type Statement struct {
	Voter      string
	Choice     string
	Commitment string // May be empty for a standalone proof
}

// digest returns the blake256 digest of the statement.
func (s Statement) digest() []byte {
	return chainhash.HashB(encodeFields(s.Voter, s.Choice, s.Commitment))
}

// Prover generates proofs for statements.
type Prover interface {
	// Prove returns an encoded proof for the statement.
	Prove(ctx context.Context, s Statement) (string, error)

	// Verify returns an error if the proof was not produced for the
	// statement.
	Verify(proof string, s Statement) error
}

// encodeFields length prefixes every field so that different field
// combinations can never produce the same byte sequence.
func encodeFields(fields ...string) []byte {
	var b bytes.Buffer
	var l [4]byte
	for _, f := range fields {
		binary.LittleEndian.PutUint32(l[:], uint32(len(f)))
		b.Write(l[:])
		b.WriteString(f)
	}
	return b.Bytes()
}

// Commit returns the hex encoded commitment for a vote.
func Commit(proposalID, voter, choice, secret string) string {
	h := chainhash.HashB(encodeFields(proposalID, voter, choice, secret))
	return hex.EncodeToString(h)
}

// VerifyCommitment returns whether the commitment was created from the
// provided vote values.
func VerifyCommitment(commitment, proposalID, voter, choice, secret string) bool {
	want := Commit(proposalID, voter, choice, secret)
	return subtle.ConstantTimeCompare([]byte(commitment), []byte(want)) == 1
}
