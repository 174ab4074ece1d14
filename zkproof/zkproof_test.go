// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zkproof

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCommit(t *testing.T) {
	c := Commit("prop1", "0xabc", "yes", "s3cret")
	if len(c) != 64 {
		t.Fatalf("got commitment length %v, want 64", len(c))
	}
	if c != Commit("prop1", "0xabc", "yes", "s3cret") {
		t.Fatalf("commitment is not deterministic")
	}

	var tests = []struct {
		name       string
		proposalID string
		voter      string
		choice     string
		secret     string
		want       bool
	}{
		{"match", "prop1", "0xabc", "yes", "s3cret", true},
		{"wrong choice", "prop1", "0xabc", "no", "s3cret", false},
		{"wrong secret", "prop1", "0xabc", "yes", "secret", false},
		{"wrong voter", "prop1", "0xdef", "yes", "s3cret", false},
		{"wrong proposal", "prop2", "0xabc", "yes", "s3cret", false},
		{"shifted fields", "prop1", "0xab", "cyes", "s3cret", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := VerifyCommitment(c, tc.proposalID, tc.voter,
				tc.choice, tc.secret)
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSimulatedProve(t *testing.T) {
	p := NewSimulated(0)
	st := Statement{
		Voter:      "0xabc",
		Choice:     "abstain",
		Commitment: Commit("prop1", "0xabc", "abstain", "x"),
	}
	proof, err := p.Prove(context.Background(), st)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Verify(proof, st); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// Proofs use a one-time key
	proof2, err := p.Prove(context.Background(), st)
	if err != nil {
		t.Fatal(err)
	}
	if proof == proof2 {
		t.Fatalf("two proofs are identical")
	}

	// A proof does not verify against another statement
	other := st
	other.Choice = "yes"
	err = p.Verify(proof, other)
	if !errors.Is(err, ErrProofInvalid) {
		t.Fatalf("got %v, want %v", err, ErrProofInvalid)
	}
}

func TestVerifyMalformed(t *testing.T) {
	var tests = []struct {
		name  string
		proof string
	}{
		{"empty", ""},
		{"not hex", "zz"},
		{"too short", "02ab"},
		{"bad pubkey", "ff" + "00000000000000000000000000000000000000000000000000000000000000" + "3006020101020101"},
	}
	p := NewSimulated(0)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := p.Verify(tc.proof, Statement{})
			if !errors.Is(err, ErrProofInvalid) {
				t.Errorf("got %v, want %v", err, ErrProofInvalid)
			}
		})
	}
}

func TestSimulatedFailure(t *testing.T) {
	circuitErr := errors.New("circuit error")
	p := NewSimulated(0)
	p.SetFailure(circuitErr)
	_, err := p.Prove(context.Background(), Statement{})
	if !errors.Is(err, circuitErr) {
		t.Fatalf("got %v, want %v", err, circuitErr)
	}
}

func TestSimulatedTimeout(t *testing.T) {
	p := NewSimulated(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	_, err := p.Prove(ctx, Statement{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want %v", err, context.DeadlineExceeded)
	}
}
