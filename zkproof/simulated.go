// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zkproof

import (
	"context"
	"encoding/hex"
	"sync"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v3"
	"github.com/decred/dcrd/dcrec/secp256k1/v3/ecdsa"
	"github.com/pkg/errors"
	"github.com/privacyvote/daogov/util"
)

var (
	_ Prover = (*Simulated)(nil)

	// ErrProofInvalid is returned when a proof cannot be decoded or does not
	// match its statement.
	ErrProofInvalid = errors.New("proof invalid")
)

// Simulated stands in for a zero knowledge prover. After a delay it signs the
// statement digest with a fresh one-time key. The proof is the compressed
// public key followed by the DER encoded signature, hex encoded.
//
// The proof only shows that it was produced for the statement. It proves
// nothing about the eligibility of the voter.
type Simulated struct {
	delay time.Duration

	sync.Mutex
	fail error
}

// NewSimulated returns a new simulated prover.
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{
		delay: delay,
	}
}

// SetFailure makes every following Prove call return the provided error.
// A nil error restores normal behavior.
func (s *Simulated) SetFailure(err error) {
	s.Lock()
	defer s.Unlock()

	s.fail = err
}

// Prove returns a proof for the statement.
//
// This function satisfies the Prover interface.
func (s *Simulated) Prove(ctx context.Context, st Statement) (string, error) {
	log.Tracef("Simulated.Prove: %v %v", st.Voter, st.Choice)

	err := util.Sleep(ctx, s.delay)
	if err != nil {
		return "", err
	}

	s.Lock()
	fail := s.fail
	s.Unlock()
	if fail != nil {
		return "", fail
	}

	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return "", errors.Wrap(err, "generate key")
	}
	sig := ecdsa.Sign(key, st.digest())

	proof := append(key.PubKey().SerializeCompressed(), sig.Serialize()...)
	return hex.EncodeToString(proof), nil
}

// Verify verifies that a proof created by the simulated prover belongs to
// the statement.
//
// This function satisfies the Prover interface.
func (s *Simulated) Verify(proof string, st Statement) error {
	b, err := hex.DecodeString(proof)
	if err != nil {
		return errors.Wrap(ErrProofInvalid, "not hex")
	}
	if len(b) <= secp256k1.PubKeyBytesLenCompressed {
		return errors.Wrap(ErrProofInvalid, "too short")
	}
	pk, err := secp256k1.ParsePubKey(b[:secp256k1.PubKeyBytesLenCompressed])
	if err != nil {
		return errors.Wrap(ErrProofInvalid, err.Error())
	}
	sig, err := ecdsa.ParseDERSignature(b[secp256k1.PubKeyBytesLenCompressed:])
	if err != nil {
		return errors.Wrap(ErrProofInvalid, err.Error())
	}
	if !sig.Verify(st.digest(), pk) {
		return errors.Wrap(ErrProofInvalid, "signature mismatch")
	}
	return nil
}
