// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/privacyvote/daogov/util"
	"github.com/shopspring/decimal"
)

// account contains the deterministic account that a simulated wallet
// connects with.
type account struct {
	address   string
	balance   int64
	secondary int64
}

var accounts = map[Kind]account{
	KindMetaMask: {
		address:   "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
		balance:   15420,
		secondary: 2314,
	},
	KindWalletConnect: {
		address:   "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		balance:   8750,
		secondary: 1205,
	},
	KindCoinbase: {
		address:   "0x1aE0EA34a72D944a8C7603FfB3eC30a6669E454C",
		balance:   23100,
		secondary: 4560,
	},
}

var (
	_ Provider = (*Simulated)(nil)
)

// Simulated is a wallet provider that connects a fixed account after a
// delay. A failure can be injected to exercise the error paths of the
// callers.
type Simulated struct {
	kind    Kind
	network Network
	delay   time.Duration

	sync.Mutex
	fail error
}

// NewSimulated returns a new simulated provider for the wallet kind.
func NewSimulated(kind Kind, network Network, delay time.Duration) (*Simulated, error) {
	if _, ok := accounts[kind]; !ok {
		return nil, errors.Errorf("no simulated account for wallet kind '%v'",
			kind)
	}
	return &Simulated{
		kind:    kind,
		network: network,
		delay:   delay,
	}, nil
}

// SimulatedProviders returns a simulated provider for every wallet kind.
func SimulatedProviders(network Network, delay time.Duration) []Provider {
	p := make([]Provider, 0, len(accounts))
	for _, k := range Kinds() {
		s, err := NewSimulated(k, network, delay)
		if err != nil {
			// Should not happen; every kind has an account
			panic(err)
		}
		p = append(p, s)
	}
	return p
}

// SetFailure makes every following Connect call return the provided error.
// A nil error restores normal behavior.
func (s *Simulated) SetFailure(err error) {
	s.Lock()
	defer s.Unlock()

	s.fail = err
}

// Kind returns the wallet kind of the provider.
//
// This function satisfies the Provider interface.
func (s *Simulated) Kind() Kind {
	return s.kind
}

// Connect waits for the simulated delay and returns the account of the
// wallet kind.
//
// This function satisfies the Provider interface.
func (s *Simulated) Connect(ctx context.Context) (*Wallet, error) {
	log.Tracef("Simulated.Connect: %v", s.kind)

	err := util.Sleep(ctx, s.delay)
	if err != nil {
		return nil, err
	}

	s.Lock()
	fail := s.fail
	s.Unlock()
	if fail != nil {
		log.Debugf("Simulated %v connect failed: %v", s.kind, fail)
		return nil, fail
	}

	a := accounts[s.kind]
	return &Wallet{
		Address:          a.address,
		Balance:          decimal.NewFromInt(a.balance),
		SecondaryBalance: decimal.NewFromInt(a.secondary),
		Network:          s.network,
		Kind:             s.kind,
	}, nil
}
