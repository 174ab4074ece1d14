// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store implements the application state of a governance session.
//
// A Store holds the wallet connection, the guest mode flag, the proposal,
// vote and temporary project collections and the UI coordination flags of
// a single session. It is the only owner of that state; all mutations go
// through its methods. Every method is safe for concurrent use.
//
// State changes that other components react to, such as a disconnect that
// must send the user back to the homepage, are published on the events
// manager that the store was created with.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/privacyvote/daogov/events"
	"github.com/privacyvote/daogov/util"
	"github.com/privacyvote/daogov/wallet"
	"github.com/privacyvote/daogov/zkproof"
)

const (
	// defaultOpTimeout is the default timeout of a single wallet, proof
	// or vote operation.
	defaultOpTimeout = 30 * time.Second

	// sessionHashSize is the size in bytes of a connection session hash.
	sessionHashSize = 32
)

// Opts contains the options of a new Store.
type Opts struct {
	// Providers are the wallet providers that can be connected. There may
	// be only one provider per wallet kind.
	Providers []wallet.Provider

	// Prover generates the vote proofs.
	Prover zkproof.Prover

	// Proposals seeds the proposal collection. The first proposal is the
	// head of the collection.
	Proposals []Proposal

	// Events receives the store events. A new manager is used when nil.
	Events *events.Manager

	// SimulatedDelay is waited by the vote operations before the state is
	// updated.
	SimulatedDelay time.Duration

	// OpTimeout bounds the wallet, proof and vote operations.
	OpTimeout time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Store is the application state of a single session.
type Store struct {
	sync.RWMutex
	events    *events.Manager
	providers map[wallet.Kind]wallet.Provider
	prover    zkproof.Prover
	delay     time.Duration
	opTimeout time.Duration
	now       func() time.Time

	wallet *wallet.Wallet
	conn   *ConnectionDetails
	guest  bool

	proposals []Proposal         // Newest first
	votes     []Vote             // Append only
	projects  []TemporaryProject // Newest first

	showSelector     bool
	showConfirmation bool
	proofStatus      ProofStatus
	proof            string
	proofErr         string
	proofSeq         uint64 // Bumped on every proof start and reset
}

// New returns a new Store.
func New(opts Opts) (*Store, error) {
	if len(opts.Providers) == 0 {
		return nil, errors.New("no wallet providers")
	}
	if opts.Prover == nil {
		return nil, errors.New("no prover")
	}
	providers := make(map[wallet.Kind]wallet.Provider, len(opts.Providers))
	for _, p := range opts.Providers {
		if _, ok := providers[p.Kind()]; ok {
			return nil, errors.Errorf("duplicate provider for wallet kind %v",
				p.Kind())
		}
		providers[p.Kind()] = p
	}
	if opts.Events == nil {
		opts.Events = events.NewManager()
	}
	if opts.OpTimeout <= 0 {
		opts.OpTimeout = defaultOpTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	proposals := make([]Proposal, 0, len(opts.Proposals))
	seen := make(map[string]struct{}, len(opts.Proposals))
	for _, p := range opts.Proposals {
		if _, ok := seen[p.ID]; ok {
			return nil, errors.Errorf("duplicate seed proposal %v", p.ID)
		}
		seen[p.ID] = struct{}{}
		proposals = append(proposals, p.copy())
	}

	return &Store{
		events:      opts.Events,
		providers:   providers,
		prover:      opts.Prover,
		delay:       opts.SimulatedDelay,
		opTimeout:   opts.OpTimeout,
		now:         opts.Now,
		proposals:   proposals,
		votes:       make([]Vote, 0, 16),
		projects:    make([]TemporaryProject, 0, 8),
		proofStatus: ProofStatusIdle,
	}, nil
}

// Events returns the events manager that the store emits on.
func (s *Store) Events() *events.Manager {
	return s.events
}

// opContext returns a context that is bounded by the operation timeout.
func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// opErr converts an operation error. An expired operation context becomes
// ErrTimeout. A canceled caller context is returned unchanged.
func opErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// Connect connects the wallet of the provided kind. The connection replaces
// any existing wallet, ends guest mode, closes the wallet selector and
// requests the connection confirmation to be shown.
//
// The state is unchanged when the connection fails.
func (s *Store) Connect(ctx context.Context, kind wallet.Kind) error {
	log.Tracef("Connect: %v", kind)

	p, ok := s.providers[kind]
	if !ok {
		return ErrUnknownWalletKind
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	w, err := p.Connect(ctx)
	if err != nil {
		return opErr(err)
	}
	if err := w.Verify(); err != nil {
		return errors.Wrapf(err, "provider %v", kind)
	}
	hash, err := util.RandomHex(sessionHashSize)
	if err != nil {
		return errors.Wrap(err, "session hash")
	}

	s.Lock()
	s.wallet = w
	s.conn = &ConnectionDetails{
		Kind:        kind,
		ConnectedAt: s.now(),
		SessionHash: hash,
	}
	s.guest = false
	s.showSelector = false
	s.showConfirmation = true
	s.resetProof()
	s.Unlock()

	log.Infof("Wallet connected: %v %v", kind, w.Address)

	s.events.Emit(EventConnected, kind)

	return nil
}

// Disconnect disconnects the wallet and clears all of the session scoped
// collections: the votes and the temporary projects.
func (s *Store) Disconnect() {
	log.Tracef("Disconnect")

	s.Lock()
	if s.wallet != nil {
		log.Infof("Wallet disconnected: %v", s.wallet.Address)
	}
	s.wallet = nil
	s.conn = nil
	s.votes = make([]Vote, 0, 16)
	s.projects = make([]TemporaryProject, 0, 8)
	s.showConfirmation = false
	s.resetProof()
	s.Unlock()

	s.events.Emit(EventDisconnected, nil)
}

// EnterGuestMode enters guest mode. Guest mode and a connected wallet are
// mutually exclusive, so any connected wallet is dropped.
func (s *Store) EnterGuestMode() {
	log.Tracef("EnterGuestMode")

	s.Lock()
	s.guest = true
	s.wallet = nil
	s.conn = nil
	s.showSelector = false
	s.showConfirmation = false
	s.resetProof()
	s.Unlock()

	s.events.Emit(EventGuestEntered, nil)
}

// resetProof resets the proof state and orphans any proof that is still
// being generated. The caller must hold the lock.
func (s *Store) resetProof() {
	s.proofSeq++
	s.proofStatus = ProofStatusIdle
	s.proof = ""
	s.proofErr = ""
}

// ShowWalletSelector requests the wallet selector to be shown.
func (s *Store) ShowWalletSelector() {
	s.Lock()
	defer s.Unlock()

	s.showSelector = true
}

// HideWalletSelector requests the wallet selector to be hidden.
func (s *Store) HideWalletSelector() {
	s.Lock()
	defer s.Unlock()

	s.showSelector = false
}

// DismissConnectionConfirmation hides the connection confirmation.
func (s *Store) DismissConnectionConfirmation() {
	s.Lock()
	defer s.Unlock()

	s.showConfirmation = false
}

// Wallet returns a copy of the connected wallet. Nil is returned when no
// wallet is connected.
func (s *Store) Wallet() *wallet.Wallet {
	s.RLock()
	defer s.RUnlock()

	if s.wallet == nil {
		return nil
	}
	w := *s.wallet
	return &w
}

// Connection returns a copy of the connection details. Nil is returned when
// no wallet is connected.
func (s *Store) Connection() *ConnectionDetails {
	s.RLock()
	defer s.RUnlock()

	if s.conn == nil {
		return nil
	}
	c := *s.conn
	return &c
}

// IsConnected returns whether a wallet is connected.
func (s *Store) IsConnected() bool {
	s.RLock()
	defer s.RUnlock()

	return s.wallet != nil
}

// IsGuest returns whether the session is in guest mode.
func (s *Store) IsGuest() bool {
	s.RLock()
	defer s.RUnlock()

	return s.guest
}

// Snapshot returns a copy of the session state.
func (s *Store) Snapshot() Snapshot {
	s.RLock()
	defer s.RUnlock()

	sn := Snapshot{
		Guest:                      s.guest,
		ShowWalletSelector:         s.showSelector,
		ShowConnectionConfirmation: s.showConfirmation,
		ProofStatus:                s.proofStatus,
		Proof:                      s.proof,
		ProofError:                 s.proofErr,
		Proposals:                  len(s.proposals),
		Votes:                      len(s.votes),
		Projects:                   len(s.projects),
	}
	if s.wallet != nil {
		w := *s.wallet
		sn.Wallet = &w
	}
	if s.conn != nil {
		c := *s.conn
		sn.Connection = &c
	}
	return sn
}
