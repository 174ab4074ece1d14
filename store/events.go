// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import "github.com/privacyvote/daogov/events"

// Events emitted by the store. Events are emitted after the state update
// has completed and the store lock has been released, so listeners are free
// to query the store.
const (
	// EventConnected is emitted after a wallet connects. The event data
	// is the wallet.Kind.
	EventConnected events.Event = "store-connected"

	// EventDisconnected is emitted after the wallet disconnects. The event
	// data is nil.
	EventDisconnected events.Event = "store-disconnected"

	// EventGuestEntered is emitted after the session enters guest mode.
	// The event data is nil.
	EventGuestEntered events.Event = "store-guest-entered"

	// EventProposalCreated is emitted after a proposal is created. The
	// event data is the proposal ID.
	EventProposalCreated events.Event = "store-proposal-created"

	// EventProjectCreated is emitted after a temporary project is created.
	// The event data is the project ID.
	EventProjectCreated events.Event = "store-project-created"

	// EventVoteSubmitted is emitted after a vote is submitted. The event
	// data is the proposal ID.
	EventVoteSubmitted events.Event = "store-vote-submitted"

	// EventVoteRevealed is emitted after a vote is revealed. The event data
	// is the proposal ID.
	EventVoteRevealed events.Event = "store-vote-revealed"
)
