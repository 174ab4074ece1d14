// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet contains the wallet data model and the providers that are
// used to connect a wallet to a governance session.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/decred/dcrd/chaincfg/v3"
	"github.com/shopspring/decimal"
)

// Kind represents a wallet provider.
type Kind string

const (
	// KindInvalid is an invalid wallet kind.
	KindInvalid Kind = ""

	// KindMetaMask is the browser extension wallet.
	KindMetaMask Kind = "metamask"

	// KindWalletConnect is the mobile wallet bridge.
	KindWalletConnect Kind = "walletconnect"

	// KindCoinbase is the exchange hosted wallet.
	KindCoinbase Kind = "coinbase"
)

// Kinds returns all valid wallet kinds.
func Kinds() []Kind {
	return []Kind{KindMetaMask, KindWalletConnect, KindCoinbase}
}

// ParseKind parses a wallet kind string.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("invalid wallet kind '%v'", s)
}

// Network represents the network that a wallet is connected to.
type Network string

const (
	// NetworkMainnet is the main network.
	NetworkMainnet Network = "mainnet"

	// NetworkTestnet is the test network.
	NetworkTestnet Network = "testnet"
)

// NetworkFromParams returns the wallet network for the provided chain
// params. Every network that is not the main network is a test network as
// far as wallets are concerned.
func NetworkFromParams(p *chaincfg.Params) Network {
	if p.Net == chaincfg.MainNetParams().Net {
		return NetworkMainnet
	}
	return NetworkTestnet
}

var (
	// ErrUserRejected is returned when the user declines the connection
	// request in the wallet.
	ErrUserRejected = errors.New("wallet connection rejected by user")

	// ErrProviderUnavailable is returned when the wallet provider cannot be
	// reached.
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
)

// Wallet is a connected wallet. A wallet is always fully populated; a session
// without a wallet holds a nil *Wallet.
type Wallet struct {
	Address          string
	Balance          decimal.Decimal // Governance token balance
	SecondaryBalance decimal.Decimal // Privacy token balance
	Network          Network
	Kind             Kind
}

// Verify returns an error if the wallet is not fully populated.
func (w *Wallet) Verify() error {
	switch {
	case w.Address == "":
		return errors.New("wallet address missing")
	case w.Network != NetworkMainnet && w.Network != NetworkTestnet:
		return fmt.Errorf("invalid wallet network '%v'", w.Network)
	case w.Balance.IsNegative() || w.SecondaryBalance.IsNegative():
		return errors.New("negative wallet balance")
	}
	if _, err := ParseKind(string(w.Kind)); err != nil {
		return err
	}
	return nil
}

// Provider connects a wallet of a specific kind.
type Provider interface {
	// Kind returns the wallet kind that the provider connects.
	Kind() Kind

	// Connect asks the wallet to connect and returns the connected wallet.
	Connect(ctx context.Context) (*Wallet, error)
}
