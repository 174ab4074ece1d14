// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	v1 "github.com/privacyvote/daogov/api/v1"
	"github.com/privacyvote/daogov/nav"
	"github.com/privacyvote/daogov/store"
	"github.com/privacyvote/daogov/wallet"
)

// spewConfig is used to trace session state in a compact form.
var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// userErrors maps the sentinel errors that are caused by the user to their
// v1 error code.
var userErrors = []struct {
	err  error
	code v1.ErrorCodeT
}{
	{store.ErrNotConnected, v1.ErrorCodeNotConnected},
	{store.ErrUnknownWalletKind, v1.ErrorCodeWalletKindInvalid},
	{store.ErrProposalNotFound, v1.ErrorCodeProposalNotFound},
	{store.ErrProposalClosed, v1.ErrorCodeProposalClosed},
	{store.ErrVoteNotFound, v1.ErrorCodeVoteNotFound},
	{store.ErrDuplicateVote, v1.ErrorCodeDuplicateVote},
	{store.ErrRevealMismatch, v1.ErrorCodeRevealMismatch},
	{store.ErrInsufficientTokens, v1.ErrorCodeInsufficientTokens},
	{store.ErrProofInProgress, v1.ErrorCodeProofInProgress},
	{store.ErrTimeout, v1.ErrorCodeTimeout},
	{wallet.ErrUserRejected, v1.ErrorCodeWalletRejected},
	{wallet.ErrProviderUnavailable, v1.ErrorCodeWalletUnavailable},
	{nav.ErrUnknownPath, v1.ErrorCodePathInvalid},
}

// convertError returns the v1 error code and error context of a user error.
// The returned bool is false when the error was not caused by the user.
func convertError(err error) (v1.ErrorCodeT, string, bool) {
	var ve store.ValidationError
	if errors.As(err, &ve) {
		return v1.ErrorCodeInputInvalid, ve.Error(), true
	}
	for _, ue := range userErrors {
		if errors.Is(err, ue.err) {
			return ue.code, "", true
		}
	}
	return v1.ErrorCodeInvalid, "", false
}
