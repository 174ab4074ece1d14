// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mockdata contains the seed data of a governance session: the
// proposals every session starts with, the project catalog and the voting
// history table.
package mockdata

import (
	"time"

	"github.com/privacyvote/daogov/store"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

func phase(p store.Phase) *store.Phase {
	return &p
}

func tokens(gov, priv int64) map[store.Token]decimal.Decimal {
	rt := make(map[store.Token]decimal.Decimal, 2)
	if gov > 0 {
		rt[store.TokenGOV] = decimal.NewFromInt(gov)
	}
	if priv > 0 {
		rt[store.TokenPRIV] = decimal.NewFromInt(priv)
	}
	return rt
}

// Proposals returns the seed proposals, newest first. Timestamps are
// relative to now so that active proposals are always open.
func Proposals(now time.Time) []store.Proposal {
	now = now.UTC().Truncate(time.Second)
	return []store.Proposal{
		{
			ID:                "1",
			Title:             "Increase Privacy Pool Rewards",
			Description:       "Raise the staking rewards of the privacy pool from 5% to 7% APY to attract more shielded liquidity.",
			Creator:           "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			CreatedAt:         now.Add(-2 * day),
			Deadline:          now.Add(5 * day),
			Status:            store.ProposalStatusActive,
			Phase:             phase(store.PhaseCommit),
			VoteCount:         1247,
			ParticipationRate: 67.3,
			RequiredTokens:    tokens(100, 0),
			TokenType:         store.TokenGOV,
			Threshold:         51,
		},
		{
			ID:                "2",
			Title:             "Treasury Allocation for Zero-Knowledge Research",
			Description:       "Allocate 500,000 tokens from the treasury to fund research into recursive zero-knowledge proofs.",
			Creator:           "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
			CreatedAt:         now.Add(-4 * day),
			Deadline:          now.Add(2 * day),
			Status:            store.ProposalStatusActive,
			Phase:             phase(store.PhaseReveal),
			VoteCount:         892,
			ParticipationRate: 45.8,
			RequiredTokens:    tokens(50, 10),
			TokenType:         store.TokenBoth,
			Threshold:         60,
		},
		{
			ID:                "3",
			Title:             "Cross-Chain Bridge Integration",
			Description:       "Integrate a privacy preserving bridge so that shielded assets can move between chains.",
			Creator:           "0x1aE0EA34a72D944a8C7603FfB3eC30a6669E454C",
			CreatedAt:         now.Add(-1 * day),
			Deadline:          now.Add(10 * day),
			Status:            store.ProposalStatusPending,
			VoteCount:         0,
			ParticipationRate: 0,
			RequiredTokens:    tokens(0, 25),
			TokenType:         store.TokenPRIV,
			Threshold:         66,
		},
		{
			ID:                "4",
			Title:             "Reduce Minimum Voting Stake",
			Description:       "Lower the minimum stake required to vote from 100 to 50 governance tokens.",
			Creator:           "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			CreatedAt:         now.Add(-21 * day),
			Deadline:          now.Add(-7 * day),
			Status:            store.ProposalStatusClosed,
			VoteCount:         2156,
			ParticipationRate: 78.9,
			RequiredTokens:    tokens(100, 0),
			TokenType:         store.TokenGOV,
			Threshold:         51,
			Results:           &store.Results{Yes: 1423, No: 612, Abstain: 121},
		},
		{
			ID:                "5",
			Title:             "Adopt Quadratic Voting for Grants",
			Description:       "Weight grant votes quadratically to limit the influence of large holders.",
			Creator:           "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
			CreatedAt:         now.Add(-35 * day),
			Deadline:          now.Add(-20 * day),
			Status:            store.ProposalStatusClosed,
			VoteCount:         1530,
			ParticipationRate: 61.2,
			RequiredTokens:    tokens(0, 0),
			TokenType:         store.TokenBoth,
			Threshold:         60,
			Results:           &store.Results{Yes: 702, No: 781, Abstain: 47},
		},
	}
}

// CatalogProject is a project of the community catalog.
type CatalogProject struct {
	ID              string
	Name            string
	Description     string
	Type            store.ProjectType
	Category        store.Category
	MemberCount     uint64
	ProposalCount   uint64
	ActiveVotes     uint64
	GovernanceToken string
	Treasury        decimal.Decimal
	Social          store.SocialLinks
}

var catalog = []CatalogProject{
	{
		ID:              "1",
		Name:            "ShieldSwap",
		Description:     "Private automated market maker with shielded liquidity pools.",
		Type:            store.ProjectTypePublic,
		Category:        store.CategoryDeFi,
		MemberCount:     3421,
		ProposalCount:   28,
		ActiveVotes:     3,
		GovernanceToken: "SHLD",
		Treasury:        decimal.RequireFromString("1250000.50"),
		Social: store.SocialLinks{
			Website: "https://shieldswap.example",
			Twitter: "@shieldswap",
		},
	},
	{
		ID:              "2",
		Name:            "Veil Collective",
		Description:     "Anonymous NFT curation DAO.",
		Type:            store.ProjectTypePublic,
		Category:        store.CategoryNFT,
		MemberCount:     987,
		ProposalCount:   12,
		ActiveVotes:     1,
		GovernanceToken: "VEIL",
		Treasury:        decimal.RequireFromString("84000"),
		Social: store.SocialLinks{
			Discord: "veil-collective",
		},
	},
	{
		ID:              "3",
		Name:            "Cipher Guild",
		Description:     "Privately governed gaming guild.",
		Type:            store.ProjectTypePrivate,
		Category:        store.CategoryGaming,
		MemberCount:     212,
		ProposalCount:   5,
		ActiveVotes:     0,
		GovernanceToken: "CPHR",
		Treasury:        decimal.RequireFromString("15320.75"),
	},
	{
		ID:              "4",
		Name:            "Relay Network",
		Description:     "Decentralized relayer infrastructure for private transactions.",
		Type:            store.ProjectTypePublic,
		Category:        store.CategoryInfrastructure,
		MemberCount:     1554,
		ProposalCount:   41,
		ActiveVotes:     2,
		GovernanceToken: "RLY",
		Treasury:        decimal.RequireFromString("530000"),
		Social: store.SocialLinks{
			Website: "https://relay.example",
			GitHub:  "relay-network",
		},
	},
}

// Projects returns a copy of the project catalog.
func Projects() []CatalogProject {
	ps := make([]CatalogProject, len(catalog))
	copy(ps, catalog)
	return ps
}

// Project returns the catalog project with the provided ID. The returned
// bool is false when the project is not in the catalog.
func Project(id string) (*CatalogProject, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return &p, true
		}
	}
	return nil, false
}

// HistoryEntry is a row of the voting history table.
type HistoryEntry struct {
	Proposal string
	Vote     store.Choice
	Date     time.Time
	Status   string
	Result   string
}

var history = []HistoryEntry{
	{
		Proposal: "Reduce Minimum Voting Stake",
		Vote:     store.ChoiceYes,
		Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:   "Revealed",
		Result:   "Passed",
	},
	{
		Proposal: "Adopt Quadratic Voting for Grants",
		Vote:     store.ChoiceNo,
		Date:     time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		Status:   "Revealed",
		Result:   "Rejected",
	},
	{
		Proposal: "Community Fund Allocation",
		Vote:     store.ChoiceAbstain,
		Date:     time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC),
		Status:   "Revealed",
		Result:   "Passed",
	},
	{
		Proposal: "Protocol Fee Adjustment, Phase 2",
		Vote:     store.ChoiceYes,
		Date:     time.Date(2023, 12, 2, 0, 0, 0, 0, time.UTC),
		Status:   "Committed",
		Result:   "Pending",
	},
}

// History returns a copy of the voting history table, newest first.
func History() []HistoryEntry {
	h := make([]HistoryEntry, len(history))
	copy(h, history)
	return h
}
