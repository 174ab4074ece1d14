// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"time"

	"github.com/privacyvote/daogov/wallet"
	"github.com/shopspring/decimal"
)

// ProposalStatus represents the status of a proposal.
type ProposalStatus string

const (
	ProposalStatusPending ProposalStatus = "pending"
	ProposalStatusActive  ProposalStatus = "active"
	ProposalStatusClosed  ProposalStatus = "closed"
)

// Phase represents the voting phase of an active proposal.
type Phase string

const (
	PhaseCommit Phase = "commit"
	PhaseReveal Phase = "reveal"
	PhaseTally  Phase = "tally"
)

// Token represents a governance token, or both of them when used as the
// token type of a proposal.
type Token string

const (
	// TokenGOV is the governance token. Wallet.Balance holds it.
	TokenGOV Token = "gov"

	// TokenPRIV is the privacy token. Wallet.SecondaryBalance holds it.
	TokenPRIV Token = "priv"

	// TokenBoth is only valid as a proposal token type. Votes on these
	// proposals are weighted by the sum of both balances.
	TokenBoth Token = "both"
)

// Choice represents a vote choice.
type Choice string

const (
	ChoiceYes     Choice = "yes"
	ChoiceNo      Choice = "no"
	ChoiceAbstain Choice = "abstain"
)

// ProofStatus represents the status of the latest proof generation.
type ProofStatus string

const (
	ProofStatusIdle       ProofStatus = "idle"
	ProofStatusGenerating ProofStatus = "generating"
	ProofStatusSuccess    ProofStatus = "success"
	ProofStatusError      ProofStatus = "error"
)

// ProjectType represents the visibility of a community project.
type ProjectType string

const (
	ProjectTypePublic  ProjectType = "public"
	ProjectTypePrivate ProjectType = "private"
)

// Category represents the category of a community project.
type Category string

const (
	CategoryDeFi           Category = "defi"
	CategoryNFT            Category = "nft"
	CategoryGaming         Category = "gaming"
	CategoryDAO            Category = "dao"
	CategoryInfrastructure Category = "infrastructure"
	CategorySocial         Category = "social"
	CategoryOther          Category = "other"
)

// Categories returns all valid project categories.
func Categories() []Category {
	return []Category{
		CategoryDeFi,
		CategoryNFT,
		CategoryGaming,
		CategoryDAO,
		CategoryInfrastructure,
		CategorySocial,
		CategoryOther,
	}
}

// TemporaryProjectPrefix is prefixed onto the ID of every project that is
// created during a session.
const TemporaryProjectPrefix = "temp-"

// Results contains a precomputed vote breakdown.
type Results struct {
	Yes     uint64
	No      uint64
	Abstain uint64
}

// Proposal is a governance proposal.
type Proposal struct {
	ID          string
	Title       string
	Description string
	Creator     string
	CreatedAt   time.Time
	Deadline    time.Time
	Status      ProposalStatus
	Phase       *Phase // Only meaningful when the status is active

	VoteCount         uint64
	ParticipationRate float64 // Percent

	// EligibleVoters is the number of voters that may take part in the
	// vote. When it is set the participation rate is derived from the vote
	// count. When it is zero the participation rate is tracked as is.
	EligibleVoters uint64

	RequiredTokens map[Token]decimal.Decimal
	TokenType      Token
	Threshold      float64 // Approval percent required to pass

	Results *Results
}

// copy returns a deep copy of the proposal.
func (p Proposal) copy() Proposal {
	if p.Phase != nil {
		ph := *p.Phase
		p.Phase = &ph
	}
	if p.Results != nil {
		r := *p.Results
		p.Results = &r
	}
	if p.RequiredTokens != nil {
		rt := make(map[Token]decimal.Decimal, len(p.RequiredTokens))
		for k, v := range p.RequiredTokens {
			rt[k] = v
		}
		p.RequiredTokens = rt
	}
	return p
}

// ProposalInput contains the user provided fields of a new proposal.
type ProposalInput struct {
	Title          string
	Description    string
	Creator        string // Defaults to the connected wallet address
	Deadline       time.Time
	RequiredTokens map[Token]decimal.Decimal
	TokenType      Token
	Threshold      float64
	EligibleVoters uint64
}

// ProposalFilter filters a proposal listing. Empty fields match all
// proposals.
type ProposalFilter struct {
	Status    ProposalStatus
	TokenType Token
}

// Vote is a committed vote.
type Vote struct {
	ProposalID  string
	Voter       string
	Choice      Choice
	Commitment  string
	Revealed    bool
	Timestamp   time.Time
	ZKProof     string
	TokenAmount decimal.Decimal
	TokenType   Token
}

// SocialLinks contains the optional social links of a project.
type SocialLinks struct {
	Website string
	Twitter string
	Discord string
	GitHub  string
}

// TemporaryProject is a community project that was created during the
// session. Temporary projects are cleared when the wallet disconnects.
type TemporaryProject struct {
	ID              string
	Name            string
	Description     string
	Type            ProjectType
	Category        Category
	Creator         string
	CreatedAt       time.Time
	MemberCount     uint64
	ProposalCount   uint64
	ActiveVotes     uint64
	GovernanceToken string
	Social          *SocialLinks
	HasDetailedInfo bool
}

// copy returns a deep copy of the project.
func (p TemporaryProject) copy() TemporaryProject {
	if p.Social != nil {
		s := *p.Social
		p.Social = &s
	}
	return p
}

// ProjectInput contains the user provided fields of a new project.
type ProjectInput struct {
	Name            string
	Description     string
	Type            ProjectType
	Category        Category
	Creator         string // Defaults to the connected wallet address
	GovernanceToken string
	Social          *SocialLinks
}

// ConnectionDetails describes the current wallet connection. It exists if
// and only if a wallet is connected.
type ConnectionDetails struct {
	Kind        wallet.Kind
	ConnectedAt time.Time
	SessionHash string
}

// Snapshot is a point in time copy of the session state.
type Snapshot struct {
	Wallet     *wallet.Wallet
	Connection *ConnectionDetails
	Guest      bool

	ShowWalletSelector         bool
	ShowConnectionConfirmation bool

	ProofStatus ProofStatus
	Proof       string
	ProofError  string

	Proposals int
	Votes     int
	Projects  int
}
