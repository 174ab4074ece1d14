// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package v1 contains the JSON types of the daogov HTTP API.
//
// Amounts are decimal strings. Timestamps are UNIX timestamps in seconds.
// Every reply to a write request carries the view that the client must
// render after the request completed.
package v1

import "fmt"

const (
	// APIRoute is prefixed onto all routes defined in this package.
	APIRoute = "/api/v1"

	// APIVersion is the version of the API.
	APIVersion = 1

	// CSRFTokenHeader is the header that will contain a CSRF token.
	CSRFTokenHeader = "X-CSRF-Token"

	// RouteVersion returns the server version and sets the CSRF tokens.
	RouteVersion = "/version"

	// RoutePolicy returns the server policy.
	RoutePolicy = "/policy"

	// RouteSession returns the state of the session.
	RouteSession = "/session"

	// RouteConnect connects a wallet.
	RouteConnect = "/wallet/connect"

	// RouteDisconnect disconnects the wallet.
	RouteDisconnect = "/wallet/disconnect"

	// RouteGuest enters guest mode.
	RouteGuest = "/wallet/guest"

	// RouteWalletSelector shows or hides the wallet selector.
	RouteWalletSelector = "/wallet/selector"

	// RouteConfirmation dismisses the connection confirmation.
	RouteConfirmation = "/wallet/confirmation"

	// RouteProposals returns the proposals that match a filter.
	RouteProposals = "/proposals"

	// RouteProposalDetails returns a single proposal.
	RouteProposalDetails = "/proposals/{id}"

	// RouteNewProposal creates a proposal.
	RouteNewProposal = "/proposals"

	// RouteGenerateProof generates a vote proof.
	RouteGenerateProof = "/proofs"

	// RouteCastVote commits a vote.
	RouteCastVote = "/votes"

	// RouteRevealVote reveals a committed vote.
	RouteRevealVote = "/votes/reveal"

	// RouteVoteDetails returns the vote of the connected wallet on a
	// proposal.
	RouteVoteDetails = "/votes/{id}"

	// RouteProjects returns the temporary projects and the catalog.
	RouteProjects = "/projects"

	// RouteNewProject creates a temporary project.
	RouteNewProject = "/projects"

	// RouteNavigate navigates to an application path.
	RouteNavigate = "/navigate"

	// RouteHistory downloads the voting history as CSV.
	RouteHistory = "/history.csv"

	// RouteVarID is the route variable of the routes that carry an ID.
	RouteVarID = "id"
)

// ErrorCodeT represents a user error code.
type ErrorCodeT uint32

const (
	// ErrorCodeInvalid is an invalid error code.
	ErrorCodeInvalid ErrorCodeT = 0

	// ErrorCodeInputInvalid is returned when the request body or params
	// cannot be decoded or contain an invalid field. The error context
	// names the field.
	ErrorCodeInputInvalid ErrorCodeT = 1

	// ErrorCodeNotConnected is returned when the request requires a
	// connected wallet.
	ErrorCodeNotConnected ErrorCodeT = 2

	// ErrorCodeWalletKindInvalid is returned when a wallet kind is not
	// supported.
	ErrorCodeWalletKindInvalid ErrorCodeT = 3

	// ErrorCodeWalletRejected is returned when the user rejects the
	// wallet connection.
	ErrorCodeWalletRejected ErrorCodeT = 4

	// ErrorCodeWalletUnavailable is returned when the wallet provider is
	// not available.
	ErrorCodeWalletUnavailable ErrorCodeT = 5

	// ErrorCodeProposalNotFound is returned when a proposal does not
	// exist.
	ErrorCodeProposalNotFound ErrorCodeT = 6

	// ErrorCodeProposalClosed is returned when a vote is cast on a closed
	// proposal.
	ErrorCodeProposalClosed ErrorCodeT = 7

	// ErrorCodeVoteNotFound is returned when the connected wallet has not
	// voted on the proposal.
	ErrorCodeVoteNotFound ErrorCodeT = 8

	// ErrorCodeDuplicateVote is returned when the connected wallet has
	// already voted on the proposal.
	ErrorCodeDuplicateVote ErrorCodeT = 9

	// ErrorCodeRevealMismatch is returned when the revealed choice and
	// secret do not match the vote commitment.
	ErrorCodeRevealMismatch ErrorCodeT = 10

	// ErrorCodeInsufficientTokens is returned when the wallet does not
	// hold the tokens that the proposal requires.
	ErrorCodeInsufficientTokens ErrorCodeT = 11

	// ErrorCodeProofInProgress is returned when a proof is requested
	// while another one is being generated.
	ErrorCodeProofInProgress ErrorCodeT = 12

	// ErrorCodeTimeout is returned when an operation timed out.
	ErrorCodeTimeout ErrorCodeT = 13

	// ErrorCodePathInvalid is returned when a navigation path does not
	// map onto a screen.
	ErrorCodePathInvalid ErrorCodeT = 14

	// ErrorCodeConnectRequired is returned when a guest session requests
	// an action that requires a connected wallet.
	ErrorCodeConnectRequired ErrorCodeT = 15

	// ErrorCodeLast is used by unit tests to verify that all error codes
	// have a human readable entry in the ErrorCodes map. This error will
	// never be returned.
	ErrorCodeLast ErrorCodeT = 16
)

var (
	// ErrorCodes contains the human readable errors.
	ErrorCodes = map[ErrorCodeT]string{
		ErrorCodeInvalid:            "error invalid",
		ErrorCodeInputInvalid:       "input invalid",
		ErrorCodeNotConnected:       "wallet not connected",
		ErrorCodeWalletKindInvalid:  "wallet kind invalid",
		ErrorCodeWalletRejected:     "wallet connection rejected",
		ErrorCodeWalletUnavailable:  "wallet provider unavailable",
		ErrorCodeProposalNotFound:   "proposal not found",
		ErrorCodeProposalClosed:     "proposal closed",
		ErrorCodeVoteNotFound:       "vote not found",
		ErrorCodeDuplicateVote:      "duplicate vote",
		ErrorCodeRevealMismatch:     "reveal does not match commitment",
		ErrorCodeInsufficientTokens: "insufficient tokens",
		ErrorCodeProofInProgress:    "proof generation in progress",
		ErrorCodeTimeout:            "operation timed out",
		ErrorCodePathInvalid:        "path invalid",
		ErrorCodeConnectRequired:    "wallet connection required",
	}
)

// UserErrorReply is the reply that the server returns when it encounters an
// error that is caused by something that the user did (malformed input, bad
// timing, etc). The HTTP status code will be 400.
type UserErrorReply struct {
	ErrorCode    ErrorCodeT `json:"errorcode"`
	ErrorContext string     `json:"errorcontext,omitempty"`
}

// Error satisfies the error interface.
func (e UserErrorReply) Error() string {
	return fmt.Sprintf("user error code: %v", e.ErrorCode)
}

// ServerErrorReply is the reply that the server returns when it encounters an
// unrecoverable error while executing a command. The HTTP status code will be
// 500 and the ErrorCode field will contain a UNIX timestamp that the user can
// provide to the server admin to track down the error details in the logs.
type ServerErrorReply struct {
	ErrorCode int64 `json:"errorcode"`
}

// Error satisfies the error interface.
func (e ServerErrorReply) Error() string {
	return fmt.Sprintf("server error: %v", e.ErrorCode)
}

// Version requests the server version. This route sets CSRF tokens for
// clients using the double submit cookie technique. A token is set in a
// cookie and a token is set in the CSRFTokenHeader. Clients MUST make a
// successful Version call before they'll be able to use CSRF protected
// routes.
type Version struct{}

// VersionReply is the reply to the Version command.
type VersionReply struct {
	BuildVersion string `json:"buildversion"`
	APIVersion   uint32 `json:"apiversion"`
}

// Policy requests the server policy.
type Policy struct{}

// PolicyReply is the reply to the Policy command.
type PolicyReply struct {
	SessionMaxAge  int64    `json:"sessionmaxage"`  // In seconds
	SimulatedDelay int64    `json:"simulateddelay"` // In milliseconds
	OpTimeout      int64    `json:"optimeout"`      // In seconds
	Network        string   `json:"network"`
	WalletKinds    []string `json:"walletkinds"`
	Categories     []string `json:"categories"`
	Screens        []string `json:"screens"`
}

// Route is a navigation target. ProposalID and ProjectID are only set for
// the screens that carry them.
type Route struct {
	Screen     string `json:"screen"`
	Path       string `json:"path"`
	ProposalID string `json:"proposalid,omitempty"`
	ProjectID  string `json:"projectid,omitempty"`
}

// ViewT represents what the client must render for a route.
type ViewT string

const (
	// ViewScreen renders the screen of the route.
	ViewScreen ViewT = "screen"

	// ViewConnectRequired renders the connect wallet placeholder.
	ViewConnectRequired ViewT = "connect-required"

	// ViewConnectPrompt renders the connect wallet prompt.
	ViewConnectPrompt ViewT = "connect-prompt"

	// ViewTemporaryProject renders a temporary project.
	ViewTemporaryProject ViewT = "temporary-project"

	// ViewCatalogProject renders a catalog project.
	ViewCatalogProject ViewT = "catalog-project"
)

// View is the resolved view of a route.
type View struct {
	Type  ViewT `json:"type"`
	Route Route `json:"route"`
}

// Wallet is a connected wallet.
type Wallet struct {
	Address          string `json:"address"`
	Balance          string `json:"balance"`
	SecondaryBalance string `json:"secondarybalance"`
	Network          string `json:"network"`
	Kind             string `json:"kind"`
}

// Connection contains the details of the wallet connection.
type Connection struct {
	Kind        string `json:"kind"`
	ConnectedAt int64  `json:"connectedat"`
	SessionHash string `json:"sessionhash"`
}

// Session requests the state of the session.
type Session struct{}

// SessionReply is the reply to the Session command. Wallet and Connection
// are only set while a wallet is connected.
type SessionReply struct {
	Wallet                     *Wallet     `json:"wallet,omitempty"`
	Connection                 *Connection `json:"connection,omitempty"`
	Guest                      bool        `json:"guest"`
	ShowWalletSelector         bool        `json:"showwalletselector"`
	ShowConnectionConfirmation bool        `json:"showconnectionconfirmation"`
	ProofStatus                string      `json:"proofstatus"`
	Proof                      string      `json:"proof,omitempty"`
	ProofError                 string      `json:"prooferror,omitempty"`
	Votes                      int         `json:"votes"`
	Projects                   int         `json:"projects"`
	View                       View        `json:"view"`
}

// Connect connects a wallet of the provided kind.
type Connect struct {
	Kind string `json:"kind"`
}

// ConnectReply is the reply to the Connect command.
type ConnectReply struct {
	Wallet     Wallet     `json:"wallet"`
	Connection Connection `json:"connection"`
	View       View       `json:"view"`
}

// Disconnect disconnects the wallet. The votes and temporary projects of
// the session are cleared.
type Disconnect struct{}

// DisconnectReply is the reply to the Disconnect command.
type DisconnectReply struct {
	View View `json:"view"`
}

// Guest enters guest mode.
type Guest struct{}

// GuestReply is the reply to the Guest command.
type GuestReply struct {
	View View `json:"view"`
}

// WalletSelector shows or hides the wallet selector.
type WalletSelector struct {
	Show bool `json:"show"`
}

// WalletSelectorReply is the reply to the WalletSelector command.
type WalletSelectorReply struct {
	Show bool `json:"show"`
	View View `json:"view"`
}

// Confirmation dismisses the connection confirmation.
type Confirmation struct{}

// ConfirmationReply is the reply to the Confirmation command.
type ConfirmationReply struct {
	View View `json:"view"`
}

// Results contains the vote breakdown of a proposal.
type Results struct {
	Yes     uint64 `json:"yes"`
	No      uint64 `json:"no"`
	Abstain uint64 `json:"abstain"`
}

// Proposal is a governance proposal.
type Proposal struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Creator           string            `json:"creator"`
	CreatedAt         int64             `json:"createdat"`
	Deadline          int64             `json:"deadline"`
	Status            string            `json:"status"`
	Phase             string            `json:"phase,omitempty"`
	VoteCount         uint64            `json:"votecount"`
	ParticipationRate float64           `json:"participationrate"`
	EligibleVoters    uint64            `json:"eligiblevoters,omitempty"`
	RequiredTokens    map[string]string `json:"requiredtokens"`
	TokenType         string            `json:"tokentype"`
	Threshold         float64           `json:"threshold"`
	Results           *Results          `json:"results,omitempty"`
}

// Proposals requests the proposals that match the filter. Empty fields
// match all proposals. Guest sessions only receive closed proposals.
//
// This is a GET request; the fields are query params.
type Proposals struct {
	Status    string `schema:"status"`
	TokenType string `schema:"tokentype"`
}

// ProposalsReply is the reply to the Proposals command.
type ProposalsReply struct {
	Proposals []Proposal `json:"proposals"`
}

// ProposalDetailsReply is the reply to the ProposalDetails command.
type ProposalDetailsReply struct {
	Proposal Proposal `json:"proposal"`
}

// NewProposal creates a proposal. Creator defaults to the connected wallet.
type NewProposal struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Creator        string            `json:"creator,omitempty"`
	Deadline       int64             `json:"deadline"`
	RequiredTokens map[string]string `json:"requiredtokens,omitempty"`
	TokenType      string            `json:"tokentype"`
	Threshold      float64           `json:"threshold"`
	EligibleVoters uint64            `json:"eligiblevoters,omitempty"`
}

// NewProposalReply is the reply to the NewProposal command.
type NewProposalReply struct {
	ID   string `json:"id"`
	View View   `json:"view"`
}

// GenerateProof generates a proof for the choice of the connected wallet.
type GenerateProof struct {
	Choice string `json:"choice"`
}

// GenerateProofReply is the reply to the GenerateProof command.
type GenerateProofReply struct {
	Proof       string `json:"proof"`
	ProofStatus string `json:"proofstatus"`
	View        View   `json:"view"`
}

// Vote is a committed vote.
type Vote struct {
	ProposalID  string `json:"proposalid"`
	Voter       string `json:"voter"`
	Choice      string `json:"choice"`
	Commitment  string `json:"commitment"`
	Revealed    bool   `json:"revealed"`
	Timestamp   int64  `json:"timestamp"`
	ZKProof     string `json:"zkproof"`
	TokenAmount string `json:"tokenamount"`
	TokenType   string `json:"tokentype"`
}

// CastVote commits a vote of the connected wallet. The secret is required
// to reveal the vote and is never stored.
type CastVote struct {
	ProposalID string `json:"proposalid"`
	Choice     string `json:"choice"`
	Secret     string `json:"secret"`
}

// CastVoteReply is the reply to the CastVote command.
type CastVoteReply struct {
	Vote Vote `json:"vote"`
	View View `json:"view"`
}

// RevealVote reveals a committed vote of the connected wallet. The choice
// and secret must match the commitment.
type RevealVote struct {
	ProposalID string `json:"proposalid"`
	Choice     string `json:"choice"`
	Secret     string `json:"secret"`
}

// RevealVoteReply is the reply to the RevealVote command.
type RevealVoteReply struct {
	View View `json:"view"`
}

// VoteDetailsReply is the reply to the VoteDetails command. Vote is only
// set when the connected wallet voted on the proposal.
type VoteDetailsReply struct {
	HasVoted bool  `json:"hasvoted"`
	Vote     *Vote `json:"vote,omitempty"`
}

// SocialLinks contains the social links of a project.
type SocialLinks struct {
	Website string `json:"website,omitempty"`
	Twitter string `json:"twitter,omitempty"`
	Discord string `json:"discord,omitempty"`
	GitHub  string `json:"github,omitempty"`
}

// TemporaryProject is a project that was created during the session.
type TemporaryProject struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Type            string       `json:"type"`
	Category        string       `json:"category"`
	Creator         string       `json:"creator"`
	CreatedAt       int64        `json:"createdat"`
	MemberCount     uint64       `json:"membercount"`
	ProposalCount   uint64       `json:"proposalcount"`
	ActiveVotes     uint64       `json:"activevotes"`
	GovernanceToken string       `json:"governancetoken,omitempty"`
	Social          *SocialLinks `json:"social,omitempty"`
	HasDetailedInfo bool         `json:"hasdetailedinfo"`
}

// CatalogProject is a project of the community catalog.
type CatalogProject struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Type            string      `json:"type"`
	Category        string      `json:"category"`
	MemberCount     uint64      `json:"membercount"`
	ProposalCount   uint64      `json:"proposalcount"`
	ActiveVotes     uint64      `json:"activevotes"`
	GovernanceToken string      `json:"governancetoken"`
	Treasury        string      `json:"treasury"`
	Social          SocialLinks `json:"social"`
}

// ProjectsReply is the reply to the Projects command. Temporary projects
// are listed newest first.
type ProjectsReply struct {
	Temporary []TemporaryProject `json:"temporary"`
	Catalog   []CatalogProject   `json:"catalog"`
}

// NewProject creates a temporary project. Creator defaults to the
// connected wallet.
type NewProject struct {
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Type            string       `json:"type"`
	Category        string       `json:"category"`
	Creator         string       `json:"creator,omitempty"`
	GovernanceToken string       `json:"governancetoken,omitempty"`
	Social          *SocialLinks `json:"social,omitempty"`
}

// NewProjectReply is the reply to the NewProject command.
type NewProjectReply struct {
	ID   string `json:"id"`
	View View   `json:"view"`
}

// Navigate navigates to an application path.
type Navigate struct {
	Path string `json:"path"`
}

// NavigateReply is the reply to the Navigate command.
type NavigateReply struct {
	View View `json:"view"`
}
