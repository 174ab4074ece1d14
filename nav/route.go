// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nav

// Screen represents a screen of the application.
type Screen string

const (
	ScreenInvalid           Screen = ""
	ScreenHomepage          Screen = "homepage"
	ScreenDashboard         Screen = "dashboard"
	ScreenCreateProposal    Screen = "create-proposal"
	ScreenProposalList      Screen = "proposal-list"
	ScreenProposalDetails   Screen = "proposal-details"
	ScreenVoting            Screen = "voting"
	ScreenResults           Screen = "results"
	ScreenWalletManagement  Screen = "wallet-management"
	ScreenDocuments         Screen = "documents"
	ScreenActivities        Screen = "activities"
	ScreenSettings          Screen = "settings"
	ScreenProjectsCommunity Screen = "projects-community"
	ScreenProjectDetails    Screen = "project-details"
	ScreenCreateProject     Screen = "create-project"
)

// Screens returns all valid screens.
func Screens() []Screen {
	return []Screen{
		ScreenHomepage,
		ScreenDashboard,
		ScreenCreateProposal,
		ScreenProposalList,
		ScreenProposalDetails,
		ScreenVoting,
		ScreenResults,
		ScreenWalletManagement,
		ScreenDocuments,
		ScreenActivities,
		ScreenSettings,
		ScreenProjectsCommunity,
		ScreenProjectDetails,
		ScreenCreateProject,
	}
}

// Route is a navigation target. Every screen has exactly one Route type
// that carries the parameters of that screen. The set of Route types is
// closed.
type Route interface {
	Screen() Screen
	route()
}

type (
	Homepage          struct{}
	Dashboard         struct{}
	CreateProposal    struct{}
	ProposalList      struct{}
	WalletManagement  struct{}
	Documents         struct{}
	Activities        struct{}
	Settings          struct{}
	ProjectsCommunity struct{}
	CreateProject     struct{}

	ProposalDetails struct{ ProposalID string }
	Voting          struct{ ProposalID string }
	Results         struct{ ProposalID string }

	// ProjectDetails routes to either a catalog project or a temporary
	// project depending on the ID prefix.
	ProjectDetails struct{ ProjectID string }
)

func (Homepage) Screen() Screen          { return ScreenHomepage }
func (Dashboard) Screen() Screen         { return ScreenDashboard }
func (CreateProposal) Screen() Screen    { return ScreenCreateProposal }
func (ProposalList) Screen() Screen      { return ScreenProposalList }
func (ProposalDetails) Screen() Screen   { return ScreenProposalDetails }
func (Voting) Screen() Screen            { return ScreenVoting }
func (Results) Screen() Screen           { return ScreenResults }
func (WalletManagement) Screen() Screen  { return ScreenWalletManagement }
func (Documents) Screen() Screen         { return ScreenDocuments }
func (Activities) Screen() Screen        { return ScreenActivities }
func (Settings) Screen() Screen          { return ScreenSettings }
func (ProjectsCommunity) Screen() Screen { return ScreenProjectsCommunity }
func (ProjectDetails) Screen() Screen    { return ScreenProjectDetails }
func (CreateProject) Screen() Screen     { return ScreenCreateProject }

func (Homepage) route()          {}
func (Dashboard) route()         {}
func (CreateProposal) route()    {}
func (ProposalList) route()      {}
func (ProposalDetails) route()   {}
func (Voting) route()            {}
func (Results) route()           {}
func (WalletManagement) route()  {}
func (Documents) route()         {}
func (Activities) route()        {}
func (Settings) route()          {}
func (ProjectsCommunity) route() {}
func (ProjectDetails) route()    {}
func (CreateProject) route()     {}

// ProposalID returns the proposal ID of the route. An empty string is
// returned for routes that do not carry a proposal ID.
func ProposalID(r Route) string {
	switch v := r.(type) {
	case ProposalDetails:
		return v.ProposalID
	case Voting:
		return v.ProposalID
	case Results:
		return v.ProposalID
	}
	return ""
}

// ProjectID returns the project ID of the route. An empty string is
// returned for routes that do not carry a project ID.
func ProjectID(r Route) string {
	if v, ok := r.(ProjectDetails); ok {
		return v.ProjectID
	}
	return ""
}
