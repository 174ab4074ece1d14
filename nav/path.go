// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nav

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

// ErrUnknownPath is returned when a path does not map onto a screen.
var ErrUnknownPath = errors.New("unknown path")

const (
	varProposalID = "proposalid"
	varProjectID  = "projectid"
)

// paths maps the application paths onto screens. Order matters: the fixed
// paths must be registered before the paths that carry an ID.
var paths = []struct {
	screen Screen
	tmpl   string
}{
	{ScreenHomepage, "/"},
	{ScreenDashboard, "/dashboard"},
	{ScreenWalletManagement, "/wallet"},
	{ScreenDocuments, "/documents"},
	{ScreenActivities, "/activities"},
	{ScreenSettings, "/settings"},
	{ScreenProposalList, "/proposals"},
	{ScreenCreateProposal, "/proposals/new"},
	{ScreenProposalDetails, "/proposals/{" + varProposalID + "}"},
	{ScreenVoting, "/proposals/{" + varProposalID + "}/vote"},
	{ScreenResults, "/proposals/{" + varProposalID + "}/results"},
	{ScreenProjectsCommunity, "/projects"},
	{ScreenCreateProject, "/projects/new"},
	{ScreenProjectDetails, "/projects/{" + varProjectID + "}"},
}

// router only matches and builds paths. It never serves requests.
var router = newPathRouter()

func newPathRouter() *mux.Router {
	r := mux.NewRouter().UseEncodedPath()
	for _, p := range paths {
		r.NewRoute().Path(p.tmpl).Name(string(p.screen))
	}
	return r
}

// ParsePath returns the route of an application path. A query string,
// fragment or trailing slash is ignored. IDs in the path are unescaped.
func ParsePath(path string) (Route, error) {
	u, err := url.Parse(path)
	if err != nil || u.IsAbs() || u.Host != "" {
		return nil, ErrUnknownPath
	}
	escaped := u.EscapedPath()
	if escaped != "/" {
		escaped = strings.TrimSuffix(escaped, "/")
	}
	if escaped == "" {
		escaped = "/"
	}
	unescaped, err := url.PathUnescape(escaped)
	if err != nil {
		return nil, ErrUnknownPath
	}

	req := &http.Request{
		Method: http.MethodGet,
		URL:    &url.URL{Path: unescaped, RawPath: escaped},
	}
	var match mux.RouteMatch
	if !router.Match(req, &match) || match.MatchErr != nil {
		return nil, ErrUnknownPath
	}

	proposalID, err := url.PathUnescape(match.Vars[varProposalID])
	if err != nil {
		return nil, ErrUnknownPath
	}
	projectID, err := url.PathUnescape(match.Vars[varProjectID])
	if err != nil {
		return nil, ErrUnknownPath
	}

	switch Screen(match.Route.GetName()) {
	case ScreenHomepage:
		return Homepage{}, nil
	case ScreenDashboard:
		return Dashboard{}, nil
	case ScreenWalletManagement:
		return WalletManagement{}, nil
	case ScreenDocuments:
		return Documents{}, nil
	case ScreenActivities:
		return Activities{}, nil
	case ScreenSettings:
		return Settings{}, nil
	case ScreenProposalList:
		return ProposalList{}, nil
	case ScreenCreateProposal:
		return CreateProposal{}, nil
	case ScreenProposalDetails:
		return ProposalDetails{ProposalID: proposalID}, nil
	case ScreenVoting:
		return Voting{ProposalID: proposalID}, nil
	case ScreenResults:
		return Results{ProposalID: proposalID}, nil
	case ScreenProjectsCommunity:
		return ProjectsCommunity{}, nil
	case ScreenCreateProject:
		return CreateProject{}, nil
	case ScreenProjectDetails:
		return ProjectDetails{ProjectID: projectID}, nil
	}
	return nil, ErrUnknownPath
}

// PathFor returns the application path of a route. IDs are path escaped.
// An empty string is returned for routes with an empty ID.
func PathFor(r Route) string {
	if r == nil {
		return ""
	}
	route := router.Get(string(r.Screen()))
	if route == nil {
		return ""
	}

	var pairs []string
	switch r.Screen() {
	case ScreenProposalDetails, ScreenVoting, ScreenResults:
		id := ProposalID(r)
		if id == "" {
			return ""
		}
		pairs = []string{varProposalID, url.PathEscape(id)}
	case ScreenProjectDetails:
		id := ProjectID(r)
		if id == "" {
			return ""
		}
		pairs = []string{varProjectID, url.PathEscape(id)}
	}
	u, err := route.URLPath(pairs...)
	if err != nil {
		log.Errorf("PathFor %v: %v", r.Screen(), err)
		return ""
	}
	return u.Path
}
