// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nav implements the navigation controller of a governance
// session. The controller tracks the current route and resolves it into the
// view that the client renders, enforcing the access rules of the session
// state.
package nav

import (
	"strings"
	"sync"

	"github.com/privacyvote/daogov/events"
	"github.com/privacyvote/daogov/store"
)

// SessionState is the session state that gates navigation.
type SessionState interface {
	IsGuest() bool
	IsConnected() bool
}

// ViewKind describes what the client must render for a route.
type ViewKind string

const (
	// ViewScreen renders the screen of the route.
	ViewScreen ViewKind = "screen"

	// ViewConnectRequired is rendered in place of screens that mutate
	// state while the session is in guest mode.
	ViewConnectRequired ViewKind = "connect-required"

	// ViewConnectPrompt is rendered in place of the dashboard while the
	// session has neither a wallet nor guest mode.
	ViewConnectPrompt ViewKind = "connect-prompt"

	// ViewTemporaryProject renders a project created during the session.
	ViewTemporaryProject ViewKind = "temporary-project"

	// ViewCatalogProject renders a project from the project catalog.
	ViewCatalogProject ViewKind = "catalog-project"
)

// View is the resolved view of a route.
type View struct {
	Kind  ViewKind
	Route Route
}

// Controller is the navigation controller of a single session.
type Controller struct {
	sync.Mutex
	state   SessionState
	current Route
}

// NewController returns a new Controller that starts at the homepage.
func NewController(state SessionState) *Controller {
	return &Controller{
		state:   state,
		current: Homepage{},
	}
}

// Resolve returns the view of a route for the provided session state. IDs
// are not checked for existence; the target screen renders its own not
// found fallback.
func Resolve(r Route, state SessionState) View {
	guest := state.IsGuest()
	switch v := r.(type) {
	case CreateProposal, Voting, CreateProject:
		if guest {
			return View{Kind: ViewConnectRequired, Route: r}
		}
	case Dashboard:
		if !guest && !state.IsConnected() {
			return View{Kind: ViewConnectPrompt, Route: r}
		}
	case ProjectDetails:
		if strings.HasPrefix(v.ProjectID, store.TemporaryProjectPrefix) {
			return View{Kind: ViewTemporaryProject, Route: r}
		}
		return View{Kind: ViewCatalogProject, Route: r}
	}
	return View{Kind: ViewScreen, Route: r}
}

// Navigate makes the route the current route and returns its view. The
// requested route is kept as the current route even when it is gated, so
// the view follows the session state once it changes.
func (c *Controller) Navigate(r Route) View {
	if r == nil {
		r = Homepage{}
	}

	c.Lock()
	c.current = r
	c.Unlock()

	log.Debugf("Navigate: %v", r.Screen())

	return Resolve(r, c.state)
}

// Current returns the current route.
func (c *Controller) Current() Route {
	c.Lock()
	defer c.Unlock()

	return c.current
}

// View returns the view of the current route for the current session
// state.
func (c *Controller) View() View {
	return Resolve(c.Current(), c.state)
}

// Subscribe registers the follow-up transitions of the store events. The
// session state is expected to be the store that emits on the manager.
func (c *Controller) Subscribe(em *events.Manager) {
	em.Register(store.EventConnected, func(interface{}) {
		c.Navigate(Dashboard{})
	})
	em.Register(store.EventDisconnected, func(interface{}) {
		c.Navigate(Homepage{})
	})
	em.Register(store.EventGuestEntered, func(interface{}) {
		c.Navigate(Dashboard{})
	})
	em.Register(store.EventProposalCreated, func(interface{}) {
		c.Navigate(Dashboard{})
	})
	em.Register(store.EventProjectCreated, func(data interface{}) {
		id, ok := data.(string)
		if !ok {
			log.Errorf("%v: invalid event data %T", store.EventProjectCreated,
				data)
			return
		}
		c.Navigate(ProjectDetails{ProjectID: id})
	})
	em.Register(store.EventVoteSubmitted, func(data interface{}) {
		id, ok := data.(string)
		if !ok {
			log.Errorf("%v: invalid event data %T", store.EventVoteSubmitted,
				data)
			return
		}
		c.Navigate(ProposalDetails{ProposalID: id})
	})
	em.Register(store.EventVoteRevealed, func(data interface{}) {
		id, ok := data.(string)
		if !ok {
			log.Errorf("%v: invalid event data %T", store.EventVoteRevealed,
				data)
			return
		}
		c.Navigate(Results{ProposalID: id})
	})
}
