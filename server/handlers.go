// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	v1 "github.com/privacyvote/daogov/api/v1"
	"github.com/privacyvote/daogov/export"
	"github.com/privacyvote/daogov/logger"
	"github.com/privacyvote/daogov/mockdata"
	"github.com/privacyvote/daogov/nav"
	"github.com/privacyvote/daogov/sessions"
	"github.com/privacyvote/daogov/store"
	"github.com/privacyvote/daogov/util"
	"github.com/privacyvote/daogov/wallet"
)

// handleNotFound handles all invalid routes and returns a 404 to the client.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	// Log incoming connection
	log.Debugf("Invalid route: %v %v %v %v",
		util.RemoteAddr(r), r.Method, r.URL, r.Proto)

	// Trace incoming request
	log.Tracef("%v", logger.NewLogClosure(func() string {
		trace, err := httputil.DumpRequest(r, true)
		if err != nil {
			trace = []byte(fmt.Sprintf("handleNotFound: DumpRequest %v", err))
		}
		return string(trace)
	}))

	util.RespondWithJSON(w, http.StatusNotFound, nil)
}

// handleVersion is the request handler for the http v1 RouteVersion.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleVersion")

	// Set the CSRF header. This is the only route
	// that sets the CSRF header.
	w.Header().Set(v1.CSRFTokenHeader, csrf.Token(r))

	vr := v1.VersionReply{
		BuildVersion: s.cfg.BuildVersion,
		APIVersion:   v1.APIVersion,
	}

	respondWithOK(w, vr)
}

// handlePolicy is the request handler for the http v1 RoutePolicy.
func (s *Server) handlePolicy(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handlePolicy")

	kinds := wallet.Kinds()
	walletKinds := make([]string, 0, len(kinds))
	for _, k := range kinds {
		walletKinds = append(walletKinds, string(k))
	}
	cs := store.Categories()
	categories := make([]string, 0, len(cs))
	for _, c := range cs {
		categories = append(categories, string(c))
	}
	ss := nav.Screens()
	screens := make([]string, 0, len(ss))
	for _, sc := range ss {
		screens = append(screens, string(sc))
	}

	pr := v1.PolicyReply{
		SessionMaxAge:  s.cfg.SessionMaxAge,
		SimulatedDelay: s.cfg.SimulatedDelay.Milliseconds(),
		OpTimeout:      int64(s.cfg.OpTimeout.Seconds()),
		Network:        string(s.cfg.Network),
		WalletKinds:    walletKinds,
		Categories:     categories,
		Screens:        screens,
	}

	respondWithOK(w, pr)
}

// handleSession is the request handler for the http v1 RouteSession.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleSession")

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	snap := sn.Store.Snapshot()
	log.Tracef("%v", logger.NewLogClosure(func() string {
		return spewConfig.Sdump(snap)
	}))

	respondWithOK(w, convertSession(snap, sn.Nav.View()))
}

// handleConnect is the request handler for the http v1 RouteConnect.
func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleConnect")

	var c v1.Connect
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&c); err != nil {
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid, "")
		return
	}
	kind, err := wallet.ParseKind(c.Kind)
	if err != nil {
		respondWithUserError(w, r, v1.ErrorCodeWalletKindInvalid, c.Kind)
		return
	}

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	err = sn.Store.Connect(r.Context(), kind)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	// The wallet may have been replaced by a concurrent request
	wt := sn.Store.Wallet()
	conn := sn.Store.Connection()
	if wt == nil || conn == nil {
		respondWithError(w, r, store.ErrNotConnected)
		return
	}

	respondWithOK(w, v1.ConnectReply{
		Wallet:     convertWallet(*wt),
		Connection: convertConnection(*conn),
		View:       convertView(sn.Nav.View()),
	})
}

// handleDisconnect is the request handler for the http v1 RouteDisconnect.
func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleDisconnect")

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	sn.Store.Disconnect()

	respondWithOK(w, v1.DisconnectReply{
		View: convertView(sn.Nav.View()),
	})
}

// handleGuest is the request handler for the http v1 RouteGuest.
func (s *Server) handleGuest(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleGuest")

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	sn.Store.EnterGuestMode()

	respondWithOK(w, v1.GuestReply{
		View: convertView(sn.Nav.View()),
	})
}

// handleWalletSelector is the request handler for the http v1
// RouteWalletSelector.
func (s *Server) handleWalletSelector(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleWalletSelector")

	var ws v1.WalletSelector
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&ws); err != nil {
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid, "")
		return
	}

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	if ws.Show {
		sn.Store.ShowWalletSelector()
	} else {
		sn.Store.HideWalletSelector()
	}

	respondWithOK(w, v1.WalletSelectorReply{
		Show: sn.Store.Snapshot().ShowWalletSelector,
		View: convertView(sn.Nav.View()),
	})
}

// handleConfirmation is the request handler for the http v1
// RouteConfirmation.
func (s *Server) handleConfirmation(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleConfirmation")

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	sn.Store.DismissConnectionConfirmation()

	respondWithOK(w, v1.ConfirmationReply{
		View: convertView(sn.Nav.View()),
	})
}

// handleProposals is the request handler for the http v1 RouteProposals.
func (s *Server) handleProposals(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleProposals")

	var p v1.Proposals
	err := util.ParseGetParams(r, &p)
	if err != nil {
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid, "")
		return
	}
	switch store.ProposalStatus(p.Status) {
	case "", store.ProposalStatusPending, store.ProposalStatusActive,
		store.ProposalStatusClosed:
	default:
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid,
			"invalid status "+p.Status)
		return
	}
	switch store.Token(p.TokenType) {
	case "", store.TokenGOV, store.TokenPRIV, store.TokenBoth:
	default:
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid,
			"invalid tokentype "+p.TokenType)
		return
	}

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	ps := sn.Store.Proposals(store.ProposalFilter{
		Status:    store.ProposalStatus(p.Status),
		TokenType: store.Token(p.TokenType),
	})

	respondWithOK(w, v1.ProposalsReply{
		Proposals: convertProposals(ps),
	})
}

// handleProposalDetails is the request handler for the http v1
// RouteProposalDetails.
func (s *Server) handleProposalDetails(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleProposalDetails")

	id := mux.Vars(r)[v1.RouteVarID]

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	p, ok := sn.Store.Proposal(id)
	if !ok {
		respondWithUserError(w, r, v1.ErrorCodeProposalNotFound, id)
		return
	}

	respondWithOK(w, v1.ProposalDetailsReply{
		Proposal: convertProposal(*p),
	})
}

// handleNewProposal is the request handler for the http v1
// RouteNewProposal.
func (s *Server) handleNewProposal(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleNewProposal")

	var np v1.NewProposal
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&np); err != nil {
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid, "")
		return
	}
	in, err := convertProposalInput(np)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	if gated(w, r, sn, nav.CreateProposal{}) {
		return
	}
	id, err := sn.Store.CreateProposal(*in)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	respondWithOK(w, v1.NewProposalReply{
		ID:   id,
		View: convertView(sn.Nav.View()),
	})
}

// handleGenerateProof is the request handler for the http v1
// RouteGenerateProof.
func (s *Server) handleGenerateProof(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleGenerateProof")

	var gp v1.GenerateProof
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&gp); err != nil {
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid, "")
		return
	}

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	proof, err := sn.Store.GenerateProof(r.Context(), store.Choice(gp.Choice))
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	respondWithOK(w, v1.GenerateProofReply{
		Proof:       proof,
		ProofStatus: string(store.ProofStatusSuccess),
		View:        convertView(sn.Nav.View()),
	})
}

// handleCastVote is the request handler for the http v1 RouteCastVote.
func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleCastVote")

	var cv v1.CastVote
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&cv); err != nil {
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid, "")
		return
	}

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	v, err := sn.Store.SubmitVote(r.Context(), cv.ProposalID,
		store.Choice(cv.Choice), cv.Secret)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	respondWithOK(w, v1.CastVoteReply{
		Vote: convertVote(*v),
		View: convertView(sn.Nav.View()),
	})
}

// handleRevealVote is the request handler for the http v1 RouteRevealVote.
func (s *Server) handleRevealVote(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleRevealVote")

	var rv v1.RevealVote
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&rv); err != nil {
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid, "")
		return
	}

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	err = sn.Store.RevealVote(r.Context(), rv.ProposalID,
		store.Choice(rv.Choice), rv.Secret)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	respondWithOK(w, v1.RevealVoteReply{
		View: convertView(sn.Nav.View()),
	})
}

// handleVoteDetails is the request handler for the http v1
// RouteVoteDetails.
func (s *Server) handleVoteDetails(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleVoteDetails")

	proposalID := mux.Vars(r)[v1.RouteVarID]

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	var vdr v1.VoteDetailsReply
	v, ok := sn.Store.UserVote(proposalID)
	if ok {
		cv := convertVote(*v)
		vdr.HasVoted = true
		vdr.Vote = &cv
	}

	respondWithOK(w, vdr)
}

// handleProjects is the request handler for the http v1 RouteProjects.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleProjects")

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	tps := sn.Store.TemporaryProjects()
	temporary := make([]v1.TemporaryProject, 0, len(tps))
	for _, p := range tps {
		temporary = append(temporary, convertTemporaryProject(p))
	}
	cps := mockdata.Projects()
	catalog := make([]v1.CatalogProject, 0, len(cps))
	for _, p := range cps {
		catalog = append(catalog, convertCatalogProject(p))
	}

	respondWithOK(w, v1.ProjectsReply{
		Temporary: temporary,
		Catalog:   catalog,
	})
}

// handleNewProject is the request handler for the http v1 RouteNewProject.
func (s *Server) handleNewProject(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleNewProject")

	var np v1.NewProject
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&np); err != nil {
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid, "")
		return
	}

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	if gated(w, r, sn, nav.CreateProject{}) {
		return
	}
	id, err := sn.Store.CreateProject(convertProjectInput(np))
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	respondWithOK(w, v1.NewProjectReply{
		ID:   id,
		View: convertView(sn.Nav.View()),
	})
}

// handleNavigate is the request handler for the http v1 RouteNavigate.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleNavigate")

	var n v1.Navigate
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&n); err != nil {
		respondWithUserError(w, r, v1.ErrorCodeInputInvalid, "")
		return
	}
	route, err := nav.ParsePath(n.Path)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	sn, err := s.sessions.Get(w, r)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithOK(w, v1.NavigateReply{
		View: convertView(sn.Nav.Navigate(route)),
	})
}

// handleHistory is the request handler for the http v1 RouteHistory.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	log.Tracef("handleHistory")

	b, err := export.HistoryCSV(mockdata.History())
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	err = util.RespondWithAttachment(w, export.ContentTypeCSV,
		export.HistoryFilename, b)
	if err != nil {
		log.Errorf("handleHistory: write: %v", err)
	}
}

// respondWithOK responses to the client request with a 200 http status code
// and the JSON encoded body.
func respondWithOK(w http.ResponseWriter, body interface{}) {
	util.RespondWithJSON(w, http.StatusOK, body)
}

// gated responds with a user error and returns true when the session may not
// use the screen that the route names.
func gated(w http.ResponseWriter, r *http.Request, sn *sessions.Session, route nav.Route) bool {
	if nav.Resolve(route, sn.Store).Kind != nav.ViewConnectRequired {
		return false
	}
	respondWithUserError(w, r, v1.ErrorCodeConnectRequired,
		string(route.Screen()))
	return true
}

// respondWithError responds with a user error when the error was caused by
// the user and with an internal error otherwise.
func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	var ue v1.UserErrorReply
	if errors.As(err, &ue) {
		respondWithUserError(w, r, ue.ErrorCode, ue.ErrorContext)
		return
	}
	code, errContext, ok := convertError(err)
	if ok {
		respondWithUserError(w, r, code, errContext)
		return
	}
	respondWithInternalError(w, r, err)
}

// respondWithUserError responds to the client request with a 400 http status
// code and a JSON encoded v1 UserErrorReply in the response body.
func respondWithUserError(w http.ResponseWriter, r *http.Request, errCode v1.ErrorCodeT, errContext string) {
	m := fmt.Sprintf("%v User error: %v %v",
		util.RemoteAddr(r), errCode, v1.ErrorCodes[errCode])
	if errContext != "" {
		m += fmt.Sprintf(" - %v", errContext)
	}
	log.Infof(m)

	util.RespondWithJSON(w, http.StatusBadRequest,
		v1.UserErrorReply{
			ErrorCode:    errCode,
			ErrorContext: errContext,
		})
}

// respondWithInternalError responds to the client request with a 500 http
// status code and a JSON encoded v1 ServerErrorReply in the response body.
func respondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	// Check if the client dropped the connection. There
	// is no need to send a response if the client dropped
	// the connection.
	if r.Context().Err() != nil && util.IsContextErr(err) {
		log.Infof("%v %v %v %v client aborted connection",
			util.RemoteAddr(r), r.Method, r.URL, r.Proto)
		return
	}

	// Log an internal server error
	t := time.Now().Unix()
	e := fmt.Sprintf("%v %v %v %v Internal error %v: %v",
		util.RemoteAddr(r), r.Method, r.URL, r.Proto, t, err)

	// If this is a pkg/errors error then we can pull the
	// stack trace out of the error, otherwise, we use the
	// stack trace of this function invocation.
	stack, ok := util.StackTrace(err)
	if ok {
		e += fmt.Sprintf("\nInternal error stacktrace (NOT A PANIC): %v", stack)
	}

	log.Error(e)

	util.RespondWithJSON(w, http.StatusInternalServerError,
		v1.ServerErrorReply{
			ErrorCode: t,
		})
}
