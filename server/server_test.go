// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	v1 "github.com/privacyvote/daogov/api/v1"
	"github.com/privacyvote/daogov/export"
	"github.com/privacyvote/daogov/mockdata"
	"github.com/privacyvote/daogov/nav"
	"github.com/privacyvote/daogov/store"
	"github.com/privacyvote/daogov/unittest"
	"github.com/privacyvote/daogov/wallet"
	"github.com/privacyvote/daogov/zkproof"
)

// newTestServer returns a server whose sessions are seeded with the mock
// proposals and use zero delays.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	cfg := &Config{
		BuildVersion: "test",
		HTTPSCert:    filepath.Join(dir, "https.cert"),
		HTTPSKey:     filepath.Join(dir, "https.key"),
		CSRFKey:      filepath.Join(dir, "csrf.key"),
		SessionKey:   filepath.Join(dir, "session.key"),
		OpTimeout:    5 * time.Second,
	}
	newStore := func() (*store.Store, error) {
		return store.New(store.Opts{
			Providers: wallet.SimulatedProviders(wallet.NetworkMainnet, 0),
			Prover:    zkproof.NewSimulated(0),
			Proposals: mockdata.Proposals(time.Now()),
		})
	}
	s, err := New(cfg, newStore)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// testClient is a browser stand-in. It keeps the cookies that the server
// sets and sends the CSRF header token on every request.
type testClient struct {
	t       *testing.T
	s       *Server
	csrf    string
	cookies map[string]*http.Cookie
}

func newTestClient(t *testing.T, s *Server) *testClient {
	t.Helper()

	c := &testClient{
		t:       t,
		s:       s,
		cookies: make(map[string]*http.Cookie),
	}
	rr := c.do(http.MethodGet, v1.RouteVersion, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("version: got status %v", rr.Code)
	}
	c.csrf = rr.Header().Get(v1.CSRFTokenHeader)
	if c.csrf == "" {
		t.Fatal("version: no csrf token")
	}
	return c
}

func (c *testClient) do(method, route string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var b []byte
	if body != nil {
		var err error
		b, err = json.Marshal(body)
		if err != nil {
			c.t.Fatal(err)
		}
	}
	r := httptest.NewRequest(method, v1.APIRoute+route, bytes.NewReader(b))
	for _, ck := range c.cookies {
		r.AddCookie(ck)
	}
	if c.csrf != "" {
		r.Header.Set(v1.CSRFTokenHeader, c.csrf)
	}

	rr := httptest.NewRecorder()
	c.s.ServeHTTP(rr, r)

	for _, ck := range rr.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return rr
}

// call sends a request and decodes a 200 reply into reply.
func (c *testClient) call(method, route string, body, reply interface{}) {
	c.t.Helper()

	rr := c.do(method, route, body)
	if rr.Code != http.StatusOK {
		c.t.Fatalf("%v %v: got status %v: %s", method, route, rr.Code,
			rr.Body.Bytes())
	}
	if reply == nil {
		return
	}
	err := json.Unmarshal(rr.Body.Bytes(), reply)
	if err != nil {
		c.t.Fatal(err)
	}
}

// userError sends a request that must fail with a user error and returns
// its error code.
func (c *testClient) userError(method, route string, body interface{}) v1.ErrorCodeT {
	c.t.Helper()

	rr := c.do(method, route, body)
	if rr.Code != http.StatusBadRequest {
		c.t.Fatalf("%v %v: got status %v, want %v: %s", method, route,
			rr.Code, http.StatusBadRequest, rr.Body.Bytes())
	}
	var ue v1.UserErrorReply
	err := json.Unmarshal(rr.Body.Bytes(), &ue)
	if err != nil {
		c.t.Fatal(err)
	}
	return ue.ErrorCode
}

func (c *testClient) connect() v1.ConnectReply {
	c.t.Helper()

	var cr v1.ConnectReply
	c.call(http.MethodPost, v1.RouteConnect,
		v1.Connect{Kind: string(wallet.KindMetaMask)}, &cr)
	return cr
}

func wantView(t *testing.T, got v1.View, vt v1.ViewT, r nav.Route) {
	t.Helper()

	want := v1.View{
		Type:  vt,
		Route: convertRoute(r),
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("view: %v", diff)
	}
}

func TestHandleVersion(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	var vr v1.VersionReply
	c.call(http.MethodGet, v1.RouteVersion, nil, &vr)
	if vr.APIVersion != v1.APIVersion || vr.BuildVersion != "test" {
		t.Errorf("got %+v", vr)
	}
}

func TestCSRFProtection(t *testing.T) {
	s := newTestServer(t)

	// Without a token
	c := &testClient{t: t, s: s, cookies: make(map[string]*http.Cookie)}
	rr := c.do(http.MethodPost, v1.RouteGuest, nil)
	if rr.Code != http.StatusForbidden {
		t.Errorf("got status %v, want %v", rr.Code, http.StatusForbidden)
	}

	// With a token
	c = newTestClient(t, s)
	var gr v1.GuestReply
	c.call(http.MethodPost, v1.RouteGuest, nil, &gr)
	wantView(t, gr.View, v1.ViewScreen, nav.Dashboard{})
}

func TestHandleNotFound(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	rr := c.do(http.MethodGet, "/nope", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("got status %v, want %v", rr.Code, http.StatusNotFound)
	}
}

func TestHandlePolicy(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	var pr v1.PolicyReply
	c.call(http.MethodGet, v1.RoutePolicy, nil, &pr)
	if len(pr.WalletKinds) != len(wallet.Kinds()) {
		t.Errorf("got %v wallet kinds", len(pr.WalletKinds))
	}
	if len(pr.Screens) != len(nav.Screens()) {
		t.Errorf("got %v screens", len(pr.Screens))
	}
	if pr.Network != string(wallet.NetworkMainnet) {
		t.Errorf("got network %v", pr.Network)
	}
	if pr.OpTimeout != 5 {
		t.Errorf("got op timeout %v", pr.OpTimeout)
	}
}

func TestConnectFlow(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	// A fresh session starts on the homepage
	var sr v1.SessionReply
	c.call(http.MethodGet, v1.RouteSession, nil, &sr)
	if sr.Wallet != nil || sr.Guest {
		t.Fatalf("unexpected session %+v", sr)
	}
	wantView(t, sr.View, v1.ViewScreen, nav.Homepage{})

	// Wallet selector
	var wsr v1.WalletSelectorReply
	c.call(http.MethodPost, v1.RouteWalletSelector,
		v1.WalletSelector{Show: true}, &wsr)
	if !wsr.Show {
		t.Errorf("wallet selector not shown")
	}

	// Invalid kind
	code := c.userError(http.MethodPost, v1.RouteConnect,
		v1.Connect{Kind: "ledger"})
	if code != v1.ErrorCodeWalletKindInvalid {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodeWalletKindInvalid)
	}

	// Connect
	cr := c.connect()
	if cr.Wallet.Kind != string(wallet.KindMetaMask) {
		t.Errorf("got wallet kind %v", cr.Wallet.Kind)
	}
	if cr.Wallet.Balance != "15420" || cr.Wallet.SecondaryBalance != "2314" {
		t.Errorf("got balances %v %v", cr.Wallet.Balance,
			cr.Wallet.SecondaryBalance)
	}
	if cr.Connection.SessionHash == "" {
		t.Errorf("missing session hash")
	}
	wantView(t, cr.View, v1.ViewScreen, nav.Dashboard{})

	c.call(http.MethodGet, v1.RouteSession, nil, &sr)
	if sr.Wallet == nil || sr.Wallet.Address != cr.Wallet.Address {
		t.Errorf("session wallet %+v, want %+v", sr.Wallet, cr.Wallet)
	}
	if sr.ShowWalletSelector {
		t.Errorf("wallet selector still shown")
	}
	if !sr.ShowConnectionConfirmation {
		t.Errorf("connection confirmation not shown")
	}

	var conf v1.ConfirmationReply
	c.call(http.MethodPost, v1.RouteConfirmation, nil, &conf)
	c.call(http.MethodGet, v1.RouteSession, nil, &sr)
	if sr.ShowConnectionConfirmation {
		t.Errorf("connection confirmation not dismissed")
	}

	// Disconnect
	var dr v1.DisconnectReply
	c.call(http.MethodPost, v1.RouteDisconnect, nil, &dr)
	wantView(t, dr.View, v1.ViewScreen, nav.Homepage{})
	sr = v1.SessionReply{}
	c.call(http.MethodGet, v1.RouteSession, nil, &sr)
	if sr.Wallet != nil || sr.Connection != nil {
		t.Errorf("wallet not cleared: %+v", sr)
	}
}

func TestSessionIsolation(t *testing.T) {
	s := newTestServer(t)
	a := newTestClient(t, s)
	b := newTestClient(t, s)

	a.connect()

	var sr v1.SessionReply
	b.call(http.MethodGet, v1.RouteSession, nil, &sr)
	if sr.Wallet != nil {
		t.Errorf("wallet leaked into another session")
	}
	a.call(http.MethodGet, v1.RouteSession, nil, &sr)
	if sr.Wallet == nil {
		t.Errorf("wallet missing")
	}
}

func TestNavigate(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	// Neither connected nor guest
	var nr v1.NavigateReply
	c.call(http.MethodPost, v1.RouteNavigate,
		v1.Navigate{Path: nav.PathFor(nav.Dashboard{})}, &nr)
	wantView(t, nr.View, v1.ViewConnectPrompt, nav.Dashboard{})

	// Guest gating
	c.call(http.MethodPost, v1.RouteGuest, nil, nil)
	gated := []nav.Route{
		nav.CreateProposal{},
		nav.Voting{ProposalID: "1"},
		nav.CreateProject{},
	}
	for _, r := range gated {
		nr = v1.NavigateReply{}
		c.call(http.MethodPost, v1.RouteNavigate,
			v1.Navigate{Path: nav.PathFor(r)}, &nr)
		wantView(t, nr.View, v1.ViewConnectRequired, r)
	}

	// Ungated route
	r := nav.ProposalDetails{ProposalID: "4"}
	c.call(http.MethodPost, v1.RouteNavigate,
		v1.Navigate{Path: nav.PathFor(r)}, &nr)
	wantView(t, nr.View, v1.ViewScreen, r)

	// Catalog project
	r2 := nav.ProjectDetails{ProjectID: "2"}
	nr = v1.NavigateReply{}
	c.call(http.MethodPost, v1.RouteNavigate,
		v1.Navigate{Path: nav.PathFor(r2)}, &nr)
	wantView(t, nr.View, v1.ViewCatalogProject, r2)

	// Unknown path
	code := c.userError(http.MethodPost, v1.RouteNavigate,
		v1.Navigate{Path: "/nope/nope"})
	if code != v1.ErrorCodePathInvalid {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodePathInvalid)
	}
}

func TestHandleProposals(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	var pr v1.ProposalsReply
	c.call(http.MethodGet, v1.RouteProposals, nil, &pr)
	if len(pr.Proposals) != 5 {
		t.Errorf("got %v proposals, want 5", len(pr.Proposals))
	}
	c.call(http.MethodGet, v1.RouteProposals+"?status=active", nil, &pr)
	if len(pr.Proposals) != 2 {
		t.Errorf("got %v active proposals, want 2", len(pr.Proposals))
	}
	c.call(http.MethodGet, v1.RouteProposals+"?tokentype=priv", nil, &pr)
	if len(pr.Proposals) != 1 || pr.Proposals[0].ID != "3" {
		t.Errorf("got %+v", pr.Proposals)
	}

	code := c.userError(http.MethodGet,
		v1.RouteProposals+"?tokentype=btc", nil)
	if code != v1.ErrorCodeInputInvalid {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodeInputInvalid)
	}

	var pdr v1.ProposalDetailsReply
	c.call(http.MethodGet, "/proposals/4", nil, &pdr)
	if pdr.Proposal.Results == nil || pdr.Proposal.Results.Yes != 1423 {
		t.Errorf("got %+v", pdr.Proposal)
	}
	code = c.userError(http.MethodGet, "/proposals/99", nil)
	if code != v1.ErrorCodeProposalNotFound {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodeProposalNotFound)
	}

	// Guests only see closed proposals
	c.call(http.MethodPost, v1.RouteGuest, nil, nil)
	c.call(http.MethodGet, v1.RouteProposals, nil, &pr)
	for _, p := range pr.Proposals {
		if p.Status != string(store.ProposalStatusClosed) {
			t.Errorf("guest sees %v proposal %v", p.Status, p.ID)
		}
	}
}

func TestHandleNewProposal(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	np := v1.NewProposal{
		Title:          "Fund audits",
		Description:    "Fund two independent audits of the circuits.",
		Deadline:       time.Now().Add(72 * time.Hour).Unix(),
		RequiredTokens: map[string]string{"gov": "10"},
		TokenType:      string(store.TokenGOV),
		Threshold:      51,
	}

	cr := c.connect()

	var npr v1.NewProposalReply
	c.call(http.MethodPost, v1.RouteNewProposal, np, &npr)
	if npr.ID == "" {
		t.Fatal("no proposal id")
	}
	wantView(t, npr.View, v1.ViewScreen, nav.Dashboard{})

	var pdr v1.ProposalDetailsReply
	c.call(http.MethodGet, "/proposals/"+npr.ID, nil, &pdr)
	if pdr.Proposal.Creator != cr.Wallet.Address {
		t.Errorf("got creator %v, want %v", pdr.Proposal.Creator,
			cr.Wallet.Address)
	}
	if pdr.Proposal.RequiredTokens["gov"] != "10" {
		t.Errorf("got required tokens %v", pdr.Proposal.RequiredTokens)
	}

	// Invalid input
	bad := np
	bad.RequiredTokens = map[string]string{"gov": "ten"}
	code := c.userError(http.MethodPost, v1.RouteNewProposal, bad)
	if code != v1.ErrorCodeInputInvalid {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodeInputInvalid)
	}
	bad = np
	bad.Title = ""
	code = c.userError(http.MethodPost, v1.RouteNewProposal, bad)
	if code != v1.ErrorCodeInputInvalid {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodeInputInvalid)
	}
}

func TestVoteFlow(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	cv := v1.CastVote{
		ProposalID: "1",
		Choice:     string(store.ChoiceYes),
		Secret:     "hunter2",
	}
	code := c.userError(http.MethodPost, v1.RouteCastVote, cv)
	if code != v1.ErrorCodeNotConnected {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodeNotConnected)
	}

	c.connect()

	// Standalone proof
	var gpr v1.GenerateProofReply
	c.call(http.MethodPost, v1.RouteGenerateProof,
		v1.GenerateProof{Choice: string(store.ChoiceNo)}, &gpr)
	if gpr.Proof == "" || gpr.ProofStatus != string(store.ProofStatusSuccess) {
		t.Errorf("got %+v", gpr)
	}
	code = c.userError(http.MethodPost, v1.RouteGenerateProof,
		v1.GenerateProof{Choice: "maybe"})
	if code != v1.ErrorCodeInputInvalid {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodeInputInvalid)
	}

	// Cast
	var cvr v1.CastVoteReply
	c.call(http.MethodPost, v1.RouteCastVote, cv, &cvr)
	if cvr.Vote.Commitment == "" || cvr.Vote.ZKProof == "" ||
		cvr.Vote.Revealed {
		t.Errorf("got vote %+v", cvr.Vote)
	}
	wantView(t, cvr.View, v1.ViewScreen, nav.ProposalDetails{ProposalID: "1"})

	var vdr v1.VoteDetailsReply
	c.call(http.MethodGet, "/votes/1", nil, &vdr)
	if !vdr.HasVoted || vdr.Vote == nil {
		t.Fatalf("got %+v", vdr)
	}
	c.call(http.MethodGet, "/votes/2", nil, &vdr)
	if vdr.HasVoted {
		t.Errorf("unexpected vote on proposal 2")
	}

	var pdr v1.ProposalDetailsReply
	c.call(http.MethodGet, "/proposals/1", nil, &pdr)
	if pdr.Proposal.VoteCount != 1248 {
		t.Errorf("got vote count %v, want 1248", pdr.Proposal.VoteCount)
	}

	// Vote errors
	var tests = []struct {
		name string
		vote v1.CastVote
		want v1.ErrorCodeT
	}{
		{"duplicate", cv, v1.ErrorCodeDuplicateVote},
		{
			"closed",
			v1.CastVote{ProposalID: "4", Choice: "no", Secret: "x"},
			v1.ErrorCodeProposalClosed,
		},
		{
			"not found",
			v1.CastVote{ProposalID: "99", Choice: "no", Secret: "x"},
			v1.ErrorCodeProposalNotFound,
		},
		{
			"invalid choice",
			v1.CastVote{ProposalID: "2", Choice: "maybe", Secret: "x"},
			v1.ErrorCodeInputInvalid,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code := c.userError(http.MethodPost, v1.RouteCastVote, tc.vote)
			if code != tc.want {
				t.Errorf("got error %v, want %v", code, tc.want)
			}
		})
	}

	// Reveal
	rv := v1.RevealVote{
		ProposalID: "1",
		Choice:     string(store.ChoiceNo),
		Secret:     cv.Secret,
	}
	code = c.userError(http.MethodPost, v1.RouteRevealVote, rv)
	if code != v1.ErrorCodeRevealMismatch {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodeRevealMismatch)
	}
	rv.ProposalID = "2"
	code = c.userError(http.MethodPost, v1.RouteRevealVote, rv)
	if code != v1.ErrorCodeVoteNotFound {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodeVoteNotFound)
	}

	rv.ProposalID = "1"
	rv.Choice = cv.Choice
	var rvr v1.RevealVoteReply
	c.call(http.MethodPost, v1.RouteRevealVote, rv, &rvr)
	wantView(t, rvr.View, v1.ViewScreen, nav.Results{ProposalID: "1"})

	c.call(http.MethodGet, "/votes/1", nil, &vdr)
	if !vdr.Vote.Revealed {
		t.Errorf("vote not revealed")
	}
}

func TestProjects(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	var pr v1.ProjectsReply
	c.call(http.MethodGet, v1.RouteProjects, nil, &pr)
	if len(pr.Temporary) != 0 || len(pr.Catalog) != len(mockdata.Projects()) {
		t.Errorf("got %v temporary, %v catalog", len(pr.Temporary),
			len(pr.Catalog))
	}

	cr := c.connect()
	np := v1.NewProject{
		Name:        "Mixer Watch",
		Description: "Community audits of mixer deployments.",
		Type:        string(store.ProjectTypePublic),
		Category:    string(store.CategoryInfrastructure),
		Social:      &v1.SocialLinks{Website: "https://mixer.example"},
	}
	var npr v1.NewProjectReply
	c.call(http.MethodPost, v1.RouteNewProject, np, &npr)
	if !strings.HasPrefix(npr.ID, store.TemporaryProjectPrefix) {
		t.Errorf("got id %v", npr.ID)
	}
	wantView(t, npr.View, v1.ViewTemporaryProject,
		nav.ProjectDetails{ProjectID: npr.ID})

	c.call(http.MethodGet, v1.RouteProjects, nil, &pr)
	if len(pr.Temporary) != 1 {
		t.Fatalf("got %v temporary projects", len(pr.Temporary))
	}
	got := pr.Temporary[0]
	if got.Creator != cr.Wallet.Address || got.MemberCount != 1 ||
		got.Social == nil || got.Social.Website != np.Social.Website {
		t.Errorf("got %+v", got)
	}

	np.Category = "cooking"
	code := c.userError(http.MethodPost, v1.RouteNewProject, np)
	if code != v1.ErrorCodeInputInvalid {
		t.Errorf("got error %v, want %v", code, v1.ErrorCodeInputInvalid)
	}
}

func TestGuestWritesRejected(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	c.call(http.MethodPost, v1.RouteGuest, nil, nil)

	np := v1.NewProposal{
		Title:       "Guest proposal",
		Description: "Created without a wallet.",
		Deadline:    time.Now().Add(time.Hour).Unix(),
		TokenType:   string(store.TokenGOV),
		Threshold:   51,
	}
	code := c.userError(http.MethodPost, v1.RouteNewProposal, np)
	if code != v1.ErrorCodeConnectRequired {
		t.Errorf("new proposal: got error %v, want %v", code,
			v1.ErrorCodeConnectRequired)
	}

	pj := v1.NewProject{
		Name:        "Guest project",
		Description: "Created without a wallet.",
		Type:        string(store.ProjectTypePublic),
		Category:    string(store.CategoryInfrastructure),
	}
	code = c.userError(http.MethodPost, v1.RouteNewProject, pj)
	if code != v1.ErrorCodeConnectRequired {
		t.Errorf("new project: got error %v, want %v", code,
			v1.ErrorCodeConnectRequired)
	}

	var pr v1.ProjectsReply
	c.call(http.MethodGet, v1.RouteProjects, nil, &pr)
	if len(pr.Temporary) != 0 {
		t.Errorf("guest created %v temporary projects", len(pr.Temporary))
	}

	// Leaving guest mode lifts the gate
	c.connect()
	var npr v1.NewProposalReply
	c.call(http.MethodPost, v1.RouteNewProposal, np, &npr)
	if npr.ID == "" {
		t.Fatal("no proposal id")
	}
}

func TestHandleHistory(t *testing.T) {
	s := newTestServer(t)
	c := newTestClient(t, s)

	rr := c.do(http.MethodGet, v1.RouteHistory, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %v", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != export.ContentTypeCSV {
		t.Errorf("got content type %v", ct)
	}
	cd := rr.Header().Get("Content-Disposition")
	if !strings.Contains(cd, export.HistoryFilename) {
		t.Errorf("got content disposition %v", cd)
	}
	want, err := export.HistoryCSV(mockdata.History())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rr.Body.Bytes(), want) {
		d := difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(want)),
			B:        difflib.SplitLines(rr.Body.String()),
			FromFile: "want",
			ToFile:   "got",
			Context:  3,
		}
		text, err := difflib.GetUnifiedDiffString(d)
		if err != nil {
			t.Fatal(err)
		}
		t.Errorf("history csv mismatch:\n%v", text)
	}
}

func TestConvertError(t *testing.T) {
	var tests = []struct {
		name   string
		err    error
		want   v1.ErrorCodeT
		isUser bool
	}{
		{
			"validation",
			store.ValidationError{Field: "title", Reason: "empty"},
			v1.ErrorCodeInputInvalid,
			true,
		},
		{
			"wrapped sentinel",
			errors.Wrap(store.ErrDuplicateVote, "submit"),
			v1.ErrorCodeDuplicateVote,
			true,
		},
		{
			"wallet",
			wallet.ErrUserRejected,
			v1.ErrorCodeWalletRejected,
			true,
		},
		{
			"timeout",
			store.ErrTimeout,
			v1.ErrorCodeTimeout,
			true,
		},
		{
			"internal",
			errors.New("disk on fire"),
			v1.ErrorCodeInvalid,
			false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, ok := convertError(tc.err)
			if ok != tc.isUser || code != tc.want {
				t.Errorf("got (%v, %v), want (%v, %v)", code, ok,
					tc.want, tc.isUser)
			}
		})
	}
}

// TestConvertFieldCounts catches fields that are added to a domain type
// without being added to its API type.
func TestConvertFieldCounts(t *testing.T) {
	var tests = []struct {
		domain interface{}
		api    interface{}
	}{
		{wallet.Wallet{}, v1.Wallet{}},
		{store.ConnectionDetails{}, v1.Connection{}},
		{store.Results{}, v1.Results{}},
		{store.Proposal{}, v1.Proposal{}},
		{store.Vote{}, v1.Vote{}},
		{store.SocialLinks{}, v1.SocialLinks{}},
		{store.TemporaryProject{}, v1.TemporaryProject{}},
		{mockdata.CatalogProject{}, v1.CatalogProject{}},
	}
	for _, tc := range tests {
		err := unittest.CompareStructFieldCounts(tc.domain, tc.api)
		if err != nil {
			t.Error(err)
		}
	}
}
