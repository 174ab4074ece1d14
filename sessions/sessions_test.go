// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sessions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/privacyvote/daogov/nav"
	"github.com/privacyvote/daogov/store"
	"github.com/privacyvote/daogov/wallet"
	"github.com/privacyvote/daogov/zkproof"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestManager(t *testing.T, clock *testClock) *Manager {
	t.Helper()

	m, err := New(Opts{
		Key:    []byte("0123456789abcdef0123456789abcdef"),
		MaxAge: 60,
		NewStore: func() (*store.Store, error) {
			return store.New(store.Opts{
				Providers: wallet.SimulatedProviders(wallet.NetworkTestnet, 0),
				Prover:    zkproof.NewSimulated(0),
			})
		},
		Now: clock.Now,
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// get performs a session lookup with the provided cookies and returns the
// session and the cookies that were set by the reply.
func get(t *testing.T, m *Manager, cookies []*http.Cookie) (*Session, []*http.Cookie) {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s, err := m.Get(w, r)
	if err != nil {
		t.Fatal(err)
	}
	return s, w.Result().Cookies()
}

func TestNew(t *testing.T) {
	f := func() (*store.Store, error) { return nil, nil }
	var tests = []struct {
		name string
		opts Opts
	}{
		{"no key", Opts{MaxAge: 1, NewStore: f}},
		{"no max age", Opts{Key: []byte("k"), NewStore: f}},
		{"no store func", Opts{Key: []byte("k"), MaxAge: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.opts); err == nil {
				t.Fatal("got nil error")
			}
		})
	}
}

func TestGet(t *testing.T) {
	clock := &testClock{now: time.Now()}
	m := newTestManager(t, clock)

	s1, cookies := get(t, m, nil)
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("unexpected cookies: %v", cookies)
	}
	c := cookies[0]
	if !c.HttpOnly || c.SameSite != http.SameSiteStrictMode {
		t.Errorf("unexpected cookie options: %+v", c)
	}

	// The cookie resolves to the same session
	s2, cookies := get(t, m, []*http.Cookie{c})
	if s2 != s1 {
		t.Fatalf("got session %v, want %v", s2.ID, s1.ID)
	}
	if len(cookies) != 0 {
		t.Errorf("cookie reset for an existing session")
	}

	// A tampered cookie results in a new session
	bad := *c
	bad.Value = c.Value + "x"
	s3, cookies := get(t, m, []*http.Cookie{&bad})
	if s3 == s1 || len(cookies) != 1 {
		t.Fatal("tampered cookie accepted")
	}
	if m.Len() != 2 {
		t.Fatalf("got %v sessions, want 2", m.Len())
	}
}

func TestSessionIsolation(t *testing.T) {
	clock := &testClock{now: time.Now()}
	m := newTestManager(t, clock)

	a, _ := get(t, m, nil)
	b, _ := get(t, m, nil)

	err := a.Store.Connect(context.Background(), wallet.KindMetaMask)
	if err != nil {
		t.Fatal(err)
	}
	if b.Store.IsConnected() {
		t.Fatal("connect leaked into another session")
	}

	// Each session navigates on its own store events
	if a.Nav.Current().Screen() != nav.ScreenDashboard {
		t.Errorf("got screen %v, want dashboard", a.Nav.Current().Screen())
	}
	if b.Nav.Current().Screen() != nav.ScreenHomepage {
		t.Errorf("got screen %v, want homepage", b.Nav.Current().Screen())
	}
}

func TestPrune(t *testing.T) {
	clock := &testClock{now: time.Now()}
	m := newTestManager(t, clock)

	_, idleCookies := get(t, m, nil)
	_, activeCookies := get(t, m, nil)

	clock.now = clock.now.Add(45 * time.Second)
	active, _ := get(t, m, activeCookies)

	clock.now = clock.now.Add(30 * time.Second)
	if n := m.Prune(); n != 1 {
		t.Fatalf("pruned %v sessions, want 1", n)
	}
	if m.Len() != 1 {
		t.Fatalf("got %v sessions, want 1", m.Len())
	}

	// The active session survives and the pruned cookie gets a new
	// session
	s, _ := get(t, m, activeCookies)
	if s != active {
		t.Error("active session was pruned")
	}
	s, cookies := get(t, m, idleCookies)
	if s == active || len(cookies) != 1 {
		t.Error("pruned session was not replaced")
	}
}

func TestStartStop(t *testing.T) {
	m := newTestManager(t, &testClock{now: time.Now()})
	if err := m.Start(); err != nil {
		t.Fatal(err)
	}
	m.Stop()
}
