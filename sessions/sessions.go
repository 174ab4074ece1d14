// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sessions binds browser sessions to governance sessions. Every
// browser session owns its own store and navigation controller. The
// browser session is identified by an authenticated cookie that carries
// the session ID; the session state itself never leaves the server.
package sessions

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/privacyvote/daogov/nav"
	"github.com/privacyvote/daogov/store"
	"github.com/robfig/cron"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "daogov"

	// sessionValueID is the session cookie value that contains the
	// session ID.
	sessionValueID = "id"

	// pruneSchedule is the cron schedule of the idle session pruning.
	// It runs every 5 minutes.
	pruneSchedule = "0 */5 * * * *"
)

// Session is a governance session.
type Session struct {
	ID    string
	Store *store.Store
	Nav   *nav.Controller

	createdAt time.Time
	lastUsed  time.Time // Guarded by the Manager lock
}

// StoreFunc returns the store of a new session.
type StoreFunc func() (*store.Store, error)

// Opts contains the options of a new Manager.
type Opts struct {
	// Key authenticates the session cookie. It should be 32 or 64 bytes.
	Key []byte

	// MaxAge is the max age of a session in seconds. Sessions that are
	// idle for longer are pruned.
	MaxAge int

	// Secure sets the secure flag of the session cookie.
	Secure bool

	// NewStore returns the store of a new session.
	NewStore StoreFunc

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Manager manages the governance sessions.
type Manager struct {
	sync.Mutex
	cookies  *sessions.CookieStore
	newStore StoreFunc
	maxAge   time.Duration
	now      func() time.Time
	cron     *cron.Cron
	sessions map[string]*Session // [id]Session
}

// NewOptions returns the session cookie options.
func NewOptions(maxAge int, secure bool) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// New returns a new Manager.
func New(opts Opts) (*Manager, error) {
	switch {
	case len(opts.Key) == 0:
		return nil, errors.New("no session key")
	case opts.MaxAge <= 0:
		return nil, errors.Errorf("invalid session max age %v", opts.MaxAge)
	case opts.NewStore == nil:
		return nil, errors.New("no store func")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cs := sessions.NewCookieStore(opts.Key)
	cs.Options = NewOptions(opts.MaxAge, opts.Secure)
	cs.MaxAge(opts.MaxAge)

	return &Manager{
		cookies:  cs,
		newStore: opts.NewStore,
		maxAge:   time.Duration(opts.MaxAge) * time.Second,
		now:      opts.Now,
		cron:     cron.New(),
		sessions: make(map[string]*Session),
	}, nil
}

// Get returns the session of the request. A new session is created and
// the session cookie is set when the request does not carry a valid
// session cookie or when its session has been pruned.
func (m *Manager) Get(w http.ResponseWriter, r *http.Request) (*Session, error) {
	sn, err := m.cookies.Get(r, CookieName)
	if err != nil {
		// A cookie that fails authentication results in a new session
		log.Debugf("Session cookie decode: %v", err)
	}

	id, _ := sn.Values[sessionValueID].(string)
	if id != "" {
		m.Lock()
		s, ok := m.sessions[id]
		if ok {
			s.lastUsed = m.now()
		}
		m.Unlock()
		if ok {
			return s, nil
		}
		log.Debugf("Session not found: %v", id)
	}

	s, err := m.newSession()
	if err != nil {
		return nil, err
	}
	sn.Values[sessionValueID] = s.ID
	err = sn.Save(r, w)
	if err != nil {
		m.Lock()
		delete(m.sessions, s.ID)
		m.Unlock()
		return nil, errors.Wrap(err, "save session")
	}

	return s, nil
}

// newSession creates and registers a new session.
func (m *Manager) newSession() (*Session, error) {
	st, err := m.newStore()
	if err != nil {
		return nil, errors.Wrap(err, "new store")
	}
	c := nav.NewController(st)
	c.Subscribe(st.Events())

	now := m.now()
	s := &Session{
		ID:        uuid.New().String(),
		Store:     st,
		Nav:       c,
		createdAt: now,
		lastUsed:  now,
	}

	m.Lock()
	m.sessions[s.ID] = s
	n := len(m.sessions)
	m.Unlock()

	log.Debugf("Session created: %v (%v active)", s.ID, n)

	return s, nil
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.Lock()
	defer m.Unlock()

	return len(m.sessions)
}

// Prune removes the sessions that have been idle for longer than the
// session max age and returns the number of removed sessions.
func (m *Manager) Prune() int {
	m.Lock()
	defer m.Unlock()

	now := m.now()
	var pruned int
	for id, s := range m.sessions {
		if now.Sub(s.lastUsed) > m.maxAge {
			delete(m.sessions, id)
			pruned++
			log.Debugf("Session pruned: %v created %v", id,
				s.createdAt.Format(time.RFC3339))
		}
	}
	if pruned > 0 {
		log.Infof("Pruned %v idle sessions; %v active", pruned,
			len(m.sessions))
	}
	return pruned
}

// Start starts the idle session pruning.
func (m *Manager) Start() error {
	err := m.cron.AddFunc(pruneSchedule, func() {
		m.Prune()
	})
	if err != nil {
		return errors.Wrap(err, "schedule prune")
	}
	m.cron.Start()
	log.Infof("Session pruning scheduled: %v", pruneSchedule)
	return nil
}

// Stop stops the idle session pruning.
func (m *Manager) Stop() {
	m.cron.Stop()
}
