// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server implements the daogov HTTP server. Every browser session
// is bound to its own governance session; the handlers translate the API
// requests into store operations and navigation requests of that session.
package server

import (
	"context"
	"crypto/elliptic"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	v1 "github.com/privacyvote/daogov/api/v1"
	"github.com/privacyvote/daogov/sessions"
	"github.com/privacyvote/daogov/util"
)

// Server is the daogov server.
type Server struct {
	cfg       *Config
	server    *http.Server
	router    *mux.Router // Parent router
	protected *mux.Router // CSRF protected subrouter
	sessions  *sessions.Manager
}

// New returns a new Server. The store func returns the store of every new
// session.
func New(cfg *Config, newStore sessions.StoreFunc) (*Server, error) {
	err := verifyConfig(cfg)
	if err != nil {
		return nil, err
	}
	err = generateHTTPSCertPair(cfg.HTTPSCert, cfg.HTTPSKey)
	if err != nil {
		return nil, err
	}
	csrfKey, err := loadKey("CSRF", cfg.CSRFKey)
	if err != nil {
		return nil, err
	}
	sessionKey, err := loadKey("Session", cfg.SessionKey)
	if err != nil {
		return nil, err
	}

	// Setup the router
	router, protected := NewRouter(cfg.ReqBodySizeLimit, csrfKey,
		int(cfg.CSRFMaxAge), cfg.SecureCookies)

	// Setup the sessions
	sm, err := sessions.New(sessions.Opts{
		Key:      sessionKey,
		MaxAge:   int(cfg.SessionMaxAge),
		Secure:   cfg.SecureCookies,
		NewStore: newStore,
	})
	if err != nil {
		return nil, err
	}

	s := Server{
		cfg:       cfg,
		router:    router,
		protected: protected,
		sessions:  sm,
	}

	s.setupRoutes()

	return &s, nil
}

// ListenAndServeTLS starts the session pruning and serves the API over TLS.
// The listen error is sent on the provided channel.
func (s *Server) ListenAndServeTLS(listenC chan error) {
	err := s.sessions.Start()
	if err != nil {
		listenC <- err
		return
	}
	go func() {
		s.server = &http.Server{
			Handler:      s.router,
			Addr:         s.cfg.Listen,
			ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
			TLSConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
				CurvePreferences: []tls.CurveID{
					tls.CurveP256,
					tls.CurveP521,
					tls.X25519},
				PreferServerCipherSuites: true,
				CipherSuites: []uint16{
					tls.TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA256,
					tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
					tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
					tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
				},
			},
			TLSNextProto: make(map[string]func(*http.Server,
				*tls.Conn, http.Handler)),
		}
		log.Infof("Listen: %v", s.cfg.Listen)
		listenC <- s.server.ListenAndServeTLS(s.cfg.HTTPSCert, s.cfg.HTTPSKey)
	}()
}

// Shutdown gracefully shuts down the server without interrupting any
// active connections.
func (s *Server) Shutdown() {
	s.sessions.Stop()
	if s.server == nil {
		return
	}
	err := s.server.Shutdown(context.Background())
	if err != nil {
		log.Errorf("Shutdown: %v", err)
	}
}

// ServeHTTP serves a request. It allows the server to be used without TLS,
// for example behind a TLS terminating proxy or in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupRoutes set ups the v1 API routes.
func (s *Server) setupRoutes() {
	// The version route sets the CSRF header token and thus needs to be
	// part of the CSRF protected router so that the CSRF cookie is set
	// too. The CSRF cookie is set on all protected routes. The header
	// token is only set on the version route.
	addRoute(s.protected, http.MethodGet, v1.APIRoute,
		v1.RouteVersion, s.handleVersion)

	// Unprotected routes
	addRoute(s.router, http.MethodGet, v1.APIRoute,
		v1.RoutePolicy, s.handlePolicy)
	addRoute(s.router, http.MethodGet, v1.APIRoute,
		v1.RouteSession, s.handleSession)
	addRoute(s.router, http.MethodGet, v1.APIRoute,
		v1.RouteProposals, s.handleProposals)
	addRoute(s.router, http.MethodGet, v1.APIRoute,
		v1.RouteProposalDetails, s.handleProposalDetails)
	addRoute(s.router, http.MethodGet, v1.APIRoute,
		v1.RouteVoteDetails, s.handleVoteDetails)
	addRoute(s.router, http.MethodGet, v1.APIRoute,
		v1.RouteProjects, s.handleProjects)
	addRoute(s.router, http.MethodGet, v1.APIRoute,
		v1.RouteHistory, s.handleHistory)

	// CSRF protected routes
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteConnect, s.handleConnect)
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteDisconnect, s.handleDisconnect)
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteGuest, s.handleGuest)
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteWalletSelector, s.handleWalletSelector)
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteConfirmation, s.handleConfirmation)
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteNewProposal, s.handleNewProposal)
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteGenerateProof, s.handleGenerateProof)
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteCastVote, s.handleCastVote)
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteRevealVote, s.handleRevealVote)
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteNewProject, s.handleNewProject)
	addRoute(s.protected, http.MethodPost, v1.APIRoute,
		v1.RouteNavigate, s.handleNavigate)
}

// addRoute adds a route to the provided router.
func addRoute(router *mux.Router, method string, routePrefix, route string, handler http.HandlerFunc) {
	router.HandleFunc(routePrefix+route, handler).Methods(method)
}

// generateHTTPSCertPair generates an HTTPS cert and key if they don't already
// exist.
func generateHTTPSCertPair(httpsCert, httpsKey string) error {
	switch {
	case util.FileExists(httpsCert) && util.FileExists(httpsKey):
		// The cert and key already exist. Nothing to do.
		return nil

	case !util.FileExists(httpsCert) && util.FileExists(httpsKey):
		// The key exists, but the cert doesn't exist
		return fmt.Errorf("https key exists (%v) but the cert doesn't (%v)",
			httpsKey, httpsCert)

	case util.FileExists(httpsCert) && !util.FileExists(httpsKey):
		// The cert exists, but the key doesn't exist
		return fmt.Errorf("https cert exists (%v) but the key doesn't (%v)",
			httpsCert, httpsKey)
	}

	// A HTTPS cert pair does not exist. Generate one.
	err := util.GenCertPair(elliptic.P256(), "daogov", httpsCert, httpsKey)
	if err != nil {
		return fmt.Errorf("gen cert pair failed: %v", err)
	}

	return nil
}

// loadKey loads a 32 byte key from disk. If the key does not exist, a new
// one is created and saved to disk.
func loadKey(name, keyFile string) ([]byte, error) {
	const keyLength = 32 // In bytes

	key, err := os.ReadFile(keyFile)
	if err != nil {
		log.Infof("%v key not found; generating one", name)
		key, err = util.Random(keyLength)
		if err != nil {
			return nil, err
		}
		err = os.WriteFile(keyFile, key, 0400)
		if err != nil {
			return nil, err
		}
		log.Infof("%v key saved to %v", name, keyFile)
	}

	if len(key) != keyLength {
		return nil, errors.Errorf("%v key is corrupt", name)
	}

	return key, nil
}
