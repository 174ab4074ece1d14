// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// daogovd serves the privacy voting governance API. Every browser session
// gets its own simulated wallet connection, proposal collection and
// navigation state.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/privacyvote/daogov/logger"
	"github.com/privacyvote/daogov/mockdata"
	"github.com/privacyvote/daogov/server"
	"github.com/privacyvote/daogov/store"
	"github.com/privacyvote/daogov/wallet"
	"github.com/privacyvote/daogov/zkproof"
)

// storeFunc returns the func that builds the store of every new session.
func storeFunc(cfg *config) func() (*store.Store, error) {
	return func() (*store.Store, error) {
		return store.New(store.Opts{
			Providers:      wallet.SimulatedProviders(cfg.Network, cfg.SimulatedDelay),
			Prover:         zkproof.NewSimulated(cfg.SimulatedDelay),
			Proposals:      mockdata.Proposals(time.Now()),
			SimulatedDelay: cfg.SimulatedDelay,
			OpTimeout:      cfg.OpTimeout,
		})
	}
}

func _main() error {
	// Load configuration and parse command line. This function also
	// initializes logging and configures it accordingly.
	cfg, _, err := loadConfig()
	if err != nil {
		return fmt.Errorf("could not load configuration file: %v", err)
	}
	defer logger.CloseLogRotator()

	log.Infof("Version : %v", cfg.Version)
	log.Infof("Network : %v", cfg.Network)
	log.Infof("Home dir: %v", cfg.HomeDir)
	log.Infof("Simulated delay: %v, op timeout: %v", cfg.SimulatedDelay,
		cfg.OpTimeout)

	s, err := server.New(cfg.serverConfig(), storeFunc(cfg))
	if err != nil {
		return err
	}

	// Bind to a port and pass our router in
	listenC := make(chan error)
	s.ListenAndServeTLS(listenC)

	// Tell user we are ready to go.
	log.Infof("Start of day")

	// Setup OS signals
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case sig := <-sigs:
			log.Infof("Terminating with %v", sig)
			goto done
		case err := <-listenC:
			log.Errorf("%v", err)
			goto done
		}
	}
done:

	s.Shutdown()
	log.Infof("Exiting")

	return nil
}

func main() {
	err := _main()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
