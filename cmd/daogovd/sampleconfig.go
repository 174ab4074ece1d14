// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

// sampleConfig is written to the default config file location when no config
// file exists.
const sampleConfig = `[Application Options]

; ------------------------------------------------------------------------------
; Data settings
; ------------------------------------------------------------------------------

; The directory to store the https cert pair and the cookie keys.
; appdata=~/.daogovd

; The directory to log output.
; logdir=~/.daogovd/logs

; ------------------------------------------------------------------------------
; Network settings
; ------------------------------------------------------------------------------

; Use the test network. The simulated wallets report the test network.
; testnet=1

; Interface/port to listen on. A bare port listens on all interfaces.
; listen=4443

; Mark the session and CSRF cookies as secure. Disable only when the server
; is behind a TLS terminating proxy that talks plain http to daogovd.
; securecookies=1

; ------------------------------------------------------------------------------
; Simulation settings
; ------------------------------------------------------------------------------

; Delay of every simulated wallet, proof and vote operation.
; simulateddelay=1s

; Upper bound of every wallet, proof and vote operation.
; optimeout=30s

; ------------------------------------------------------------------------------
; Session settings
; ------------------------------------------------------------------------------

; Max age of an idle session in seconds.
; sessionmaxage=86400

; ------------------------------------------------------------------------------
; Debug
; ------------------------------------------------------------------------------

; Debug logging level.
; Valid levels are {trace, debug, info, warn, error, critical}
; You may specify <subsystem>=<level>,<subsystem2>=<level>,... to set
; log level for individual subsystems. Use daogovd --debuglevel=show to list
; available subsystems.
; debuglevel=info
`
