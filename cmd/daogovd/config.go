// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/decred/dcrd/chaincfg/v3"
	"github.com/decred/dcrd/dcrutil/v3"
	flags "github.com/jessevdk/go-flags"
	"github.com/privacyvote/daogov/logger"
	"github.com/privacyvote/daogov/server"
	"github.com/privacyvote/daogov/util"
	"github.com/privacyvote/daogov/version"
	"github.com/privacyvote/daogov/wallet"
)

const (
	defaultConfigFilename = "daogovd.conf"
	defaultLogFilename    = "daogovd.log"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
	defaultListen         = "4443"

	defaultSimulatedDelay = time.Second
	defaultOpTimeout      = 30 * time.Second
)

var (
	defaultHomeDir       = dcrutil.AppDataDir("daogovd", false)
	defaultConfigFile    = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir        = filepath.Join(defaultHomeDir, defaultLogDirname)
	defaultHTTPSKeyFile  = filepath.Join(defaultHomeDir, "https.key")
	defaultHTTPSCertFile = filepath.Join(defaultHomeDir, "https.cert")
	defaultCSRFKeyFile   = filepath.Join(defaultHomeDir, "csrf.key")
	defaultSessionKey    = filepath.Join(defaultHomeDir, "session.key")
)

// config defines the configuration options for daogovd.
//
// See loadConfig for details on the configuration load process.
type config struct {
	HomeDir     string `short:"A" long:"appdata" description:"Path to application home directory"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	LogDir      string `long:"logdir" description:"Directory to log output."`
	TestNet     bool   `long:"testnet" description:"Use the test network"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	Listen      string `long:"listen" description:"Add an interface/port to listen for connections (default all interfaces port: 4443)"`

	HTTPSCert     string `long:"httpscert" description:"File containing the https certificate file"`
	HTTPSKey      string `long:"httpskey" description:"File containing the https certificate key"`
	CSRFKey       string `long:"csrfkey" description:"File containing the CSRF key"`
	SessionKey    string `long:"sessionkey" description:"File containing the session cookie key"`
	SessionMaxAge int64  `long:"sessionmaxage" description:"Max age of an idle session in seconds"`
	SecureCookies bool   `long:"securecookies" description:"Only send the session and CSRF cookies over https"`

	SimulatedDelay time.Duration `long:"simulateddelay" description:"Delay of the simulated wallet, proof and vote operations"`
	OpTimeout      time.Duration `long:"optimeout" description:"Upper bound of every wallet, proof and vote operation"`

	Version string
	Network wallet.Network
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly. An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				debugLevel)
		}
		logger.SetLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	supported := logger.SupportedSubsystems()
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return fmt.Errorf("the specified debug level contains an "+
				"invalid subsystem/level pair [%v]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		var ok bool
		for _, s := range supported {
			if s == subsysID {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", subsysID, supported)
		}
		if !validLogLevel(logLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				logLevel)
		}

		logger.SetLogLevel(subsysID, logLevel)
	}

	return nil
}

// createDefaultConfigFile writes the sample config to the provided path when
// it does not exist yet.
func createDefaultConfigFile(destPath string) error {
	err := os.MkdirAll(filepath.Dir(destPath), 0700)
	if err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte(sampleConfig), 0600)
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in daogovd functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options. Command line options always take
// precedence.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		HomeDir:        defaultHomeDir,
		ConfigFile:     defaultConfigFile,
		DebugLevel:     defaultLogLevel,
		LogDir:         defaultLogDir,
		Listen:         defaultListen,
		HTTPSKey:       defaultHTTPSKeyFile,
		HTTPSCert:      defaultHTTPSCertFile,
		CSRFKey:        defaultCSRFKeyFile,
		SessionKey:     defaultSessionKey,
		SecureCookies:  true,
		SimulatedDelay: defaultSimulatedDelay,
		OpTimeout:      defaultOpTimeout,
		Version:        version.String(),
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified. Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(0)
		}
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
	if preCfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		os.Exit(0)
	}

	// Update the home directory if specified. Since the home directory is
	// updated, the paths that default to it need to be updated too.
	if preCfg.HomeDir != defaultHomeDir {
		cfg.HomeDir, _ = filepath.Abs(util.CleanAndExpandPath(preCfg.HomeDir))

		rebase := func(pre, def *string, name string) {
			if *pre == *def {
				*def = filepath.Join(cfg.HomeDir, name)
			}
		}
		rebase(&preCfg.ConfigFile, &cfg.ConfigFile, defaultConfigFilename)
		rebase(&preCfg.LogDir, &cfg.LogDir, defaultLogDirname)
		rebase(&preCfg.HTTPSKey, &cfg.HTTPSKey, "https.key")
		rebase(&preCfg.HTTPSCert, &cfg.HTTPSCert, "https.cert")
		rebase(&preCfg.CSRFKey, &cfg.CSRFKey, "csrf.key")
		rebase(&preCfg.SessionKey, &cfg.SessionKey, "session.key")
	}
	if preCfg.ConfigFile != defaultConfigFile {
		cfg.ConfigFile = preCfg.ConfigFile
	}

	// Create a sample config file when none exists at the default location.
	cfg.ConfigFile = util.CleanAndExpandPath(cfg.ConfigFile)
	if !util.FileExists(cfg.ConfigFile) {
		err := createDefaultConfigFile(cfg.ConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating a default config "+
				"file: %v\n", err)
		}
	}

	// Load additional config from file.
	var configFileError error
	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(cfg.ConfigFile)
	if err != nil {
		var e *os.PathError
		if !errors.As(err, &e) {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n", err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
		configFileError = err
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, nil, err
	}

	// Create the home directory if it doesn't already exist.
	funcName := "loadConfig"
	err = os.MkdirAll(cfg.HomeDir, 0700)
	if err != nil {
		err := fmt.Errorf("%s: failed to create home directory: %v",
			funcName, err)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Set the network of the simulated wallets.
	params := chaincfg.MainNetParams()
	if cfg.TestNet {
		params = chaincfg.TestNet3Params()
	}
	cfg.Network = wallet.NetworkFromParams(params)

	// Namespace the log directory per network.
	cfg.LogDir = util.CleanAndExpandPath(cfg.LogDir)
	cfg.LogDir = filepath.Join(cfg.LogDir, params.Name)

	cfg.HTTPSKey = util.CleanAndExpandPath(cfg.HTTPSKey)
	cfg.HTTPSCert = util.CleanAndExpandPath(cfg.HTTPSCert)
	cfg.CSRFKey = util.CleanAndExpandPath(cfg.CSRFKey)
	cfg.SessionKey = util.CleanAndExpandPath(cfg.SessionKey)

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", logger.SupportedSubsystems())
		os.Exit(0)
	}

	// Initialize log rotation. After log rotation has been initialized, the
	// logger variables may be used.
	err = logger.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	if err != nil {
		return nil, nil, err
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	switch {
	case cfg.SimulatedDelay < 0:
		return nil, nil, fmt.Errorf("%s: simulateddelay must not be "+
			"negative", funcName)
	case cfg.OpTimeout <= 0:
		return nil, nil, fmt.Errorf("%s: optimeout must be positive",
			funcName)
	case cfg.SimulatedDelay >= cfg.OpTimeout:
		return nil, nil, fmt.Errorf("%s: simulateddelay (%v) must be "+
			"less than optimeout (%v)", funcName, cfg.SimulatedDelay,
			cfg.OpTimeout)
	}

	// Warn about missing config file only after all other configuration is
	// done. This prevents the warning on help messages and invalid options.
	if configFileError != nil {
		log.Warnf("%v", configFileError)
	}

	return &cfg, remainingArgs, nil
}

// serverConfig returns the server configuration.
func (cfg *config) serverConfig() *server.Config {
	return &server.Config{
		BuildVersion:   cfg.Version,
		HTTPSCert:      cfg.HTTPSCert,
		HTTPSKey:       cfg.HTTPSKey,
		CSRFKey:        cfg.CSRFKey,
		SessionKey:     cfg.SessionKey,
		SessionMaxAge:  cfg.SessionMaxAge,
		SecureCookies:  cfg.SecureCookies,
		Listen:         cfg.Listen,
		Network:        cfg.Network,
		SimulatedDelay: cfg.SimulatedDelay,
		OpTimeout:      cfg.OpTimeout,
	}
}
