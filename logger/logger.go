// Copyright (c) 2017-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package logger provides the subsystem loggers used throughout daogov. A
// single slog backend is shared by all subsystem loggers. Output is written
// to a rotating log file and optionally to stdout.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

// logWriter implements an io.Writer that outputs to the write-end pipe of an
// initialized log rotator and can optionally write to stdout as well.
type logWriter struct {
	stdout io.Writer // May be nil
}

func (l *logWriter) Write(p []byte) (n int, err error) {
	if l.stdout != nil {
		l.stdout.Write(p)
	}
	if logRotator == nil {
		// Log rotater not initialized
		return len(p), nil
	}
	return logRotator.Write(p)
}

// Loggers per subsystem. A single backend logger is created and all subsytem
// loggers created from it will write to the backend. New subsystem loggers
// are added using NewSubsystemLogger.
//
// Log lines are only persisted once the log rotator has been initialized with
// a log file. This must be performed early during application startup by
// calling InitLogRotator.
var (
	writer = &logWriter{stdout: os.Stdout}

	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = slog.NewBackend(writer)

	// logRotator is one of the logging outputs. It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	// subsystemsLoggers contains all of the subsystem loggers.
	subsystemLoggers = map[string]slog.Logger{}
)

// InitLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory. It must be called before the
// package-global log rotater variables are used.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return errors.Errorf("failed to create log dir %v: %v",
			logDir, err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return errors.Errorf("failed to create log file rotator: %v", err)
	}

	logRotator = r

	return nil
}

// CloseLogRotator closes the log rotator.
func CloseLogRotator() {
	if logRotator != nil {
		logRotator.Close()
	}
}

// DisableStdout stops log lines from being copied to stdout. Tests use this
// to keep their output readable.
func DisableStdout() {
	writer.stdout = nil
}

// NewSubsystemLogger registers and returns a new subsystem logger. The same
// logger is returned when a tag is registered more than once.
func NewSubsystemLogger(subsystemTag string) slog.Logger {
	l, ok := subsystemLoggers[subsystemTag]
	if ok {
		return l
	}
	l = backendLog.Logger(subsystemTag)
	subsystemLoggers[subsystemTag] = l
	return l
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func SupportedSubsystems() []string {
	// Convert the subsystemLoggers map keys to a slice
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsytems for stable display
	sort.Strings(subsystems)
	return subsystems
}

// SetLogLevel sets the logging level for provided subsystem. Invalid
// subsystems are ignored. The log level defaults to info if an invalid log
// level is provided.
func SetLogLevel(subsystemID string, logLevel string) {
	// Ignore invalid subsystems
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	// Defaults to info if the log level is invalid
	level, _ := slog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level. The log level defaults to info if an invalid log level is provided.
func SetLogLevels(logLevel string) {
	// Configure all sub-systems with the new logging level
	for subsystemID := range subsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}

// LogClosure is a closure that can be printed with %v to be used to generate
// expensive-to-create data for a detailed log level and avoid doing the work
// if the data isn't printed.
type LogClosure func() string

func (c LogClosure) String() string {
	return c()
}

// NewLogClosure returns a new LogClosure
func NewLogClosure(c func() string) LogClosure {
	return LogClosure(c)
}
