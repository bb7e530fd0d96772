// Package enginelog is a helper for github.com/op/go-logging that hands out
// pre-configured *logging.Logger instances, one per subsystem, so call
// sites need only one line to get a working logger.
package enginelog

import (
	stdlog "log"
	"os"

	"github.com/op/go-logging"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
	uciFormat = logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("UCI ")
}

func backendFor(logger *logging.Logger, format logging.Formatter, level logging.Level) {
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logger.SetBackend(leveled)
}

// GetLog returns the standard engine logger, writing to stdout.
func GetLog() *logging.Logger {
	backendFor(standardLog, standardFormat, logging.INFO)
	return standardLog
}

// GetSearchLog returns the logger used inside the search worker.
func GetSearchLog() *logging.Logger {
	backendFor(searchLog, standardFormat, logging.INFO)
	return searchLog
}

// GetUciLog returns the logger that records every line of UCI protocol
// traffic in both directions, format "time UCI <line>".
func GetUciLog() *logging.Logger {
	backendFor(uciLog, uciFormat, logging.DEBUG)
	return uciLog
}
