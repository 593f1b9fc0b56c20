// Package logging sets up a single process-wide logger used by the perft
// driver and its command-line front end.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var log *logging.Logger

const moduleName = "mintymacks"

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s}%{color:reset} %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, moduleName)
	logging.SetBackend(leveled)

	log = logging.MustGetLogger(moduleName)
}

// GetLog returns the process-wide logger.
func GetLog() *logging.Logger {
	return log
}

// SetLevel adjusts the verbosity of the process-wide logger.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, moduleName)
}
