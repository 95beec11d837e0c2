package elevate

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logging is off by default so the library stays quiet inside host
// applications; SetLogger turns it on.
var logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "elevate"})

// SetLogger replaces the package logger. The library logs launch
// details (selected elevation tool, argv, exit status) at debug level.
// Passing nil restores the default silent logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(io.Discard, log.Options{Prefix: "elevate"})
	}
	logger = l
}
