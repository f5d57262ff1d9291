// Package tracelog provides verbosity-gated internal trace logging for the
// eventuals module: a single integer controlling internal trace messages,
// zero (off) by default, the Go counterpart of the original's
// EVENTUALS_LOG(n) call sites.
//
// It wraps github.com/joeycumines/logiface with the
// github.com/joeycumines/stumpy JSON backend, both real third-party
// modules from joeycumines-go-utilpkg — chosen over log/slog or bare
// fmt.Printf because that module demonstrates a dedicated
// structured-logging facade for this concern rather than reaching for the
// standard library.
package tracelog

import (
	"os"
	"strconv"
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// EnvVerbosity is the environment variable controlling trace verbosity: a
// single integer, 0 (off) by default.
const EnvVerbosity = "EVENTUALS_LOG_VERBOSITY"

var (
	once     sync.Once
	logger   *logiface.Logger[*stumpy.Event]
	minLevel int
)

func init() {
	minLevel, _ = strconv.Atoi(os.Getenv(EnvVerbosity))
}

func ensure() *logiface.Logger[*stumpy.Event] {
	once.Do(func() {
		level := logiface.LevelDisabled
		if minLevel > 0 {
			level = logiface.LevelTrace
		}
		logger = stumpy.L.New(
			stumpy.L.WithStumpy(stumpy.WithWriter(os.Stderr)),
			logiface.WithLevel[*stumpy.Event](level),
		)
	})
	return logger
}

// Verbosity returns the currently configured verbosity level, read once
// from EnvVerbosity at package init.
func Verbosity() int { return minLevel }

// Tracef emits a trace-level message with a single string field, gated on
// the configured verbosity being at least the given threshold n — mirroring
// EVENTUALS_LOG(n) << "message" in the original, e.g.
// EVENTUALS_LOG(1) << "Reschedule submitting '" << name << "'".
func Tracef(n int, component string, msg string, field string) {
	if minLevel < n {
		return
	}
	ensure().Trace().Str("component", component).Str("detail", field).Log(msg)
}
