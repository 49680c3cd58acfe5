// control/flags.go
// Author: momentics <momentics@gmail.com>
//
// Atomic process-wide flag state. Writers are rare (startup, reload);
// readers sit on the error-reporting path of every thread.

package control

import (
	"sync/atomic"

	"github.com/momentics/agent-diag/api"
)

var (
	logLevel       atomic.Int32
	callstackDebug atomic.Bool
)

func init() {
	logLevel.Store(int32(api.LevelError))
}

// SetLogLevel replaces the process-wide verbosity threshold.
func SetLogLevel(l api.LogLevel) {
	logLevel.Store(int32(l))
}

// LogLevel returns the current verbosity threshold.
func LogLevel() api.LogLevel {
	return api.LogLevel(logLevel.Load())
}

// LogLevelEnabled reports whether lines at the given level should be
// emitted under the current threshold.
func LogLevelEnabled(min api.LogLevel) bool {
	return LogLevel() >= min
}

// SetCallstackDebug toggles callstack emission on error capture.
func SetCallstackDebug(on bool) {
	callstackDebug.Store(on)
}

// CallstackDebug reports whether callstack emission is enabled.
func CallstackDebug() bool {
	return callstackDebug.Load()
}
