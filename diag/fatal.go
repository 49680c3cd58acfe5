// File: diag/fatal.go
// Author: momentics <momentics@gmail.com>
//
// Deliberate, diagnostic process termination. Every entry point runs
// the same one-way sequence: format, log, stack dump, closing notice,
// abort. No step is skippable and nothing here ever returns.

package diag

import (
	"runtime/debug"

	"github.com/momentics/agent-diag/api"
	"github.com/momentics/agent-diag/control"
)

// Init installs the asynchronous fault handler and switches the runtime
// to crash-style tracebacks so the final abort leaves a diagnosable
// core image rather than a clean exit.
func (s *Store) Init() {
	debug.SetTraceback("crash")
	installFaultHandler()
}

// Terminate formats the final diagnostic into the shared buffer, logs
// it together with a callstack and a closing notice, then aborts the
// process with a core-dump-producing signal. Never returns; callers
// may treat it as divergent.
func (s *Store) Terminate(format string, args ...any) {
	rendered := appendBounded(make([]byte, 0, MaxLen), MaxLen, format, args...)
	s.n = copy(s.buf[:], rendered)
	if s.sink != nil && control.LogLevelEnabled(api.LevelError) {
		s.sink.Puts(api.CategoryDebug, string(rendered))
		s.sink.Callstack()
		s.sink.Puts(api.CategoryDebug, "Exiting agent")
	}
	abort()
}

// TerminateBadCase reports that a switch statement met an unexpected
// value, then aborts. Keeps the common format string out of the
// codebase.
func (s *Store) TerminateBadCase(fn string, line int, value int) {
	s.Terminate("%s(%d): Unexpected case (%d) in switch", fn, line, value)
}

// TerminateOnAssert reports the statement behind a failed assertion,
// then aborts.
func (s *Store) TerminateOnAssert(fn string, line int, statement string) {
	s.Terminate("Failed assert at %s(%d): %s", fn, line, statement)
}

// Assert terminates the process unless cond holds.
func (s *Store) Assert(cond bool, fn string, line int, statement string) {
	if !cond {
		s.TerminateOnAssert(fn, line, statement)
	}
}
