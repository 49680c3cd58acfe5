// File: logsink/sink.go
// Author: momentics <momentics@gmail.com>
//
// Line-oriented diagnostic sink. Debug and protocol lines are prefixed
// with a timestamp; dump lines (stack traces, state dumps) pass through
// verbatim. Every emitted line is also retained in a bounded ring so a
// crash report can include recent history.

package logsink

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/agent-diag/api"
)

const (
	defaultRetention = 256
	timeLayout       = "2006-01-02 15:04:05.000"
	stackBufSize     = 32 << 10
)

// Sink writes diagnostic lines to w. Safe for concurrent use.
type Sink struct {
	mu     sync.Mutex
	w      io.Writer
	recent *queue.Queue
	keep   int
	clock  func() time.Time
}

// Option configures a Sink.
type Option func(*Sink)

// WithRetention bounds the recent-line ring to n lines.
func WithRetention(n int) Option {
	return func(s *Sink) {
		if n > 0 {
			s.keep = n
		}
	}
}

// WithClock overrides the timestamp source, for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Sink) { s.clock = clock }
}

// New creates a sink writing to w.
func New(w io.Writer, opts ...Option) *Sink {
	s := &Sink{
		w:      w,
		recent: queue.New(),
		keep:   defaultRetention,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Puts implements api.LogSink. Write errors are swallowed: the sink is
// fire-and-forget by contract.
func (s *Sink) Puts(cat api.LogCategory, line string) {
	var out string
	if cat == api.CategoryDump {
		out = line + "\n"
	} else {
		out = s.clock().Format(timeLayout) + " " + line + "\n"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, out)
	s.recent.Add(out)
	for s.recent.Length() > s.keep {
		s.recent.Remove()
	}
}

// Callstack implements api.LogSink. It emits the calling goroutine's
// stack as dump lines, with the sink's own frames trimmed so the trace
// starts at the caller.
func (s *Sink) Callstack() {
	buf := make([]byte, stackBufSize)
	n := captureStack(buf)
	for _, line := range strings.Split(strings.TrimRight(string(buf[:n]), "\n"), "\n") {
		s.Puts(api.CategoryDump, line)
	}
}

// DumpRecent writes the retained recent lines, oldest first, to w.
// Intended for crash reporters that want the run-up to a failure.
func (s *Sink) DumpRecent(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < s.recent.Length(); i++ {
		_, _ = io.WriteString(w, s.recent.Get(i).(string))
	}
}
