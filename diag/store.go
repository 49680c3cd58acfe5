// File: diag/store.go
// Author: momentics <momentics@gmail.com>
//
// Single point of truth for "the last error description", with
// thread-aware isolation: only the primary thread's writes reach the
// shared buffer, every other thread formats into a transient buffer
// that is visible to the log sink alone.

package diag

import (
	"github.com/momentics/agent-diag/api"
	"github.com/momentics/agent-diag/control"
	"github.com/momentics/agent-diag/internal/threadid"
)

// Store holds the shared error buffer and its collaborators.
//
// The buffer carries no mutex. At most one thread ever writes it, which
// totally orders the writes; the classifier enforces that invariant by
// redirecting everyone else.
type Store struct {
	classifier api.ThreadClassifier
	sink       api.LogSink
	strict     func() bool

	buf [MaxLen]byte
	n   int
}

// Option configures a Store.
type Option func(*Store)

// WithClassifier supplies the thread-role predicate. A nil classifier
// treats every caller as primary, which suits single-threaded use.
func WithClassifier(c api.ThreadClassifier) Option {
	return func(s *Store) { s.classifier = c }
}

// WithSink supplies the log sink. A nil sink disables logging.
func WithSink(sink api.LogSink) Option {
	return func(s *Store) { s.sink = sink }
}

// WithStrictOwnership installs a predicate verified on every shared
// write; a false result terminates the process. Use it to make
// classifier misidentification detectable instead of silently racy.
func WithStrictOwnership(ok func() bool) Option {
	return func(s *Store) { s.strict = ok }
}

// New creates a Store with an empty shared buffer.
func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetMessage records an error description. On the primary thread the
// text lands in the shared buffer and is retrievable via GetMessage;
// on any other thread it is rendered into a call-scoped buffer, logged,
// and discarded. Never fails: over-long messages truncate silently.
func (s *Store) SetMessage(format string, args ...any) {
	site := callsite()
	rendered := appendBounded(make([]byte, 0, MaxLen), MaxLen, format, args...)
	if s.isPrimary(site) {
		s.checkOwnership(site)
		s.n = copy(s.buf[:], rendered)
	}
	s.log(rendered, control.CallstackDebug())
}

// ReplaceEmptyMessage writes the shared buffer only when it is empty,
// so the first detector of a failure keeps priority over later generic
// wrappers. Primary-thread use only, by convention.
func (s *Store) ReplaceEmptyMessage(format string, args ...any) {
	if s.n != 0 {
		return
	}
	s.checkOwnership(callsite())
	rendered := appendBounded(make([]byte, 0, MaxLen), MaxLen, format, args...)
	s.n = copy(s.buf[:], rendered)
	s.log(rendered, false)
}

// ClearMessage empties the shared buffer. Called before invoking a
// vendor hook so the caller can test afterwards whether the hook set
// an error.
func (s *Store) ClearMessage() {
	s.n = 0
}

// GetMessage returns the shared buffer's current text, "" when empty.
// The returned string is an immutable copy; unlike a borrowed buffer
// it stays valid across later Set and Clear calls.
func (s *Store) GetMessage() string {
	return string(s.buf[:s.n])
}

// RegisterPrimaryThread wires the default OS-thread classifier into the
// store and marks the calling goroutine's thread as the owner of the
// shared buffer. Call once from the agent's data-model loop, before
// other goroutines start reporting errors.
func (s *Store) RegisterPrimaryThread() {
	c := threadid.New(s.sink)
	c.RegisterPrimary()
	s.classifier = c
}

func (s *Store) isPrimary(site string) bool {
	return s.classifier == nil || s.classifier.IsPrimaryThread(site)
}

func (s *Store) checkOwnership(site string) {
	if s.strict != nil && !s.strict() {
		s.Terminate("%s: shared error buffer written off the primary thread", site)
	}
}

func (s *Store) log(text []byte, withStack bool) {
	if s.sink == nil {
		return
	}
	if control.LogLevelEnabled(api.LevelError) {
		s.sink.Puts(api.CategoryDebug, string(text))
	}
	if withStack {
		s.sink.Callstack()
	}
}
