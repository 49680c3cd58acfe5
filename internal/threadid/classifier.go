// File: internal/threadid/classifier.go
// Author: momentics <momentics@gmail.com>
//
// Default api.ThreadClassifier keyed on OS thread identity.

package threadid

import (
	"runtime"
	"sync/atomic"

	"github.com/momentics/agent-diag/api"
	"github.com/momentics/agent-diag/control"
)

// Classifier classifies callers by OS thread id. Until RegisterPrimary
// is called every caller is treated as primary, which keeps the
// single-threaded startup phase writable.
type Classifier struct {
	primary atomic.Int64
	sink    api.LogSink // optional, for redirect diagnostics
}

// New creates an unregistered classifier. sink may be nil.
func New(sink api.LogSink) *Classifier {
	return &Classifier{sink: sink}
}

// RegisterPrimary marks the calling goroutine's OS thread as the owner
// of the shared error buffer. It locks the goroutine to its thread so
// the identity cannot migrate; call it once from the data-model loop.
func (c *Classifier) RegisterPrimary() {
	runtime.LockOSThread()
	c.primary.Store(int64(Current()))
}

// IsPrimaryThread implements api.ThreadClassifier.
func (c *Classifier) IsPrimaryThread(callsite string) bool {
	tid := int64(Current())
	if tid == 0 {
		// no thread ids on this platform: single-owner assumed
		return true
	}
	registered := c.primary.Load()
	if registered == 0 {
		return true
	}
	if tid == registered {
		return true
	}
	if c.sink != nil && control.LogLevelEnabled(api.LevelDebug) {
		c.sink.Puts(api.CategoryDebug, callsite+": redirected to transient error buffer (non-primary thread)")
	}
	return false
}

// OwnsShared reports whether the calling OS thread may write the shared
// buffer, without emitting redirect diagnostics. Used by strict
// ownership checking in the store.
func (c *Classifier) OwnsShared() bool {
	tid := int64(Current())
	registered := c.primary.Load()
	return tid == 0 || registered == 0 || tid == registered
}
