// File: api/classifier.go
// Author: momentics <momentics@gmail.com>
//
// Thread-role classification contract. The surrounding runtime supplies
// the predicate; the diagnostics core re-evaluates it on every write.

package api

// ThreadClassifier decides whether the calling thread owns the shared
// error buffer. The predicate is consulted on every SetMessage call and
// must be cheap; callsite carries the name of the calling function for
// redirect diagnostics.
//
// Correctness of the lock-free shared buffer rests entirely on this
// predicate returning true for exactly one OS thread at a time.
type ThreadClassifier interface {
	IsPrimaryThread(callsite string) bool
}

// ThreadClassifierFunc adapts a plain predicate to ThreadClassifier.
type ThreadClassifierFunc func(callsite string) bool

func (f ThreadClassifierFunc) IsPrimaryThread(callsite string) bool {
	return f(callsite)
}
