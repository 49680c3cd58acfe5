// File: diag/fault.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral part of the asynchronous fault path. The handler
// proper is installed per platform (fault_unix.go, fault_windows.go).

package diag

import "runtime"

// HandleFault routes a runtime memory-fault panic into the terminal
// fault path, giving synchronous faults inside Go code the same
// log-stack-abort treatment as asynchronously delivered fault signals.
// Use with defer at goroutine boundaries:
//
//	go func() {
//		defer diag.HandleFault()
//		worker()
//	}()
//
// A nil recover is a no-op; panics that are not runtime errors are
// re-raised untouched.
func HandleFault() {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(runtime.Error); ok {
		faultAbort()
	}
	panic(r)
}
