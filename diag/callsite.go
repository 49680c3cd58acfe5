// File: diag/callsite.go
// Author: momentics <momentics@gmail.com>
//
// Caller identification for thread classification and redirect
// diagnostics. Frames are resolved via runtime.CallersFrames so that
// inlined calls are attributed correctly.

package diag

import (
	"runtime"
	"strings"
)

const ownPkgPrefix = "github.com/momentics/agent-diag/diag."

// callsite returns the short name of the nearest caller outside this
// package, so adapter helpers report their caller rather than
// themselves.
func callsite() string {
	var pcs [16]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		if fr.Function != "" && !strings.HasPrefix(fr.Function, ownPkgPrefix) {
			return shortFunc(fr.Function)
		}
		if !more {
			break
		}
	}
	return "unknown"
}

// shortFunc strips import-path directories, keeping pkg.Func.
func shortFunc(fn string) string {
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		return fn[i+1:]
	}
	return fn
}
