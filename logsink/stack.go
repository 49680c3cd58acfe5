// File: logsink/stack.go
// Author: momentics <momentics@gmail.com>
//
// Goroutine stack capture with trimming of the sink's own frames.
// runtime.Stack output alternates a function line with a file:line
// continuation; both lines of a sink-internal frame are dropped
// together so the printed trace begins at the user call site.

package logsink

import (
	"runtime"
	"strings"
)

const framePrefix = "github.com/momentics/agent-diag/logsink."

func captureStack(buf []byte) int {
	n := runtime.Stack(buf, false)
	trimmed := trimOwnFrames(string(buf[:n]))
	return copy(buf, trimmed)
}

// trimOwnFrames removes logsink-internal frames from the top of a
// single-goroutine trace, keeping the "goroutine N [running]:" header.
func trimOwnFrames(trace string) string {
	lines := strings.Split(trace, "\n")
	if len(lines) == 0 {
		return trace
	}
	out := lines[:1]
	i := 1
	for i < len(lines)-1 {
		if !strings.HasPrefix(lines[i], framePrefix) {
			break
		}
		i += 2 // function line + file:line continuation
	}
	out = append(out, lines[i:]...)
	return strings.Join(out, "\n")
}
