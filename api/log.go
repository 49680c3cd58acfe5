// File: api/log.go
// Author: momentics <momentics@gmail.com>
//
// Log sink contract plus severity and category enumerations shared by
// the diagnostics core and its sinks.

package api

import "strings"

// LogCategory tags an emitted line with its output channel.
type LogCategory int

const (
	CategoryDebug LogCategory = iota
	CategoryProtocol
	CategoryDump
)

func (c LogCategory) String() string {
	switch c {
	case CategoryDebug:
		return "debug"
	case CategoryProtocol:
		return "protocol"
	case CategoryDump:
		return "dump"
	default:
		return "unknown"
	}
}

// LogLevel is the process-wide verbosity threshold. Levels are ordered:
// a configured level enables itself and everything below it.
type LogLevel int32

const (
	LevelOff LogLevel = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLogLevel maps a case-insensitive level name to its LogLevel.
func ParseLogLevel(name string) (LogLevel, bool) {
	switch strings.ToLower(name) {
	case "off":
		return LevelOff, true
	case "error":
		return LevelError, true
	case "warning", "warn":
		return LevelWarning, true
	case "info":
		return LevelInfo, true
	case "debug":
		return LevelDebug, true
	default:
		return LevelOff, false
	}
}

// LogSink consumes pre-rendered diagnostic lines. Both calls are
// fire-and-forget: the core never inspects a result and never retries.
type LogSink interface {
	// Puts emits one already-formatted line under the given category.
	Puts(cat LogCategory, line string)

	// Callstack emits a trace of the calling goroutine's stack.
	Callstack()
}
