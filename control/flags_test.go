// File: control/flags_test.go
// Author: momentics <momentics@gmail.com>

package control_test

import (
	"testing"

	"github.com/momentics/agent-diag/api"
	"github.com/momentics/agent-diag/control"
)

func restoreFlags(t *testing.T) {
	t.Helper()
	lvl, stack := control.LogLevel(), control.CallstackDebug()
	t.Cleanup(func() {
		control.SetLogLevel(lvl)
		control.SetCallstackDebug(stack)
	})
}

func TestDefaultLevelIsError(t *testing.T) {
	restoreFlags(t)
	control.SetLogLevel(api.LevelError)
	if !control.LogLevelEnabled(api.LevelError) {
		t.Error("error level must be enabled at the default threshold")
	}
	if control.LogLevelEnabled(api.LevelInfo) {
		t.Error("info must be suppressed at the error threshold")
	}
}

func TestThresholdSemantics(t *testing.T) {
	restoreFlags(t)

	control.SetLogLevel(api.LevelOff)
	if control.LogLevelEnabled(api.LevelError) {
		t.Error("off must suppress everything")
	}

	control.SetLogLevel(api.LevelDebug)
	for _, lvl := range []api.LogLevel{api.LevelError, api.LevelWarning, api.LevelInfo, api.LevelDebug} {
		if !control.LogLevelEnabled(lvl) {
			t.Errorf("debug threshold must enable %v", lvl)
		}
	}
}

func TestCallstackDebugToggle(t *testing.T) {
	restoreFlags(t)
	control.SetCallstackDebug(true)
	if !control.CallstackDebug() {
		t.Error("flag not set")
	}
	control.SetCallstackDebug(false)
	if control.CallstackDebug() {
		t.Error("flag not cleared")
	}
}
