// File: api/log_test.go
// Author: momentics <momentics@gmail.com>

package api_test

import (
	"testing"

	"github.com/momentics/agent-diag/api"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want api.LogLevel
		ok   bool
	}{
		{"off", api.LevelOff, true},
		{"error", api.LevelError, true},
		{"Error", api.LevelError, true},
		{"WARNING", api.LevelWarning, true},
		{"warn", api.LevelWarning, true},
		{"info", api.LevelInfo, true},
		{"debug", api.LevelDebug, true},
		{"verbose", api.LevelOff, false},
		{"", api.LevelOff, false},
	}
	for _, tc := range cases {
		got, ok := api.ParseLogLevel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseLogLevel(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLevelRoundTrip(t *testing.T) {
	levels := []api.LogLevel{api.LevelOff, api.LevelError, api.LevelWarning, api.LevelInfo, api.LevelDebug}
	for _, l := range levels {
		parsed, ok := api.ParseLogLevel(l.String())
		if !ok || parsed != l {
			t.Errorf("round trip failed for %v", l)
		}
	}
}

func TestLogLevelOrdering(t *testing.T) {
	if !(api.LevelOff < api.LevelError && api.LevelError < api.LevelWarning &&
		api.LevelWarning < api.LevelInfo && api.LevelInfo < api.LevelDebug) {
		t.Error("level ordering broken; threshold comparisons depend on it")
	}
}

func TestCategoryNames(t *testing.T) {
	if api.CategoryDebug.String() != "debug" || api.CategoryDump.String() != "dump" {
		t.Error("category names changed")
	}
	if api.LogCategory(99).String() != "unknown" {
		t.Error("out-of-range category must print unknown")
	}
}
