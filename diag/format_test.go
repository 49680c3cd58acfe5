// File: diag/format_test.go
// Author: momentics <momentics@gmail.com>

package diag

import (
	"strings"
	"testing"
)

func TestAppendBoundedRendersExactly(t *testing.T) {
	out := appendBounded(nil, MaxLen, "file %s not found", "config.xml")
	if got := string(out); got != "file config.xml not found" {
		t.Errorf("rendered %q", got)
	}
}

func TestAppendBoundedTruncates(t *testing.T) {
	long := strings.Repeat("x", MaxLen*2)
	out := appendBounded(nil, MaxLen, "%s", long)
	if len(out) != MaxLen-1 {
		t.Errorf("truncated length = %d, want %d", len(out), MaxLen-1)
	}
	for i, b := range out {
		if b != 'x' {
			t.Fatalf("byte %d corrupted: %q", i, b)
		}
	}
}

func TestAppendBoundedExactFit(t *testing.T) {
	// MaxLen-1 rendered bytes fit without loss.
	msg := strings.Repeat("y", MaxLen-1)
	out := appendBounded(nil, MaxLen, "%s", msg)
	if string(out) != msg {
		t.Errorf("exact-fit message altered, len %d", len(out))
	}
}

func TestAppendBoundedDegenerateCapacity(t *testing.T) {
	if out := appendBounded(nil, 0, "anything"); len(out) != 0 {
		t.Errorf("capacity 0 produced %d bytes", len(out))
	}
	if out := appendBounded(nil, 1, "anything"); len(out) != 0 {
		t.Errorf("capacity 1 produced %d bytes", len(out))
	}
}

func TestAppendBoundedReusesDst(t *testing.T) {
	dst := make([]byte, 0, MaxLen)
	out := appendBounded(dst, MaxLen, "n=%d", 7)
	if string(out) != "n=7" {
		t.Errorf("rendered %q", out)
	}
	if &out[0] != &dst[:1][0] {
		t.Error("small render should stay in the provided buffer")
	}
}
