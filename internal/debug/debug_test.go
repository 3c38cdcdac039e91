package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisabledByDefault(t *testing.T) {
	SetOutput(nil)
	if Enabled() {
		t.Fatal("debug output must be disabled with a nil writer")
	}
	// Must not panic with no writer installed.
	Logf("dropped %d", 1)
}

func TestLogfWritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	if !Enabled() {
		t.Fatal("writer installed but Enabled is false")
	}

	Logf("cache: evicted to %d entries", 42)

	out := buf.String()
	if !strings.Contains(out, "cache: evicted to 42 entries") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("output should carry a timestamp prefix, got %q", out)
	}
}
