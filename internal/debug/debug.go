// Package debug provides opt-in diagnostic logging for the engine. Output
// is disabled unless a writer is installed or the build flag is set, so the
// hot paths pay one nil check.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// EnableDebug can be overridden at build time:
//
//	go build -ldflags "-X github.com/standardbeagle/textsim/internal/debug.EnableDebug=true"
var EnableDebug = "false"

var (
	mu     sync.Mutex
	output io.Writer
)

func init() {
	if EnableDebug == "true" {
		output = os.Stderr
	}
}

// SetOutput installs a custom writer for debug output. Pass nil to disable.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Enabled reports whether debug output is currently being written.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return output != nil
}

// Logf writes a timestamped debug line when output is enabled.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if output == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(output, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}
