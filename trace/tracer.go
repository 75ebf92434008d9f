// Package trace provides optional execution tracing for the DI
// evaluator: function calls, returns and errors, filterable by glob
// pattern against the function name.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ditchy/types"
)

// Tracer logs evaluator activity to a writer, filtered by name pattern.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

var globalTracer *Tracer

// Init installs the global tracer. writer defaults to os.Stderr when nil.
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{enabled: enabled, filters: filters, writer: writer}
}

// IsEnabled reports whether a global tracer has been installed and enabled.
func IsEnabled() bool {
	return globalTracer != nil && globalTracer.enabled
}

func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Enter logs entry into a named evaluation span (a façade call such as
// execute/import; user-defined function invocations are logged by Call).
func (t *Tracer) Enter(name string) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] ENTER %s\n", name)
}

// Leave logs exit from a named evaluation span.
func (t *Tracer) Leave(name string) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] LEAVE %s\n", name)
}

// Call logs a function call with its evaluated argument vector.
func (t *Tracer) Call(name string, args []types.Value) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	argStrs := make([]string, len(args))
	for i, a := range args {
		argStrs[i] = a.String()
	}
	fmt.Fprintf(t.writer, "[TRACE] CALL %s(%s)\n", name, strings.Join(argStrs, ", "))
}

// Return logs a function's result value.
func (t *Tracer) Return(name string, result types.Value) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	resultStr := "null"
	if result != nil {
		resultStr = result.String()
	}
	fmt.Fprintf(t.writer, "[TRACE] RETURN %s => %s\n", name, resultStr)
}

// Error logs a span terminating with a DI error.
func (t *Tracer) Error(name string, err error) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] ERROR %s: %s\n", name, err)
}

// Package-level convenience wrappers over the global tracer; each is a
// no-op until Init has installed one.

func Enter(name string) {
	if globalTracer != nil {
		globalTracer.Enter(name)
	}
}

func Leave(name string) {
	if globalTracer != nil {
		globalTracer.Leave(name)
	}
}

func Call(name string, args []types.Value) {
	if globalTracer != nil {
		globalTracer.Call(name, args)
	}
}

func Return(name string, result types.Value) {
	if globalTracer != nil {
		globalTracer.Return(name, result)
	}
}

func Error(name string, err error) {
	if globalTracer != nil {
		globalTracer.Error(name, err)
	}
}
