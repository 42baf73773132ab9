// Package tracing is a thin facade for the tracer used by all phono packages.
//
// Tracing output is routed to the schuko core-tracer. Clients of the library
// select a tracing adapter at application start-up; tests redirect tracing
// to the test log by calling SetTestingLog.
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Tracer returns the tracer all phono packages log to.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Debugf traces a message at debug level.
func Debugf(format string, args ...interface{}) {
	gtrace.CoreTracer.Debugf(format, args...)
}

// Infof traces a message at info level.
func Infof(format string, args ...interface{}) {
	gtrace.CoreTracer.Infof(format, args...)
}

// Errorf traces a message at error level.
func Errorf(format string, args ...interface{}) {
	gtrace.CoreTracer.Errorf(format, args...)
}

// P adds a key/value field to the next trace message.
func P(key string, val interface{}) tracing.Trace {
	return gtrace.CoreTracer.P(key, val)
}

// SetTestingLog redirects all tracing output to the log of t.
// The redirection is undone automatically when the test finishes.
func SetTestingLog(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
}
