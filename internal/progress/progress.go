// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package progress carries optional status text from a tool call to the
// host UI. Reporting is purely observational: it never changes what a
// call returns, and a missing or misbehaving sink never fails the call.
package progress

import (
	"fmt"
	"io"
)

// Stage marks where in a call a status message was emitted.
type Stage string

const (
	StageStart   Stage = "start"
	StageSuccess Stage = "success"
	StageFailure Stage = "failure"
)

// Sink receives short human-readable status strings at call boundaries.
// Implementations should be cheap; slow sinks delay the call they
// observe but cannot fail it.
type Sink interface {
	Report(stage Stage, message string)
}

// Report sends a message to sink, tolerating a nil sink and swallowing
// panics. Tools call this instead of touching the sink directly.
func Report(sink Sink, stage Stage, message string) {
	if sink == nil {
		return
	}
	defer func() { recover() }()
	sink.Report(stage, message)
}

// Reportf is Report with formatting.
func Reportf(sink Sink, stage Stage, format string, args ...any) {
	Report(sink, stage, fmt.Sprintf(format, args...))
}

// Writer returns a Sink that writes one line per message to w, in the
// form "stage: message". Useful for CLI stderr output.
func Writer(w io.Writer) Sink {
	return writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Report(stage Stage, message string) {
	fmt.Fprintf(s.w, "%s: %s\n", stage, message)
}

// Discard is a Sink that drops every message.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Report(Stage, string) {}

// Func adapts a plain function to the Sink interface.
type Func func(stage Stage, message string)

func (f Func) Report(stage Stage, message string) { f(stage, message) }
