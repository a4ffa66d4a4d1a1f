// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package progress

import (
	"strings"
	"testing"
)

func TestReportNilSink(t *testing.T) {
	// Must not panic.
	Report(nil, StageStart, "searching")
}

func TestReportSwallowsPanic(t *testing.T) {
	sink := Func(func(Stage, string) { panic("sink blew up") })
	Report(sink, StageFailure, "boom") // must not propagate
}

func TestWriterSink(t *testing.T) {
	var sb strings.Builder
	sink := Writer(&sb)

	Report(sink, StageStart, "Searching for papers...")
	Reportf(sink, StageSuccess, "returned %d records", 3)

	got := sb.String()
	if !strings.Contains(got, "start: Searching for papers...") {
		t.Errorf("missing start line in %q", got)
	}
	if !strings.Contains(got, "success: returned 3 records") {
		t.Errorf("missing success line in %q", got)
	}
}

func TestDiscard(t *testing.T) {
	Report(Discard, StageStart, "ignored")
}

func TestFuncAdapter(t *testing.T) {
	var gotStage Stage
	var gotMsg string
	sink := Func(func(s Stage, m string) { gotStage, gotMsg = s, m })

	Report(sink, StageFailure, "HTTP 500")

	if gotStage != StageFailure || gotMsg != "HTTP 500" {
		t.Errorf("got (%q, %q), want (failure, HTTP 500)", gotStage, gotMsg)
	}
}
