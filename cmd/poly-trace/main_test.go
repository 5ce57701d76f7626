package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/cbegin/poly-go"
)

func TestTraceLogsEachSample(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	engine, err := poly.New(0, 44100, poly.WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[SEED]") {
		t.Fatalf("construction dump missing:\n%s", buf.String())
	}
	buf.Reset()

	trace(engine, logger, 25, true)
	if got := strings.Count(buf.String(), "msg=sample"); got != 25 {
		t.Fatalf("logged %d samples, want 25", got)
	}
	if engine.Elapsed() != 25 {
		t.Fatalf("elapsed = %d", engine.Elapsed())
	}
}
