// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"ERROR", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInitAndLog(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(Config{})

	Info().Str("component", "test").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"test"`) {
		t.Errorf("log output missing field: %s", out)
	}
	if !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("log output missing message: %s", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}

	id := GenerateRequestID()
	if id == "" {
		t.Fatal("GenerateRequestID() returned empty string")
	}

	ctx = ContextWithRequestID(ctx, id)
	if got := RequestIDFromContext(ctx); got != id {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, id)
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	child := NewTestLogger(&buf).With().Str("scope", "ctx").Logger()

	ctx := ContextWithLogger(context.Background(), child)
	got := LoggerFromContext(ctx)
	got.Info().Msg("scoped")

	if !strings.Contains(buf.String(), `"scope":"ctx"`) {
		t.Errorf("context logger not used: %s", buf.String())
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(NewTestLogger(&buf))
	defer SetLogger(prev)

	slogger := slog.New(NewSlogHandler())
	slogger.Info("adapted", "count", 3, "name", "pipeline")

	out := buf.String()
	if !strings.Contains(out, `"count":3`) {
		t.Errorf("slog int attr not forwarded: %s", out)
	}
	if !strings.Contains(out, `"name":"pipeline"`) {
		t.Errorf("slog string attr not forwarded: %s", out)
	}
	if !strings.Contains(out, `"message":"adapted"`) {
		t.Errorf("slog message not forwarded: %s", out)
	}
}

func TestSlogAdapterGroups(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(NewTestLogger(&buf))
	defer SetLogger(prev)

	slogger := slog.New(NewSlogHandler()).WithGroup("history")
	slogger.Warn("write failed", "records", 2)

	if !strings.Contains(buf.String(), `"history.records":2`) {
		t.Errorf("group prefix not applied: %s", buf.String())
	}
}
