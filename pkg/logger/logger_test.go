package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_TagsServiceName(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Output: &buf})

	log.Info().Msg("started")

	line := buf.String()
	if !strings.Contains(line, `"service":"users-svc"`) {
		t.Fatalf("service field missing: %s", line)
	}
	if !strings.Contains(line, `"message":"started"`) {
		t.Fatalf("message missing: %s", line)
	}
}

func TestNew_LevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Output: &buf})

	log.Info().Msg("suppressed")
	log.Warn().Msg("emitted")

	line := buf.String()
	if strings.Contains(line, "suppressed") {
		t.Fatalf("info line emitted below threshold: %s", line)
	}
	if !strings.Contains(line, "emitted") {
		t.Fatalf("warn line missing: %s", line)
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{" Warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
