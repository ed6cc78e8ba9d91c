// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelWarn, false},
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{" warning ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelWarn, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			require.NoError(t, err, tt.in)
		}
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestInit_JSONForComponent(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, Format: "json", Output: &buf})

	ForComponent("pipeline").Info("loaded", "case", "case01")
	ForComponent("pipeline").Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, `"component":"pipeline"`)
	assert.Contains(t, out, `"case":"case01"`)
	assert.NotContains(t, out, "hidden")
}

func TestInit_Text(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Config{Level: slog.LevelWarn, Format: "text", Output: &buf})
	ForComponent("casefile").Warn("missing file", "name", "topic.txt")

	assert.Contains(t, buf.String(), "component=casefile")
	assert.Contains(t, buf.String(), "name=topic.txt")
}
