// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, OpenAIKey, "  sk-abc123  \n")
				writeFile(t, dir, "gateway-token", "gt_xyz")
				return dir
			},
			want: map[string]string{
				OpenAIKey:       "sk-abc123",
				"gateway-token": "gt_xyz",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, OpenAIKey, "sk-real")
				writeFile(t, dir, "empty-key", "   \n")
				writeFile(t, dir, ".gitkeep", "")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				OpenAIKey: "sk-real",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, " sk-env ")

	loaded := map[string]string{OpenAIKey: "sk-file"}

	assert.Equal(t, "sk-flag", Resolve("sk-flag", loaded, OpenAIKey, OpenAIKeyEnv))
	assert.Equal(t, "sk-file", Resolve("", loaded, OpenAIKey, OpenAIKeyEnv))
	assert.Equal(t, "sk-env", Resolve("", nil, OpenAIKey, OpenAIKeyEnv))

	t.Setenv(OpenAIKeyEnv, "")
	assert.Equal(t, "", Resolve("", map[string]string{}, OpenAIKey, OpenAIKeyEnv))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
