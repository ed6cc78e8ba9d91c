// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key
// name and the file contents (trimmed) are the value.
//
// Supported key files: openai-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/template-mimic/internal/logger"
)

const (
	// DefaultDir is where the CLI looks for key files.
	DefaultDir = ".secrets/"

	// OpenAIKey is the key file holding the text-generation API key.
	OpenAIKey = "openai-api-key"

	// OpenAIKeyEnv is consulted when no key file is present.
	OpenAIKeyEnv = "OPENAI_API_KEY"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty map.
// Unreadable files are logged and skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.ForComponent("secrets").Warn("could not read secret", "name", name, "error", err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Resolve picks the first non-empty value among explicit, the loaded key
// file and the environment variable env.
func Resolve(explicit string, loaded map[string]string, key, env string) string {
	if explicit != "" {
		return explicit
	}
	if v := loaded[key]; v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(env))
}
