// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/template-mimic/pkg/types"
)

const (
	// JSONFile is the results artifact written beside a case's inputs.
	JSONFile = "results.json"

	// YAMLFile is the optional YAML mirror of JSONFile.
	YAMLFile = "results.yaml"
)

// WriteJSON writes result to dir/results.json and returns the path.
func WriteJSON(dir string, result types.RunResult) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return "", fmt.Errorf("marshaling results: %w", err)
	}

	path := filepath.Join(dir, JSONFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// WriteYAML writes result to dir/results.yaml and returns the path.
func WriteYAML(dir string, result types.RunResult) (string, error) {
	data, err := yaml.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshaling results: %w", err)
	}

	path := filepath.Join(dir, YAMLFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// ReadJSON loads a results artifact written by WriteJSON.
func ReadJSON(path string) (types.RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RunResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var result types.RunResult
	if err := json.Unmarshal(data, &result); err != nil {
		return types.RunResult{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return result, nil
}
