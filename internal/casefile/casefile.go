// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package casefile discovers case directories and reads their inputs.
//
// A case directory holds context.txt, topic.txt, high_weight.txt and
// template1.json through template4.json. The template files are plain text
// despite their extension. An optional case.yaml manifest replaces the
// individual files.
package casefile

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pdiddy/template-mimic/internal/logger"
)

const (
	// DefaultPattern matches case directory names.
	DefaultPattern = "case*"

	// TemplateCount is the number of templateN.json files a case holds.
	TemplateCount = 4

	// ManifestFile is the optional single-file form of a case.
	ManifestFile = "case.yaml"

	contextFile    = "context.txt"
	topicFile      = "topic.txt"
	highWeightFile = "high_weight.txt"
)

// Case is the loaded input of one case directory.
type Case struct {
	Name    string `yaml:"-"`
	Dir     string `yaml:"-"`
	Context string `yaml:"context"`
	Topic   string `yaml:"topic"`

	// HighWeightIndex is zero-based; -1 means no template is high-weight.
	HighWeightIndex int `yaml:"high_weight_index"`

	Templates []string `yaml:"templates"`
}

// Discover returns the subdirectories of sourceDir whose base name matches
// pattern, sorted by name. An empty pattern means DefaultPattern. A missing
// sourceDir is an error.
func Discover(sourceDir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid case pattern %q", pattern)
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", sourceDir, err)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if ok, _ := doublestar.Match(pattern, entry.Name()); ok {
			dirs = append(dirs, filepath.Join(sourceDir, entry.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// Load reads the case in dir. Missing or unreadable files are logged and
// read as empty text; they never fail the load. Only a malformed manifest
// is an error.
func Load(dir string) (Case, error) {
	log := logger.ForComponent("casefile")
	c := Case{Name: filepath.Base(dir), Dir: dir}

	manifest := filepath.Join(dir, ManifestFile)
	if data, err := os.ReadFile(manifest); err == nil {
		return loadManifest(c, manifest, data)
	}

	c.Context = readText(log, filepath.Join(dir, contextFile))
	c.Topic = readText(log, filepath.Join(dir, topicFile))
	c.HighWeightIndex = parseIndex(log, readText(log, filepath.Join(dir, highWeightFile)))

	c.Templates = make([]string, TemplateCount)
	for i := range c.Templates {
		c.Templates[i] = readText(log, filepath.Join(dir, fmt.Sprintf("template%d.json", i+1)))
	}
	return c, nil
}

func loadManifest(c Case, path string, data []byte) (Case, error) {
	text, err := decodeText(data)
	if err != nil {
		return Case{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	c.HighWeightIndex = -1
	if err := yaml.Unmarshal([]byte(text), &c); err != nil {
		return Case{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	c.Context = strings.TrimSpace(c.Context)
	c.Topic = strings.TrimSpace(c.Topic)
	for i, t := range c.Templates {
		c.Templates[i] = strings.TrimSpace(t)
	}
	return c, nil
}

// ReadText returns the trimmed contents of a UTF-8 or UTF-16 text file
// with any byte order mark removed.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	text, err := decodeText(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return strings.TrimSpace(text), nil
}

// readText is ReadText with failures logged and read as "".
func readText(log *slog.Logger, path string) string {
	text, err := ReadText(path)
	if err != nil {
		log.Warn("could not read case file", "path", path, "error", err)
		return ""
	}
	return text
}

// decodeText converts UTF-8 or BOM-marked UTF-16 bytes to a UTF-8 string
// without the byte order mark.
func decodeText(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// parseIndex reads the high-weight index. Anything that is not an integer
// yields -1 so that no template is flagged.
func parseIndex(log *slog.Logger, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Warn("invalid high-weight index", "value", s)
		return -1
	}
	return n
}
