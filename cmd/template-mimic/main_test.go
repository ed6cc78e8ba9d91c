// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/template-mimic/pkg/types"
)

const paragraph = "The problem is traffic. Analysis shows the cause is sprawl. The solution is transit."

// execute runs the root command with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "template-mimic dev\n", out)
}

func TestAnalyze_Stdin(t *testing.T) {
	out, err := execute(t, paragraph, "analyze", "-")
	require.NoError(t, err)

	var a types.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, 3, a.Discourse.SentenceCount)
	assert.Equal(t, types.FlowProblemAnalysisSolution, a.Content.LogicalFlow)
}

func TestAnalyze_FileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.txt")
	require.NoError(t, os.WriteFile(path, []byte(paragraph), 0o644))

	out, err := execute(t, "", "analyze", "--format", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "logical_flow: problem-analysis-solution")
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "orig.txt")
	gen := filepath.Join(dir, "gen.txt")
	require.NoError(t, os.WriteFile(orig, []byte(paragraph), 0o644))
	require.NoError(t, os.WriteFile(gen, []byte(paragraph), 0o644))

	out, err := execute(t, "", "compare", "--format", "json", orig, gen)
	require.NoError(t, err)

	var s types.SimilarityScore
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, types.SimilarityScore{Discourse: 1, Content: 1, Overall: 1}, s)
}

func TestWriteFormatted_Unknown(t *testing.T) {
	assert.Error(t, writeFormatted(&bytes.Buffer{}, "xml", struct{}{}))
}

func TestReadInput_Missing(t *testing.T) {
	_, err := readInput(strings.NewReader(""), filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)
}

func TestRunConfig_ReadsStructKeys(t *testing.T) {
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(
		"source_dir: cases\ncase_pattern: \"set*\"\nanalysis: remote\nwrite_yaml: true\ndry_run: true\n",
	)))
	t.Cleanup(func() { viper.ReadConfig(strings.NewReader("")) })

	cfg, err := runConfig()
	require.NoError(t, err)
	assert.Equal(t, "cases", cfg.SourceDir)
	assert.Equal(t, "set*", cfg.CasePattern)
	assert.Equal(t, types.AnalysisRemote, cfg.Analysis)
	assert.True(t, cfg.WriteYAML)
	assert.True(t, cfg.DryRun)
}
