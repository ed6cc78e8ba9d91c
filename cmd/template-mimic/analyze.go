// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/template-mimic/internal/analyze"
	"github.com/pdiddy/template-mimic/internal/casefile"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Print the structural analysis of a paragraph",
	Long: `Analyze reads a paragraph from a file, or from standard input when the
argument is "-" or missing, and prints its discourse and content structure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	text, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	return writeFormatted(cmd.OutOrStdout(), format, analyze.Text(text))
}

// readInput reads path, or r when path is "-".
func readInput(r io.Reader, path string) (string, error) {
	if path != "-" {
		return casefile.ReadText(path)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// writeFormatted prints v as indented JSON or as YAML.
func writeFormatted(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want json or yaml)", format)
}
