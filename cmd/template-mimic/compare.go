// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/template-mimic/internal/analyze"
	"github.com/pdiddy/template-mimic/internal/results"
)

var compareCmd = &cobra.Command{
	Use:   "compare ORIGINAL GENERATED",
	Short: "Score a paraphrase against its template",
	Long: `Compare analyzes both files and prints discourse, content and overall
similarity, each in [0,1] and rounded to three decimals. Either argument may
be "-" to read standard input.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	original, err := readInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	generated, err := readInput(cmd.InOrStdin(), args[1])
	if err != nil {
		return err
	}

	return writeFormatted(cmd.OutOrStdout(), format, results.Similarity(analyze.Text(original), generated))
}
