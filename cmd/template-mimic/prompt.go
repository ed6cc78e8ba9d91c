// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/template-mimic/internal/casefile"
	"github.com/pdiddy/template-mimic/internal/llm"
	"github.com/pdiddy/template-mimic/internal/pipeline"
	"github.com/pdiddy/template-mimic/pkg/types"
)

var promptCmd = &cobra.Command{
	Use:   "prompt CASE_DIR",
	Short: "Print the generation prompts for one case",
	Long: `Prompt loads a case directory, analyzes its templates and prints the
generation instruction each template would be sent with. Nothing is generated
or written.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().String("analysis", "", "template analysis: local or remote (default local)")
	addGenerationFlags(promptCmd)

	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	viper.BindPFlag("analysis", cmd.Flags().Lookup("analysis"))
	bindGenerationFlags(cmd)

	cfg, err := runConfig()
	if err != nil {
		return err
	}

	c, err := casefile.Load(args[0])
	if err != nil {
		return err
	}

	var analyzer llm.RemoteAnalyzer
	if cfg.Analysis == types.AnalysisRemote {
		backend, err := newBackend(cfg.Generation)
		if err != nil {
			return err
		}
		analyzer = llm.WithAnalyzerRetry(backend, cfg.Generation.MaxRetries)
	}

	w := cmd.OutOrStdout()
	for i, in := range pipeline.Prepare(cmd.Context(), c, analyzer) {
		marker := ""
		if i == c.HighWeightIndex {
			marker = " (high weight)"
		}
		fmt.Fprintf(w, "--- template %d%s ---\n%s\n", i+1, marker, in.Prompt)
	}
	return nil
}
