// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/template-mimic/internal/llm"
	"github.com/pdiddy/template-mimic/internal/pipeline"
	"github.com/pdiddy/template-mimic/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process every case directory and write results.json",
	Long: `Run discovers case directories under the source directory, analyzes each
template, asks the text-generation service for a paraphrase, scores it against
the template and writes results.json into the case directory.

A failed generation call leaves that template with empty text and a zero
score; the case still completes.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("source-dir", "", "directory containing case subdirectories (default source)")
	runCmd.Flags().String("pattern", "", "glob a case directory name must match (default case*)")
	runCmd.Flags().String("analysis", "", "template analysis: local or remote (default local)")
	runCmd.Flags().Bool("yaml", false, "also write results.yaml")
	runCmd.Flags().Bool("dry-run", false, "print prompts without generating or writing results")
	addGenerationFlags(runCmd)

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	viper.BindPFlag("source_dir", cmd.Flags().Lookup("source-dir"))
	viper.BindPFlag("case_pattern", cmd.Flags().Lookup("pattern"))
	viper.BindPFlag("analysis", cmd.Flags().Lookup("analysis"))
	viper.BindPFlag("write_yaml", cmd.Flags().Lookup("yaml"))
	viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	bindGenerationFlags(cmd)

	cfg, err := runConfig()
	if err != nil {
		return err
	}

	var deps pipeline.Deps
	if !cfg.DryRun || cfg.Analysis == types.AnalysisRemote {
		backend, err := newBackend(cfg.Generation)
		if err != nil {
			return err
		}
		deps.Generator = llm.WithRetry(backend, cfg.Generation.MaxRetries)
		if cfg.Analysis == types.AnalysisRemote {
			deps.Analyzer = llm.WithAnalyzerRetry(backend, cfg.Generation.MaxRetries)
		}
	}

	opts := pipeline.Options{WriteYAML: cfg.WriteYAML, DryRun: cfg.DryRun}
	summary, err := pipeline.ProcessAll(cmd.Context(), cfg.SourceDir, cfg.CasePattern, deps, opts, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%d case(s): %d processed, %d skipped, %d failed\n",
		summary.Total(), summary.Processed, summary.Skipped, summary.Failed)
	if summary.HasFailures() {
		return fmt.Errorf("%d case(s) failed", summary.Failed)
	}
	return nil
}
