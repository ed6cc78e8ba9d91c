// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/template-mimic/internal/llm"
	"github.com/pdiddy/template-mimic/internal/secrets"
	"github.com/pdiddy/template-mimic/pkg/types"
)

// addGenerationFlags registers the flags shared by subcommands that talk to
// the text-generation service and binds them to their config keys.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().String("model", "", "model identifier (default "+llm.DefaultModel+")")
	cmd.Flags().String("base-url", "", "API base URL for OpenAI-compatible gateways")
	cmd.Flags().String("api-key", "", "API key (default: .secrets/openai-api-key or $OPENAI_API_KEY)")
}

// bindGenerationFlags binds the flags added by addGenerationFlags. It runs
// from the subcommand's RunE so flags of sibling commands do not collide.
func bindGenerationFlags(cmd *cobra.Command) {
	viper.BindPFlag("generation.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("generation.base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("generation.api_key", cmd.Flags().Lookup("api-key"))
}

// generationConfig reads generation settings from flags, config and env.
func generationConfig() types.GenerationConfig {
	return types.GenerationConfig{
		AIConfig: types.AIConfig{
			Model:      viper.GetString("generation.model"),
			BaseURL:    viper.GetString("generation.base_url"),
			MaxRetries: viper.GetInt("generation.max_retries"),
			APIKey: secrets.Resolve(
				viper.GetString("generation.api_key"),
				loadedSecrets, secrets.OpenAIKey, secrets.OpenAIKeyEnv,
			),
		},
		Temperature:     viper.GetFloat64("generation.temperature"),
		MaxOutputTokens: viper.GetInt64("generation.max_output_tokens"),
	}
}

// runConfig reads the batch run settings.
func runConfig() (types.RunConfig, error) {
	cfg := types.RunConfig{
		SourceDir:   viper.GetString("source_dir"),
		CasePattern: viper.GetString("case_pattern"),
		Analysis:    types.AnalysisMode(viper.GetString("analysis")),
		WriteYAML:   viper.GetBool("write_yaml"),
		DryRun:      viper.GetBool("dry_run"),
		Generation:  generationConfig(),
	}
	switch cfg.Analysis {
	case types.AnalysisLocal, types.AnalysisRemote:
	default:
		return cfg, fmt.Errorf("unknown analysis mode %q (want local or remote)", cfg.Analysis)
	}
	return cfg, nil
}

// newBackend builds the OpenAI backend, failing early without an API key.
func newBackend(cfg types.GenerationConfig) (*llm.OpenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key: set --api-key, write %s%s or export %s",
			secrets.DefaultDir, secrets.OpenAIKey, secrets.OpenAIKeyEnv)
	}
	return llm.NewOpenAIBackend(cfg), nil
}
