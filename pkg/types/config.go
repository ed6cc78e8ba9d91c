// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AnalysisMode selects where template analyses come from.
type AnalysisMode string

const (
	// AnalysisLocal runs the pattern-based structural analyzer.
	AnalysisLocal AnalysisMode = "local"

	// AnalysisRemote asks the text-generation service for the analysis and
	// normalizes its reply.
	AnalysisRemote AnalysisMode = "remote"
)

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL overrides the API endpoint for OpenAI-compatible gateways.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// GenerationConfig holds settings for paraphrase generation.
type GenerationConfig struct {
	AIConfig `yaml:",inline" mapstructure:",squash"`

	// Temperature is the sampling temperature (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature" mapstructure:"temperature"`

	// MaxOutputTokens caps the length of each paraphrase (default 300).
	MaxOutputTokens int64 `json:"max_output_tokens" yaml:"max_output_tokens" mapstructure:"max_output_tokens"`
}

// RunConfig holds settings for a batch run over case directories.
type RunConfig struct {
	// SourceDir contains one subdirectory per case.
	SourceDir string `json:"source_dir" yaml:"source_dir" mapstructure:"source_dir"`

	// CasePattern is the glob a subdirectory name must match (default "case*").
	CasePattern string `json:"case_pattern" yaml:"case_pattern" mapstructure:"case_pattern"`

	// Analysis selects local or remote template analysis (default local).
	Analysis AnalysisMode `json:"analysis" yaml:"analysis" mapstructure:"analysis"`

	// WriteYAML also writes results.yaml beside results.json.
	WriteYAML bool `json:"write_yaml" yaml:"write_yaml" mapstructure:"write_yaml"`

	// DryRun builds and prints prompts without generating or writing results.
	DryRun bool `json:"dry_run" yaml:"dry_run" mapstructure:"dry_run"`

	Generation GenerationConfig `json:"generation" yaml:"generation" mapstructure:"generation"`
}
