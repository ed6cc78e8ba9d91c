// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SimilarityScore is the agreement between an original template's analysis
// and the analysis of its generated paraphrase. Every field lies in [0,1].
type SimilarityScore struct {
	Discourse float64 `json:"discourse" yaml:"discourse"`
	Content   float64 `json:"content" yaml:"content"`

	// Overall is 0.5*Discourse + 0.5*Content, rounded to three decimals
	// in results artifacts.
	Overall float64 `json:"overall" yaml:"overall"`
}

// TemplateRecord is the outcome for one template of a case run.
type TemplateRecord struct {
	// TemplateIndex is the zero-based position of the template in the case.
	TemplateIndex int `json:"template_index" yaml:"template_index"`

	// IsHighWeight marks the single template that received reinforced
	// generation instructions.
	IsHighWeight bool `json:"is_high_weight" yaml:"is_high_weight"`

	OriginalText string   `json:"original_text" yaml:"original_text"`
	Analysis     Analysis `json:"analysis" yaml:"analysis"`

	// Prompt is the generation instruction sent for this template.
	Prompt string `json:"prompt,omitempty" yaml:"prompt,omitempty"`

	// GeneratedText is empty when the generation call failed.
	GeneratedText string `json:"generated_text" yaml:"generated_text"`

	SimilarityScore SimilarityScore `json:"similarity_score" yaml:"similarity_score"`
}

// Statistics aggregates similarity across the records of a case run.
type Statistics struct {
	TotalTemplates           int     `json:"total_templates" yaml:"total_templates"`
	HighWeightTemplateIndex  int     `json:"high_weight_template_index" yaml:"high_weight_template_index"`
	AverageOverallSimilarity float64 `json:"average_overall_similarity" yaml:"average_overall_similarity"`
	HighWeightSimilarity     float64 `json:"high_weight_similarity" yaml:"high_weight_similarity"`
	NormalSimilarityAverage  float64 `json:"normal_similarity_avg" yaml:"normal_similarity_avg"`
}

// RunResult is the results artifact written for one case.
type RunResult struct {
	Templates  []TemplateRecord `json:"templates" yaml:"templates"`
	Statistics Statistics       `json:"statistics" yaml:"statistics"`
}
