// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package results scores generated paraphrases against their templates and
// assembles the per-case results artifact.
package results

import (
	"math"
	"strings"

	"github.com/pdiddy/template-mimic/internal/analyze"
	"github.com/pdiddy/template-mimic/internal/compare"
	"github.com/pdiddy/template-mimic/pkg/types"
)

// Input is everything known about one template before scoring.
type Input struct {
	OriginalText string
	Analysis     types.Analysis
	Prompt       string

	// GeneratedText is empty when generation failed.
	GeneratedText string
}

// Assemble scores every input and builds the run result. The record at
// highWeightIndex is flagged; an out-of-range index flags none.
func Assemble(inputs []Input, highWeightIndex int) types.RunResult {
	records := make([]types.TemplateRecord, len(inputs))
	for i, in := range inputs {
		records[i] = types.TemplateRecord{
			TemplateIndex:   i,
			IsHighWeight:    i == highWeightIndex,
			OriginalText:    in.OriginalText,
			Analysis:        in.Analysis,
			Prompt:          in.Prompt,
			GeneratedText:   in.GeneratedText,
			SimilarityScore: Similarity(in.Analysis, in.GeneratedText),
		}
	}

	return types.RunResult{
		Templates:  records,
		Statistics: Summarize(records, highWeightIndex),
	}
}

// Similarity analyzes generated and compares it with original, rounding to
// three decimals. Overall is blended from the rounded parts so the artifact
// stays self-consistent. Blank generated text scores zero without comparison.
func Similarity(original types.Analysis, generated string) types.SimilarityScore {
	if strings.TrimSpace(generated) == "" {
		return types.SimilarityScore{}
	}
	s := compare.Score(original, analyze.Text(generated))
	d, c := Round(s.Discourse), Round(s.Content)
	return types.SimilarityScore{
		Discourse: d,
		Content:   c,
		Overall:   Round(compare.Blend(d, c)),
	}
}

// Summarize aggregates overall similarity across records. A case with no
// records yields all-zero statistics.
func Summarize(records []types.TemplateRecord, highWeightIndex int) types.Statistics {
	stats := types.Statistics{
		TotalTemplates:          len(records),
		HighWeightTemplateIndex: highWeightIndex,
	}
	if len(records) == 0 {
		return stats
	}

	var total, normal float64
	var normalCount int
	for _, r := range records {
		total += r.SimilarityScore.Overall
		if r.IsHighWeight {
			stats.HighWeightSimilarity = r.SimilarityScore.Overall
			continue
		}
		normal += r.SimilarityScore.Overall
		normalCount++
	}

	stats.AverageOverallSimilarity = Round(total / float64(len(records)))
	if normalCount > 0 {
		stats.NormalSimilarityAverage = Round(normal / float64(normalCount))
	}
	return stats
}

// Round rounds v to three decimal places.
func Round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
