// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/template-mimic/internal/analyze"
	"github.com/pdiddy/template-mimic/pkg/types"
)

var sampleTexts = []string{
	"The city faces a major challenge. However, researchers suggest an innovative solution. Therefore, the problem is resolved.",
	"Solar power is a gift of nature. Like sunlight itself, it spreads, it warms, it lasts. Why wait?",
	"Background matters. The current situation is stable. The future holds progress and success.",
	"One",
}

func TestDiscourse_Reflexive(t *testing.T) {
	for _, text := range sampleTexts {
		p := analyze.Discourse(text)
		assert.InDelta(t, 1.0, Discourse(p, p), 1e-9, "text %q", text)
	}
}

func TestContent_Reflexive(t *testing.T) {
	for _, text := range sampleTexts {
		p := analyze.Content(text)
		assert.InDelta(t, 1.0, Content(p, p), 1e-9, "text %q", text)
	}
}

func TestScore_Reflexive(t *testing.T) {
	a := analyze.Text(sampleTexts[0])
	s := Score(a, a)
	assert.Equal(t, types.SimilarityScore{Discourse: 1, Content: 1, Overall: 1}, s)
}

func TestDiscourse_SubScores(t *testing.T) {
	tests := []struct {
		name string
		a, b types.DiscourseProfile
		want float64

		// asymmetric cases only hold with a as the original side.
		asymmetric bool
	}{
		{
			name: "sentence count only",
			a:    types.DiscourseProfile{SentenceCount: 4},
			b:    types.DiscourseProfile{SentenceCount: 2},
			want: 0.5,
		},
		{
			name: "connective overlap averaged with count",
			a: types.DiscourseProfile{
				SentenceCount: 2,
				Connectives:   map[types.Connective]int{types.ConnectiveCausal: 4, types.ConnectiveContrast: 1},
			},
			b: types.DiscourseProfile{
				SentenceCount: 2,
				Connectives:   map[types.Connective]int{types.ConnectiveCausal: 2, types.ConnectiveAddition: 3},
			},
			// count 1.0, connectives mean(causal 0.5, contrast 0.0) = 0.25
			want: 0.625,
		},
		{
			name: "rhetoric compared like connectives",
			a: types.DiscourseProfile{
				SentenceCount: 3,
				Rhetoric:      map[types.Rhetoric]int{types.RhetoricSimile: 1, types.RhetoricMetaphor: 2},
			},
			b: types.DiscourseProfile{
				SentenceCount: 3,
				Rhetoric:      map[types.Rhetoric]int{types.RhetoricSimile: 1, types.RhetoricMetaphor: 1},
			},
			// count 1.0, rhetoric mean(1.0, 0.5) = 0.75
			want: 0.875,
		},
		{
			name: "connective dropped by the paraphrase scores zero",
			a: types.DiscourseProfile{
				SentenceCount: 1,
				Connectives:   map[types.Connective]int{types.ConnectiveExample: 5},
			},
			b: types.DiscourseProfile{
				SentenceCount: 1,
				Connectives:   map[types.Connective]int{types.ConnectiveExample: 0},
			},
			// count 1.0, connectives 0.0
			want:       0.5,
			asymmetric: true,
		},
		{
			name: "connective only in the paraphrase is skipped",
			a: types.DiscourseProfile{
				SentenceCount: 1,
				Connectives:   map[types.Connective]int{types.ConnectiveExample: 0},
			},
			b: types.DiscourseProfile{
				SentenceCount: 1,
				Connectives:   map[types.Connective]int{types.ConnectiveExample: 5},
			},
			want:       1.0,
			asymmetric: true,
		},
		{
			name: "rhetoric missing from a nil generated map scores zero",
			a: types.DiscourseProfile{
				SentenceCount: 2,
				Rhetoric:      map[types.Rhetoric]int{types.RhetoricSimile: 2},
			},
			b:          types.DiscourseProfile{SentenceCount: 2},
			want:       0.5,
			asymmetric: true,
		},
		{
			name: "nothing qualifies",
			a:    types.DiscourseProfile{},
			b:    types.NewDiscourseProfile(),
			want: 0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Discourse(tt.a, tt.b), 1e-9)
			if !tt.asymmetric {
				assert.InDelta(t, tt.want, Discourse(tt.b, tt.a), 1e-9, "symmetry")
			}
		})
	}
}

func TestDiscourse_ParaphraseWithoutConnectives(t *testing.T) {
	orig := analyze.Discourse("Because it rained, we stayed. Therefore we slept.")
	gen := analyze.Discourse("We sat. We ate.")
	require.Positive(t, orig.Connectives[types.ConnectiveCausal])

	// count 1.0, connectives 0.0, rhetoric skipped
	assert.InDelta(t, 0.5, Discourse(orig, gen), 1e-9)
	assert.Less(t, Discourse(orig, gen), Discourse(orig, orig))
}

func TestContent_SubScores(t *testing.T) {
	tests := []struct {
		name string
		a, b types.ContentProfile
		want float64
	}{
		{
			name: "partial concept overlap with matching labels",
			a: types.ContentProfile{
				CoreConcepts:      []string{"energy", "grid", "solar"},
				ArgumentDirection: types.ArgumentDirection{Direction: types.DirectionPositive},
				LogicalFlow:       types.FlowOther,
			},
			b: types.ContentProfile{
				CoreConcepts:      []string{"energy", "wind", "grid"},
				ArgumentDirection: types.ArgumentDirection{Direction: types.DirectionPositive},
				LogicalFlow:       types.FlowOther,
			},
			want: (2.0/3.0 + 1 + 1) / 3,
		},
		{
			name: "empty concepts skip overlap",
			a: types.ContentProfile{
				CoreConcepts:      []string{},
				ArgumentDirection: types.ArgumentDirection{Direction: types.DirectionNegative},
				LogicalFlow:       types.FlowProblemAnalysisSolution,
			},
			b: types.ContentProfile{
				CoreConcepts:      []string{"energy"},
				ArgumentDirection: types.ArgumentDirection{Direction: types.DirectionPositive},
				LogicalFlow:       types.FlowProblemAnalysisSolution,
			},
			want: 0.5,
		},
		{
			name: "missing labels skip indicators",
			a:    types.ContentProfile{CoreConcepts: []string{"a", "b"}},
			b:    types.ContentProfile{CoreConcepts: []string{"b", "c", "d"}},
			want: 1.0 / 3.0,
		},
		{
			name: "nothing qualifies",
			a:    types.ContentProfile{},
			b:    types.ContentProfile{},
			want: 0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Content(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, Content(tt.b, tt.a), 1e-9, "symmetry")
		})
	}
}

func TestScore_Bounded(t *testing.T) {
	analyses := []types.Analysis{
		{},
		types.NewAnalysis(),
		analyze.Text(""),
	}
	for _, text := range sampleTexts {
		analyses = append(analyses, analyze.Text(text))
	}

	for i, a := range analyses {
		for j, b := range analyses {
			s := Score(a, b)
			for _, v := range []float64{s.Discourse, s.Content, s.Overall} {
				assert.GreaterOrEqual(t, v, 0.0, "pair %d,%d", i, j)
				assert.LessOrEqual(t, v, 1.0, "pair %d,%d", i, j)
			}
			assert.InDelta(t, 0.5*s.Discourse+0.5*s.Content, s.Overall, 1e-12)
		}
	}
}
