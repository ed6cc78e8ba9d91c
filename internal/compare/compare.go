// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compare scores how closely two structural analyses agree.
// Each score averages only the sub-scores that have a basis for comparison.
// Connective and rhetoric categories are driven by the original side, so a
// device the paraphrase drops counts as disagreement. Every function returns
// a value in [0,1] and tolerates nil maps and empty slices.
package compare

import (
	"github.com/pdiddy/template-mimic/pkg/types"
)

// Score compares two analyses and blends discourse and content equally.
func Score(original, generated types.Analysis) types.SimilarityScore {
	d := Discourse(original.Discourse, generated.Discourse)
	c := Content(original.Content, generated.Content)
	return types.SimilarityScore{
		Discourse: d,
		Content:   c,
		Overall:   Blend(d, c),
	}
}

// Blend returns the unweighted mean of a discourse and a content score.
func Blend(discourse, content float64) float64 {
	return 0.5*discourse + 0.5*content
}

// Discourse averages sentence-count closeness, connective closeness and
// rhetoric closeness over whichever of them qualify. a is the original and
// b the generated profile; the category sub-scores are not symmetric.
func Discourse(a, b types.DiscourseProfile) float64 {
	var m mean

	if a.SentenceCount > 0 || b.SentenceCount > 0 {
		m.add(closeness(a.SentenceCount, b.SentenceCount))
	}
	if s, ok := categoryCloseness(types.Connectives, a.Connectives, b.Connectives); ok {
		m.add(s)
	}
	if s, ok := categoryCloseness(types.Rhetorics, a.Rhetoric, b.Rhetoric); ok {
		m.add(s)
	}
	return m.value()
}

// Content averages core-concept overlap, argument-direction agreement and
// logical-flow agreement over whichever of them qualify.
func Content(a, b types.ContentProfile) float64 {
	var m mean

	if len(a.CoreConcepts) > 0 && len(b.CoreConcepts) > 0 {
		m.add(overlap(a.CoreConcepts, b.CoreConcepts))
	}
	if a.ArgumentDirection.Direction != "" && b.ArgumentDirection.Direction != "" {
		m.add(indicator(a.ArgumentDirection.Direction == b.ArgumentDirection.Direction))
	}
	if a.LogicalFlow != "" && b.LogicalFlow != "" {
		m.add(indicator(a.LogicalFlow == b.LogicalFlow))
	}
	return m.value()
}

// categoryCloseness averages closeness over the categories the original
// side a uses. A category missing from b counts as zero there. It reports
// false when no category is positive in a.
func categoryCloseness[K comparable](keys []K, a, b map[K]int) (float64, bool) {
	var m mean
	for _, k := range keys {
		if x := a[k]; x > 0 {
			m.add(closeness(x, b[k]))
		}
	}
	return m.value(), m.n > 0
}

// closeness is 1 - |x-y| / max(x, y, 1).
func closeness(x, y int) float64 {
	diff := x - y
	if diff < 0 {
		diff = -diff
	}
	return 1 - float64(diff)/float64(max(x, y, 1))
}

// overlap is |A∩B| / max(|A|, |B|, 1) over distinct concepts.
func overlap(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, w := range a {
		setA[w] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, w := range b {
		setB[w] = struct{}{}
	}

	shared := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(max(len(setA), len(setB), 1))
}

func indicator(match bool) float64 {
	if match {
		return 1
	}
	return 0
}

// mean accumulates included sub-scores. An empty mean is 0.
type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n++
}

func (m mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}
