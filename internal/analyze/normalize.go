// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"slices"
	"strings"

	"github.com/pdiddy/template-mimic/pkg/types"
)

// RawAnalysis is an analysis as received from outside the analyzer, such as
// a model reply or a hand-edited file. Pointer and map fields distinguish a
// missing field from a zero value.
type RawAnalysis struct {
	Discourse *RawDiscourse `json:"discourse_structure" yaml:"discourse_structure"`
	Content   *RawContent   `json:"content_structure" yaml:"content_structure"`
}

// RawDiscourse mirrors types.DiscourseProfile with optional fields.
type RawDiscourse struct {
	SentenceCount  *int           `json:"sentence_count" yaml:"sentence_count"`
	SentenceTypes  map[string]int `json:"sentence_types" yaml:"sentence_types"`
	Connectives    map[string]int `json:"connectives" yaml:"connectives"`
	Rhetoric       map[string]int `json:"rhetoric" yaml:"rhetoric"`
	SentenceLength []int          `json:"sentence_length" yaml:"sentence_length"`
}

// RawContent mirrors types.ContentProfile with optional fields.
type RawContent struct {
	CoreConcepts      []string      `json:"core_concepts" yaml:"core_concepts"`
	RelatedConcepts   []string      `json:"related_concepts" yaml:"related_concepts"`
	ArgumentDirection *RawDirection `json:"argument_direction" yaml:"argument_direction"`
	LogicalFlow       *string       `json:"logical_flow" yaml:"logical_flow"`
}

// RawDirection mirrors types.ArgumentDirection.
type RawDirection struct {
	Positive  int    `json:"positive" yaml:"positive"`
	Negative  int    `json:"negative" yaml:"negative"`
	Direction string `json:"direction" yaml:"direction"`
}

// Normalize converts raw into a well-formed analysis. Every category is
// seeded, unknown connective and rhetoric keys are dropped, unknown roles
// fold into "other", negative counts clamp to zero, an unknown direction
// label is recomputed from its counts, and an unknown flow becomes "other".
// Sentence fields that disagree with each other are reconciled so role counts
// always sum to sentence_count; see reconcileSentences.
//
// The boolean reports whether raw carried every field prompt assembly needs:
// sentence_count, sentence_types, connectives and rhetoric on the discourse
// side; core_concepts, argument_direction and logical_flow on the content
// side.
func Normalize(raw RawAnalysis) (types.Analysis, bool) {
	a := types.NewAnalysis()
	complete := raw.Discourse != nil && raw.Content != nil

	if d := raw.Discourse; d != nil {
		if d.SentenceCount != nil {
			a.Discourse.SentenceCount = max(*d.SentenceCount, 0)
		} else {
			complete = false
		}
		if d.SentenceTypes == nil || d.Connectives == nil || d.Rhetoric == nil {
			complete = false
		}

		for k, v := range d.SentenceTypes {
			role := types.SentenceRole(strings.ToLower(k))
			if !slices.Contains(types.SentenceRoles, role) {
				role = types.RoleOther
			}
			a.Discourse.SentenceTypes[role] += max(v, 0)
		}
		for k, v := range d.Connectives {
			c := types.Connective(strings.ToLower(k))
			if slices.Contains(types.Connectives, c) {
				a.Discourse.Connectives[c] = max(v, 0)
			}
		}
		for k, v := range d.Rhetoric {
			r := types.Rhetoric(strings.ToLower(k))
			if slices.Contains(types.Rhetorics, r) {
				a.Discourse.Rhetoric[r] = max(v, 0)
			}
		}
		for _, n := range d.SentenceLength {
			a.Discourse.SentenceLength = append(a.Discourse.SentenceLength, max(n, 0))
		}
		if !reconcileSentences(&a.Discourse, d.SentenceTypes != nil) {
			complete = false
		}
	}

	if c := raw.Content; c != nil {
		if c.CoreConcepts == nil || c.ArgumentDirection == nil || c.LogicalFlow == nil {
			complete = false
		}

		a.Content.CoreConcepts = appendConcepts(a.Content.CoreConcepts, c.CoreConcepts)
		a.Content.RelatedConcepts = appendConcepts(a.Content.RelatedConcepts, c.RelatedConcepts)

		if dir := c.ArgumentDirection; dir != nil {
			a.Content.ArgumentDirection = normalizeDirection(*dir)
		}
		if c.LogicalFlow != nil {
			flow := types.LogicalFlow(strings.ToLower(strings.TrimSpace(*c.LogicalFlow)))
			if slices.Contains(types.LogicalFlows, flow) {
				a.Content.LogicalFlow = flow
			}
		}
	}

	return a, complete
}

// reconcileSentences makes the role counts and sentence lengths of d agree
// with its sentence count. Without role counts every sentence is "other".
// Role counts that disagree with the count replace it, and lengths of the
// wrong arity are dropped. It reports false when anything was inconsistent.
func reconcileSentences(d *types.DiscourseProfile, haveTypes bool) bool {
	consistent := true

	if !haveTypes {
		d.SentenceTypes[types.RoleOther] = d.SentenceCount
	} else {
		sum := 0
		for _, n := range d.SentenceTypes {
			sum += n
		}
		if sum != d.SentenceCount {
			d.SentenceCount = sum
			consistent = false
		}
	}

	if len(d.SentenceLength) > 0 && len(d.SentenceLength) != d.SentenceCount {
		d.SentenceLength = []int{}
		consistent = false
	}
	return consistent
}

func normalizeDirection(raw RawDirection) types.ArgumentDirection {
	d := types.ArgumentDirection{
		Positive: max(raw.Positive, 0),
		Negative: max(raw.Negative, 0),
	}
	switch label := types.Direction(strings.ToLower(strings.TrimSpace(raw.Direction))); label {
	case types.DirectionPositive, types.DirectionNegative, types.DirectionBalanced:
		d.Direction = label
	default:
		d.Direction = types.DirectionFromCounts(d.Positive, d.Negative)
	}
	return d
}

// appendConcepts lower-cases and trims concepts, skipping blanks.
func appendConcepts(dst, src []string) []string {
	for _, s := range src {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			dst = append(dst, s)
		}
	}
	return dst
}
