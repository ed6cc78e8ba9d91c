// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"regexp"

	"github.com/pdiddy/template-mimic/pkg/types"
)

// The tables below are the scoring vocabulary. Results are only comparable
// across runs while the category names and word lists stay exactly as they
// are. All patterns are case-insensitive substring matches: "as" matches
// inside "has" and "so" inside "also".

// ConnectivePattern counts one connective category.
type ConnectivePattern struct {
	Category types.Connective
	Pattern  *regexp.Regexp
}

// Connectives is the connective table in category order.
var Connectives = []ConnectivePattern{
	{types.ConnectiveCausal, regexp.MustCompile(`(?i)(because|since|as|so|therefore|thus|hence|consequently)`)},
	{types.ConnectiveContrast, regexp.MustCompile(`(?i)(but|however|nevertheless|yet|nonetheless|whereas|while)`)},
	{types.ConnectiveAddition, regexp.MustCompile(`(?i)(and|also|moreover|furthermore|in addition|besides)`)},
	{types.ConnectiveComparison, regexp.MustCompile(`(?i)(similarly|likewise|in the same way)`)},
	{types.ConnectiveExample, regexp.MustCompile(`(?i)(for example|for instance|such as|like|including)`)},
}

// RhetoricPattern counts one rhetorical device.
type RhetoricPattern struct {
	Category types.Rhetoric
	Pattern  *regexp.Regexp
}

// Rhetoric is the rhetorical device table. The metaphor and parallelism
// patterns over-match: any copula + article + phrase + of/for counts as a
// metaphor, and any run of two comma-terminated clauses counts as
// parallelism.
var Rhetoric = []RhetoricPattern{
	{types.RhetoricSimile, regexp.MustCompile(`(?i)(like|as|resembles|similar to|comparable to)`)},
	{types.RhetoricMetaphor, regexp.MustCompile(`(?i)(is|are|was|were) a?n? (.+?) (of|for)`)},
	{types.RhetoricParallelism, regexp.MustCompile(`(?i)((.+?), ){2,}.+?(\.|;|:)`)},
	{types.RhetoricQuestion, regexp.MustCompile(`(?i)(Who|What|Where|When|Why|How).*\?`)},
}

// RoleRule assigns a role to a sentence that matches Cue.
type RoleRule struct {
	Role types.SentenceRole
	Cue  *regexp.Regexp
}

// SentenceRoles is evaluated in order; the first matching rule wins and a
// sentence matching none is types.RoleOther.
var SentenceRoles = []RoleRule{
	{types.RoleThesis, regexp.MustCompile(`(?i)(argues|claims|contends|suggests|states)`)},
	{types.RoleEvidence, regexp.MustCompile(`(?i)(for example|for instance|studies show|data indicates)`)},
	{types.RoleTransition, regexp.MustCompile(`(?i)(however|nevertheless|on the other hand)`)},
	{types.RoleConclusion, regexp.MustCompile(`(?i)(in conclusion|therefore|thus|finally)`)},
}

// FlowRule recognizes one logical-flow template: three keyword groups that
// appear anywhere in the text in that relative order.
type FlowRule struct {
	Flow    types.LogicalFlow
	Pattern *regexp.Regexp
}

// LogicalFlows is evaluated in order; the first matching rule wins and text
// matching none is types.FlowOther.
var LogicalFlows = []FlowRule{
	{types.FlowProblemAnalysisSolution, regexp.MustCompile(`(?is)(problem|challenge).*(analysis|cause).*(solution|resolution)`)},
	{types.FlowBackgroundCurrentFuture, regexp.MustCompile(`(?is)(background|context).*(current situation|现状).*(future|prospect)`)},
	{types.FlowClaimEvidenceConclusion, regexp.MustCompile(`(?is)(claim|thesis).*(evidence|support).*(conclusion|restatement)`)},
}

// Polarity lexicons for argument direction.
var (
	positiveLexicon = []string{"advantage", "benefit", "improvement", "progress", "success"}
	negativeLexicon = []string{"problem", "challenge", "issue", "difficulty", "failure"}
)

// classifySentence returns the role of the first rule whose cue matches.
func classifySentence(sentence string) types.SentenceRole {
	for _, rule := range SentenceRoles {
		if rule.Cue.MatchString(sentence) {
			return rule.Role
		}
	}
	return types.RoleOther
}

// classifyFlow returns the flow of the first rule that matches.
func classifyFlow(text string) types.LogicalFlow {
	for _, rule := range LogicalFlows {
		if rule.Pattern.MatchString(text) {
			return rule.Flow
		}
	}
	return types.FlowOther
}

// countMatches counts non-overlapping matches of re in text.
func countMatches(re *regexp.Regexp, text string) int {
	return len(re.FindAllStringIndex(text, -1))
}
