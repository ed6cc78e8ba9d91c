// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the template-mimic pipeline.
// Profiles describe the structure of one paragraph; records and statistics
// describe one case run. JSON and YAML key names are part of the results
// artifact format and must not change.
package types

// SentenceRole tags the function a sentence plays in its paragraph.
type SentenceRole string

const (
	RoleThesis     SentenceRole = "thesis"
	RoleEvidence   SentenceRole = "evidence"
	RoleTransition SentenceRole = "transition"
	RoleConclusion SentenceRole = "conclusion"
	RoleOther      SentenceRole = "other"
)

// SentenceRoles lists every role in classification priority order, with the
// default last.
var SentenceRoles = []SentenceRole{RoleThesis, RoleEvidence, RoleTransition, RoleConclusion, RoleOther}

// Connective is a category of discourse connective.
type Connective string

const (
	ConnectiveCausal     Connective = "causal"
	ConnectiveContrast   Connective = "contrast"
	ConnectiveAddition   Connective = "addition"
	ConnectiveComparison Connective = "comparison"
	ConnectiveExample    Connective = "example"
)

// Connectives lists every connective category.
var Connectives = []Connective{ConnectiveCausal, ConnectiveContrast, ConnectiveAddition, ConnectiveComparison, ConnectiveExample}

// Rhetoric is a category of rhetorical device.
type Rhetoric string

const (
	RhetoricSimile      Rhetoric = "simile"
	RhetoricMetaphor    Rhetoric = "metaphor"
	RhetoricParallelism Rhetoric = "parallelism"
	RhetoricQuestion    Rhetoric = "rhetorical_question"
)

// Rhetorics lists every rhetorical device category.
var Rhetorics = []Rhetoric{RhetoricSimile, RhetoricMetaphor, RhetoricParallelism, RhetoricQuestion}

// Direction is the polarity of a paragraph's argument.
type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
	DirectionBalanced Direction = "balanced"
)

// DirectionFromCounts classifies polarity from lexicon hit counts.
func DirectionFromCounts(positive, negative int) Direction {
	switch {
	case positive > negative:
		return DirectionPositive
	case negative > positive:
		return DirectionNegative
	default:
		return DirectionBalanced
	}
}

// LogicalFlow names the high-level argument template a paragraph follows.
type LogicalFlow string

const (
	FlowProblemAnalysisSolution LogicalFlow = "problem-analysis-solution"
	FlowBackgroundCurrentFuture LogicalFlow = "background-current-future"
	FlowClaimEvidenceConclusion LogicalFlow = "claim-evidence-conclusion"
	FlowOther                   LogicalFlow = "other"
)

// LogicalFlows lists every flow label, with the default last.
var LogicalFlows = []LogicalFlow{FlowProblemAnalysisSolution, FlowBackgroundCurrentFuture, FlowClaimEvidenceConclusion, FlowOther}

// DiscourseProfile describes sentence composition and device usage.
type DiscourseProfile struct {
	// SentenceCount is the number of sentence units found by the segmenter.
	SentenceCount int `json:"sentence_count" yaml:"sentence_count"`

	// SentenceTypes counts sentences per role. Counts sum to SentenceCount.
	SentenceTypes map[SentenceRole]int `json:"sentence_types" yaml:"sentence_types"`

	// Connectives counts connective matches over the whole text. A phrase
	// can match more than one category.
	Connectives map[Connective]int `json:"connectives" yaml:"connectives"`

	// Rhetoric counts rhetorical-device matches over the whole text.
	Rhetoric map[Rhetoric]int `json:"rhetoric" yaml:"rhetoric"`

	// SentenceLength holds the whitespace token count of each sentence.
	SentenceLength []int `json:"sentence_length" yaml:"sentence_length"`
}

// NewDiscourseProfile returns an empty profile with every category seeded.
func NewDiscourseProfile() DiscourseProfile {
	p := DiscourseProfile{
		SentenceTypes:  make(map[SentenceRole]int, len(SentenceRoles)),
		Connectives:    make(map[Connective]int, len(Connectives)),
		Rhetoric:       make(map[Rhetoric]int, len(Rhetorics)),
		SentenceLength: []int{},
	}
	for _, r := range SentenceRoles {
		p.SentenceTypes[r] = 0
	}
	for _, c := range Connectives {
		p.Connectives[c] = 0
	}
	for _, r := range Rhetorics {
		p.Rhetoric[r] = 0
	}
	return p
}

// ArgumentDirection records polarity lexicon counts and the derived label.
type ArgumentDirection struct {
	Positive  int       `json:"positive" yaml:"positive"`
	Negative  int       `json:"negative" yaml:"negative"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// ContentProfile describes the semantic surface of a paragraph.
type ContentProfile struct {
	// CoreConcepts are the three most frequent qualifying words.
	CoreConcepts []string `json:"core_concepts" yaml:"core_concepts"`

	// RelatedConcepts are the qualifying words ranked 4 through 8.
	RelatedConcepts []string `json:"related_concepts" yaml:"related_concepts"`

	ArgumentDirection ArgumentDirection `json:"argument_direction" yaml:"argument_direction"`

	LogicalFlow LogicalFlow `json:"logical_flow" yaml:"logical_flow"`
}

// NewContentProfile returns an empty, balanced profile with flow "other".
func NewContentProfile() ContentProfile {
	return ContentProfile{
		CoreConcepts:      []string{},
		RelatedConcepts:   []string{},
		ArgumentDirection: ArgumentDirection{Direction: DirectionBalanced},
		LogicalFlow:       FlowOther,
	}
}

// Analysis pairs the discourse and content profiles of one text.
type Analysis struct {
	Discourse DiscourseProfile `json:"discourse_structure" yaml:"discourse_structure"`
	Content   ContentProfile   `json:"content_structure" yaml:"content_structure"`
}

// NewAnalysis returns the analysis of an empty text.
func NewAnalysis() Analysis {
	return Analysis{
		Discourse: NewDiscourseProfile(),
		Content:   NewContentProfile(),
	}
}
