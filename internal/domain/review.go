package domain

// ReviewSource records which path produced a ReviewResult, making the
// model-to-rule fallback a visible field rather than a caught side effect.
type ReviewSource string

const (
	// SourceModel means the result was parsed from a generation backend response.
	SourceModel ReviewSource = "model"
	// SourceRule means the result came from the deterministic rule-based scorer.
	SourceRule ReviewSource = "rule"
)

// ReviewResult holds the critique of a single proposal section.
// Results are immutable after construction.
type ReviewResult struct {
	SectionName     SectionName
	OriginalContent string

	// Issues and Suggestions are non-empty by construction: placeholder
	// text is inserted when nothing could be extracted or deducted.
	Issues      []string
	Suggestions []string

	// RevisedContent equals OriginalContent when Source is SourceRule;
	// the rule-based path never rewrites.
	RevisedContent string

	// Score is clamped to [1,10].
	Score int

	Source ReviewSource
}
