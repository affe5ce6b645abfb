package review

import (
	"context"

	"github.com/lxltx2025/nsfcwriter/internal/document"
	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// ProgressObserver receives per-section progress while a proposal is
// reviewed. It is a side channel only and has no effect on scheduling.
type ProgressObserver interface {
	OnSectionStart(name domain.SectionName, index, total int)
	OnSectionDone(result *domain.ReviewResult, index, total int)
}

// NoopProgress discards all progress events.
type NoopProgress struct{}

func (NoopProgress) OnSectionStart(domain.SectionName, int, int)  {}
func (NoopProgress) OnSectionDone(*domain.ReviewResult, int, int) {}

// ReviewProposal parses the proposal at path, segments it, and reviews
// each section sequentially in segment order. A document parse failure
// is fatal; a per-section backend failure degrades that section to the
// rule-based path while siblings continue. The returned slice preserves
// section order and always has one entry per segmented section.
func (e *Engine) ReviewProposal(ctx context.Context, path string, useModel bool, progress ProgressObserver) ([]*domain.ReviewResult, error) {
	if progress == nil {
		progress = NoopProgress{}
	}

	content, err := document.Parse(path)
	if err != nil {
		return nil, err
	}

	sections := Segment(content.FullText)

	results := make([]*domain.ReviewResult, 0, len(sections))
	for i, sec := range sections {
		progress.OnSectionStart(sec.Name, i, len(sections))
		result := e.ReviewSection(ctx, sec.Name, sec.Content, useModel)
		results = append(results, result)
		progress.OnSectionDone(result, i, len(sections))
	}

	return results, nil
}
