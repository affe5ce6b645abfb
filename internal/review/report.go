package review

import (
	"fmt"
	"strings"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// BuildReport renders per-section review results as a Markdown report:
// an overall average score header followed by one subsection per result,
// in input order.
func BuildReport(results []*domain.ReviewResult) string {
	var b strings.Builder
	b.WriteString("# 📋 国自然申请书审阅报告\n\n---\n\n")

	total := 0
	for _, r := range results {
		total += r.Score
	}
	avg := 0.0
	if len(results) > 0 {
		avg = float64(total) / float64(len(results))
	}

	b.WriteString("## 📊 总体评价\n\n")
	fmt.Fprintf(&b, "- **平均得分**: %.1f/10\n", avg)
	fmt.Fprintf(&b, "- **审阅模块数**: %d\n\n", len(results))

	for _, r := range results {
		fmt.Fprintf(&b, "## 📝 %s\n\n", r.SectionName)
		fmt.Fprintf(&b, "**评分: %d/10**\n\n", r.Score)

		b.WriteString("### 发现的问题\n")
		for _, issue := range r.Issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}

		b.WriteString("\n### 修改建议\n")
		for _, suggestion := range r.Suggestions {
			fmt.Fprintf(&b, "- %s\n", suggestion)
		}

		b.WriteString("\n---\n\n")
	}

	return b.String()
}

// BuildRevisedProposal reassembles the revised section bodies into one
// Markdown document. Canonical sections come first in canonical order;
// any other names follow in their original encounter order. Sections
// absent from results are omitted.
func BuildRevisedProposal(results []*domain.ReviewResult) string {
	var b strings.Builder
	b.WriteString("# 国自然科学基金申请书（修改版）\n\n---\n")

	byName := make(map[domain.SectionName]*domain.ReviewResult, len(results))
	for _, r := range results {
		if _, seen := byName[r.SectionName]; !seen {
			byName[r.SectionName] = r
		}
	}

	for _, name := range domain.CanonicalOrder {
		if r, ok := byName[name]; ok {
			fmt.Fprintf(&b, "\n## %s\n\n%s\n", r.SectionName, r.RevisedContent)
		}
	}

	for _, r := range results {
		if !domain.IsCanonical(r.SectionName) {
			fmt.Fprintf(&b, "\n## %s\n\n%s\n", r.SectionName, r.RevisedContent)
		}
	}

	return b.String()
}
