package formatter

import (
	"fmt"
	"strings"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// FormatReviewSummary renders a styled terminal summary of a review
// batch: mean score, then per-section score with issues and suggestions.
func FormatReviewSummary(results []*domain.ReviewResult) string {
	var b strings.Builder

	b.WriteString(Header("审阅结果"))
	b.WriteString("\n\n")

	if len(results) == 0 {
		b.WriteString(Dim("未找到可审阅的章节\n"))
		return b.String()
	}

	total := 0
	for _, r := range results {
		total += r.Score
	}
	avg := float64(total) / float64(len(results))
	b.WriteString(fmt.Sprintf("%s %s    %s %d\n\n",
		Bold("平均得分:"), ScoreStyle(int(avg)).Render(fmt.Sprintf("%.1f/10", avg)),
		Bold("审阅模块:"), len(results)))

	for _, r := range results {
		b.WriteString(formatSectionResult(r))
		b.WriteString("\n")
	}

	return b.String()
}

func formatSectionResult(r *domain.ReviewResult) string {
	var b strings.Builder

	score := ScoreStyle(r.Score).Render(fmt.Sprintf("%d/10", r.Score))
	b.WriteString(fmt.Sprintf("%s %s", Bold(string(r.SectionName)), score))
	if r.Source == domain.SourceRule {
		b.WriteString("  " + Dim("(规则审阅)"))
	}
	b.WriteString("\n")

	b.WriteString(StyleBlue.Render("  主要问题") + "\n")
	for _, issue := range r.Issues {
		b.WriteString("    • " + issue + "\n")
	}

	b.WriteString(StyleBlue.Render("  修改建议") + "\n")
	for _, s := range r.Suggestions {
		b.WriteString("    • " + s + "\n")
	}

	return b.String()
}

// FormatLiteratureStats renders the literature store summary line.
func FormatLiteratureStats(chunks, documents int) string {
	return fmt.Sprintf("%s\n%s %d\n%s %d\n",
		Header("文献库统计"),
		Bold("文档数:"), documents,
		Bold("片段数:"), chunks)
}
