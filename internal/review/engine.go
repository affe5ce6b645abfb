package review

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
	"github.com/lxltx2025/nsfcwriter/internal/llm"
)

// Engine reviews proposal sections, either through the generation
// backend or with the deterministic rule-based scorer.
type Engine struct {
	client llm.Client
	logw   io.Writer
}

// NewEngine creates an Engine. client may be nil, in which case every
// review takes the rule-based path. logw receives fallback notices; nil
// discards them.
func NewEngine(client llm.Client, logw io.Writer) *Engine {
	if logw == nil {
		logw = io.Discard
	}
	return &Engine{client: client, logw: logw}
}

// ReviewSection critiques a single section. With useModel and a
// configured backend it asks the model and parses the structured
// response; a backend failure degrades to the rule-based path for this
// section only, tagged domain.SourceRule.
func (e *Engine) ReviewSection(ctx context.Context, name domain.SectionName, content string, useModel bool) *domain.ReviewResult {
	if useModel && e.client != nil {
		result, err := e.reviewWithModel(ctx, name, content)
		if err == nil {
			return result
		}
		fmt.Fprintf(e.logw, "模型审阅失败，回退到规则审阅: section=%s err=%v\n", name, err)
	}
	return e.reviewRuleBased(name, content)
}

func (e *Engine) reviewWithModel(ctx context.Context, name domain.SectionName, content string) (*domain.ReviewResult, error) {
	resp, err := e.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReview,
		SystemPrompt: reviewSystemPrompt,
		UserPrompt:   buildReviewPrompt(name, content),
	})
	if err != nil {
		return nil, err
	}
	return parseModelResponse(name, content, resp.Text), nil
}

var (
	scorePattern      = regexp.MustCompile(`评分[：:]\s*(\d+)`)
	issuesHeading     = regexp.MustCompile(`主要问题[：:]?`)
	suggestHeading    = regexp.MustCompile(`修改建议[：:]?`)
	revisedHeading    = regexp.MustCompile(`修改后的完整内容[：:]?`)
	numberedItemLine  = regexp.MustCompile(`^\s*\d+[\.、．]\s*(.+)$`)
	enumerationMarker = regexp.MustCompile(`[（(][一二三四五1-5][）)]`)
	citationMarker    = regexp.MustCompile(`\[\d+\]`)
)

// parseModelResponse turns the model's free-text review into a
// ReviewResult. Every missing piece degrades to a documented default; a
// malformed response never fails the section.
func parseModelResponse(name domain.SectionName, original, response string) *domain.ReviewResult {
	score := 6
	if m := scorePattern.FindStringSubmatch(response); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			score = n
		}
	}

	issues := extractNumberedItems(sliceBetween(response, issuesHeading, "修改建议"))
	if len(issues) == 0 {
		issues = []string{"未能提取具体问题"}
	}

	suggestions := extractNumberedItems(sliceBetween(response, suggestHeading, "修改后"))
	if len(suggestions) == 0 {
		suggestions = []string{"未能提取具体建议"}
	}

	// No revised-content heading means the whole response stands in for
	// the rewrite.
	revised := response
	if loc := revisedHeading.FindStringIndex(response); loc != nil {
		revised = strings.TrimSpace(response[loc[1]:])
	}

	return &domain.ReviewResult{
		SectionName:     name,
		OriginalContent: original,
		Issues:          issues,
		Suggestions:     suggestions,
		RevisedContent:  revised,
		Score:           clampScore(score),
		Source:          domain.SourceModel,
	}
}

// sliceBetween returns the text after the first match of heading, cut at
// the next "##" marker or the next occurrence of stop, whichever comes
// first. Empty string when the heading is absent.
func sliceBetween(s string, heading *regexp.Regexp, stop string) string {
	loc := heading.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	rest := s[loc[1]:]

	end := len(rest)
	if i := strings.Index(rest, "##"); i >= 0 && i < end {
		end = i
	}
	if i := strings.Index(rest, stop); i >= 0 && i < end {
		end = i
	}
	return rest[:end]
}

func extractNumberedItems(block string) []string {
	var items []string
	for _, line := range strings.Split(block, "\n") {
		if m := numberedItemLine.FindStringSubmatch(line); m != nil {
			item := strings.TrimSpace(m[1])
			if item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// reviewRuleBased is the deterministic fallback scorer. It is a pure
// function of (name, content) and never rewrites: revised content is
// always the original.
func (e *Engine) reviewRuleBased(name domain.SectionName, content string) *domain.ReviewResult {
	rubric := RubricFor(name)

	var issues, suggestions []string
	score := 7.0

	if utf8.RuneCountInString(content) < 500 {
		issues = append(issues, "内容过于简短，缺乏详细论述")
		suggestions = append(suggestions, "建议扩充内容，增加具体细节和论证")
		score -= 1
	}

	var missing []string
	for _, kw := range rubric.Keywords {
		if !strings.Contains(content, kw) {
			missing = append(missing, kw)
		}
	}
	if len(missing) > 0 {
		joined := strings.Join(missing, ", ")
		issues = append(issues, "缺少关键内容："+joined)
		suggestions = append(suggestions, "建议补充以下方面的内容："+joined)
		score -= float64(len(missing)) * 0.5
	}

	if !enumerationMarker.MatchString(content) {
		issues = append(issues, "缺乏清晰的层次结构")
		suggestions = append(suggestions, "建议使用（1）（2）（3）等方式组织内容层次")
	}

	if name == domain.SectionRationale && !citationMarker.MatchString(content) {
		issues = append(issues, "缺少文献引用标注")
		suggestions = append(suggestions, "建议添加规范的文献引用，如[1]、[2]等")
		score -= 1
	}

	if len(issues) == 0 {
		issues = []string{"内容基本符合要求"}
	}
	if len(suggestions) == 0 {
		suggestions = []string{"可进一步优化细节"}
	}

	return &domain.ReviewResult{
		SectionName:     name,
		OriginalContent: content,
		Issues:          issues,
		Suggestions:     suggestions,
		RevisedContent:  content,
		Score:           clampScore(int(score)),
		Source:          domain.SourceRule,
	}
}

func clampScore(s int) int {
	if s < 1 {
		return 1
	}
	if s > 10 {
		return 10
	}
	return s
}
