package review

import (
	"fmt"
	"strings"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// reviewSystemPrompt is the fixed reviewer persona for model-backed review.
const reviewSystemPrompt = "你是一位资深的国家自然科学基金评审专家，具有丰富的项目评审经验。请提供专业、具体、建设性的评审意见。"

// reviewPromptTemplate asks the model for a fenced review structure:
// a score line, numbered issue and suggestion lists, and a revised
// content block. The response parser depends on these headings.
const reviewPromptTemplate = `你是一位资深的国家自然科学基金评审专家。请对以下申请书的"%s"部分进行专业评审。

【原文内容】
%s

【评审要求】
请从以下几个方面进行评审：
%s

【输出格式】
请按以下格式输出：

## 评分：X/10

## 主要问题
1. 问题一
2. 问题二
...

## 修改建议
1. 建议一
2. 建议二
...

## 修改后的完整内容
（请输出修改后的完整内容，保持学术规范性）
`

// maxPromptContentRunes caps how much section text is embedded in the
// review prompt.
const maxPromptContentRunes = 3000

func buildReviewPrompt(name domain.SectionName, content string) string {
	rubric := RubricFor(name)

	var reqs strings.Builder
	for i, r := range rubric.Requirements {
		if i > 0 {
			reqs.WriteString("\n")
		}
		reqs.WriteString("- ")
		reqs.WriteString(r)
	}

	return fmt.Sprintf(reviewPromptTemplate, name, truncateRunes(content, maxPromptContentRunes), reqs.String())
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
