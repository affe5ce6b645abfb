package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

func sectionBody(prefix string) string {
	return prefix + strings.Repeat("这是一段用于测试的正文内容。", 10)
}

func TestSegment_SplitsOnCanonicalHeadings(t *testing.T) {
	rationale := sectionBody("研究背景")
	content := sectionBody("核心问题")
	plan := sectionBody("实验步骤")

	text := "一、立项依据\n" + rationale + "\n二、研究内容\n" + content + "\n三、研究方案\n" + plan

	sections := Segment(text)
	require.Len(t, sections, 3)

	assert.Equal(t, domain.SectionRationale, sections[0].Name)
	assert.Equal(t, rationale, sections[0].Content)
	assert.Equal(t, domain.SectionContent, sections[1].Name)
	assert.Equal(t, content, sections[1].Content)
	assert.Equal(t, domain.SectionPlan, sections[2].Name)
	assert.Equal(t, plan, sections[2].Content)
}

func TestSegment_StripsHeadingFromContent(t *testing.T) {
	body := sectionBody("团队")
	sections := Segment("六、研究基础\n" + body)

	require.Len(t, sections, 1)
	assert.Equal(t, domain.SectionFoundation, sections[0].Name)
	assert.NotContains(t, sections[0].Content, "六、研究基础")
	assert.Equal(t, body, sections[0].Content)
}

func TestSegment_FirstPatternWins(t *testing.T) {
	// Both the numbered heading and the 技术路线 alias match 研究方案;
	// the numbered pattern has priority and only its occurrence is used.
	body := sectionBody("技术路线说明")
	sections := Segment("三、研究方案\n" + body)

	require.Len(t, sections, 1)
	assert.Equal(t, domain.SectionPlan, sections[0].Name)
	assert.Equal(t, body, sections[0].Content)
}

func TestSegment_DiscardsNoiseSections(t *testing.T) {
	// The 研究内容 span is below the 50-rune minimum and is dropped.
	rationale := sectionBody("研究背景")
	text := "一、立项依据\n" + rationale + "\n二、研究内容\n太短"

	sections := Segment(text)
	require.Len(t, sections, 1)
	assert.Equal(t, domain.SectionRationale, sections[0].Name)
}

func TestSegment_NoHeadingsFallsBackToFullText(t *testing.T) {
	text := "这是一篇没有任何标准标题的文档。"
	sections := Segment(text)

	require.Len(t, sections, 1)
	assert.Equal(t, domain.SectionFullText, sections[0].Name)
	assert.Equal(t, text, sections[0].Content)
}

func TestSegment_AllSectionsTooShortFallsBackToFullText(t *testing.T) {
	text := "一、立项依据\n很短\n二、研究内容\n也很短"
	sections := Segment(text)

	require.Len(t, sections, 1)
	assert.Equal(t, domain.SectionFullText, sections[0].Name)
	assert.Equal(t, text, sections[0].Content)
}

func TestSegment_SpansArePositionSorted(t *testing.T) {
	// Headings deliberately out of canonical order in the document;
	// spans must follow document position.
	foundation := sectionBody("前期积累")
	rationale := sectionBody("研究背景")

	text := "六、研究基础\n" + foundation + "\n一、立项依据\n" + rationale

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.Equal(t, domain.SectionFoundation, sections[0].Name)
	assert.Equal(t, domain.SectionRationale, sections[1].Name)
}

func TestSegment_AlternateHeadingForms(t *testing.T) {
	body := sectionBody("缺口分析")
	sections := Segment("项目的立项依据\n" + body)

	require.Len(t, sections, 1)
	assert.Equal(t, domain.SectionRationale, sections[0].Name)
}
