package review

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// minSectionRunes is the minimum stripped content length for a matched
// section to be kept; shorter spans are treated as heading noise.
const minSectionRunes = 50

// headingPatterns maps each canonical section to its priority-ordered
// heading patterns. For a given section, the first pattern that matches
// anywhere in the text wins, and only its first occurrence is used.
var headingPatterns = map[domain.SectionName][]*regexp.Regexp{
	domain.SectionRationale: compilePatterns(
		`[一1１][\s、\.．]+立项依据`,
		`立项依据[与和及]研究内容`,
		`项目的立项依据`,
		`研究背景[与和及]?意义`,
	),
	domain.SectionContent: compilePatterns(
		`[二2２][\s、\.．]+研究内容`,
		`主要研究内容`,
		`研究内容[与和及]目标`,
	),
	domain.SectionPlan: compilePatterns(
		`[三3３][\s、\.．]+研究方案`,
		`研究方案[与和及]可行性`,
		`技术路线`,
		`研究方法`,
	),
	domain.SectionInnovation: compilePatterns(
		`[四4４][\s、\.．]+创新点`,
		`特色[与和及]创新`,
		`创新之处`,
		`项目创新`,
	),
	domain.SectionOutcomes: compilePatterns(
		`[五5５][\s、\.．]+预期成果`,
		`预期研究成果`,
		`预期目标`,
		`考核指标`,
	),
	domain.SectionFoundation: compilePatterns(
		`[六6６][\s、\.．]+研究基础`,
		`工作基础`,
		`研究基础[与和及]工作条件`,
		`前期工作`,
	),
}

func compilePatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

type headingMatch struct {
	offset  int
	name    domain.SectionName
	heading string
}

// Segment slices full proposal text into named sections by heading
// position. Spans are contiguous: each section runs from its heading to
// the next matched heading, the last to end of text. If no heading
// matches at all, the whole input is returned as the synthetic 全文
// section.
func Segment(text string) []domain.Section {
	var matches []headingMatch

	for _, name := range domain.CanonicalOrder {
		for _, pat := range headingPatterns[name] {
			if loc := pat.FindStringIndex(text); loc != nil {
				matches = append(matches, headingMatch{
					offset:  loc[0],
					name:    name,
					heading: text[loc[0]:loc[1]],
				})
				break
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].offset < matches[j].offset })

	var sections []domain.Section
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1].offset
		}

		content := strings.TrimSpace(text[m.offset:end])
		content = strings.TrimSpace(strings.TrimPrefix(content, m.heading))

		if utf8.RuneCountInString(content) > minSectionRunes {
			sections = append(sections, domain.Section{Name: m.name, Content: content})
		}
	}

	if len(sections) == 0 {
		return []domain.Section{{Name: domain.SectionFullText, Content: text}}
	}
	return sections
}
