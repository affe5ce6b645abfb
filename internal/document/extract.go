package document

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var abstractPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)Abstract[:\s]*(.+?)(?:\n\n|Introduction|Keywords)`),
	regexp.MustCompile(`(?s)摘\s*要[:\s]*(.+?)(?:\n\n|关键词|1\s|一、)`),
}

// extractTitle picks the first plausible title line: a line of 11..199
// runes among the first five non-empty lines.
func extractTitle(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		n := utf8.RuneCountInString(line)
		if n > 10 && n < 200 {
			return line
		}
	}
	return "未知标题"
}

// extractAbstract finds an English or Chinese abstract block, if any.
func extractAbstract(text string) string {
	for _, pat := range abstractPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
