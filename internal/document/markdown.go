package document

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

var headingLine = regexp.MustCompile(`^(#{1,3})\s+(.+)$`)

// markdownParser handles .md and plain .txt files. Level 1-3 headings
// open a new entry in the section map; heading markers are stripped from
// the full text.
type markdownParser struct{}

func (markdownParser) Parse(path string) (*domain.LiteratureContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var fullText strings.Builder
	sections := map[string]string{}
	var currentSection string
	var currentContent []string

	flush := func() {
		if currentSection != "" && len(currentContent) > 0 {
			sections[currentSection] = strings.Join(currentContent, "\n")
		}
		currentContent = nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		if m := headingLine.FindStringSubmatch(line); m != nil {
			flush()
			currentSection = strings.TrimSpace(m[2])
			fullText.WriteString(currentSection)
			fullText.WriteString("\n")
			continue
		}
		trimmed := strings.TrimRight(line, " \t")
		if trimmed != "" && currentSection != "" {
			currentContent = append(currentContent, strings.TrimSpace(trimmed))
		}
		fullText.WriteString(trimmed)
		fullText.WriteString("\n")
	}
	flush()

	full := fullText.String()
	return &domain.LiteratureContent{
		Title:    extractTitle(full),
		Abstract: extractAbstract(full),
		Sections: sections,
		FullText: full,
		FileType: "markdown",
	}, nil
}
