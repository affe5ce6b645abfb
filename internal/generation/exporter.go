package generation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// defaultProposalTitle is used when the caller supplies no title.
const defaultProposalTitle = "国自然科学基金申请书"

// ToMarkdown renders drafted sections as one Markdown document in
// canonical section order. Failed drafts are skipped.
func ToMarkdown(drafts []SectionDraft, title string) string {
	if title == "" {
		title = defaultProposalTitle
	}

	byName := draftIndex(drafts)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)
	for _, name := range domain.CanonicalOrder {
		if d, ok := byName[name]; ok {
			fmt.Fprintf(&b, "\n## %s\n\n%s\n", d.Name, d.Content)
		}
	}
	return b.String()
}

// ToText renders drafted sections with plain banner separators, for
// callers that want no markup at all.
func ToText(drafts []SectionDraft) string {
	byName := draftIndex(drafts)

	var b strings.Builder
	for _, name := range domain.CanonicalOrder {
		d, ok := byName[name]
		if !ok {
			continue
		}
		banner := strings.Repeat("=", 50)
		fmt.Fprintf(&b, "\n%s\n%s\n%s\n%s\n", banner, d.Name, banner, d.Content)
	}
	return b.String()
}

// Save writes the drafts to path, choosing the format by extension:
// Markdown for .md, plain banners otherwise.
func Save(drafts []SectionDraft, path, title string) error {
	var content string
	if strings.ToLower(filepath.Ext(path)) == ".md" {
		content = ToMarkdown(drafts, title)
	} else {
		content = ToText(drafts)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("saving proposal to %s: %w", path, err)
	}
	return nil
}

func draftIndex(drafts []SectionDraft) map[domain.SectionName]SectionDraft {
	byName := make(map[domain.SectionName]SectionDraft, len(drafts))
	for _, d := range drafts {
		if d.Err == nil && d.Content != "" {
			byName[d.Name] = d
		}
	}
	return byName
}
