package document

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// pdfParser extracts linear text from a PDF, concatenating page text in
// document order. PDF gives no usable heading structure, so Sections is
// left empty.
type pdfParser struct{}

func (pdfParser) Parse(path string) (*domain.LiteratureContent, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extracting pdf text from %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return nil, fmt.Errorf("reading pdf text from %s: %w", path, err)
	}
	fullText := buf.String()

	return &domain.LiteratureContent{
		Title:    extractTitle(fullText),
		Abstract: extractAbstract(fullText),
		Sections: map[string]string{},
		FullText: fullText,
		FileType: "pdf",
	}, nil
}
