// Package document extracts text from proposal and literature files.
// One parser per supported format, selected by file extension.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// ErrUnsupportedFormat indicates the file extension has no registered parser.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Parser extracts content from a single file format.
type Parser interface {
	Parse(path string) (*domain.LiteratureContent, error)
}

var parsers = map[string]Parser{
	".pdf":      pdfParser{},
	".docx":     docxParser{},
	".doc":      docxParser{},
	".md":       markdownParser{},
	".markdown": markdownParser{},
	".txt":      markdownParser{},
}

// SupportedExtensions returns the file extensions Parse accepts.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(parsers))
	for ext := range parsers {
		exts = append(exts, ext)
	}
	return exts
}

// Supported reports whether path has a parseable extension.
func Supported(path string) bool {
	_, ok := parsers[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Parse extracts the content of the file at path, dispatching on its
// extension. Returns ErrUnsupportedFormat for unknown extensions; decode
// failures are wrapped and fatal for this document.
func Parse(path string) (*domain.LiteratureContent, error) {
	ext := strings.ToLower(filepath.Ext(path))
	p, ok := parsers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	content, err := p.Parse(path)
	if err != nil {
		return nil, err
	}
	content.SourceFile = path
	return content, nil
}
