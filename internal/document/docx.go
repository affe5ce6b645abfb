package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// docxParser reads a Word document. A .docx file is a zip archive whose
// word/document.xml holds the paragraph stream; paragraphs styled
// Heading* open a new entry in the section map.
type docxParser struct{}

func (docxParser) Parse(path string) (*domain.LiteratureContent, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening docx %s: %w", path, err)
	}
	defer archive.Close()

	var docFile *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("docx %s: word/document.xml not found", path)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("opening word/document.xml in %s: %w", path, err)
	}
	defer rc.Close()

	paragraphs, err := decodeParagraphs(rc)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	var fullText strings.Builder
	sections := map[string]string{}
	currentSection := "正文"
	var currentContent []string

	for _, p := range paragraphs {
		text := strings.TrimSpace(p.text)
		if text == "" {
			continue
		}

		if strings.HasPrefix(p.style, "Heading") || strings.HasPrefix(p.style, "heading") {
			if len(currentContent) > 0 {
				sections[currentSection] = strings.Join(currentContent, "\n")
			}
			currentSection = text
			currentContent = nil
		} else {
			currentContent = append(currentContent, text)
		}

		fullText.WriteString(text)
		fullText.WriteString("\n")
	}
	if len(currentContent) > 0 {
		sections[currentSection] = strings.Join(currentContent, "\n")
	}

	full := fullText.String()
	return &domain.LiteratureContent{
		Title:    extractTitle(full),
		Abstract: extractAbstract(full),
		Sections: sections,
		FullText: full,
		FileType: "docx",
	}, nil
}

type docxParagraph struct {
	style string
	text  string
}

// decodeParagraphs walks the WordprocessingML token stream, collecting
// one entry per w:p with its w:pStyle and concatenated w:t runs.
func decodeParagraphs(r io.Reader) ([]docxParagraph, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []docxParagraph
	var current *docxParagraph
	var inText bool

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				current = &docxParagraph{}
			case "pStyle":
				if current != nil {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							current.style = attr.Value
						}
					}
				}
			case "t":
				inText = current != nil
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if current != nil {
					paragraphs = append(paragraphs, *current)
					current = nil
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && current != nil {
				current.text += string(t)
			}
		}
	}

	return paragraphs, nil
}
