// Package docx builds a content tree from a .docx file using go-docx.
// Paragraphs with Heading styles become heading blocks; everything else
// text-bearing becomes a paragraph.
package docx

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/docfolio/docfolio/internal/document"
)

// Parser parses DOCX files into a document source.
type Parser struct{}

// NewParser creates a new DOCX parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a DOCX document from an io.Reader. go-docx needs a
// ReadSeeker plus a size, so the stream is spooled to a temp file first.
func (p *Parser) Parse(r io.Reader, name string) (*document.Source, error) {
	tmp, err := os.CreateTemp("", "docfolio-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	src := &document.Source{
		Title: strings.TrimSuffix(name, ".docx"),
	}

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		if level := headingLevel(para); level > 0 {
			src.Blocks = append(src.Blocks, document.Heading(level, text))
		} else {
			src.Blocks = append(src.Blocks, document.Paragraph(text))
		}
	}

	return src, nil
}

func headingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(para.Properties.Style.Val)
	style = strings.ReplaceAll(style, " ", "")
	if rest, ok := strings.CutPrefix(style, "heading"); ok && len(rest) == 1 {
		if rest[0] >= '1' && rest[0] <= '6' {
			return int(rest[0] - '0')
		}
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
