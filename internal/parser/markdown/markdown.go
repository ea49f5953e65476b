// Package markdown builds a content tree from Markdown using goldmark.
// Thematic breaks (---) map to break markers.
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/docfolio/docfolio/internal/document"
)

// Parser parses Markdown into a document source.
type Parser struct{}

// NewParser creates a new Markdown parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses Markdown from an io.Reader. The name, stripped of its
// extension, becomes the title unless the document opens with a level-1
// heading.
func (p *Parser) Parse(r io.Reader, name string) (*document.Source, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(raw))

	src := &document.Source{
		Title: strings.TrimSuffix(strings.TrimSuffix(name, ".md"), ".markdown"),
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(raw))
			if node.Level == 1 && len(src.Blocks) == 0 {
				src.Title = title
			}
			src.Blocks = append(src.Blocks, document.Heading(node.Level, title))
		case *ast.ThematicBreak:
			src.Blocks = append(src.Blocks, document.BreakMarker())
		default:
			if t := extractText(n, raw); t != "" {
				src.Blocks = append(src.Blocks, document.Paragraph(t))
			}
		}
	}

	return src, nil
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.ChildCount() == 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		} else {
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
