// Package html builds a content tree from an HTML document. Headings map to
// heading blocks, text-bearing elements to paragraphs, and
// <hr class="page-break"> to break markers.
package html

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/docfolio/docfolio/internal/document"
)

// Parser parses HTML into a document source.
type Parser struct{}

// NewParser creates a new HTML parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses HTML from a string.
func (p *Parser) ParseString(content, name string) (*document.Source, error) {
	return p.Parse(strings.NewReader(content), name)
}

// Parse parses HTML from an io.Reader. The name is used as the fallback
// title when the document has no <title>.
func (p *Parser) Parse(r io.Reader, name string) (*document.Source, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	src := &document.Source{
		Title: strings.TrimSuffix(strings.TrimSuffix(name, ".html"), ".htm"),
	}
	if title := findTitle(root); title != "" {
		src.Title = title
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				if t := textContent(n); t != "" {
					src.Blocks = append(src.Blocks, document.Heading(level, t))
				}
				return
			}

			switch n.Data {
			case "script", "style", "nav":
				return
			case "hr":
				if isPageBreak(n) {
					src.Blocks = append(src.Blocks, document.BreakMarker())
				}
				return
			case "p", "li", "td", "blockquote", "pre":
				if t := textContent(n); t != "" {
					src.Blocks = append(src.Blocks, document.Paragraph(t))
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(root); body != nil {
		walk(body)
	} else {
		walk(root)
	}

	return src, nil
}

// isPageBreak reports whether an <hr> carries the page-break class hint.
func isPageBreak(n *html.Node) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, "class") && strings.Contains(a.Val, "page-break") {
			return true
		}
	}
	return false
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
