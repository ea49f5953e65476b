// Package htmlout renders derived pages as HTML page containers. The
// rendering is purely a function of the page list and the chrome: nothing is
// read back from previously rendered output.
package htmlout

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/docfolio/docfolio/internal/chrome"
	"github.com/docfolio/docfolio/internal/document"
	"github.com/docfolio/docfolio/internal/reflow"
)

// Stable class names identifying the rendered structure.
const (
	ClassPage         = "docfolio-page"
	ClassPageReadOnly = "docfolio-page--readonly"
	ClassHeader       = "docfolio-header"
	ClassBody         = "docfolio-body"
	ClassFooter       = "docfolio-footer"
)

// Renderer writes page containers as HTML.
type Renderer struct {
	Chrome chrome.Chrome
}

// NewRenderer creates a renderer with the given chrome.
func NewRenderer(c chrome.Chrome) *Renderer {
	return &Renderer{Chrome: c}
}

// Render writes every page container to w. Trailing pages are marked
// read-only; all others carry contenteditable="true".
func (r *Renderer) Render(w io.Writer, pages []reflow.Page) error {
	total := len(pages)
	for _, page := range pages {
		if err := html.Render(w, r.pageNode(page, total)); err != nil {
			return fmt.Errorf("render page %d: %w", page.Index, err)
		}
	}
	return nil
}

func (r *Renderer) pageNode(page reflow.Page, total int) *html.Node {
	class := ClassPage
	editable := "true"
	if page.IsTrailing {
		class = ClassPage + " " + ClassPageReadOnly
		editable = "false"
	}

	container := element(atom.Div, "div")
	container.Attr = []html.Attribute{
		{Key: "class", Val: class},
		{Key: "data-page", Val: strconv.Itoa(page.Index)},
		{Key: "contenteditable", Val: editable},
	}

	container.AppendChild(textDiv(ClassHeader, r.Chrome.Header(page.Index, total)))

	body := element(atom.Div, "div")
	body.Attr = []html.Attribute{{Key: "class", Val: ClassBody}}
	for _, b := range page.Blocks {
		body.AppendChild(blockNode(b))
	}
	container.AppendChild(body)

	container.AppendChild(textDiv(ClassFooter, r.Chrome.Footer(page.Index, total)))
	return container
}

func blockNode(b document.Block) *html.Node {
	switch b.Kind {
	case document.KindHeading:
		tag := "h" + strconv.Itoa(b.Level)
		n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
		n.AppendChild(text(b.Text))
		return n
	default:
		n := element(atom.P, "p")
		n.AppendChild(text(b.Text))
		return n
	}
}

func textDiv(class, content string) *html.Node {
	n := element(atom.Div, "div")
	n.Attr = []html.Attribute{{Key: "class", Val: class}}
	n.AppendChild(text(content))
	return n
}

func element(a atom.Atom, tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: tag}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
