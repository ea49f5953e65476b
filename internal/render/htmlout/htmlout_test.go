package htmlout

import (
	"strings"
	"testing"

	"github.com/docfolio/docfolio/internal/chrome"
	"github.com/docfolio/docfolio/internal/document"
	"github.com/docfolio/docfolio/internal/reflow"
)

func testChrome() chrome.Chrome {
	return chrome.Chrome{Title: "Operating Agreement", Stamp: "Confidential", Year: 2026}
}

func renderString(t *testing.T, pages []reflow.Page) string {
	t.Helper()
	var sb strings.Builder
	if err := NewRenderer(testChrome()).Render(&sb, pages); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return sb.String()
}

func TestRenderSinglePage(t *testing.T) {
	out := renderString(t, []reflow.Page{{
		Index:  1,
		Blocks: []document.Block{document.Heading(1, "Operating Agreement"), document.Paragraph("terms")},
	}})

	for _, want := range []string{
		`class="` + ClassPage + `"`,
		`data-page="1"`,
		`contenteditable="true"`,
		`<h1>Operating Agreement</h1>`,
		`<p>terms</p>`,
		"Operating Agreement - Page 1 of 1",
		"Confidential · 2026 · Page 1 of 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput: %s", want, out)
		}
	}
}

func TestRenderTrailingPageIsReadOnly(t *testing.T) {
	out := renderString(t, []reflow.Page{
		{Index: 1, Blocks: []document.Block{document.Paragraph("body")}},
		{Index: 2, IsTrailing: true},
	})

	if !strings.Contains(out, ClassPageReadOnly) {
		t.Errorf("trailing page missing read-only class\noutput: %s", out)
	}
	if !strings.Contains(out, `contenteditable="false"`) {
		t.Errorf("trailing page not marked contenteditable=false\noutput: %s", out)
	}
	if !strings.Contains(out, "Operating Agreement - Page 2 of 2") {
		t.Errorf("trailing page header wrong\noutput: %s", out)
	}
}

func TestRenderedPageCountMatches(t *testing.T) {
	pages := []reflow.Page{
		{Index: 1}, {Index: 2}, {Index: 3, IsTrailing: true},
	}
	out := renderString(t, pages)
	if got := strings.Count(out, `data-page=`); got != len(pages) {
		t.Errorf("rendered %d page containers, want %d", got, len(pages))
	}
}
