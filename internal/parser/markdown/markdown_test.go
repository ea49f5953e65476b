package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/docfolio/docfolio/internal/document"
)

func parse(t *testing.T, input, name string) *document.Source {
	t.Helper()
	src, err := NewParser().Parse(strings.NewReader(input), name)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return src
}

func TestParseHeadingsAndText(t *testing.T) {
	input := `# Employment Agreement

This agreement sets out the terms of employment.

## Compensation

Base salary is payable monthly.
`
	src := parse(t, input, "employment.md")

	if got, want := src.Title, "Employment Agreement"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	want := []document.Block{
		document.Heading(1, "Employment Agreement"),
		document.Paragraph("This agreement sets out the terms of employment."),
		document.Heading(2, "Compensation"),
		document.Paragraph("Base salary is payable monthly."),
	}
	if diff := cmp.Diff(want, src.Blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestThematicBreakBecomesMarker(t *testing.T) {
	input := "first page\n\n---\n\nsecond page\n"
	src := parse(t, input, "doc.md")

	want := []document.Block{
		document.Paragraph("first page"),
		document.BreakMarker(),
		document.Paragraph("second page"),
	}
	if diff := cmp.Diff(want, src.Blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestTitleFallsBackToFilename(t *testing.T) {
	src := parse(t, "just a paragraph\n", "memo.md")
	if got, want := src.Title, "memo"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
}

func TestLaterH1DoesNotRetitle(t *testing.T) {
	input := "intro text\n\n# Not The Title\n"
	src := parse(t, input, "notes.md")
	if got, want := src.Title, "notes"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
}
