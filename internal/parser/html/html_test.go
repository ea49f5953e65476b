package html

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/docfolio/docfolio/internal/document"
)

func TestParseHeadingsAndParagraphs(t *testing.T) {
	input := `<html>
<head><title>Share Purchase Agreement</title></head>
<body>
  <h1>Share Purchase Agreement</h1>
  <p>This agreement is made between the parties.</p>
  <h2>Definitions</h2>
  <p>Capitalised terms have the meanings below.</p>
</body>
</html>`

	src, err := NewParser().ParseString(input, "spa.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got, want := src.Title, "Share Purchase Agreement"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	want := []document.Block{
		document.Heading(1, "Share Purchase Agreement"),
		document.Paragraph("This agreement is made between the parties."),
		document.Heading(2, "Definitions"),
		document.Paragraph("Capitalised terms have the meanings below."),
	}
	if diff := cmp.Diff(want, src.Blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePageBreakHint(t *testing.T) {
	input := `<body><p>one</p><hr class="page-break"><p>two</p><hr><p>three</p></body>`

	src, err := NewParser().ParseString(input, "doc.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Only the hinted <hr> becomes a marker.
	if got := document.CountMarkers(src.Blocks); got != 1 {
		t.Fatalf("marker count = %d, want 1", got)
	}
	if src.Blocks[1].Kind != document.KindBreakMarker {
		t.Errorf("block 1 kind = %v, want break marker", src.Blocks[1].Kind)
	}
}

func TestParseFallbackTitleFromName(t *testing.T) {
	src, err := NewParser().ParseString("<body><p>x</p></body>", "retainer.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := src.Title, "retainer"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
}

func TestParseSkipsScriptAndStyle(t *testing.T) {
	input := `<body><script>var x;</script><style>p{}</style><p>kept</p></body>`
	src, err := NewParser().ParseString(input, "doc.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []document.Block{document.Paragraph("kept")}
	if diff := cmp.Diff(want, src.Blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCollapsesWhitespace(t *testing.T) {
	input := "<body><p>spread\n  over\n  lines</p></body>"
	src, err := NewParser().ParseString(input, "doc.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := src.Blocks[0].Text, "spread over lines"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}
