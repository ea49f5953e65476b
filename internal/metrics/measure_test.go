package metrics

import (
	"strings"
	"testing"

	"github.com/docfolio/docfolio/internal/document"
)

func testGeometry() Geometry {
	return Geometry{
		PageWidth:    612,
		PageHeight:   1008,
		MarginTop:    72,
		MarginRight:  72,
		MarginBottom: 72,
		MarginLeft:   72,
		FontSize:     12,
		LineHeight:   1.5,
	}
}

func TestCapacity(t *testing.T) {
	g := testGeometry()
	if got, want := g.Capacity(), 864.0; got != want {
		t.Errorf("Capacity() = %g, want %g", got, want)
	}
	if got, want := g.ContentWidth(), 468.0; got != want {
		t.Errorf("ContentWidth() = %g, want %g", got, want)
	}
}

func TestBreakMarkerHasNoHeight(t *testing.T) {
	if got := BlockHeight(document.BreakMarker(), testGeometry()); got != 0 {
		t.Errorf("BlockHeight(marker) = %g, want 0", got)
	}
}

func TestLongerTextIsNotShorter(t *testing.T) {
	g := testGeometry()
	short := BlockHeight(document.Paragraph(strings.Repeat("a", 50)), g)
	long := BlockHeight(document.Paragraph(strings.Repeat("a", 5000)), g)
	if long < short {
		t.Errorf("height of long paragraph (%g) < short paragraph (%g)", long, short)
	}
	if long <= g.Capacity() {
		t.Errorf("5000-char paragraph height %g should exceed one page capacity %g", long, g.Capacity())
	}
}

func TestHeadingTallerThanParagraph(t *testing.T) {
	g := testGeometry()
	text := "Definitions and Interpretation"
	h1 := BlockHeight(document.Heading(1, text), g)
	p := BlockHeight(document.Paragraph(text), g)
	if h1 <= p {
		t.Errorf("h1 height %g should exceed paragraph height %g", h1, p)
	}
}

func TestSliceHeightSums(t *testing.T) {
	g := testGeometry()
	blocks := []document.Block{
		document.Paragraph("one"),
		document.Paragraph("two"),
	}
	want := BlockHeight(blocks[0], g) + BlockHeight(blocks[1], g)
	if got := SliceHeight(blocks, g); got != want {
		t.Errorf("SliceHeight() = %g, want %g", got, want)
	}
}
