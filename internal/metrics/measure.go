package metrics

import (
	"math"
	"unicode/utf8"

	"github.com/docfolio/docfolio/internal/document"
)

// Geometry describes the page box used for height estimation. All values are
// in points (1/72 inch).
type Geometry struct {
	PageWidth  float64
	PageHeight float64

	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// FontSize is the body text size; LineHeight is a multiplier on it.
	FontSize   float64
	LineHeight float64
}

// headingScale maps heading levels to font-size factors relative to body
// text, following the usual browser defaults.
var headingScale = [7]float64{0, 2.0, 1.5, 1.17, 1.0, 0.83, 0.75}

// avgGlyphFraction approximates the average glyph advance as a fraction of
// the font size for proportional serif text.
const avgGlyphFraction = 0.5

// ContentWidth returns the usable line width inside the margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// Capacity returns the usable content height of one page.
func (g Geometry) Capacity() float64 {
	return g.PageHeight - g.MarginTop - g.MarginBottom
}

// BlockHeight estimates the rendered height of a single block. The estimate
// is a wrapped-line-count heuristic, not font-metric typesetting: line count
// comes from rune length over an average characters-per-line figure.
func BlockHeight(b document.Block, g Geometry) float64 {
	switch b.Kind {
	case document.KindBreakMarker:
		return 0
	case document.KindHeading:
		level := b.Level
		if level < 1 || level > 6 {
			level = 1
		}
		size := g.FontSize * headingScale[level]
		return textHeight(b.Text, size, g) + size // heading margin
	default:
		return textHeight(b.Text, g.FontSize, g) + g.FontSize // paragraph margin
	}
}

// SliceHeight estimates the stacked height of a block sequence.
func SliceHeight(blocks []document.Block, g Geometry) float64 {
	total := 0.0
	for _, b := range blocks {
		total += BlockHeight(b, g)
	}
	return total
}

func textHeight(text string, fontSize float64, g Geometry) float64 {
	lineHeight := fontSize * g.LineHeight
	if text == "" {
		return lineHeight
	}
	perLine := charsPerLine(fontSize, g.ContentWidth())
	lines := math.Ceil(float64(utf8.RuneCountInString(text)) / float64(perLine))
	return lines * lineHeight
}

func charsPerLine(fontSize, width float64) int {
	if fontSize <= 0 || width <= 0 {
		return 1
	}
	n := int(width / (fontSize * avgGlyphFraction))
	if n < 1 {
		n = 1
	}
	return n
}
