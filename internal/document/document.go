// Package document holds the content tree of a legal document and the
// adapter through which it is edited. The tree is an ordered sequence of
// block nodes; break markers inside it define the page boundaries the reflow
// engine derives pages from.
package document

// BlockKind identifies the type of a content block.
type BlockKind int

const (
	// KindParagraph is a run of body text.
	KindParagraph BlockKind = iota
	// KindHeading is a section heading with a level of 1-6.
	KindHeading
	// KindBreakMarker is an atomic page-boundary marker. It carries no
	// payload and is never split or edited.
	KindBreakMarker
)

// String returns a short name for the block kind.
func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindBreakMarker:
		return "break"
	}
	return "unknown"
}

// Block is one node of the content tree.
type Block struct {
	Kind  BlockKind
	Level int    // heading level, 1-6; zero for other kinds
	Text  string // empty for break markers
}

// Paragraph returns a paragraph block with the given text.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

// Heading returns a heading block. Levels outside 1-6 are clamped.
func Heading(level int, text string) Block {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return Block{Kind: KindHeading, Level: level, Text: text}
}

// BreakMarker returns a page-break marker block.
func BreakMarker() Block {
	return Block{Kind: KindBreakMarker}
}

// Source is a parsed document ready to be loaded into an Adapter.
type Source struct {
	Title  string
	Blocks []Block
}

// CountMarkers returns the number of break markers in a block sequence.
func CountMarkers(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		if b.Kind == KindBreakMarker {
			n++
		}
	}
	return n
}
