package reflow

import "github.com/docfolio/docfolio/internal/document"

// Page is one derived page container. Pages are ephemeral: they are
// recomputed from the content tree on every pass and never stored
// independently of it.
type Page struct {
	// Index is the 1-based page number.
	Index int
	// IsTrailing marks the empty page that follows a trailing break
	// marker. Trailing pages are rendered read-only.
	IsTrailing bool
	// Blocks is the content slice between two markers.
	Blocks []document.Block
}

// Derive splits a content snapshot into pages at break markers. The page
// count is always the marker count plus one, so re-deriving an unchanged
// snapshot yields an identical page list.
func Derive(blocks []document.Block) []Page {
	pages := []Page{{Index: 1}}
	for _, b := range blocks {
		if b.Kind == document.KindBreakMarker {
			pages = append(pages, Page{Index: len(pages) + 1})
			continue
		}
		last := &pages[len(pages)-1]
		last.Blocks = append(last.Blocks, b)
	}

	// The page after a trailing marker has no content yet; it exists only
	// because the marker does.
	if n := len(blocks); n > 0 && blocks[n-1].Kind == document.KindBreakMarker {
		pages[len(pages)-1].IsTrailing = true
	}
	return pages
}
