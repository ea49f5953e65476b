package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotIsACopy(t *testing.T) {
	a := NewAdapter(nil)
	if err := a.AppendParagraph("first"); err != nil {
		t.Fatalf("AppendParagraph: %v", err)
	}

	snap := a.Snapshot()
	snap[0].Text = "mutated"

	got := a.Snapshot()
	want := []Block{Paragraph("first")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mutated the tree (-want +got):\n%s", diff)
	}
}

func TestInsertBreakAppendsMarker(t *testing.T) {
	a := NewAdapter(nil)
	if err := a.AppendParagraph("body"); err != nil {
		t.Fatalf("AppendParagraph: %v", err)
	}
	if err := a.InsertBreak(); err != nil {
		t.Fatalf("InsertBreak: %v", err)
	}

	snap := a.Snapshot()
	if got := snap[len(snap)-1].Kind; got != KindBreakMarker {
		t.Errorf("trailing block kind = %v, want %v", got, KindBreakMarker)
	}
	if got := a.MarkerCount(); got != 1 {
		t.Errorf("MarkerCount() = %d, want 1", got)
	}
}

func TestInsertBreakNotEditable(t *testing.T) {
	a := NewAdapter(nil)
	a.SetEditable(false)

	if err := a.InsertBreak(); !errors.Is(err, ErrNotEditable) {
		t.Errorf("InsertBreak() error = %v, want ErrNotEditable", err)
	}
	if got := a.MarkerCount(); got != 0 {
		t.Errorf("MarkerCount() = %d, want 0", got)
	}
}

func TestChangeNotificationsCoalesce(t *testing.T) {
	a := NewAdapter(nil)
	for i := 0; i < 5; i++ {
		if err := a.AppendParagraph("p"); err != nil {
			t.Fatalf("AppendParagraph: %v", err)
		}
	}

	// Five unconsumed mutations collapse into a single notification.
	select {
	case <-a.Changes():
	default:
		t.Fatal("expected a pending change notification")
	}
	select {
	case <-a.Changes():
		t.Error("expected notifications to coalesce into one")
	default:
	}
}

func TestLoadReplacesContent(t *testing.T) {
	a := NewAdapter(nil)
	if err := a.AppendParagraph("old"); err != nil {
		t.Fatalf("AppendParagraph: %v", err)
	}

	a.Load(&Source{
		Title:  "Lease Agreement",
		Blocks: []Block{Heading(1, "Lease Agreement"), Paragraph("term")},
	})

	if got := a.Title(); got != "Lease Agreement" {
		t.Errorf("Title() = %q, want %q", got, "Lease Agreement")
	}
	if got := len(a.Snapshot()); got != 2 {
		t.Errorf("len(Snapshot()) = %d, want 2", got)
	}
}

func TestHeadingLevelClamped(t *testing.T) {
	if got := Heading(0, "x").Level; got != 1 {
		t.Errorf("Heading(0).Level = %d, want 1", got)
	}
	if got := Heading(9, "x").Level; got != 6 {
		t.Errorf("Heading(9).Level = %d, want 6", got)
	}
}
