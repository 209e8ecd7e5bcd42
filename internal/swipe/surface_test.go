package swipe

import (
	"testing"
	"time"

	"github.com/Makepad-fr/swipelist/internal/clock"
	"github.com/Makepad-fr/swipelist/internal/model"
	"github.com/Makepad-fr/swipelist/internal/undolist"
)

type recordingRegistry struct {
	registered   map[string]undolist.RowHandle
	unregistered []string
	opened       []string
}

func newRecordingRegistry() *recordingRegistry {
	return &recordingRegistry{registered: map[string]undolist.RowHandle{}}
}

func (r *recordingRegistry) RegisterRow(id string, h undolist.RowHandle) { r.registered[id] = h }
func (r *recordingRegistry) UnregisterRow(id string) {
	delete(r.registered, id)
	r.unregistered = append(r.unregistered, id)
}
func (r *recordingRegistry) OnSwipeOpen(id string, dir undolist.Direction) {
	r.opened = append(r.opened, id+":"+dir.String())
}

func TestSyncMountsAndUnmounts(t *testing.T) {
	reg := newRecordingRegistry()
	s := NewSurface(reg)

	s.Sync(model.Seed(3))
	if s.Len() != 3 || len(reg.registered) != 3 {
		t.Fatalf("rows = %d registered = %d, want 3", s.Len(), len(reg.registered))
	}

	old, _ := s.Row("1")
	s.Sync([]model.Item{model.NewItem(0), model.NewItem(2)})
	if s.Len() != 2 {
		t.Fatalf("rows = %d, want 2", s.Len())
	}
	if old.Live() {
		t.Fatalf("removed row still live")
	}
	if len(reg.unregistered) != 1 || reg.unregistered[0] != "1" {
		t.Fatalf("unregistered = %v, want [1]", reg.unregistered)
	}

	s.Sync(model.Seed(3))
	fresh, ok := s.Row("1")
	if !ok || fresh == old || !fresh.Live() {
		t.Fatalf("re-added item did not get a fresh row")
	}
}

func TestRowOpenReportsOncePerTransition(t *testing.T) {
	reg := newRecordingRegistry()
	s := NewSurface(reg)
	s.Sync(model.Seed(1))

	s.Swipe("0", undolist.SwipeLeft)
	s.Swipe("0", undolist.SwipeLeft)
	s.Swipe("0", undolist.SwipeRight)
	s.Swipe("0", undolist.SwipeNone)
	s.Swipe("9", undolist.SwipeLeft)

	want := []string{"0:left", "0:right"}
	if len(reg.opened) != len(want) {
		t.Fatalf("opened = %v, want %v", reg.opened, want)
	}
	for i := range want {
		if reg.opened[i] != want[i] {
			t.Fatalf("opened = %v, want %v", reg.opened, want)
		}
	}
}

func TestUnmountedRowIgnoresOpen(t *testing.T) {
	reg := newRecordingRegistry()
	s := NewSurface(reg)
	s.Sync(model.Seed(1))
	row, _ := s.Row("0")
	s.Unmount()

	row.Open(undolist.SwipeLeft)
	if len(reg.opened) != 0 || row.Opened() != undolist.SwipeNone {
		t.Fatalf("unmounted row opened")
	}
}

func TestCloseAll(t *testing.T) {
	s := NewSurface(newRecordingRegistry())
	s.Sync(model.Seed(2))
	s.Swipe("0", undolist.SwipeLeft)
	s.CloseAll()
	row, _ := s.Row("0")
	if row.Opened() != undolist.SwipeNone {
		t.Fatalf("row still open after CloseAll")
	}
}

func TestSurfaceWithController(t *testing.T) {
	fc := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c := undolist.New(undolist.Options{SeedItems: 3, Clock: fc})
	defer c.Close()
	s := NewSurface(c)
	s.Sync(c.Items())

	s.Swipe("0", undolist.SwipeLeft)
	first, _ := s.Row("0")
	if first.Opened() != undolist.SwipeLeft {
		t.Fatalf("row 0 not open")
	}

	// Opening another row closes row 0 and, swiping right, deletes item 1.
	s.Swipe("1", undolist.SwipeRight)
	if first.Opened() != undolist.SwipeNone {
		t.Fatalf("row 0 still open after another row opened")
	}
	deleted, _ := s.Row("1")
	if deleted.Opened() != undolist.SwipeNone {
		t.Fatalf("deleted row not closed")
	}
	s.Sync(c.Items())
	if _, ok := s.Row("1"); ok {
		t.Fatalf("row for deleted item still mounted")
	}
	if deleted.Live() {
		t.Fatalf("row for deleted item still live")
	}

	c.Undo()
	s.Sync(c.Items())
	if _, ok := s.Row("1"); !ok {
		t.Fatalf("row for restored item not mounted")
	}
}
