package swipe

import (
	"github.com/Makepad-fr/swipelist/internal/model"
	"github.com/Makepad-fr/swipelist/internal/undolist"
)

// Registry receives row lifecycle and swipe events.
// *undolist.Controller satisfies it.
type Registry interface {
	RegisterRow(id string, h undolist.RowHandle)
	UnregisterRow(id string)
	OnSwipeOpen(id string, dir undolist.Direction)
}

// Surface keeps one Row per visible item.
type Surface struct {
	reg  Registry
	rows map[string]*Row
}

func NewSurface(reg Registry) *Surface {
	return &Surface{reg: reg, rows: make(map[string]*Row)}
}

// Sync mounts rows for new items and unmounts rows whose item is gone.
func (s *Surface) Sync(items []model.Item) {
	want := make(map[string]struct{}, len(items))
	for _, it := range items {
		want[it.ID] = struct{}{}
		if _, ok := s.rows[it.ID]; ok {
			continue
		}
		row := newRow(it.ID, s.reg.OnSwipeOpen)
		s.rows[it.ID] = row
		s.reg.RegisterRow(it.ID, row)
	}
	for id, row := range s.rows {
		if _, ok := want[id]; ok {
			continue
		}
		row.unmount()
		s.reg.UnregisterRow(id)
		delete(s.rows, id)
	}
}

// Row returns the mounted row for id.
func (s *Surface) Row(id string) (*Row, bool) {
	r, ok := s.rows[id]
	return r, ok
}

// Swipe opens the row for id in dir. Unknown ids are ignored.
func (s *Surface) Swipe(id string, dir undolist.Direction) {
	if r, ok := s.rows[id]; ok {
		r.Open(dir)
	}
}

// CloseAll returns every row to rest.
func (s *Surface) CloseAll() {
	for _, r := range s.rows {
		r.Close()
	}
}

// Unmount drops every row, e.g. when the screen goes away.
func (s *Surface) Unmount() {
	s.Sync(nil)
}

// Len is the number of mounted rows.
func (s *Surface) Len() int { return len(s.rows) }
