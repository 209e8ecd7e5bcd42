// Package swipe is the terminal gesture surface: each list row can be
// swiped open to the left or right, and the surface tells the list
// controller when that happens.
package swipe

import "github.com/Makepad-fr/swipelist/internal/undolist"

// Row is the swipe state of one rendered list row.
type Row struct {
	id      string
	open    undolist.Direction
	mounted bool
	onOpen  func(id string, dir undolist.Direction)
}

func newRow(id string, onOpen func(string, undolist.Direction)) *Row {
	return &Row{id: id, mounted: true, onOpen: onOpen}
}

// ID is the item id the row renders.
func (r *Row) ID() string { return r.id }

// Open swipes the row open in dir and reports it. Swiping an already
// open row further in the same direction reports nothing.
func (r *Row) Open(dir undolist.Direction) {
	if !r.mounted || dir == undolist.SwipeNone || r.open == dir {
		return
	}
	r.open = dir
	if r.onOpen != nil {
		r.onOpen(r.id, dir)
	}
}

// Close returns the row to its resting position.
func (r *Row) Close() { r.open = undolist.SwipeNone }

// Live reports whether the row is still mounted.
func (r *Row) Live() bool { return r.mounted }

// Opened returns the direction the row is open in, or SwipeNone.
func (r *Row) Opened() undolist.Direction { return r.open }

func (r *Row) unmount() {
	r.mounted = false
	r.open = undolist.SwipeNone
}

var _ undolist.RowHandle = (*Row)(nil)
