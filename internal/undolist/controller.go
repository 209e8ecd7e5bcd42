// Package undolist implements the swipe-to-delete list state machine:
// items are appended by AddItem, removed by a swipe in the delete
// direction, and the most recent removal can be restored with Undo until
// its undo window expires.
package undolist

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Makepad-fr/swipelist/internal/clock"
	"github.com/Makepad-fr/swipelist/internal/model"
)

// DefaultUndoWindow is how long a deletion stays undoable.
const DefaultUndoWindow = 9 * time.Second

// RowHandle is the gesture surface's handle on one rendered row.
// Close must not call back into the Controller.
type RowHandle interface {
	Close()
	// Live reports whether the row is still mounted.
	Live() bool
}

// PendingUndo is the single most recent deletion.
type PendingUndo struct {
	Item     model.Item
	Deadline time.Time

	seq uint64
}

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	SeedItems       int
	UndoWindow      time.Duration
	DeleteDirection Direction
	Clock           clock.Clock
	Logger          *slog.Logger

	// OnChange runs after every state change, including expiry of the
	// undo window. It is called without the controller's lock held.
	OnChange func()
}

// Controller owns the list, the row registry and the pending-undo slot.
// All methods are safe to call from any goroutine; each one is applied
// atomically with respect to the others.
type Controller struct {
	mu      sync.Mutex
	items   []model.Item
	nextID  int
	pending *PendingUndo
	timer   clock.Timer
	seq     uint64
	rows    map[string]RowHandle
	closed  bool

	window    time.Duration
	deleteDir Direction
	clock     clock.Clock
	log       *slog.Logger
	onChange  func()
}

// New returns a controller seeded with opts.SeedItems items.
func New(opts Options) *Controller {
	c := &Controller{
		items:     model.Seed(opts.SeedItems),
		rows:      make(map[string]RowHandle),
		window:    opts.UndoWindow,
		deleteDir: opts.DeleteDirection,
		clock:     opts.Clock,
		log:       opts.Logger,
		onChange:  opts.OnChange,
	}
	c.nextID = len(c.items)
	if c.window <= 0 {
		c.window = DefaultUndoWindow
	}
	if c.deleteDir == SwipeNone {
		c.deleteDir = SwipeRight
	}
	if c.clock == nil {
		c.clock = clock.Real()
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// AddItem appends a new item built from the counter and returns it.
func (c *Controller) AddItem() model.Item {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return model.Item{}
	}
	it := model.NewItem(c.nextID)
	c.items = append(c.items, it)
	c.nextID++
	c.mu.Unlock()

	c.log.Debug("item added", "id", it.ID, "label", it.Label)
	c.changed()
	return it
}

// DeleteItem removes the item with the given id and makes it the pending
// undo. Unknown ids are ignored.
func (c *Controller) DeleteItem(id string) {
	c.mu.Lock()
	ok := c.deleteLocked(id)
	c.mu.Unlock()
	if ok {
		c.changed()
	}
}

// Undo puts the pending item back at the front of the list. Without a
// pending undo it does nothing.
func (c *Controller) Undo() {
	c.mu.Lock()
	if c.closed || c.pending == nil {
		c.mu.Unlock()
		return
	}
	it := c.pending.Item
	c.items = append([]model.Item{it}, c.items...)
	c.disarmLocked()
	c.pending = nil
	c.mu.Unlock()

	c.log.Debug("deletion undone", "id", it.ID)
	c.changed()
}

// OnSwipeOpen handles a row opening. Every other row is closed so at most
// one row shows its actions; a swipe in the delete direction also
// deletes the row's item.
func (c *Controller) OnSwipeOpen(id string, dir Direction) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	for other, h := range c.rows {
		if other != id && h.Live() {
			h.Close()
		}
	}
	deleted := false
	if dir == c.deleteDir {
		deleted = c.deleteLocked(id)
	}
	c.mu.Unlock()

	c.log.Debug("row opened", "id", id, "direction", dir.String(), "deleted", deleted)
	if deleted {
		c.changed()
	}
}

// RegisterRow records the handle for a mounted row, replacing any
// previous handle for the same id.
func (c *Controller) RegisterRow(id string, h RowHandle) {
	if h == nil {
		return
	}
	c.mu.Lock()
	c.rows[id] = h
	c.mu.Unlock()
}

// UnregisterRow forgets the handle for an unmounted row.
func (c *Controller) UnregisterRow(id string) {
	c.mu.Lock()
	delete(c.rows, id)
	c.mu.Unlock()
}

// Close cancels the expiry timer. The controller ignores all further
// mutations.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.disarmLocked()
	c.log.Debug("controller closed")
}

// Items returns a copy of the list in display order.
func (c *Controller) Items() []model.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// NextID returns the counter value the next AddItem will use.
func (c *Controller) NextID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextID
}

// Pending returns the pending undo, if any.
func (c *Controller) Pending() (PendingUndo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return PendingUndo{}, false
	}
	return *c.pending, true
}

// BannerText is the undo banner label, or "" when nothing is undoable.
func (c *Controller) BannerText() string {
	p, ok := c.Pending()
	if !ok {
		return ""
	}
	return "Undo " + p.Item.Label
}

// Remaining is the time left before the pending undo expires.
func (c *Controller) Remaining() time.Duration {
	p, ok := c.Pending()
	if !ok {
		return 0
	}
	left := p.Deadline.Sub(c.clock.Now())
	if left < 0 {
		return 0
	}
	return left
}

// UndoWindow is the configured undo duration.
func (c *Controller) UndoWindow() time.Duration { return c.window }

// DeleteDirection is the swipe direction that deletes a row.
func (c *Controller) DeleteDirection() Direction { return c.deleteDir }

// deleteLocked reports whether an item was removed. c.mu must be held.
func (c *Controller) deleteLocked(id string) bool {
	if c.closed {
		return false
	}
	idx := -1
	for i, it := range c.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.log.Debug("delete of unknown item ignored", "id", id)
		return false
	}

	if h, ok := c.rows[id]; ok && h.Live() {
		h.Close()
	}

	it := c.items[idx]
	c.items = append(c.items[:idx:idx], c.items[idx+1:]...)

	if c.pending != nil {
		c.log.Debug("pending undo superseded", "id", c.pending.Item.ID)
	}
	c.disarmLocked()

	c.seq++
	seq := c.seq
	c.pending = &PendingUndo{
		Item:     it,
		Deadline: c.clock.Now().Add(c.window),
		seq:      seq,
	}
	c.timer = c.clock.AfterFunc(c.window, func() { c.expire(seq) })
	c.log.Debug("item deleted", "id", it.ID, "undo_window", c.window)
	return true
}

// disarmLocked stops the expiry timer, if any. c.mu must be held.
func (c *Controller) disarmLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// expire drops the pending undo armed with seq, unless it was already
// consumed or replaced.
func (c *Controller) expire(seq uint64) {
	c.mu.Lock()
	if c.closed || c.pending == nil || c.pending.seq != seq {
		c.mu.Unlock()
		return
	}
	id := c.pending.Item.ID
	c.pending = nil
	c.timer = nil
	c.mu.Unlock()

	c.log.Debug("undo window expired", "id", id)
	c.changed()
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}
