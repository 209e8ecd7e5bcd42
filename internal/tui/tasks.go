package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/swipelist/internal/model"
	"github.com/Makepad-fr/swipelist/internal/swipe"
	"github.com/Makepad-fr/swipelist/internal/ui"
	"github.com/Makepad-fr/swipelist/internal/undolist"
)

const bannerTick = 250 * time.Millisecond

// listChangedMsg is delivered when the controller changed outside Update,
// i.e. the undo window expired.
type listChangedMsg struct{}

type bannerTickMsg struct{}

// taskItem adapts model.Item to bubbles/list.Item
type taskItem struct{ model.Item }

func (i taskItem) FilterValue() string { return i.Label }

// rowDelegate draws one line per item, including the swipe affordance.
type rowDelegate struct {
	surface   *swipe.Surface
	deleteDir undolist.Direction
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	t := ui.Current()

	width := m.Width() - 16
	if width < 8 {
		width = 8
	}
	label := ansi.Truncate(it.Label, width, "…")

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}

	line := label
	if row, ok := d.surface.Row(it.ID); ok {
		switch row.Opened() {
		case undolist.SwipeNone:
		case d.deleteDir:
			line = t.DeleteBox.Render(t.SymDelete) + " " + label
		default:
			line = label + " " + t.InfoBox.Render(fmt.Sprintf("%s #%s", t.SymInfo, it.ID))
		}
	}
	fmt.Fprintln(w, prefix+line)
}

type tasksModel struct {
	ctrl    *undolist.Controller
	surface *swipe.Surface
	list    list.Model
	keys    taskKeys
	ticking bool
}

func newTasksModel(ctrl *undolist.Controller, extra func() []key.Binding) tasksModel {
	surface := swipe.NewSurface(ctrl)
	keys := newTaskKeys()

	l := list.New(nil, rowDelegate{surface: surface, deleteDir: ctrl.DeleteDirection()}, 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	// left/right belong to swiping, u/d to undo and paging is still on pgup/pgdown.
	l.KeyMap.PrevPage.SetKeys("pgup")
	l.KeyMap.NextPage.SetKeys("pgdown")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.AdditionalShortHelpKeys = func() []key.Binding { return append(keys.short(), extra()...) }
	l.AdditionalFullHelpKeys = func() []key.Binding { return append(keys.full(), extra()...) }

	m := tasksModel{ctrl: ctrl, surface: surface, list: l, keys: keys}
	m.refresh()
	return m
}

// refresh mirrors the controller into the list and the swipe surface.
func (m *tasksModel) refresh() {
	items := m.ctrl.Items()
	m.surface.Sync(items)

	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, taskItem{it})
	}
	m.list.SetItems(li)
	if n := len(li); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	m.list.Title = ui.Counts("Swipe to Delete", len(items), m.ctrl.NextID())
}

func (m tasksModel) selectedID() (string, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return "", false
	}
	return it.ID, true
}

func (m *tasksModel) setSize(w, h int) {
	m.list.SetSize(w, h)
}

func (m tasksModel) Update(msg tea.Msg) (tasksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case listChangedMsg:
		m.refresh()
		cmd := m.startTicking()
		return m, cmd

	case bannerTickMsg:
		if _, ok := m.ctrl.Pending(); ok {
			return m, tickBanner()
		}
		m.ticking = false
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.SwipeRight):
			return m.swipe(undolist.SwipeRight)
		case key.Matches(msg, m.keys.SwipeLeft):
			return m.swipe(undolist.SwipeLeft)
		case key.Matches(msg, m.keys.CloseRows):
			m.surface.CloseAll()
			return m, nil
		case key.Matches(msg, m.keys.Add):
			m.ctrl.AddItem()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Undo):
			if _, ok := m.ctrl.Pending(); !ok {
				return m, nil
			}
			m.ctrl.Undo()
			m.refresh()
			m.list.Select(0)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m tasksModel) swipe(dir undolist.Direction) (tasksModel, tea.Cmd) {
	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}
	m.surface.Swipe(id, dir)
	m.refresh()
	cmd := m.startTicking()
	return m, cmd
}

// startTicking keeps the banner countdown moving while an undo is pending.
func (m *tasksModel) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	if _, ok := m.ctrl.Pending(); !ok {
		return nil
	}
	m.ticking = true
	return tickBanner()
}

func tickBanner() tea.Cmd {
	return tea.Tick(bannerTick, func(time.Time) tea.Msg { return bannerTickMsg{} })
}

// banner is the undo prompt, or "" when nothing can be undone.
func (m tasksModel) banner() string {
	text := m.ctrl.BannerText()
	if text == "" {
		return ""
	}
	t := ui.Current()
	window := m.ctrl.UndoWindow()
	left := m.ctrl.Remaining()
	bar := ui.ProgressBar(int(left/time.Millisecond), int(window/time.Millisecond), 10)
	return t.Banner.Render(fmt.Sprintf("%s  %s  (u)", text, bar))
}

func (m tasksModel) View() string {
	out := m.list.View()
	if b := m.banner(); b != "" {
		out += "\n" + b
	}
	return out
}
