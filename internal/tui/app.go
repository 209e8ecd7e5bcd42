// Package tui is the terminal front end: a two-tab navigator with the
// swipe-to-delete task list and a static document preview.
package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/swipelist/internal/ui"
	"github.com/Makepad-fr/swipelist/internal/undolist"
)

type tab int

const (
	tabTasks tab = iota
	tabPreview
)

// chrome is the height taken by the border, tab bar and status lines.
const chrome = 6

// App is the root Bubble Tea model.
type App struct {
	active  tab
	keys    appKeys
	tasks   tasksModel
	preview previewModel
	changes <-chan struct{}
	log     *slog.Logger

	width, height int
}

// NewApp builds the navigator around ctrl. changes is signalled whenever
// the controller changes outside the event loop; it may be nil.
func NewApp(ctrl *undolist.Controller, changes <-chan struct{}, preview PreviewOptions, log *slog.Logger) App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	keys := newAppKeys()
	a := App{
		keys:    keys,
		preview: newPreviewModel(preview),
		changes: changes,
		log:     log,
	}
	a.tasks = newTasksModel(ctrl, func() []key.Binding {
		return []key.Binding{keys.NextTab, keys.Quit}
	})
	a.resize(80, 24)
	return a
}

func (a App) Init() tea.Cmd { return waitForChange(a.changes) }

// waitForChange turns one controller notification into a listChangedMsg.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return listChangedMsg{}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case listChangedMsg:
		var cmd tea.Cmd
		a.tasks, cmd = a.tasks.Update(msg)
		return a, tea.Batch(cmd, waitForChange(a.changes))

	case bannerTickMsg:
		var cmd tea.Cmd
		a.tasks, cmd = a.tasks.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.tasks.surface.Unmount()
			a.log.Debug("quit")
			return a, tea.Quit
		case key.Matches(msg, a.keys.NextTab), key.Matches(msg, a.keys.PrevTab):
			a.switchTo(1 - a.active)
			return a, nil
		case key.Matches(msg, a.keys.Tasks):
			a.switchTo(tabTasks)
			return a, nil
		case key.Matches(msg, a.keys.Preview):
			a.switchTo(tabPreview)
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.active {
	case tabPreview:
		a.preview, cmd = a.preview.Update(msg)
	default:
		a.tasks, cmd = a.tasks.Update(msg)
	}
	return a, cmd
}

func (a *App) switchTo(t tab) {
	if t == a.active {
		return
	}
	if a.active == tabTasks {
		a.tasks.surface.CloseAll()
	}
	a.active = t
	a.log.Debug("tab switched", "tab", a.tabTitle())
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	innerW := w - 4
	innerH := h - chrome
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 3 {
		innerH = 3
	}
	a.tasks.setSize(innerW, innerH)
	a.preview.setSize(innerW, innerH-2)
}

func (a App) tabTitle() string {
	if a.active == tabPreview {
		return a.preview.opts.Title
	}
	return "Swipe to Delete"
}

func (a App) tabBar() string {
	t := ui.Current()
	names := []struct {
		tab   tab
		label string
	}{
		{tabTasks, "1 Tasks"},
		{tabPreview, "2 Preview"},
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n.tab == a.active {
			parts = append(parts, t.TabActive.Render(n.label))
		} else {
			parts = append(parts, t.TabInactive.Render(n.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a App) View() string {
	var body string
	if a.active == tabPreview {
		body = ui.Current().Title.Render(a.tabTitle()) + "\n" + a.preview.View()
	} else {
		body = a.tasks.View()
	}
	return ui.Panel([]string{body, "", a.tabBar()})
}
