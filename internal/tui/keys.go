package tui

import "github.com/charmbracelet/bubbles/key"

type appKeys struct {
	NextTab key.Binding
	PrevTab key.Binding
	Tasks   key.Binding
	Preview key.Binding
	Quit    key.Binding
}

func newAppKeys() appKeys {
	return appKeys{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Tasks:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tasks")),
		Preview: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "preview")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type taskKeys struct {
	SwipeRight key.Binding
	SwipeLeft  key.Binding
	CloseRows  key.Binding
	Add        key.Binding
	Undo       key.Binding
}

func newTaskKeys() taskKeys {
	return taskKeys{
		SwipeRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "swipe right")),
		SwipeLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "swipe left")),
		CloseRows:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close row")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Undo:       key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
	}
}

func (k taskKeys) short() []key.Binding {
	return []key.Binding{k.SwipeRight, k.SwipeLeft, k.Add, k.Undo}
}

func (k taskKeys) full() []key.Binding {
	return []key.Binding{k.SwipeRight, k.SwipeLeft, k.CloseRows, k.Add, k.Undo}
}

type previewKeys struct {
	CopyURL key.Binding
}

func newPreviewKeys() previewKeys {
	return previewKeys{
		CopyURL: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
	}
}
