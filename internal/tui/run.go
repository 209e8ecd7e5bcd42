package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/swipelist/internal/clock"
	"github.com/Makepad-fr/swipelist/internal/config"
	"github.com/Makepad-fr/swipelist/internal/ui"
	"github.com/Makepad-fr/swipelist/internal/undolist"
)

// Run starts the full-screen program and blocks until the user quits.
func Run(cfg *config.Config, log *slog.Logger) error {
	ui.SetTheme(cfg.UI.Theme)

	doc, err := LoadDocument(cfg.Preview.Document)
	if err != nil {
		return err
	}

	changes := make(chan struct{}, 1)
	ctrl := undolist.New(undolist.Options{
		SeedItems:       cfg.List.SeedItems,
		UndoWindow:      cfg.Undo.Window,
		DeleteDirection: cfg.Direction(),
		Clock:           clock.Real(),
		Logger:          log,
		OnChange: func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		},
	})
	defer ctrl.Close()

	app := NewApp(ctrl, changes, PreviewOptions{
		Title:    cfg.Preview.Title,
		URL:      cfg.Preview.URL,
		Markdown: doc,
	}, log)

	log.Info("starting", "seed_items", cfg.List.SeedItems, "undo_window", cfg.Undo.Window, "theme", cfg.UI.Theme)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
