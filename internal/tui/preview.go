package tui

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/Makepad-fr/swipelist/internal/ui"
)

//go:embed preview.md
var defaultDocument string

// PreviewOptions describes the static document on the Preview tab.
type PreviewOptions struct {
	Title    string
	URL      string
	Markdown string

	// Copy puts text on the clipboard; nil uses the system clipboard.
	Copy func(string) error
}

// LoadDocument reads a markdown file, or returns the built-in
// description when path is empty.
func LoadDocument(path string) (string, error) {
	if path == "" {
		return defaultDocument, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read preview document: %w", err)
	}
	return string(b), nil
}

type previewModel struct {
	opts     PreviewOptions
	keys     previewKeys
	viewport viewport.Model
	width    int
	status   string
	err      error
}

func newPreviewModel(opts PreviewOptions) previewModel {
	if opts.Markdown == "" {
		opts.Markdown = defaultDocument
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	return previewModel{
		opts:     opts,
		keys:     newPreviewKeys(),
		viewport: viewport.New(0, 0),
	}
}

func (m *previewModel) setSize(w, h int) {
	m.viewport.Width = w
	m.viewport.Height = h
	if w == m.width {
		return
	}
	m.width = w
	out, err := renderMarkdown(m.opts.Markdown, w)
	if err != nil {
		m.err = err
		out = m.opts.Markdown
	}
	m.viewport.SetContent(out)
}

func (m previewModel) Update(msg tea.Msg) (previewModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.CopyURL) {
		if err := m.opts.Copy(m.opts.URL); err != nil {
			m.status = ui.Current().Error.Render("copy failed: " + err.Error())
		} else {
			m.status = ui.Current().Success.Render("link copied")
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	t := ui.Current()
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(t.Accent.Render(m.opts.URL))
	if m.err != nil {
		b.WriteString("\n" + t.Error.Render("render: "+m.err.Error()))
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	return b.String()
}

func renderMarkdown(input string, width int) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}
	style := "dark"
	if ui.Current().Name == "mono" {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStandardStyle(style),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(input)
}
