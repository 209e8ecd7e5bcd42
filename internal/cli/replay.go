package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/swipelist/internal/clock"
	"github.com/Makepad-fr/swipelist/internal/config"
	"github.com/Makepad-fr/swipelist/internal/model"
	"github.com/Makepad-fr/swipelist/internal/swipe"
	"github.com/Makepad-fr/swipelist/internal/ui"
	"github.com/Makepad-fr/swipelist/internal/undolist"
)

// ErrUnknownOp is returned for a replay step that does not parse.
var ErrUnknownOp = errors.New("unknown replay op")

// replayEpoch is where the replay clock starts; only offsets matter.
var replayEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type opKind int

const (
	opAdd opKind = iota
	opDelete
	opSwipe
	opUndo
	opWait
)

type op struct {
	kind opKind
	id   string
	dir  undolist.Direction
	wait time.Duration
}

func newReplayCommand(g *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "replay <op>...",
		Short: "Run list operations without the UI and print the result",
		Long: `Run list operations without the UI and print the result.

Ops:
  add                    append a new item
  delete <id>            delete an item
  swipe <id> <left|right> swipe a row open
  undo                   restore the last deletion
  wait <duration>        let time pass (e.g. 5s)`,
		Example: `  swipelist replay add delete 1 undo
  swipelist replay delete 0 delete 2 wait 10s undo --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			ops, err := parseOps(args)
			if err != nil {
				return err
			}
			log, closeLog, err := newLogger(g.logFile, g.debug)
			if err != nil {
				return err
			}
			defer closeLog()

			ui.SetTheme(cfg.UI.Theme)
			ctrl, fc := newReplayController(cfg, log)
			defer ctrl.Close()
			runOps(ctrl, fc, ops)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), ctrl)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderState(ctrl))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the final state as JSON")
	return cmd
}

func parseOps(args []string) ([]op, error) {
	var ops []op
	need := func(i, n int, name string) error {
		if i+n >= len(args) {
			return fmt.Errorf("%w: %s needs %d argument(s)", ErrUnknownOp, name, n)
		}
		return nil
	}
	for i := 0; i < len(args); i++ {
		switch name := strings.ToLower(args[i]); name {
		case "add":
			ops = append(ops, op{kind: opAdd})
		case "undo":
			ops = append(ops, op{kind: opUndo})
		case "delete", "rm":
			if err := need(i, 1, name); err != nil {
				return nil, err
			}
			ops = append(ops, op{kind: opDelete, id: args[i+1]})
			i++
		case "swipe":
			if err := need(i, 2, name); err != nil {
				return nil, err
			}
			dir, err := undolist.ParseDirection(args[i+2])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnknownOp, err)
			}
			ops = append(ops, op{kind: opSwipe, id: args[i+1], dir: dir})
			i += 2
		case "wait":
			if err := need(i, 1, name); err != nil {
				return nil, err
			}
			d, err := time.ParseDuration(args[i+1])
			if err != nil || d < 0 {
				return nil, fmt.Errorf("%w: wait %q", ErrUnknownOp, args[i+1])
			}
			ops = append(ops, op{kind: opWait, wait: d})
			i++
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOp, args[i])
		}
	}
	return ops, nil
}

func newReplayController(cfg *config.Config, log *slog.Logger) (*undolist.Controller, *clock.FakeClock) {
	fc := clock.Fake(replayEpoch)
	ctrl := undolist.New(undolist.Options{
		SeedItems:       cfg.List.SeedItems,
		UndoWindow:      cfg.Undo.Window,
		DeleteDirection: cfg.Direction(),
		Clock:           fc,
		Logger:          log,
	})
	return ctrl, fc
}

// runOps applies ops in order. Swipes go through a swipe surface so rows
// close each other exactly as they do in the UI.
func runOps(ctrl *undolist.Controller, fc *clock.FakeClock, ops []op) {
	surface := swipe.NewSurface(ctrl)
	defer surface.Unmount()
	for _, o := range ops {
		surface.Sync(ctrl.Items())
		switch o.kind {
		case opAdd:
			ctrl.AddItem()
		case opDelete:
			ctrl.DeleteItem(o.id)
		case opSwipe:
			surface.Swipe(o.id, o.dir)
		case opUndo:
			ctrl.Undo()
		case opWait:
			fc.Advance(o.wait)
		}
	}
	surface.Sync(ctrl.Items())
}

func renderState(ctrl *undolist.Controller) string {
	t := ui.Current()
	items := ctrl.Items()

	lines := []string{ui.Counts("Swipe to Delete", len(items), ctrl.NextID()), ""}
	if len(items) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), it.Label, t.Muted.Render("#"+it.ID)))
	}
	lines = append(lines, "")
	if text := ctrl.BannerText(); text != "" {
		left := ctrl.Remaining()
		bar := ui.ProgressBar(int(left/time.Millisecond), int(ctrl.UndoWindow()/time.Millisecond), 10)
		lines = append(lines, t.Banner.Render(fmt.Sprintf("%s  %s %s left", text, bar, left)))
	} else {
		lines = append(lines, t.Muted.Render("nothing to undo"))
	}
	return ui.Panel(lines)
}

type replayState struct {
	Items   []model.Item   `json:"items"`
	NextID  int            `json:"next_id"`
	Pending *replayPending `json:"pending,omitempty"`
}

type replayPending struct {
	Item      model.Item `json:"item"`
	Remaining string     `json:"remaining"`
}

func writeJSON(w io.Writer, ctrl *undolist.Controller) error {
	st := replayState{Items: ctrl.Items(), NextID: ctrl.NextID()}
	if p, ok := ctrl.Pending(); ok {
		st.Pending = &replayPending{Item: p.Item, Remaining: ctrl.Remaining().String()}
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
