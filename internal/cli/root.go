package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Makepad-fr/swipelist/internal/config"
	"github.com/Makepad-fr/swipelist/internal/tui"
	"github.com/Makepad-fr/swipelist/internal/ui"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logFile    string
	debug      bool

	seed       int
	undoWindow time.Duration
	direction  string
	theme      string
}

// Execute runs the command line and returns an exit code (0 ok, 1 error).
func Execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		ui.Fail(stderr, err.Error())
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "swipelist",
		Short:         "Swipe-to-delete task list with undo",
		Long:          "swipelist opens a two-tab terminal app: a task list where swiping a row deletes it\n(with a few seconds to undo), and a document preview.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			log, closeLog, err := newLogger(g.logFile, g.debug)
			if err != nil {
				return err
			}
			defer closeLog()
			return tui.Run(cfg, log)
		},
	}
	bindGlobalFlags(root.PersistentFlags(), g)

	root.AddCommand(newReplayCommand(g))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "swipelist "+Version)
		},
	})
	return root
}

func bindGlobalFlags(fs *pflag.FlagSet, g *globalFlags) {
	fs.StringVar(&g.configPath, "config", "", "path to a TOML or YAML config file")
	fs.StringVar(&g.logFile, "log-file", "", "write debug logs to this file")
	fs.BoolVar(&g.debug, "debug", false, "log every list transition")
	fs.IntVar(&g.seed, "seed", 3, "number of items the list starts with")
	fs.DurationVar(&g.undoWindow, "undo-window", 9*time.Second, "how long a deletion can be undone")
	fs.StringVar(&g.direction, "delete-direction", "right", "swipe direction that deletes a row (left|right)")
	fs.StringVar(&g.theme, "theme", "classic", "color theme (classic|neon|mono)")
}

// loadConfig reads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command, g *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("seed") {
		cfg.List.SeedItems = g.seed
	}
	if fs.Changed("undo-window") {
		cfg.Undo.Window = g.undoWindow
	}
	if fs.Changed("delete-direction") {
		cfg.Swipe.DeleteDirection = g.direction
	}
	if fs.Changed("theme") {
		cfg.UI.Theme = g.theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
