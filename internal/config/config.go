package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/swipelist/internal/undolist"
)

// DefaultPreviewURL is the document the Preview tab points at.
const DefaultPreviewURL = "https://drive.google.com/file/d/1eZ5lY-1LnG0uuGSJHsCsTOk1bEbuAB_t/view?usp=sharing"

type Config struct {
	List    ListConfig    `toml:"list" yaml:"list"`
	Undo    UndoConfig    `toml:"undo" yaml:"undo"`
	Swipe   SwipeConfig   `toml:"swipe" yaml:"swipe"`
	UI      UIConfig      `toml:"ui" yaml:"ui"`
	Preview PreviewConfig `toml:"preview" yaml:"preview"`
}

type ListConfig struct {
	SeedItems int `toml:"seed_items" yaml:"seed_items"`
}

type UndoConfig struct {
	Window time.Duration `toml:"window" yaml:"window"`
}

type SwipeConfig struct {
	DeleteDirection string `toml:"delete_direction" yaml:"delete_direction"`
}

type UIConfig struct {
	Theme string `toml:"theme" yaml:"theme"`
}

type PreviewConfig struct {
	Title string `toml:"title" yaml:"title"`
	URL   string `toml:"url" yaml:"url"`
	// Document is an optional markdown file shown instead of the
	// built-in description.
	Document string `toml:"document" yaml:"document"`
}

// Default returns the settings used when no config file is found.
func Default() *Config {
	return &Config{
		List:    ListConfig{SeedItems: 3},
		Undo:    UndoConfig{Window: undolist.DefaultUndoWindow},
		Swipe:   SwipeConfig{DeleteDirection: "right"},
		UI:      UIConfig{Theme: "classic"},
		Preview: PreviewConfig{Title: "Feature Preview", URL: DefaultPreviewURL},
	}
}

// Load reads path on top of Default. With an empty path the usual
// locations are tried; a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		for _, c := range candidates() {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := decode(path, b, cfg); err != nil {
		return nil, err
	}
	cfg.Preview.Document = expandHome(cfg.Preview.Document)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, b []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return fmt.Errorf("yaml decode %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(b), cfg); err != nil {
			return fmt.Errorf("toml decode %s: %w", path, err)
		}
	}
	return nil
}

// Validate checks ranges and enum values.
func (c *Config) Validate() error {
	if c.List.SeedItems < 0 {
		return fmt.Errorf("list.seed_items must be >= 0, got %d", c.List.SeedItems)
	}
	if c.Undo.Window <= 0 {
		return fmt.Errorf("undo.window must be positive, got %s", c.Undo.Window)
	}
	if _, err := undolist.ParseDirection(c.Swipe.DeleteDirection); err != nil {
		return fmt.Errorf("swipe.delete_direction: %w", err)
	}
	switch strings.ToLower(c.UI.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("ui.theme must be classic, neon or mono, got %q", c.UI.Theme)
	}
	return nil
}

// Direction is the parsed swipe.delete_direction. Call after Validate.
func (c *Config) Direction() undolist.Direction {
	d, _ := undolist.ParseDirection(c.Swipe.DeleteDirection)
	return d
}

func candidates() []string {
	return []string{
		expandHome("~/.config/swipelist/config.toml"),
		expandHome("~/.config/swipelist/config.yaml"),
		"./swipelist.toml",
	}
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
