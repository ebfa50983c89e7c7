package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kobzarvs/tedit/internal/table"
)

// FormatOptions configures how tables are laid out.
type FormatOptions struct {
	MinDelimiterWidth int    `toml:"min-delimiter-width"`
	DefaultAlignment  string `toml:"default-alignment"`
	Margin            string `toml:"margin"`
	TrimContent       bool   `toml:"trim-content"`
}

// EditorOptions configures the command layer.
type EditorOptions struct {
	SmartCursor     bool `toml:"smart-cursor"`
	MaxEditDistance int  `toml:"max-edit-distance"`
	Debug           bool `toml:"debug"`
}

type Config struct {
	Format FormatOptions `toml:"format"`
	Editor EditorOptions `toml:"editor"`
}

func Default() Config {
	return Config{
		Format: FormatOptions{
			MinDelimiterWidth: 3,
			DefaultAlignment:  "left",
			Margin:            "",
			TrimContent:       true,
		},
		Editor: EditorOptions{
			SmartCursor:     true,
			MaxEditDistance: 3,
			Debug:           false,
		},
	}
}

// Load reads config.toml from the tedit config directory, layered over the
// defaults. A missing file is not an error.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	// Decoding into the pre-filled struct keeps defaults for absent keys.
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// TableOptions converts the format section into formatter options.
func (c Config) TableOptions() (table.Options, error) {
	a, err := parseAlignment(c.Format.DefaultAlignment)
	if err != nil {
		return table.Options{}, err
	}
	return table.Options{
		MinDelimiterWidth: c.Format.MinDelimiterWidth,
		DefaultAlignment:  a,
		Margin:            c.Format.Margin,
		TrimContent:       c.Format.TrimContent,
	}, nil
}

func parseAlignment(s string) (table.Alignment, error) {
	switch s {
	case "", "none":
		return table.AlignNone, nil
	case "left":
		return table.AlignLeft, nil
	case "right":
		return table.AlignRight, nil
	case "center":
		return table.AlignCenter, nil
	default:
		return table.AlignNone, fmt.Errorf("unknown alignment %q", s)
	}
}

func ConfigDir() (string, error) {
	if v := os.Getenv("TEDIT_CONFIG_HOME"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "tedit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tedit"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
