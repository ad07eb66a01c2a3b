// Package config loads coverforge.toml and applies environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	EnvListenAddr = "COVERFORGE_LISTEN"
	EnvDevMode    = "COVERFORGE_DEV"
)

type Config struct {
	// Listen is the HTTP control API address.
	Listen string `toml:"listen"`
	// DevMode enables permissive CORS for local UI development.
	DevMode bool `toml:"dev_mode"`
	// PresetDir is where saved presets live.
	PresetDir string `toml:"preset_dir"`

	Assets  Assets  `toml:"assets"`
	Fonts   Fonts   `toml:"fonts"`
	Display Display `toml:"display"`
}

// Assets are the fixed paths the collaborating loader reads from.
type Assets struct {
	Background string `toml:"background"`
	Logo       string `toml:"logo"`
}

type Fonts struct {
	TitleFamily string `toml:"title_family"`
	TitleFile   string `toml:"title_file"`
	BodyFamily  string `toml:"body_family"`
	BodyFile    string `toml:"body_file"`
}

// Display configures the optional framebuffer output.
type Display struct {
	Enabled bool   `toml:"enabled"`
	Device  string `toml:"device"`
	// PanelWidth reserves horizontal room for on-screen controls; Margin is
	// the safety margin kept on both axes when fitting the cover.
	PanelWidth int `toml:"panel_width"`
	Margin     int `toml:"margin"`
}

func Default() Config {
	return Config{
		Listen:    ":8080",
		PresetDir: "presets",
		Fonts: Fonts{
			TitleFamily: "Go Bold",
			BodyFamily:  "Go Regular",
		},
		Display: Display{
			Device:     "/dev/fb0",
			PanelWidth: 340,
			Margin:     40,
		},
	}
}

// Load reads path over the defaults. A missing file is fine; the defaults
// plus environment overrides stand on their own.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if addr := os.Getenv(EnvListenAddr); addr != "" {
		cfg.Listen = addr
	}
	if raw := os.Getenv(EnvDevMode); raw != "" {
		dev, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		cfg.DevMode = dev
	}

	return cfg, nil
}
