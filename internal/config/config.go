// Package config loads brambledemo settings from defaults, an optional TOML
// file, BRAMBLE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrUnknownHost is returned when the configured host is not supported.
var ErrUnknownHost = errors.New("config: unknown host")

// Supported hosts.
const (
	HostEbiten = "ebiten"
	HostTea    = "tea"
)

// Config holds demo configuration.
type Config struct {
	Host          string
	TabNavigation bool `mapstructure:"tab_navigation"`
	Debug         bool
	LogFile       string `mapstructure:"log_file"`
	Script        string
	Window        WindowConfig
	Terminal      TerminalConfig
}

// WindowConfig holds settings for the ebiten host.
type WindowConfig struct {
	Title   string
	Width   int
	Height  int
	Scale   float64
	TPS     int
	ShowFPS bool `mapstructure:"show_fps"`
}

// TerminalConfig holds settings for the terminal host.
type TerminalConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
	TPS        int
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"host":     "host",
	"tab":      "tab_navigation",
	"debug":    "debug",
	"log-file": "log_file",
	"script":   "script",
	"title":    "window.title",
	"width":    "window.width",
	"height":   "window.height",
	"scale":    "window.scale",
	"tps":      "window.tps",
	"fps":      "window.show_fps",
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default $HOME/.config/bramble/brambledemo.toml)")
	fs.String("host", HostEbiten, "host to run: ebiten or tea")
	fs.Bool("tab", true, "move focus with Tab and Shift+Tab")
	fs.Bool("debug", false, "enable debug logging")
	fs.String("log-file", "", "write logs to this file")
	fs.String("script", "", "replay an input script (JSON) after start")
	fs.String("title", "bramble demo", "window title")
	fs.Int("width", 640, "window width")
	fs.Int("height", 480, "window height")
	fs.Float64("scale", 1, "device pixels per tree unit")
	fs.Int("tps", 60, "window ticks per second")
	fs.Bool("fps", false, "show the FPS counter")
}

// Load reads configuration. An explicit config path (the --config flag or
// BRAMBLE_CONFIG) must exist; the default location is optional.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("host", HostEbiten)
	v.SetDefault("tab_navigation", true)
	v.SetDefault("debug", false)
	v.SetDefault("log_file", "")
	v.SetDefault("script", "")
	v.SetDefault("window.title", "bramble demo")
	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.scale", 1.0)
	v.SetDefault("window.tps", 60)
	v.SetDefault("window.show_fps", false)
	v.SetDefault("terminal.cell_width", 8.0)
	v.SetDefault("terminal.cell_height", 16.0)
	v.SetDefault("terminal.tps", 30)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BRAMBLE_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bramble"))
		v.SetConfigName("brambledemo")
	}

	v.SetEnvPrefix("BRAMBLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Host = strings.ToLower(strings.TrimSpace(c.Host))
	if c.Host != HostEbiten && c.Host != HostTea {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownHost, c.Host)
	}
	return c, nil
}
