package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// isolate points HOME at an empty directory and clears the variables Load
// reads, so the developer's own settings never leak into a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"BRAMBLE_CONFIG", "BRAMBLE_HOST", "BRAMBLE_WINDOW_WIDTH", "BRAMBLE_WINDOW_HEIGHT", "BRAMBLE_DEBUG"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

const sample = `
host = "tea"
debug = true

[window]
width = 800
show_fps = true

[terminal]
cell_width = 10
`

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Host != HostEbiten || !c.TabNavigation || c.Debug {
		t.Errorf("top level = %+v", c)
	}
	if c.Window.Width != 640 || c.Window.Height != 480 || c.Window.Scale != 1 || c.Window.TPS != 60 {
		t.Errorf("window = %+v", c.Window)
	}
	if c.Terminal.CellWidth != 8 || c.Terminal.CellHeight != 16 || c.Terminal.TPS != 30 {
		t.Errorf("terminal = %+v", c.Terminal)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, sample)
	c, err := Load(flags(t, "--config", path))
	if err != nil {
		t.Fatal(err)
	}
	if c.Host != HostTea || !c.Debug {
		t.Errorf("top level = %+v", c)
	}
	if c.Window.Width != 800 || !c.Window.ShowFPS || c.Window.Height != 480 {
		t.Errorf("window = %+v", c.Window)
	}
	if c.Terminal.CellWidth != 10 || c.Terminal.CellHeight != 16 {
		t.Errorf("terminal = %+v", c.Terminal)
	}
}

func TestLoadDefaultLocation(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("HOME"), ".config", "bramble")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "brambledemo.toml"), []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Host != HostTea {
		t.Errorf("host = %q, want tea", c.Host)
	}
}

func TestLoadPrecedence(t *testing.T) {
	isolate(t)
	path := writeConfig(t, sample)
	t.Setenv("BRAMBLE_WINDOW_HEIGHT", "720")
	t.Setenv("BRAMBLE_WINDOW_WIDTH", "900")
	c, err := Load(flags(t, "--config", path, "--width", "1024", "--host", "ebiten"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Window.Width != 1024 {
		t.Errorf("width = %d, want flag value 1024", c.Window.Width)
	}
	if c.Window.Height != 720 {
		t.Errorf("height = %d, want env value 720", c.Window.Height)
	}
	if c.Host != HostEbiten {
		t.Errorf("host = %q, want flag value ebiten", c.Host)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *pflag.FlagSet
		is    error
	}{
		{
			name: "unknown host",
			setup: func(t *testing.T) *pflag.FlagSet {
				t.Setenv("BRAMBLE_HOST", "sdl")
				return nil
			},
			is: ErrUnknownHost,
		},
		{
			name: "missing explicit file",
			setup: func(t *testing.T) *pflag.FlagSet {
				return flags(t, "--config", filepath.Join(t.TempDir(), "absent.toml"))
			},
		},
		{
			name: "malformed file",
			setup: func(t *testing.T) *pflag.FlagSet {
				return flags(t, "--config", writeConfig(t, "host = = tea"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(tt.setup(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}
