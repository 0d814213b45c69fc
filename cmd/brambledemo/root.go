package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/bramble/ebitenhost"
	"github.com/phanxgames/bramble/internal/config"
	"github.com/phanxgames/bramble/internal/demo"
	"github.com/phanxgames/bramble/teahost"
)

var rootCmd = &cobra.Command{
	Use:   "brambledemo",
	Short: "Run the bramble sample form",
	Long: `brambledemo runs a small form built with bramble widgets.

The form runs in an Ebitengine window by default, or in the terminal with
--host tea. Settings come from flags, BRAMBLE_* environment variables and an
optional TOML file at $HOME/.config/bramble/brambledemo.toml.`,
	SilenceUsage: true,
	RunE:         runDemo,
}

var checkScriptCmd = &cobra.Command{
	Use:   "check-script FILE",
	Short: "Validate an input script without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadScript(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
	rootCmd.AddCommand(checkScriptCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var script *bramble.ScriptRunner
	if cfg.Script != "" {
		if script, err = loadScript(cfg.Script); err != nil {
			return err
		}
	}

	switch cfg.Host {
	case config.HostTea:
		form := demo.Build(demo.CellOptions(teahost.CellFont{
			CellWidth:  cfg.Terminal.CellWidth,
			CellHeight: cfg.Terminal.CellHeight,
		}, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight))
		return teahost.Run(form.Root, teahost.RunConfig{
			CellWidth:     cfg.Terminal.CellWidth,
			CellHeight:    cfg.Terminal.CellHeight,
			TPS:           cfg.Terminal.TPS,
			TabNavigation: cfg.TabNavigation,
			Debug:         cfg.Debug,
			Logger:        logger,
			OnStart:       onStart(form, script, logger),
		})
	default:
		form := demo.Build(demo.WindowOptions())
		return ebitenhost.Run(form.Root, ebitenhost.RunConfig{
			Title:         cfg.Window.Title,
			Width:         cfg.Window.Width,
			Height:        cfg.Window.Height,
			Scale:         cfg.Window.Scale,
			TPS:           cfg.Window.TPS,
			ClearColor:    bramble.Color{R: 0.08, G: 0.09, B: 0.11, A: 1},
			ShowFPS:       cfg.Window.ShowFPS,
			TabNavigation: cfg.TabNavigation,
			Debug:         cfg.Debug,
			Logger:        logger,
			OnStart:       onStart(form, script, logger),
		})
	}
}

func onStart(form *demo.Form, script *bramble.ScriptRunner, logger *slog.Logger) func(*bramble.RunContext) {
	return func(ctx *bramble.RunContext) {
		form.Attach(ctx)
		if script != nil {
			ctx.SetScriptRunner(script)
			logger.Info("replaying input script")
		}
	}
}

func loadScript(path string) (*bramble.ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return bramble.LoadScript(data)
}

// newLogger builds the demo's logger. The terminal host owns the screen, so
// it logs nowhere unless a log file is configured.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case cfg.Host == config.HostTea:
		return slog.New(slog.DiscardHandler), closeFn, nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), closeFn, nil
}
