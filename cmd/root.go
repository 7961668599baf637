// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cmd implements the tildecon command-line surface.
package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeranaias/tildecon/internal/config"
	"github.com/jeranaias/tildecon/internal/console"
	"github.com/jeranaias/tildecon/internal/ui"
	"github.com/jeranaias/tildecon/internal/world"
)

// App holds the flag state shared across commands.
type App struct {
	cfgPath string
	theme   string
	noWatch bool
}

// Execute runs the root command.
func Execute() {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "tildecon",
		Short: "A drop-down developer console for terminal applications",
		Long: `tildecon hosts an embeddable developer console inside a demo TUI scene.

Press the toggle key (` + "`" + ` by default) to drop the console over the
running scene, type commands, and browse scrollback and history while the
host keeps running underneath. Run the same console as a plain line-based
REPL with 'tildecon repl'.

Examples:
  tildecon                        # TUI host with the console overlay
  tildecon --theme mono           # force the monochrome theme
  tildecon --config ./dev.toml    # explicit config file
  tildecon repl                   # headless REPL on the current terminal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.cfgPath, "config", "c", "", "config file (default ~/.tildecon/config.toml)")
	rootCmd.Flags().StringVar(&app.theme, "theme", "", "override the UI theme: dark, light, or mono")
	rootCmd.Flags().BoolVar(&app.noWatch, "no-watch", false, "disable config hot reload")

	rootCmd.AddCommand(NewREPLCmd(app))
	rootCmd.AddCommand(NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the explicit --config path when given, the default
// location otherwise.
func (a *App) loadConfig() (*config.Config, error) {
	if a.cfgPath != "" {
		return config.LoadFromPath(a.cfgPath)
	}
	return config.Load()
}

// runTUI starts the TUI host: demo scene, console overlay, hot-reloading
// config.
func (a *App) runTUI() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.theme != "" {
		cfg.UI.Theme = a.theme
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	eng := console.New(cfg.Console.EngineOptions())
	w := world.New()
	RegisterAppCommands(eng, w)

	// Hot reload feeds validated config snapshots into the UI through its
	// message loop; a watcher failure degrades to a static config.
	var updates <-chan *config.Config
	if !a.noWatch {
		path := a.cfgPath
		if path == "" {
			path = config.PathTOML()
		}
		watcher, werr := config.NewWatcher(path, 500*time.Millisecond, eng.Warnf)
		if werr != nil {
			eng.Warnf("config watcher disabled: %v", werr)
		} else if werr := watcher.Watch(); werr != nil {
			eng.Warnf("config watcher disabled: %v", werr)
		} else {
			updates = watcher.Updates()
			defer watcher.Close()
		}
	}

	m := ui.New(cfg, eng, w, updates, Version)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tildecon: %w", err)
	}
	return nil
}
