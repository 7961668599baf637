// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cmd implements the tildecon command-line surface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jeranaias/tildecon/internal/console"
	"github.com/jeranaias/tildecon/internal/repl"
	"github.com/jeranaias/tildecon/internal/world"
)

// NewREPLCmd creates the repl command.
func NewREPLCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run the console as a line-based REPL",
		Long: `Run the console engine directly on the current terminal.

No scene, no overlay: every line is submitted to the same command registry
the TUI uses, and the output scrollback is printed as it drains. History
recall (up/down) and tab completion come from the line editor; history is
kept in memory only.

Examples:
  tildecon repl
  tildecon repl --config ./dev.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runREPL()
		},
	}
}

// runREPL starts the headless REPL host.
func (a *App) runREPL() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	eng := console.New(cfg.Console.EngineOptions())
	w := world.New()
	RegisterAppCommands(eng, w)

	return repl.New(cfg, eng).Run()
}
