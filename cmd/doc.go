// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cmd implements the tildecon command-line surface.
//
// # Commands
//
//   - root.go: cobra root command and flags; runs the TUI host with the
//     console overlay and the config hot-reload watcher
//   - repl.go: the repl subcommand, running the engine on a plain terminal
//   - version.go: build metadata
//   - commands.go: the demo console command set shared by both hosts
//     (log, spawn, despawn, entities)
//
// # Usage
//
//	func main() {
//	    cmd.Execute()
//	}
package cmd
