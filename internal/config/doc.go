// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config handles tildecon configuration loading and persistence.
//
// Configuration lives in ~/.tildecon/config.toml and covers the console
// engine (toggle keys, history size, prompt symbol, window geometry), the
// TUI host (theme, mouse support), and the REPL host (pass rate, styled
// output). Values resolve in three layers: built-in defaults, then the
// TOML file, then TILDECON_* environment variables, with later layers
// winning.
//
// # Key Types
//
//   - Config: top-level configuration with Console, UI, and REPL sections
//   - ConsoleConfig: engine settings, convertible to console.Options
//   - Watcher: watches the config file and delivers reloaded snapshots
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	eng := console.New(cfg.Console.EngineOptions())
//
// Hot reload:
//
//	w, err := config.NewWatcher(config.PathTOML(), 500*time.Millisecond, warnf)
//	if err == nil {
//	    w.Watch()
//	    defer w.Close()
//	    go func() {
//	        for cfg := range w.Updates() {
//	            eng.Reconfigure(cfg.Console.EngineOptions())
//	        }
//	    }()
//	}
package config
