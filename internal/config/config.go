// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config handles tildecon configuration loading and persistence.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/jeranaias/tildecon/internal/console"
	"github.com/jeranaias/tildecon/internal/util"
)

// =============================================================================
// Configuration Types
// =============================================================================

// Config is the top-level tildecon configuration.
type Config struct {
	// Version tracks the config schema version for future migrations.
	Version string `toml:"version" json:"version"`

	// Console configures the command engine shared by every host.
	Console ConsoleConfig `toml:"console" json:"console"`

	// UI configures the full-screen terminal host.
	UI UIConfig `toml:"ui" json:"ui"`

	// REPL configures the line-oriented host.
	REPL REPLConfig `toml:"repl" json:"repl"`
}

// ConsoleConfig holds the engine settings.
type ConsoleConfig struct {
	// ToggleKeys lists key names that open and close the console.
	// Aliases "grave", "backtick", and "backquote" map to "`".
	ToggleKeys []string `toml:"toggle_keys" json:"toggle_keys" env:"TILDECON_TOGGLE_KEYS" envSeparator:","`

	// ToggleScanCodes lists raw scan codes that toggle the console,
	// for hosts that report them.
	ToggleScanCodes []uint32 `toml:"toggle_scan_codes" json:"toggle_scan_codes" env:"TILDECON_TOGGLE_SCAN_CODES" envSeparator:","`

	// HistorySize is the number of submitted lines retained for recall.
	HistorySize int `toml:"history_size" json:"history_size" env:"TILDECON_HISTORY_SIZE"`

	// PromptSymbol prefixes echoed commands in the scrollback.
	PromptSymbol string `toml:"prompt_symbol" json:"prompt_symbol" env:"TILDECON_PROMPT_SYMBOL"`

	// Left and Top position the console window in the host viewport,
	// in pixel units; terminal hosts map them to cells.
	Left float64 `toml:"left" json:"left" env:"TILDECON_LEFT"`
	Top  float64 `toml:"top" json:"top" env:"TILDECON_TOP"`

	// Width and Height size the console window in pixel units.
	Width  float64 `toml:"width" json:"width" env:"TILDECON_WIDTH"`
	Height float64 `toml:"height" json:"height" env:"TILDECON_HEIGHT"`
}

// UIConfig holds terminal host settings.
type UIConfig struct {
	// Theme selects the color scheme: dark, light, or mono.
	Theme string `toml:"theme" json:"theme" env:"TILDECON_THEME"`

	// Mouse enables mouse wheel scrolling in the console window.
	Mouse bool `toml:"mouse" json:"mouse" env:"TILDECON_MOUSE"`
}

// REPLConfig holds line-oriented host settings.
type REPLConfig struct {
	// PassHz is how many engine passes run per second while the REPL
	// waits on input.
	PassHz int `toml:"pass_hz" json:"pass_hz" env:"TILDECON_PASS_HZ"`

	// Styled renders command output through the markdown renderer.
	Styled bool `toml:"styled" json:"styled" env:"TILDECON_STYLED"`
}

// =============================================================================
// Defaults
// =============================================================================

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Console: ConsoleConfig{
			ToggleKeys:   []string{"grave"},
			HistorySize:  50,
			PromptSymbol: "> ",
			Left:         0,
			Top:          0,
			Width:        800,
			Height:       400,
		},
		UI: UIConfig{
			Theme: "dark",
			Mouse: true,
		},
		REPL: REPLConfig{
			PassHz: 60,
			Styled: true,
		},
	}
}

// setDefaults backfills zero values that have a required meaning.
func (c *Config) setDefaults() {
	if c.Version == "" {
		c.Version = "1.0.0"
	}
	if c.Console.HistorySize == 0 {
		c.Console.HistorySize = 50
	}
	if c.Console.PromptSymbol == "" {
		c.Console.PromptSymbol = "> "
	}
	if len(c.Console.ToggleKeys) == 0 && len(c.Console.ToggleScanCodes) == 0 {
		c.Console.ToggleKeys = []string{"grave"}
	}
	if c.Console.Width == 0 {
		c.Console.Width = 800
	}
	if c.Console.Height == 0 {
		c.Console.Height = 400
	}
	if c.UI.Theme == "" {
		c.UI.Theme = "dark"
	}
	if c.REPL.PassHz == 0 {
		c.REPL.PassHz = 60
	}
}

// =============================================================================
// Paths
// =============================================================================

// Dir returns the tildecon configuration directory (~/.tildecon).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tildecon"
	}
	return filepath.Join(home, ".tildecon")
}

// PathTOML returns the path to the TOML config file.
func PathTOML() string {
	return filepath.Join(Dir(), "config.toml")
}

// EnsureDir creates the configuration directory if needed.
func EnsureDir() error {
	return os.MkdirAll(Dir(), 0o755)
}

// =============================================================================
// Loading
// =============================================================================

// Load reads configuration from the default path, applies TILDECON_*
// environment overrides, and validates the result. A missing file is not
// an error; defaults are used.
func Load() (*Config, error) {
	return LoadFromPath(PathTOML())
}

// LoadFromPath reads configuration from an explicit file path. The file
// may be absent, in which case defaults (plus environment overrides)
// apply.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, derr := toml.Decode(string(data), cfg); derr != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, derr)
		}
	case os.IsNotExist(err):
		// First run, defaults apply.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// =============================================================================
// Saving
// =============================================================================

// Save writes the configuration to the default path with restrictive
// permissions.
func (c *Config) Save() error {
	if err := EnsureDir(); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return c.SaveTo(PathTOML())
}

// SaveTo writes the configuration to an explicit path atomically.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// Validation
// =============================================================================

// ValidationError describes a single invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors aggregates every validation failure found in one pass.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(msgs, "; "))
}

// Validate checks every section and returns all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Console.HistorySize < 1 {
		errs = append(errs, ValidationError{"console.history_size", "must be at least 1"})
	}
	if c.Console.HistorySize > 10000 {
		errs = append(errs, ValidationError{"console.history_size", "must be at most 10000"})
	}
	if len(c.Console.PromptSymbol) > 16 {
		errs = append(errs, ValidationError{"console.prompt_symbol", "must be 16 bytes or fewer"})
	}
	if len(c.Console.ToggleKeys) == 0 && len(c.Console.ToggleScanCodes) == 0 {
		errs = append(errs, ValidationError{"console.toggle_keys", "at least one toggle key or scan code is required"})
	}
	if c.Console.Left < 0 || c.Console.Top < 0 {
		errs = append(errs, ValidationError{"console.left", "window position must not be negative"})
	}
	if c.Console.Width <= 0 || c.Console.Height <= 0 {
		errs = append(errs, ValidationError{"console.width", "window size must be positive"})
	}

	switch c.UI.Theme {
	case "dark", "light", "mono":
	default:
		errs = append(errs, ValidationError{"ui.theme", fmt.Sprintf("unknown theme %q (expected dark, light, or mono)", c.UI.Theme)})
	}

	if c.REPL.PassHz < 1 {
		errs = append(errs, ValidationError{"repl.pass_hz", "must be at least 1"})
	}
	if c.REPL.PassHz > 1000 {
		errs = append(errs, ValidationError{"repl.pass_hz", "must be at most 1000"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// Engine Mapping
// =============================================================================

// keyAliases maps friendly TOML key names to the names hosts report.
var keyAliases = map[string]string{
	"grave":     "`",
	"backtick":  "`",
	"backquote": "`",
	"tilde":     "~",
	"space":     " ",
}

// normalizeKey resolves configured key aliases to host key names.
func normalizeKey(name string) string {
	if mapped, ok := keyAliases[strings.ToLower(name)]; ok {
		return mapped
	}
	return name
}

// Triggers converts the configured toggle keys and scan codes into
// console trigger values.
func (c ConsoleConfig) Triggers() []console.Trigger {
	out := make([]console.Trigger, 0, len(c.ToggleKeys)+len(c.ToggleScanCodes))
	for _, k := range c.ToggleKeys {
		out = append(out, console.KeyTrigger(normalizeKey(k)))
	}
	for _, sc := range c.ToggleScanCodes {
		out = append(out, console.ScanTrigger(sc))
	}
	return out
}

// EngineOptions maps the console section onto engine options. Host
// specific fields (Warnf, Quit, RenderLongHelp) are left zero for the
// caller to fill in.
func (c ConsoleConfig) EngineOptions() console.Options {
	return console.Options{
		HistorySize: c.HistorySize,
		Prompt:      c.PromptSymbol,
		Triggers:    c.Triggers(),
	}
}
