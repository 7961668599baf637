// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the tildecon TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// A theme is selected by name (dark, light, mono) and adjusts the
// global render profile accordingly.
type Theme struct {
	// Name is the configured theme name after normalization.
	Name string

	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// CONSOLE WINDOW STYLES
	// ==========================================================================

	ConsoleFrame lipgloss.Style
	ConsoleTitle lipgloss.Style

	ScrollbackText lipgloss.Style
	EchoLine       lipgloss.Style
	ErrorLine      lipgloss.Style
	OkMarker       lipgloss.Style
	FailedMarker   lipgloss.Style

	Prompt           lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// HOST SCENE STYLES
	// ==========================================================================

	SceneTitle  lipgloss.Style
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableEmpty  lipgloss.Style

	HostInputLabel   lipgloss.Style
	HostInputFocused lipgloss.Style
	HostInputBlurred lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// New creates a theme by name. Unknown names fall back to dark. The
// mono theme forces the ASCII render profile so no colors are emitted.
func New(name string) *Theme {
	t := &Theme{Name: name}

	switch name {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		t.IsDark = false
	case "mono":
		lipgloss.SetColorProfile(termenv.Ascii)
		t.IsDark = termenv.HasDarkBackground()
	default:
		t.Name = "dark"
		lipgloss.SetHasDarkBackground(true)
		t.IsDark = true
	}

	t.ColorProfile = lipgloss.ColorProfile()
	t.HasTrueColor = t.ColorProfile == termenv.TrueColor

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Console window
	t.ConsoleFrame = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Background(Surface).
		Padding(0, 1)

	t.ConsoleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 1)

	t.ScrollbackText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.EchoLine = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.ErrorLine = lipgloss.NewStyle().
		Foreground(Rose)

	t.OkMarker = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.FailedMarker = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.Prompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Host scene
	t.SceneTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		Padding(0, 1)

	t.TableHeader = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TableEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.HostInputLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.HostInputFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1)

	t.HostInputBlurred = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// RenderScrollbackLine styles one scrollback line by its shape: command
// echoes, error lines, and result markers each get their own style.
func (t *Theme) RenderScrollbackLine(prompt, line string) string {
	switch {
	case prompt != "" && strings.HasPrefix(line, prompt):
		return t.EchoLine.Render(line)
	case strings.HasPrefix(line, "error:"):
		return t.ErrorLine.Render(line)
	case line == "[ok]":
		return t.OkMarker.Render(line)
	case line == "[failed]":
		return t.FailedMarker.Render(line)
	default:
		return t.ScrollbackText.Render(line)
	}
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
