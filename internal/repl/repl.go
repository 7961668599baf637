// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package repl provides the line-oriented console host.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/peterh/liner"
	"golang.org/x/time/rate"

	"github.com/jeranaias/tildecon/internal/config"
	"github.com/jeranaias/tildecon/internal/console"
	"github.com/jeranaias/tildecon/internal/ui/styles"
)

// passesPerSubmit is how many engine passes run after each submitted
// line: one to execute handlers and drain their output, one more to
// rotate the consumed events out of the queues.
const passesPerSubmit = 2

// =============================================================================
// REPL HOST
// =============================================================================

// REPL runs the console engine against a plain terminal: one prompt per
// line, submitted through the same dispatch path as the TUI, with the
// pass cycle paced at the configured rate after each submit.
//
// History lives in the engine's session ring and is mirrored into the
// line editor for arrow-key recall; nothing is persisted to disk.
type REPL struct {
	eng *console.Engine
	cfg *config.Config
	out io.Writer

	line    *liner.State
	limiter *rate.Limiter
	theme   *styles.Theme
	styled  bool

	// flushed counts the scrollback lines already written to out, so
	// each pump writes only the delta.
	flushed int
	quit    bool
}

// New creates a REPL host for the engine. The engine gains the REPL's
// quit hook and Markdown help renderer.
func New(cfg *config.Config, eng *console.Engine) *REPL {
	styled := cfg.REPL.Styled && ColorsEnabled()

	var theme *styles.Theme
	if styled {
		theme = styles.New(cfg.UI.Theme)
	}

	r := &REPL{
		eng:     eng,
		cfg:     cfg,
		out:     os.Stdout,
		limiter: rate.NewLimiter(rate.Limit(cfg.REPL.PassHz), 1),
		theme:   theme,
		styled:  styled,
	}

	eng.Reconfigure(console.Options{
		Quit:           func() { r.quit = true },
		RenderLongHelp: r.newHelpRenderer(),
	})
	return r
}

// Run reads lines until exit, EOF, or a fatal terminal error. Piped
// stdin bypasses the line editor and consumes plain lines instead.
func (r *REPL) Run() error {
	if !IsTTY() {
		return r.runPlain(os.Stdin)
	}

	r.line = liner.NewLiner()
	r.line.SetCtrlCAborts(true)
	r.line.SetCompleter(r.complete)
	defer r.Close()

	r.seedHistory()
	fmt.Fprintf(r.out, "tildecon console - type help for commands, exit to leave\n")

	for !r.quit {
		input, err := r.line.Prompt(r.renderPrompt())
		if err != nil {
			if err == liner.ErrPromptAborted {
				// Ctrl+C abandons the current line only.
				fmt.Fprintln(r.out)
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(r.out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		r.submitAndPump(input)
	}
	return nil
}

// runPlain consumes line-oriented input without the editor: no banner,
// no prompt, only command output reaches the writer. Scripts piped into
// the repl subcommand take this path.
func (r *REPL) runPlain(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for !r.quit && sc.Scan() {
		r.submitAndPump(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Close releases the line editor.
func (r *REPL) Close() {
	if r.line != nil {
		r.line.Close()
		r.line = nil
	}
}

// submitAndPump pushes one line through the engine and runs the paced
// pass cycle, then flushes new scrollback output to the terminal.
//
// The terminal already shows the typed line, so the echo the session
// records is skipped when flushing.
func (r *REPL) submitAndPump(input string) {
	r.eng.Submit(input)
	r.flushed = r.eng.Session().LineCount()

	if r.line != nil && strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}

	ctx := context.Background()
	for i := 0; i < passesPerSubmit; i++ {
		if err := r.limiter.Wait(ctx); err != nil {
			break
		}
		r.eng.Tick()
	}

	r.flushNew()
}

// flushNew writes scrollback lines added since the last flush. A shrink
// means the clear command ran; the counter resets without reprinting.
func (r *REPL) flushNew() {
	lines := r.eng.Session().Lines()
	if len(lines) < r.flushed {
		r.flushed = len(lines)
		return
	}
	for _, line := range lines[r.flushed:] {
		fmt.Fprintln(r.out, r.renderLine(line))
	}
	r.flushed = len(lines)
}

// renderPrompt styles the configured prompt symbol when the terminal
// supports it.
func (r *REPL) renderPrompt() string {
	prompt := r.eng.Prompt()
	if r.styled {
		return r.theme.Prompt.Render(prompt)
	}
	return prompt
}

// renderLine styles one scrollback line for the terminal.
func (r *REPL) renderLine(line string) string {
	if r.styled {
		return r.theme.RenderScrollbackLine(r.eng.Prompt(), line)
	}
	return line
}

// seedHistory loads previously submitted lines from the session ring
// into the line editor, oldest first.
func (r *REPL) seedHistory() {
	submitted := r.eng.Session().History().Submitted()
	for i := len(submitted) - 1; i >= 0; i-- {
		if strings.TrimSpace(submitted[i]) != "" {
			r.line.AppendHistory(submitted[i])
		}
	}
}

// complete offers registered command names for the first token.
func (r *REPL) complete(line string) []string {
	if strings.ContainsAny(line, " \t") {
		return nil
	}
	var out []string
	for _, name := range r.eng.Registry().Names() {
		if strings.HasPrefix(name, line) {
			out = append(out, name)
		}
	}
	return out
}

// newHelpRenderer builds the Markdown renderer for long help bodies,
// downgrading to plain text for non-TTY runs.
func (r *REPL) newHelpRenderer() func(string) string {
	if !r.styled {
		return func(md string) string { return md }
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(helpStyle(ColorProfile(), r.cfg.UI.Theme)),
		glamour.WithWordWrap(TerminalWidth()-4),
	)
	if err != nil {
		return func(md string) string { return md }
	}
	return func(md string) string {
		out, rerr := renderer.Render(md)
		if rerr != nil {
			return md
		}
		return strings.Trim(out, "\n")
	}
}

// helpStyle picks the glamour style sheet for a color profile and theme
// name. Profiles without color render notty; otherwise the sheet
// follows the configured theme, defaulting to dark.
func helpStyle(p termenv.Profile, theme string) string {
	if p == termenv.Ascii || theme == "mono" {
		return "notty"
	}
	if theme == "light" {
		return "light"
	}
	return "dark"
}
