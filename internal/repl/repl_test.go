// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/jeranaias/tildecon/internal/config"
	"github.com/jeranaias/tildecon/internal/console"
)

// newTestREPL builds a REPL writing into a buffer, without a line
// editor, so the pump and flush paths can be driven directly.
func newTestREPL(t *testing.T) (*REPL, *console.Engine, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.REPL.Styled = false
	cfg.REPL.PassHz = 1000

	eng := console.New(cfg.Console.EngineOptions())
	r := New(cfg, eng)

	var buf bytes.Buffer
	r.out = &buf
	return r, eng, &buf
}

func TestSubmitAndPumpPrintsHandlerOutput(t *testing.T) {
	r, eng, buf := newTestREPL(t)

	eng.AddCommand(&console.Spec{
		Name:   "log",
		Parser: console.NewArgSpec(console.Arg("msg", console.ArgString, true, "text to repeat")),
	}, func(inv *console.Invocation) {
		args, ok := inv.Take()
		if !ok {
			return
		}
		inv.Reply(args.String("msg"))
		inv.Ok()
	})

	r.submitAndPump("log hello")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("output missing handler reply:\n%s", out)
	}
	if !strings.Contains(out, "[ok]") {
		t.Errorf("output missing marker:\n%s", out)
	}
	// The echo stays on the terminal via the line editor, not the flush.
	if strings.Contains(out, "> log hello") {
		t.Errorf("echo should not be reprinted:\n%s", out)
	}
}

func TestSubmitAndPumpUnknownCommand(t *testing.T) {
	r, _, buf := newTestREPL(t)

	r.submitAndPump("frobnicate")

	if !strings.Contains(buf.String(), "error: Invalid command") {
		t.Errorf("output = %q, want the invalid command error", buf.String())
	}
}

func TestSubmitAndPumpBlankLinePrintsNothing(t *testing.T) {
	r, eng, buf := newTestREPL(t)

	r.submitAndPump("   ")

	if got := buf.String(); got != "" {
		t.Errorf("blank submit wrote %q, want nothing", got)
	}
	// The session still records the blank line.
	if got := eng.Session().LineCount(); got != 1 {
		t.Errorf("session has %d lines, want 1", got)
	}
}

func TestFlushResetsAfterClear(t *testing.T) {
	r, _, buf := newTestREPL(t)

	r.submitAndPump("help")
	if buf.Len() == 0 {
		t.Fatal("expected help output")
	}

	buf.Reset()
	r.submitAndPump("clear")
	if got := buf.String(); got != "" {
		t.Errorf("clear reprinted lines: %q", got)
	}

	// Output continues normally afterwards.
	buf.Reset()
	r.submitAndPump("frobnicate")
	if !strings.Contains(buf.String(), "error: Invalid command") {
		t.Errorf("flush did not recover after clear: %q", buf.String())
	}
}

func TestExitCommandSetsQuit(t *testing.T) {
	r, _, _ := newTestREPL(t)

	r.submitAndPump("exit")
	if !r.quit {
		t.Error("exit should raise the quit flag")
	}
}

func TestRunPlainConsumesPipedInput(t *testing.T) {
	r, eng, buf := newTestREPL(t)

	eng.AddCommand(&console.Spec{
		Name:   "log",
		Parser: console.NewArgSpec(console.Arg("msg", console.ArgString, true, "text to repeat")),
	}, func(inv *console.Invocation) {
		args, ok := inv.Take()
		if !ok {
			return
		}
		inv.ReplyOk(args.String("msg"))
	})

	err := r.runPlain(strings.NewReader("log hi\nexit\nlog never\n"))
	if err != nil {
		t.Fatalf("runPlain returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "hi") {
		t.Errorf("piped command output missing:\n%s", out)
	}
	if !r.quit {
		t.Error("exit line should raise the quit flag")
	}
	if strings.Contains(out, "never") {
		t.Errorf("lines after exit should not run:\n%s", out)
	}
	if strings.Contains(out, "tildecon console") {
		t.Errorf("plain mode should not print the banner:\n%s", out)
	}
	if strings.Contains(out, "> log hi") {
		t.Errorf("plain mode should not reprint the echo:\n%s", out)
	}
}

func TestCompleteMatchesCommandPrefixes(t *testing.T) {
	r, eng, _ := newTestREPL(t)

	eng.Register(&console.Spec{Name: "hello"})

	tests := []struct {
		line string
		want []string
	}{
		{"he", []string{"hello", "help"}},
		{"cl", []string{"clear"}},
		{"zz", nil},
		{"help me", nil},
	}

	for _, tc := range tests {
		got := r.complete(tc.line)
		if len(got) != len(tc.want) {
			t.Errorf("complete(%q) = %v, want %v", tc.line, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("complete(%q) = %v, want %v", tc.line, got, tc.want)
				break
			}
		}
	}
}

func TestRenderLinePlainWhenUnstyled(t *testing.T) {
	r, _, _ := newTestREPL(t)

	line := "error: Invalid command"
	if got := r.renderLine(line); got != line {
		t.Errorf("renderLine(%q) = %q, want unchanged", line, got)
	}
}

func TestHelpStyleFollowsProfileAndTheme(t *testing.T) {
	tests := []struct {
		profile termenv.Profile
		theme   string
		want    string
	}{
		{termenv.Ascii, "dark", "notty"},
		{termenv.TrueColor, "mono", "notty"},
		{termenv.ANSI256, "light", "light"},
		{termenv.TrueColor, "dark", "dark"},
		{termenv.ANSI, "unknown", "dark"},
	}

	for _, tc := range tests {
		if got := helpStyle(tc.profile, tc.theme); got != tc.want {
			t.Errorf("helpStyle(%v, %q) = %q, want %q", tc.profile, tc.theme, got, tc.want)
		}
	}
}
