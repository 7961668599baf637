// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cmd implements the tildecon command-line surface.
package cmd

import (
	"strings"
	"testing"

	"github.com/jeranaias/tildecon/internal/console"
	"github.com/jeranaias/tildecon/internal/world"
)

// newTestHost wires an engine and world the way both hosts do.
func newTestHost(t *testing.T) (*console.Engine, *world.World) {
	t.Helper()
	eng := console.New(console.Options{
		Warnf: func(string, ...any) {},
	})
	w := world.New()
	RegisterAppCommands(eng, w)
	return eng, w
}

// run submits one line and ticks, returning the scrollback appended for it.
func run(eng *console.Engine, line string) []string {
	before := eng.Session().LineCount()
	eng.Submit(line)
	eng.Tick()
	return eng.Session().Lines()[before:]
}

func TestLogCommand(t *testing.T) {
	eng, _ := newTestHost(t)

	lines := run(eng, "log hello 2")

	want := []string{"> log hello 2", "hello", "hello", "[ok]"}
	if len(lines) != len(want) {
		t.Fatalf("scrollback = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLogCommandDefaultCount(t *testing.T) {
	eng, _ := newTestHost(t)

	lines := run(eng, `log "hello there"`)

	if len(lines) != 3 || lines[1] != "hello there" || lines[2] != "[ok]" {
		t.Errorf("scrollback = %v, want one quoted message and the ok marker", lines)
	}
}

func TestLogCommandRejectsZeroCount(t *testing.T) {
	eng, _ := newTestHost(t)

	lines := run(eng, "log hi 0")

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "count must be at least 1") {
		t.Errorf("scrollback = %v, want a count diagnostic", lines)
	}
	if !strings.Contains(joined, "[failed]") {
		t.Errorf("scrollback = %v, want the failed marker", lines)
	}
}

func TestLogCommandMissingMessage(t *testing.T) {
	eng, _ := newTestHost(t)

	lines := run(eng, "log")

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "error:") {
		t.Errorf("scrollback = %v, want a parse error", lines)
	}
	if strings.Contains(joined, "[ok]") {
		t.Errorf("scrollback = %v, handler body must not run on a parse error", lines)
	}
}

func TestSpawnAndEntities(t *testing.T) {
	eng, w := newTestHost(t)

	lines := run(eng, "spawn goblin")
	if w.Len() != 1 {
		t.Fatalf("world has %d entities after spawn, want 1", w.Len())
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "spawned goblin") || !strings.Contains(joined, "[ok]") {
		t.Errorf("spawn scrollback = %v", lines)
	}

	lines = run(eng, "entities")
	joined = strings.Join(lines, "\n")
	if !strings.Contains(joined, "goblin") || !strings.Contains(joined, "1 total") {
		t.Errorf("entities scrollback = %v", lines)
	}
}

func TestEntitiesEmptyWorld(t *testing.T) {
	eng, _ := newTestHost(t)

	lines := run(eng, "entities")

	if len(lines) != 2 || lines[1] != "no entities" {
		t.Errorf("scrollback = %v, want the empty-world line", lines)
	}
}

func TestDespawnByPrefix(t *testing.T) {
	eng, w := newTestHost(t)
	e := w.Spawn("crate")

	lines := run(eng, "despawn "+e.ID[:8])

	if w.Len() != 0 {
		t.Errorf("world has %d entities after despawn, want 0", w.Len())
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "despawned crate") || !strings.Contains(joined, "[ok]") {
		t.Errorf("despawn scrollback = %v", lines)
	}
}

func TestDespawnUnknownID(t *testing.T) {
	eng, w := newTestHost(t)
	w.Spawn("crate")

	lines := run(eng, "despawn beef0000")

	if w.Len() != 1 {
		t.Errorf("world changed on a failed despawn")
	}
	if !strings.Contains(strings.Join(lines, "\n"), "[failed]") {
		t.Errorf("scrollback = %v, want the failed marker", lines)
	}
}

func TestHelpListsDemoCommands(t *testing.T) {
	eng, _ := newTestHost(t)

	joined := strings.Join(run(eng, "help"), "\n")

	for _, name := range []string{"log", "spawn", "despawn", "entities", "help", "clear", "exit"} {
		if !strings.Contains(joined, name) {
			t.Errorf("help output missing %q:\n%s", name, joined)
		}
	}
}

func TestHelpRendersLogLongHelp(t *testing.T) {
	eng, _ := newTestHost(t)

	joined := strings.Join(run(eng, "help log"), "\n")

	if !strings.Contains(joined, "log <msg>") {
		t.Errorf("help log missing usage line:\n%s", joined)
	}
	if !strings.Contains(joined, "Quote the message") {
		t.Errorf("help log missing long help body:\n%s", joined)
	}
}
