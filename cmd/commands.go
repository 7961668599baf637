// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cmd implements the tildecon command-line surface.
package cmd

import (
	"github.com/jeranaias/tildecon/internal/console"
	"github.com/jeranaias/tildecon/internal/util"
	"github.com/jeranaias/tildecon/internal/world"
)

// =============================================================================
// DEMO COMMAND SET
// =============================================================================

// RegisterAppCommands installs the demo commands both hosts share. The
// world is captured by the handlers; all mutation happens inside Tick, on
// the host loop.
func RegisterAppCommands(eng *console.Engine, w *world.World) {
	registerLog(eng)
	registerSpawn(eng, w)
	registerDespawn(eng, w)
	registerEntities(eng, w)
}

// registerLog installs the classic echo command: print a message n times.
func registerLog(eng *console.Engine) {
	eng.AddCommand(&console.Spec{
		Name: "log",
		Parser: console.NewArgSpec(
			console.Arg("msg", console.ArgString, true, "message to print"),
			console.Arg("count", console.ArgInt, false, "number of times to print it (default 1)"),
		),
		Help: "print a message to the console",
		LongHelp: `Prints *msg* to the scrollback, *count* times.

Quote the message to include spaces:

    log "hello there" 3
`,
	}, func(inv *console.Invocation) {
		args, ok := inv.Take()
		if !ok {
			return
		}
		msg := args.String("msg")
		count := args.IntOr("count", 1)
		if count < 1 {
			inv.ReplyFailed("count must be at least 1")
			return
		}
		for i := 0; i < count; i++ {
			inv.Reply(msg)
		}
		inv.Ok()
	})
}

// registerSpawn installs the entity creation command.
func registerSpawn(eng *console.Engine, w *world.World) {
	eng.AddCommand(&console.Spec{
		Name: "spawn",
		Parser: console.NewArgSpec(
			console.Arg("name", console.ArgString, true, "name for the new entity"),
		),
		Help: "spawn a named entity into the demo world",
	}, func(inv *console.Invocation) {
		args, ok := inv.Take()
		if !ok {
			return
		}
		e := w.Spawn(args.String("name"))
		inv.ReplyOk("spawned " + e.Name + " " + util.ShortID(e.ID))
	})
}

// registerDespawn installs the entity removal command. The id may be any
// unique prefix of at least four characters.
func registerDespawn(eng *console.Engine, w *world.World) {
	eng.AddCommand(&console.Spec{
		Name: "despawn",
		Parser: console.NewArgSpec(
			console.Arg("id", console.ArgString, true, "entity id, or a unique prefix of one"),
		),
		Help: "remove an entity from the demo world",
	}, func(inv *console.Invocation) {
		args, ok := inv.Take()
		if !ok {
			return
		}
		e, err := w.Despawn(args.String("id"))
		if err != nil {
			inv.ReplyFailed(err.Error())
			return
		}
		inv.ReplyOk("despawned " + e.Name + " " + util.ShortID(e.ID))
	})
}

// registerEntities installs the entity listing command.
func registerEntities(eng *console.Engine, w *world.World) {
	eng.AddCommand(&console.Spec{
		Name:   "entities",
		Parser: console.NewArgSpec(),
		Help:   "list the entities in the demo world",
	}, func(inv *console.Invocation) {
		if _, ok := inv.Take(); !ok {
			return
		}
		all := w.List()
		if len(all) == 0 {
			inv.Reply("no entities")
			return
		}
		for _, e := range all {
			inv.Replyf("%s  %s  spawned %s", util.ShortID(e.ID), e.Name, e.SpawnedAt.Format("15:04:05"))
		}
		inv.Replyf("%d total", len(all))
	})
}
