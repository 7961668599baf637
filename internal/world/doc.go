// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package world provides the demo game state the example hosts expose
// through console commands.
//
// Entities are uuid-stamped records held in memory for the lifetime of
// the process. The spawn/despawn/entities commands in cmd are the only
// writers; the TUI scene reads the same world for its table.
//
// # Key Types
//
//   - Entity: one named record with its ID and spawn time
//   - World: the entity collection with prefix-addressed despawn
package world
