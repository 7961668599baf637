// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package world provides the demo game state the example hosts expose
// through console commands.
package world

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no entity matches a lookup.
var ErrNotFound = errors.New("entity not found")

// =============================================================================
// ENTITY
// =============================================================================

// Entity is one named object living in the demo world.
type Entity struct {
	// ID is a unique identifier assigned at spawn time
	ID string

	// Name is the operator-chosen label
	Name string

	// SpawnedAt records creation time
	SpawnedAt time.Time
}

// =============================================================================
// WORLD
// =============================================================================

// World holds the demo entities. Like the console itself it is mutated only
// from the host loop, so it needs no locking.
type World struct {
	entities map[string]*Entity
}

// New creates an empty world.
func New() *World {
	return &World{entities: make(map[string]*Entity)}
}

// Spawn creates an entity with a fresh id and returns it.
func (w *World) Spawn(name string) *Entity {
	e := &Entity{
		ID:        uuid.New().String(),
		Name:      name,
		SpawnedAt: time.Now(),
	}
	w.entities[e.ID] = e
	return e
}

// Despawn removes the entity whose id starts with the given prefix. At
// least four characters are required so a bare "a" cannot wipe something
// by accident; an ambiguous prefix is an error.
func (w *World) Despawn(idPrefix string) (*Entity, error) {
	if len(idPrefix) < 4 {
		return nil, errors.New("id prefix must be at least 4 characters")
	}
	var match *Entity
	for id, e := range w.entities {
		if strings.HasPrefix(id, idPrefix) {
			if match != nil {
				return nil, errors.New("id prefix is ambiguous")
			}
			match = e
		}
	}
	if match == nil {
		return nil, ErrNotFound
	}
	delete(w.entities, match.ID)
	return match, nil
}

// Get returns the entity with the exact id.
func (w *World) Get(id string) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// List returns all entities ordered by spawn time, oldest first.
func (w *World) List() []*Entity {
	out := make([]*Entity, 0, len(w.entities))
	for _, e := range w.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SpawnedAt.Equal(out[j].SpawnedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SpawnedAt.Before(out[j].SpawnedAt)
	})
	return out
}

// Len reports the entity count.
func (w *World) Len() int {
	return len(w.entities)
}
