// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the embeddable developer console engine.
package console

import "strconv"

// =============================================================================
// TOGGLE DETECTOR
// =============================================================================

// KeyEvent is one raw keyboard transition delivered by the host. Key is the
// host's name for the key when it has one ("`", "f12", ...); Scan is the
// raw scan code for hosts that report them. Pressed is false on release.
type KeyEvent struct {
	Key     string
	Scan    uint32
	Pressed bool
}

// triggerKind discriminates Trigger variants.
type triggerKind int

const (
	triggerKey triggerKind = iota
	triggerScan
)

// Trigger is one configured console toggle: either a named key or a raw
// scan code.
type Trigger struct {
	kind triggerKind
	key  string
	scan uint32
}

// KeyTrigger creates a trigger matched by key name.
func KeyTrigger(name string) Trigger {
	return Trigger{kind: triggerKey, key: name}
}

// ScanTrigger creates a trigger matched by raw scan code.
func ScanTrigger(code uint32) Trigger {
	return Trigger{kind: triggerScan, scan: code}
}

// String renders the trigger for diagnostics and config display.
func (t Trigger) String() string {
	if t.kind == triggerScan {
		return "scan:" + strconv.FormatUint(uint64(t.scan), 10)
	}
	return "key:" + t.key
}

// ShouldToggle reports whether a raw input event matches any configured
// trigger. Only the pressed transition matches; releases never toggle.
// Named keys compare exactly when the event carries a name; scan triggers
// compare the raw code.
func ShouldToggle(ev KeyEvent, triggers []Trigger) bool {
	if !ev.Pressed {
		return false
	}
	for _, t := range triggers {
		switch t.kind {
		case triggerKey:
			if ev.Key != "" && ev.Key == t.key {
				return true
			}
		case triggerScan:
			if ev.Scan == t.scan {
				return true
			}
		}
	}
	return false
}
