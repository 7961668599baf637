// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across tildecon.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: display-width truncation with ellipsis (CJK aware)
//   - TruncateRunes: UTF-8 safe truncation by character count
//   - ShortID: compact prefix of an identifier for display
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
