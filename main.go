// tildecon - A drop-down developer console for terminal applications.
//
// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import "github.com/jeranaias/tildecon/cmd"

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cmd package
	cmd.Version = Version
	cmd.GitCommit = GitCommit
	cmd.BuildDate = BuildDate
}

func main() {
	cmd.Execute()
}
