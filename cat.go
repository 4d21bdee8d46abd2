// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cat provides the version, copyright and commit information for the cat application.
// The version and copyright text are embedded at build time, never read from disk.
package cat

import (
	_ "embed"
)

var (
	//go:embed VERSION
	version string

	//go:embed COPYRIGHT
	copyright string

	// Commit is set during the build process.
	Commit = "unknown"
)

// Version returns the embedded version text, including any trailing newline it was stored with.
func Version() string {
	return version
}

// Copyright returns the embedded copyright and license block.
func Copyright() string {
	return copyright
}
