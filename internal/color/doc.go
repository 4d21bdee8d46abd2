// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color colorizes diagnostic log output with ANSI escape codes.
// Color is only ever applied to text written to standard error; streamed
// file content passes through untouched.
//
// NO_COLOR disables color, FORCE_COLOR enables it, and otherwise color is
// enabled when standard error is a terminal, as reported by golang.org/x/term.
package color
