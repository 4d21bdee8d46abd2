// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	sbPadding = 16 // padding for the strings.Builder
)

// Code represents an ANSI control code for text formatting.
type Code int

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	reset      = "\033[0m"
	prefix     = "\033["
	suffix     = "m"
)

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
)

// Foreground text colors used by the log handler.
const (
	FgRed    Code = 31
	FgYellow Code = 33
	FgBlue   Code = 34
	FgCyan   Code = 36
	FgWhite  Code = 37
)

// Foreground Hi-Intensity text colors.
const (
	FgHiMagenta Code = 95
	FgHiWhite   Code = 97
)

var enabled bool

func init() {
	enabled = isColorCapable(os.Stderr)
}

// Colorize returns a string with ANSI color codes applied.
// It appends the reset code at the end of the string to reset the color.
func Colorize(str string, colorCodes ...Code) string {
	if !enabled || len(colorCodes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range colorCodes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// Enabled reports whether color output is enabled.
// It is initialized in package init() against standard error.
func Enabled() bool {
	return enabled
}

// SetEnabled overrides color detection, returning the previous value.
func SetEnabled(v bool) bool {
	prev := enabled
	enabled = v

	return prev
}

type fdWriter interface {
	Fd() uintptr
}

func isColorCapable(f fdWriter) bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
