// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorCapable(t *testing.T) {
	t.Setenv(NoColor, "1")
	assert.False(t, isColorCapable(os.Stderr), "Expected color output to be disabled")

	t.Setenv(ForceColor, "1")
	assert.False(t, isColorCapable(os.Stderr), "Expected color output to be disabled as NO_COLOR is still set")

	t.Setenv(NoColor, "")
	assert.True(t, isColorCapable(os.Stderr), "Expected color output to be enabled as FORCE_COLOR is set and NO_COLOR is unset")

	t.Setenv(ForceColor, "")
	assert.False(t, isColorCapable(nil), "Expected nil file to disable color")
}

func TestColorize(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		in      string
		codes   []Code
		want    string
	}{
		{
			name:    "disabled returns input",
			enabled: false,
			in:      "hello",
			codes:   []Code{FgRed},
			want:    "hello",
		},
		{
			name:    "single code",
			enabled: true,
			in:      "hello",
			codes:   []Code{FgRed},
			want:    "\033[31mhello\033[0m",
		},
		{
			name:    "multiple codes joined with semicolon",
			enabled: true,
			in:      "x",
			codes:   []Code{Bold, FgHiWhite},
			want:    "\033[1;97mx\033[0m",
		},
		{
			name:    "no codes returns input",
			enabled: true,
			in:      "plain",
			want:    "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := SetEnabled(tt.enabled)
			defer SetEnabled(prev)

			assert.Equal(t, tt.want, Colorize(tt.in, tt.codes...))
			assert.Equal(t, tt.enabled, Enabled())
		})
	}
}
