// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package argv

import (
	"testing"

	"github.com/matt-FFFFFF/cat/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantHelp    bool
		wantVersion bool
		wantSources []source.Source
	}{
		{
			name:        "no arguments reads stdin",
			args:        nil,
			wantSources: []source.Source{source.Stdin()},
		},
		{
			name:        "single dash is stdin",
			args:        []string{"-"},
			wantSources: []source.Source{source.Stdin()},
		},
		{
			name: "files keep order and duplicates",
			args: []string{"b.txt", "a.txt", "b.txt"},
			wantSources: []source.Source{
				source.File("b.txt"), source.File("a.txt"), source.File("b.txt"),
			},
		},
		{
			name: "stdin interleaved with files",
			args: []string{"a.txt", "-", "b.txt", "-"},
			wantSources: []source.Source{
				source.File("a.txt"), source.Stdin(), source.File("b.txt"), source.Stdin(),
			},
		},
		{
			name:     "help with files reads nothing",
			args:     []string{"a.txt", "--help", "b.txt"},
			wantHelp: true,
			wantSources: []source.Source{
				source.File("a.txt"), source.File("b.txt"),
			},
		},
		{
			name:        "help alone has no implicit stdin",
			args:        []string{"--help"},
			wantHelp:    true,
			wantSources: nil,
		},
		{
			name:        "version",
			args:        []string{"--version"},
			wantVersion: true,
			wantSources: nil,
		},
		{
			name:        "help and version",
			args:        []string{"--version", "--help"},
			wantHelp:    true,
			wantVersion: true,
		},
		{
			name: "unknown options are files",
			args: []string{"-n", "--foo", "--helpme"},
			wantSources: []source.Source{
				source.File("-n"), source.File("--foo"), source.File("--helpme"),
			},
		},
		{
			name: "single dash help is a file",
			args: []string{"-help"},
			wantSources: []source.Source{
				source.File("-help"),
			},
		},
		{
			name: "end of options makes help a file",
			args: []string{"--", "--help", "-"},
			wantSources: []source.Source{
				source.File("--help"), source.Stdin(),
			},
		},
		{
			name: "second double dash after end of options is a file",
			args: []string{"--", "--"},
			wantSources: []source.Source{
				source.File("--"),
			},
		},
		{
			name:        "end of options with nothing after reads stdin",
			args:        []string{"--"},
			wantSources: []source.Source{source.Stdin()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHelp, inv.Help)
			assert.Equal(t, tt.wantVersion, inv.Version)
			assert.Equal(t, tt.wantSources, inv.Sources)
			assert.Equal(t, tt.wantHelp || tt.wantVersion, inv.ShortCircuit())
		})
	}
}

func TestParse_OptionWithValue(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "help with value", args: []string{"--help=yes"}, wantMsg: "--help"},
		{name: "version with empty value", args: []string{"a.txt", "--version="}, wantMsg: "--version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Parse(tt.args)
			require.ErrorIs(t, err, ErrOptionTakesNoValue)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, inv.Sources, "no sources are produced on a parse error")
		})
	}
}

func TestParse_ValueAfterEndOfOptionsIsFile(t *testing.T) {
	inv, err := Parse([]string{"--", "--help=yes"})
	require.NoError(t, err)
	assert.Equal(t, []source.Source{source.File("--help=yes")}, inv.Sources)
}

func TestBasename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "cat", want: "cat"},
		{path: "/bin/cat", want: "cat"},
		{path: "./build/cat", want: "cat"},
		{path: "/bin/", want: ""},
		{path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Basename(tt.path))
		})
	}
}

func TestOptionsDocumented(t *testing.T) {
	require.Len(t, Options, 2)
	assert.Equal(t, HelpOption, Options[0].Name)
	assert.Equal(t, VersionOption, Options[1].Name)

	for _, o := range Options {
		assert.NotEmpty(t, o.Usage)
	}
}
