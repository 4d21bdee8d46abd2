// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package argv turns the raw command line into an Invocation.
//
// Only --help and --version are options. Every other token, including ones
// that look like unknown options, is a positional source; "-" selects standard
// input. A bare "--" ends option recognition.
package argv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/cat/internal/source"
)

const (
	// HelpOption is the name of the help option, without leading dashes.
	HelpOption = "help"
	// VersionOption is the name of the version option, without leading dashes.
	VersionOption = "version"

	longPrefix     = "--"
	endOfOptions   = "--"
	valueSeparator = "="
)

// ErrOptionTakesNoValue is returned when a recognised option is given a value, e.g. --help=yes.
var ErrOptionTakesNoValue = errors.New("option does not take an argument")

// Option describes a recognised long option.
type Option struct {
	Name  string
	Usage string
}

// Options lists the recognised options in the order they are documented.
var Options = []Option{
	{Name: HelpOption, Usage: "display this help and exit"},
	{Name: VersionOption, Usage: "output version information and exit"},
}

// Invocation is a fully parsed command line.
// When Help or Version is set no source is processed.
type Invocation struct {
	Help    bool
	Version bool
	Sources []source.Source
}

// ShortCircuit reports whether the invocation ends after printing help or version text.
func (i Invocation) ShortCircuit() bool {
	return i.Help || i.Version
}

// Parse interprets args, which must not include the program name.
// With no positional sources the result reads standard input once.
func Parse(args []string) (Invocation, error) {
	var (
		inv     Invocation
		options = true
	)

	for _, arg := range args {
		if options {
			if arg == endOfOptions {
				options = false
				continue
			}

			name, matched, err := matchOption(arg)
			if err != nil {
				return Invocation{}, err
			}

			if matched {
				switch name {
				case HelpOption:
					inv.Help = true
				case VersionOption:
					inv.Version = true
				}

				continue
			}
		}

		inv.Sources = append(inv.Sources, source.FromArg(arg))
	}

	if len(inv.Sources) == 0 && !inv.ShortCircuit() {
		inv.Sources = []source.Source{source.Stdin()}
	}

	return inv, nil
}

// matchOption reports whether arg names a recognised option.
func matchOption(arg string) (string, bool, error) {
	if !strings.HasPrefix(arg, longPrefix) {
		return "", false, nil
	}

	name, _, hasValue := strings.Cut(strings.TrimPrefix(arg, longPrefix), valueSeparator)

	for _, o := range Options {
		if o.Name != name {
			continue
		}

		if hasValue {
			return "", false, fmt.Errorf("%w: %s%s", ErrOptionTakesNoValue, longPrefix, name)
		}

		return name, true, nil
	}

	return "", false, nil
}

// Basename returns the trailing component of a program path.
// A path ending in a separator has no trailing component and yields "".
func Basename(path string) string {
	if strings.HasSuffix(path, "/") {
		return ""
	}

	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}

	return path
}
