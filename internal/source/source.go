// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package source defines the inputs that are concatenated to standard output.
// A Source is either standard input or a named file; the "-" marker is resolved
// to Stdin once, when the argument list is parsed, and never compared again.
package source

import (
	"errors"
	"io"

	"github.com/spf13/afero"
)

// StdinMarker is the positional argument that selects standard input.
const StdinMarker = "-"

// ErrNoStdin is returned when a Stdin source is opened without a reader.
var ErrNoStdin = errors.New("standard input is not available")

// Kind distinguishes the two variants of a Source.
type Kind int

const (
	// KindStdin reads the process's standard input.
	KindStdin Kind = iota
	// KindFile reads a named file.
	KindFile
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStdin:
		return "stdin"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Source is one unit of input. The zero value is Stdin.
type Source struct {
	kind Kind
	path string
}

// Stdin returns the standard input source.
func Stdin() Source {
	return Source{kind: KindStdin}
}

// File returns a source for the named path. The path is not validated.
func File(path string) Source {
	return Source{kind: KindFile, path: path}
}

// FromArg converts a positional command line argument into a Source.
func FromArg(arg string) Source {
	if arg == StdinMarker {
		return Stdin()
	}

	return File(arg)
}

// Kind returns the variant of the source.
func (s Source) Kind() Kind {
	return s.kind
}

// Path returns the file path, or the empty string for Stdin.
func (s Source) Path() string {
	return s.path
}

// IsStdin reports whether the source is standard input.
func (s Source) IsStdin() bool {
	return s.kind == KindStdin
}

// String returns the name used in diagnostics: the path for files, "-" for standard input.
func (s Source) String() string {
	if s.IsStdin() {
		return StdinMarker
	}

	return s.path
}

// Open returns a reader for the source.
// Files are opened read-only through fs. Standard input is wrapped so that
// closing it does not close the process's stdin.
func (s Source) Open(fs afero.Fs, stdin io.Reader) (io.ReadCloser, error) {
	if s.IsStdin() {
		if stdin == nil {
			return nil, ErrNoStdin
		}

		return io.NopCloser(stdin), nil
	}

	f, err := fs.Open(s.path)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return f, nil
}
