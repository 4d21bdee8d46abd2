// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package streamer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/cat/internal/ctxlog"
	"github.com/matt-FFFFFF/cat/internal/source"
	"github.com/spf13/afero"
)

var (
	// ErrWrite is returned when the output or diagnostics writer fails. It aborts the run.
	ErrWrite = errors.New("failed to write output")
	// ErrNoOutput is returned by Stream when the Streamer has no output writer.
	ErrNoOutput = errors.New("no output writer configured")
)

// SourceError records the failure of a single source.
type SourceError struct {
	Source source.Source
	Err    error
}

// Error returns "<filename>: <error description>".
func (e *SourceError) Error() string {
	return e.Source.String() + ": " + Describe(e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Streamer concatenates sources onto Stdout.
type Streamer struct {
	// Program prefixes diagnostic lines.
	Program string
	// Fs is used to open file sources. Defaults to the OS filesystem.
	Fs afero.Fs
	// Stdin is read for every standard input source.
	Stdin io.Reader
	// Stdout receives the content of every source.
	Stdout io.Writer
	// Diagnostics receives per-source error lines. Defaults to Stdout.
	Diagnostics io.Writer
}

// Stream processes sources in order.
// It returns nil when every source was copied, a *multierror.Error of
// *SourceError values when some sources failed, or an error wrapping ErrWrite
// as soon as output can no longer be written.
func (s *Streamer) Stream(ctx context.Context, sources []source.Source) error {
	if s.Stdout == nil {
		return ErrNoOutput
	}

	var result *multierror.Error

	for i, src := range sources {
		log := ctxlog.Logger(ctx).With("source", src.String(), "kind", src.Kind().String(), "index", i)
		log.Debug("streaming source")

		n, err := s.streamOne(src)

		switch {
		case err == nil:
			log.Debug("source complete", "bytes", n)
		case errors.Is(err, ErrWrite):
			log.Debug("output failed", "bytes", n, "error", err)
			return errors.Join(result.ErrorOrNil(), err)
		default:
			log.Debug("source abandoned", "bytes", n, "error", err)
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

func (s *Streamer) streamOne(src source.Source) (int64, error) {
	if src.IsStdin() {
		return s.streamStdin(src)
	}

	return s.streamFile(src)
}

func (s *Streamer) streamStdin(src source.Source) (int64, error) {
	r, err := src.Open(s.fs(), s.Stdin)
	if err != nil {
		// nothing to read is the same as an empty stream
		return 0, nil
	}

	defer r.Close() //nolint:errcheck

	n, _, werr := copyLines(s.Stdout, r)

	return n, werr
}

func (s *Streamer) streamFile(src source.Source) (int64, error) {
	r, err := src.Open(s.fs(), s.Stdin)
	if err != nil {
		return 0, s.abandon(src, err)
	}

	defer r.Close() //nolint:errcheck

	n, rerr, werr := copyLines(s.Stdout, r)
	if werr != nil {
		return n, werr
	}

	if rerr != nil {
		return n, s.abandon(src, rerr)
	}

	return n, nil
}

// abandon writes the diagnostic line for src and returns its SourceError.
func (s *Streamer) abandon(src source.Source, err error) error {
	serr := &SourceError{Source: src, Err: err}

	if _, werr := fmt.Fprintf(s.diagnostics(), "%s: %s\n", s.Program, serr.Error()); werr != nil {
		return errors.Join(ErrWrite, werr)
	}

	return serr
}

func (s *Streamer) fs() afero.Fs {
	if s.Fs == nil {
		return afero.NewOsFs()
	}

	return s.Fs
}

func (s *Streamer) diagnostics() io.Writer {
	if s.Diagnostics == nil {
		return s.Stdout
	}

	return s.Diagnostics
}

// copyLines writes r to w one line at a time, terminators included.
// A final line without a terminator is written as it is.
// Read and write failures are reported separately; a write failure wraps ErrWrite.
func copyLines(w io.Writer, r io.Reader) (n int64, readErr error, writeErr error) {
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			written, werr := w.Write(line)
			n += int64(written)

			if werr != nil {
				return n, nil, errors.Join(ErrWrite, werr)
			}
		}

		if errors.Is(err, io.EOF) {
			return n, nil, nil
		}

		if err != nil {
			return n, err, nil
		}
	}
}

// Describe returns the description used in diagnostics.
// Path errors are reduced to their cause since the path is already printed.
func Describe(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}

	return err.Error()
}
