// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

var _ cli.ExitCoder = (*exitError)(nil)

// exitError carries an exit status alongside the error that caused it.
type exitError struct {
	err  error
	code int
}

func exit(err error) *exitError {
	return &exitError{err: err, code: exitFailure}
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func (e *exitError) ExitCode() int {
	return e.code
}

// reportf writes a message for the user. Failing to report is not itself reported.
func reportf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
