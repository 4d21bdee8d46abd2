// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for cat.
//
// Option handling is done by the argv package rather than by urfave/cli,
// because any token that is not --help or --version must reach the streamer
// as a file name, including ones that look like unknown flags.
package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/matt-FFFFFF/cat"
	"github.com/matt-FFFFFF/cat/internal/argv"
	"github.com/matt-FFFFFF/cat/internal/ctxlog"
	"github.com/matt-FFFFFF/cat/internal/streamer"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	programKey  = "program"
	exitFailure = 1
)

var (
	// ErrParseArgs is returned when the command line cannot be interpreted.
	ErrParseArgs = errors.New("failed to parse arguments")
	// ErrSourcesFailed is returned when at least one source could not be read.
	ErrSourcesFailed = errors.New("one or more sources could not be read")
	// ErrWriteOutput is returned when help, version or streamed output cannot be written.
	ErrWriteOutput = errors.New("failed to write output")
)

// FsFactory is a function that returns the filesystem file sources are opened from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// New returns the root command for a program invoked as program.
// The name prefixes usage text and every diagnostic.
func New(program string) *cli.Command {
	return &cli.Command{
		Name:      program,
		Usage:     "concatenate files to standard output",
		UsageText: program + " [option] [file ...]",
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Copyright: strings.TrimSpace(cat.Copyright()),
		Metadata: map[string]any{
			programKey: program,
		},
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		// Exit codes are mapped by Execute, never by the cli package.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action:         actionFunc,
	}
}

// Execute runs root with args, where args[0] is the invocation path, and
// returns the process exit status.
func Execute(ctx context.Context, root *cli.Command, args []string) int {
	err := root.Run(ctx, args)
	if err == nil {
		ctxlog.Debug(ctx, "command completed successfully")
		return 0
	}

	code := exitFailure

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		code = ec.ExitCode()
	}

	if errors.Is(err, ErrWriteOutput) {
		ctxlog.Error(ctx, "output could not be written", "error", err, "exit_code", code)
		return code
	}

	ctxlog.Info(ctx, "command failed", "error", err, "exit_code", code)

	return code
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	program := programName(cmd)

	inv, err := argv.Parse(cmd.Args().Slice())
	if err != nil {
		ctxlog.Debug(ctx, "argument parsing failed", "args", cmd.Args().Slice(), "error", err)
		reportf(cmd.ErrWriter, "%s: %s\n", program, err)

		return exit(errors.Join(ErrParseArgs, err))
	}

	switch {
	case inv.Help:
		if err := writeHelp(cmd.Writer, program); err != nil {
			return exit(errors.Join(ErrWriteOutput, err))
		}

		return nil
	case inv.Version:
		if err := writeVersion(ctx, cmd.Writer, program); err != nil {
			return exit(errors.Join(ErrWriteOutput, err))
		}

		return nil
	}

	s := &streamer.Streamer{
		Program:     program,
		Fs:          FsFactory(),
		Stdin:       cmd.Reader,
		Stdout:      cmd.Writer,
		Diagnostics: cmd.Writer,
	}

	if err := s.Stream(ctx, inv.Sources); err != nil {
		if errors.Is(err, streamer.ErrWrite) {
			return exit(errors.Join(ErrWriteOutput, err))
		}

		return exit(errors.Join(ErrSourcesFailed, err))
	}

	return nil
}

// programName returns the name the command was constructed with. cli may
// rewrite an empty Name from the process arguments, Metadata is left alone.
func programName(cmd *cli.Command) string {
	if p, ok := cmd.Metadata[programKey].(string); ok {
		return p
	}

	return cmd.Name
}
