// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the cat command-line application.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/cat/cmd"
	"github.com/matt-FFFFFF/cat/internal/argv"
	"github.com/matt-FFFFFF/cat/internal/ctxlog"
)

func main() {
	ctxlog.SetLevelFromEnv(os.Args[0])
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	os.Exit(cmd.Execute(ctx, cmd.New(argv.Basename(os.Args[0])), os.Args))
}
