// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger for diagnostics.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler writing to standard error, so log
// records never interleave with data written to standard output.
// The level is taken from the <PROGRAM>_LOG_LEVEL environment variable,
// e.g. CAT_LOG_LEVEL=DEBUG, and defaults to WARN.
package ctxlog
