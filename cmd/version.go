// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/cat"
	"github.com/matt-FFFFFF/cat/internal/ctxlog"
)

// writeVersion prints "<program> v<version>" followed directly by the copyright block.
// Both texts are embedded in the binary and printed exactly as stored.
func writeVersion(ctx context.Context, w io.Writer, program string) error {
	ctxlog.Debug(ctx, "version requested", "commit", cat.Commit)

	if _, err := fmt.Fprintf(w, "%s v%s", program, cat.Version()); err != nil {
		return err //nolint:wrapcheck
	}

	if _, err := io.WriteString(w, cat.Copyright()); err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}
