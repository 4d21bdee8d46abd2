// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestExitError(t *testing.T) {
	cause := errors.New("missing.txt: file does not exist")
	err := error(exit(errors.Join(ErrSourcesFailed, cause)))

	var ec cli.ExitCoder
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, exitFailure, ec.ExitCode())
	assert.ErrorIs(t, err, ErrSourcesFailed, "sentinel must stay reachable through the exit status")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "missing.txt")
}
