// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hill/hill"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})

	Version, Commit, BuildDate = "v1.2.3", "abc1234", "2026-01-02T10:00:00Z"
	require.Equal(t, "v1.2.3 (commit: abc1234, built: 2026-01-02T10:00:00Z)", getVersionString())

	Version = "dev"
	require.Equal(t, "dev (built from source)", getVersionString())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	require.NoError(t, classify(nil))

	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("Decrypt: %w", hill.ErrNotInvertible), ExitNotInvertible},
		{fmt.Errorf("New: %w", hill.ErrInvalidKeyLength), ExitUsage},
		{ErrMissingKey, ExitUsage},
		{fmt.Errorf("x: %w", hill.ErrInvalidLength), ExitFailure},
		{errors.New("boom"), ExitFailure},
	}
	for _, tc := range tests {
		var exitErr *ExitError
		require.True(t, errors.As(classify(tc.err), &exitErr))
		require.Equal(t, tc.code, exitErr.Code, tc.err.Error())
		require.ErrorIs(t, exitErr, tc.err)
	}

	// Already classified errors pass through.
	pre := &ExitError{Code: 7, Err: errors.New("x")}
	require.Same(t, pre, classify(pre))
	require.Equal(t, "exit status 9", (&ExitError{Code: 9}).Error())
}
