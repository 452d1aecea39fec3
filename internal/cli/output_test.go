package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"exit error", NewExitError(ExitAuditFailure, "findings"), ExitAuditFailure},
		{"wrapped exit error", fmt.Errorf("outer: %w", NewExitError(ExitAuditFailure, "findings")), ExitAuditFailure},
		{"plain error", errors.New("boom"), ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := WrapExitError(ExitCommandError, "reading input", inner)

	require.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "reading input")
	assert.Contains(t, err.Error(), "inner")
}

func TestVerboseLog(t *testing.T) {
	buf := &bytes.Buffer{}

	verboseLog(buf, false, "hidden %d", 1)
	assert.Empty(t, buf.String())

	verboseLog(buf, true, "shown %d", 2)
	assert.Equal(t, "shown 2\n", buf.String())
}
