package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportAndRuns(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "lines.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte(cleanInput), 0o644))
	dbPath := filepath.Join(dir, "audit.db")

	rootOpts := &RootOptions{Format: "text"}

	buf := &bytes.Buffer{}
	cmd := NewExportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{inputPath, "--db", dbPath})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "exported run")
	assert.Contains(t, buf.String(), "1 row(s), 0 flag(s)")

	buf.Reset()
	runsCmd := NewRunsCommand(rootOpts)
	runsCmd.SetOut(buf)
	runsCmd.SetArgs([]string{"--db", dbPath})
	require.NoError(t, runsCmd.Execute())
	assert.Contains(t, buf.String(), "lines.txt")
	assert.Contains(t, buf.String(), "rows=1 flags=0")
}

func TestRuns_EmptyStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")

	buf := &bytes.Buffer{}
	cmd := NewRunsCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--db", dbPath})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "no runs")
}

func TestExport_MissingInput(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")

	cmd := NewExportCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.txt"), "--db", dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
