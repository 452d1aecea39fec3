package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanInput = `USA Swimming 2024-2028 Motivational Standards
B BB A AA AAA AAAA Event AAAA AAA AA A BB B
10 & under Girls, 10 & under Boys
39.00  38.00  37.00  36.00  35.00  34.12  50 FR LCM  33.00  33.50  34.00  34.50  35.00  35.50
Page 1 of 1
`

const flaggedInput = `B BB A AA AAA AAAA Event AAAA AAA AA A BB B
10 Girls, 10 Boys
34.12  33.00  36.00  37.00  38.00  39.00  50 FR LCM  40.00  39.50  39.00  38.50  38.00  37.50
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, build func(*RootOptions) *cobra.Command, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := build(opts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestParse_Text(t *testing.T) {
	path := writeInput(t, cleanInput)

	out, err := execute(t, NewParseCommand, &RootOptions{Format: "text"}, path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 subtable(s)")
	assert.Contains(t, out, "50 FR LCM")
}

func TestParse_JSON(t *testing.T) {
	path := writeInput(t, cleanInput)

	out, err := execute(t, NewParseCommand, &RootOptions{Format: "json"}, path)
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	subtables := tree["subtables"].([]interface{})
	assert.Len(t, subtables, 1)
}

func TestParse_Stdin(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewParseCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(cleanInput))
	cmd.SetArgs([]string{"-"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "1 subtable(s)")
}

func TestParse_MissingFile(t *testing.T) {
	_, err := execute(t, NewParseCommand, &RootOptions{Format: "text"},
		filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestParse_CustomProfile(t *testing.T) {
	profileSrc := `
titles: ["Other Federation Standards"]
cut_labels: ["B", "BB", "A", "AA", "AAA", "AAAA", "Event", "AAAA", "AAA", "AA", "A", "BB", "B"]
styles: ["FR", "BK", "BR", "FL", "IM"]
pools: ["SCY", "SCM", "LCM"]
canonical_distances: [50, 100, 200, 400, 800, 1500]
`
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profile.cue")
	require.NoError(t, os.WriteFile(profilePath, []byte(profileSrc), 0o644))

	input := "Other Federation Standards\n" + flaggedInput
	path := writeInput(t, input)

	out, err := execute(t, NewParseCommand,
		&RootOptions{Format: "text", Profile: profilePath}, path)
	require.NoError(t, err)
	// The custom title classifies as noise instead of becoming a row.
	assert.Contains(t, out, "1 subtable(s)")
}

func TestParse_BadProfile(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "bad.cue")
	require.NoError(t, os.WriteFile(profilePath, []byte("titles: ["), 0o644))

	path := writeInput(t, cleanInput)
	_, err := execute(t, NewParseCommand,
		&RootOptions{Format: "text", Profile: profilePath}, path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheck_Clean(t *testing.T) {
	path := writeInput(t, cleanInput)

	out, err := execute(t, NewCheckCommand, &RootOptions{Format: "text"}, path)
	require.NoError(t, err)
	assert.Contains(t, out, "no findings")
}

func TestCheck_Flagged(t *testing.T) {
	path := writeInput(t, flaggedInput)

	out, err := execute(t, NewCheckCommand, &RootOptions{Format: "text"}, path)
	require.Error(t, err)
	assert.Equal(t, ExitAuditFailure, GetExitCode(err))
	assert.Contains(t, out, "LEFT_NOT_DESCENDING")
}

func TestRoot_RejectsUnknownFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", "parse", "whatever"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
