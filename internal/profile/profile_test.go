package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cutsheet/internal/standard"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Len(t, p.CutLabels, 13)
	assert.Equal(t, "Event", p.CutLabels[standard.EventLabelIndex])
	assert.Equal(t, []string{"FR", "BK", "BR", "FL", "IM"}, p.Styles)
	assert.Contains(t, p.Titles, "USA Swimming 2024-2028 Motivational Standards")
	assert.Contains(t, p.Pools, "LCM")
}

func TestDefault_Lexicon(t *testing.T) {
	lex := Default().Lexicon()

	assert.True(t, lex.KnownStyle("fr"))
	assert.True(t, lex.KnownPool("SCY"))
	assert.True(t, lex.CanonicalDistance(1500))
	assert.False(t, lex.CanonicalDistance(75))
}

func TestLoad_CustomProfile(t *testing.T) {
	src := `
titles: ["Some Federation 2030 Standards"]
cut_labels: ["B", "BB", "A", "AA", "AAA", "AAAA", "Event", "AAAA", "AAA", "AA", "A", "BB", "B"]
styles: ["FR", "BK", "BR", "FL", "IM"]
pools: ["SCM", "LCM"]
canonical_distances: [50, 100, 200]
`
	path := filepath.Join(t.TempDir(), "custom.cue")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Some Federation 2030 Standards"}, p.Titles)
	assert.Equal(t, []int{50, 100, 200}, p.CanonicalDistances)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.cue"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
}

func TestLoad_BadCUE(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cue")
	require.NoError(t, os.WriteFile(path, []byte(`titles: [`), 0o644))

	_, err := Load(path)
	var le *LoadError
	require.ErrorAs(t, err, &le)
}

func TestLoad_WrongLabelCount(t *testing.T) {
	src := `
titles: ["X"]
cut_labels: ["B", "Event", "B"]
styles: ["FR"]
pools: ["LCM"]
canonical_distances: [50]
`
	path := filepath.Join(t.TempDir(), "short.cue")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	_, err := Load(path)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Message, "cut_labels")
}

func TestLoad_EventNotCentered(t *testing.T) {
	src := `
titles: ["X"]
cut_labels: ["Event", "BB", "A", "AA", "AAA", "AAAA", "B", "AAAA", "AAA", "AA", "A", "BB", "B"]
styles: ["FR"]
pools: ["LCM"]
canonical_distances: [50]
`
	path := filepath.Join(t.TempDir(), "offcenter.cue")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	_, err := Load(path)
	var le *LoadError
	require.ErrorAs(t, err, &le)
}
