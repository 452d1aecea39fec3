package standard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStandardTime_MinutesForm(t *testing.T) {
	st, err := ParseStandardTime("1:05.23")
	require.NoError(t, err)
	assert.True(t, st.Valid)
	assert.Equal(t, 6523, st.Hundredths)
	assert.False(t, st.Asterisk)
}

func TestParseStandardTime_SecondsForm(t *testing.T) {
	st, err := ParseStandardTime("59.89")
	require.NoError(t, err)
	assert.True(t, st.Valid)
	assert.Equal(t, 5989, st.Hundredths)
}

func TestParseStandardTime_Asterisk(t *testing.T) {
	st, err := ParseStandardTime("1:05.23*")
	require.NoError(t, err)
	assert.Equal(t, 6523, st.Hundredths)
	assert.True(t, st.Asterisk, "asterisk must be recorded independently of the scalar")
}

func TestParseStandardTime_AsteriskWithSpace(t *testing.T) {
	// Some extractions emit the marker as a detached token.
	st, err := ParseStandardTime("59.89 *")
	require.NoError(t, err)
	assert.Equal(t, 5989, st.Hundredths)
	assert.True(t, st.Asterisk)
}

func TestParseStandardTime_EmptyIsNull(t *testing.T) {
	st, err := ParseStandardTime("")
	require.NoError(t, err)
	assert.False(t, st.Valid)
	assert.False(t, st.Asterisk)

	st, err = ParseStandardTime("   ")
	require.NoError(t, err)
	assert.False(t, st.Valid)
}

func TestParseStandardTime_Malformed(t *testing.T) {
	cases := []string{
		"invalid",
		"1:2:3",
		"2:16",    // missing hundredths
		"2.1",     // one hundredths digit
		"1:05.234",
		"*",
		"-1:05.23",
	}
	for _, input := range cases {
		_, err := ParseStandardTime(input)
		var mt *MalformedTimeError
		require.ErrorAs(t, err, &mt, "input %q", input)
		assert.Equal(t, input, mt.Input)
	}
}

func TestStandardTime_RoundTrip(t *testing.T) {
	cases := []string{"1:05.23*", "1:05.23", "59.89", "2:00.00", "31.50"}
	for _, input := range cases {
		st, err := ParseStandardTime(input)
		require.NoError(t, err)
		assert.Equal(t, input, st.String(), "round-trip of %q", input)
	}
}

func TestStandardTime_NullRendersEmpty(t *testing.T) {
	assert.Equal(t, "", StandardTime{}.String())
}

func TestStandardTime_ScalarOrdering(t *testing.T) {
	slower, err := ParseStandardTime("1:00.01")
	require.NoError(t, err)
	faster, err := ParseStandardTime("59.99")
	require.NoError(t, err)
	assert.Greater(t, slower.Hundredths, faster.Hundredths)
}
