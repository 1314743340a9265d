package dayrange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DateString(t *testing.T) {
	rng, err := Normalize("2024-03-15", DefaultOffsetMinutes)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 14, 18, 30, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 18, 29, 59, 999_000_000, time.UTC), rng.End)
	assert.Equal(t, "2024-03-15", rng.Label)
}

func TestNormalize_RFC3339(t *testing.T) {
	// 20:00 UTC on the 14th is already the 15th at +05:30.
	rng, err := Normalize("2024-03-14T20:00:00Z", DefaultOffsetMinutes)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", rng.Label)
	assert.Equal(t, time.Date(2024, 3, 14, 18, 30, 0, 0, time.UTC), rng.Start)
}

func TestNormalizeAt_EmptyInputUsesNow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rng, err := NormalizeAt("", DefaultOffsetMinutes, now)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01", rng.Label)
	assert.True(t, rng.Contains(now))
}

func TestNormalizeAt_EmptyInputNearMidnight(t *testing.T) {
	// 19:00 UTC is 00:30 of the next day at +05:30.
	now := time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)
	rng, err := NormalizeAt("", DefaultOffsetMinutes, now)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-02", rng.Label)
}

func TestNormalize_Malformed(t *testing.T) {
	for _, input := range []string{"15-03-2024", "2024/03/15", "not-a-date", "2024-13-40"} {
		_, err := Normalize(input, DefaultOffsetMinutes)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
	}
}

func TestNormalize_ZeroOffset(t *testing.T) {
	rng, err := Normalize("2024-03-15", 0)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999_000_000, time.UTC), rng.End)
}

func TestRange_Contains(t *testing.T) {
	rng, err := Normalize("2024-03-15", DefaultOffsetMinutes)
	require.NoError(t, err)

	assert.True(t, rng.Contains(rng.Start))
	assert.True(t, rng.Contains(rng.End))
	assert.False(t, rng.Contains(rng.Start.Add(-time.Millisecond)))
	assert.False(t, rng.Contains(rng.End.Add(time.Millisecond)))
}

func TestMonthRange(t *testing.T) {
	rng, err := MonthRange(2024, 2, DefaultOffsetMinutes)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 31, 18, 30, 0, 0, time.UTC), rng.Start)
	// 2024 is a leap year, February has 29 days.
	assert.Equal(t, time.Date(2024, 2, 29, 18, 29, 59, 999_000_000, time.UTC), rng.End)
	assert.Equal(t, "2024-02", rng.Label)
}

func TestMonthRange_Invalid(t *testing.T) {
	_, err := MonthRange(2024, 0, DefaultOffsetMinutes)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = MonthRange(2024, 13, DefaultOffsetMinutes)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = MonthRange(0, 5, DefaultOffsetMinutes)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
