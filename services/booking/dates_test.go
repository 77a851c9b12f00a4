package booking

import (
	"testing"
	"time"

	"planmystay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNightRange(t *testing.T) {
	nights, err := BuildNightRange(date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)

	require.Len(t, nights, 3)
	assert.Equal(t, date(2024, time.January, 10), nights[0])
	assert.Equal(t, date(2024, time.January, 11), nights[1])
	assert.Equal(t, date(2024, time.January, 12), nights[2])
}

func TestBuildNightRange_SingleNight(t *testing.T) {
	nights, err := BuildNightRange(date(2024, time.March, 1), date(2024, time.March, 2))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, time.March, 1)}, nights)
}

func TestBuildNightRange_InvalidSpans(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{"zero nights", date(2024, time.May, 5), date(2024, time.May, 5)},
		{"reversed", date(2024, time.May, 6), date(2024, time.May, 5)},
		{"same day different hours", date(2024, time.May, 5).Add(2 * time.Hour), date(2024, time.May, 5).Add(20 * time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildNightRange(tc.checkIn, tc.checkOut)
			assert.ErrorIs(t, err, models.ErrInvalidRange)
		})
	}
}

func TestBuildNightRange_NormalizesTimeOfDay(t *testing.T) {
	// A 3pm check-in and 11am check-out still span whole nights.
	nights, err := BuildNightRange(
		date(2024, time.July, 1).Add(15*time.Hour),
		date(2024, time.July, 3).Add(11*time.Hour),
	)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, time.July, 1), date(2024, time.July, 2)}, nights)
}

func TestRangeInterval_RoundTrip(t *testing.T) {
	cases := []struct {
		checkIn  time.Time
		checkOut time.Time
	}{
		{date(2024, time.January, 10), date(2024, time.January, 13)},
		{date(2024, time.February, 28), date(2024, time.March, 2)},
		{date(2023, time.December, 31), date(2024, time.January, 1)},
	}
	for _, tc := range cases {
		nights, err := BuildNightRange(tc.checkIn, tc.checkOut)
		require.NoError(t, err)

		start, end, ok := RangeInterval(nights)
		require.True(t, ok)
		assert.Equal(t, tc.checkIn, start)
		assert.Equal(t, tc.checkOut, end)
	}
}

func TestRangeInterval_Empty(t *testing.T) {
	_, _, ok := RangeInterval(nil)
	assert.False(t, ok)
}

func TestRangeInterval_SingleNight(t *testing.T) {
	start, end, ok := RangeInterval([]time.Time{date(2024, time.June, 10)})
	require.True(t, ok)
	assert.Equal(t, date(2024, time.June, 10), start)
	assert.Equal(t, date(2024, time.June, 11), end)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date(2024, time.January, 10), date(2024, time.January, 13)))
	assert.Equal(t, 1, Nights(date(2024, time.January, 10), date(2024, time.January, 11)))
	assert.Equal(t, 0, Nights(date(2024, time.January, 10), date(2024, time.January, 10)))
}
