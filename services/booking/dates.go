package booking

import (
	"time"

	"planmystay/models"
)

// Day normalizes a timestamp to midnight UTC. All reservation math runs at day
// granularity; comparing un-normalized times would make equal dates unequal.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildNightRange expands a (checkIn, checkOut) pair into the ordered run of
// reserved nights: checkIn, checkIn+1, ..., checkOut-1. Checkout day is not a
// reserved night. Returns ErrInvalidRange unless checkOut > checkIn.
func BuildNightRange(checkIn, checkOut time.Time) ([]time.Time, error) {
	start := Day(checkIn)
	end := Day(checkOut)
	if !end.After(start) {
		return nil, models.ErrInvalidRange
	}

	nights := make([]time.Time, 0, int(end.Sub(start).Hours()/24))
	for cur := start; cur.Before(end); cur = cur.AddDate(0, 0, 1) {
		nights = append(nights, cur)
	}
	return nights, nil
}

// RangeInterval decodes a stored night run into its half-open interval
// [first, last+1d). This is the canonical form for all overlap comparisons;
// a single-night range yields a one-day interval.
func RangeInterval(nights []time.Time) (start, end time.Time, ok bool) {
	if len(nights) == 0 {
		return time.Time{}, time.Time{}, false
	}
	start = Day(nights[0])
	end = Day(nights[len(nights)-1]).AddDate(0, 0, 1)
	return start, end, true
}

// Nights counts checkout-exclusive nights between two dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(Day(checkOut).Sub(Day(checkIn)).Hours() / 24)
}
