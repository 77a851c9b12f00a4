package booking

import "time"

// Overlaps reports whether two half-open day intervals [s1,e1) and [s2,e2)
// intersect. Adjacent intervals (one's checkout on the other's check-in) do
// not overlap: the checkout day is never a reserved night.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// RangeConflicts reports whether the candidate interval [start, end)
// intersects any range in the hotel's reservation ledger. Empty or malformed
// ledger entries are skipped rather than treated as conflicts.
func RangeConflicts(start, end time.Time, existing [][]time.Time) bool {
	for _, nights := range existing {
		s, e, ok := RangeInterval(nights)
		if !ok {
			continue
		}
		if Overlaps(start, end, s, e) {
			return true
		}
	}
	return false
}
