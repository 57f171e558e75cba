package raffle

import "errors"

// ErrSegmentExhausted indicates binary search over a validated
// EntryList failed to locate the owning segment. Since segments
// partition [0, N) exactly for a validated list, this is an internal
// invariant failure, never a user error.
var ErrSegmentExhausted = errors.New("segment lookup exhausted without finding entry")

// locate returns the unique entry with entry.Start <= w < entry.End.
// Uses a half-open [l, r) binary search rather than an inclusive
// [l, r] form, to avoid reading one past the end on degenerate input.
func locate(entries EntryList, w uint64) (Entry, error) {
	l, r := 0, len(entries)
	for l < r {
		m := (l + r) / 2
		entry := entries[m]
		switch {
		case entry.Start <= w && w < entry.End:
			return entry, nil
		case w < entry.Start:
			r = m
		default:
			l = m + 1
		}
	}
	return Entry{}, ErrSegmentExhausted
}
