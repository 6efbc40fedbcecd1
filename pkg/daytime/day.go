package daytime

import "time"

// Tick is the smallest representable step between two instants.
const Tick = time.Nanosecond

// StartOfDay returns midnight (00:00:00.000000000) on t's calendar date,
// in t's own Location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfNextDay returns the start of the calendar day after t's.
// The shift is one calendar day, not 24 hours.
func StartOfNextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// StartOfPreviousDay returns the start of the calendar day before t's.
func StartOfPreviousDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -1)
}

// EndOfDay returns the last representable instant of t's calendar day,
// one tick before the start of the next day. It is derived from
// StartOfNextDay rather than built from a 23:59:59 literal so the result
// stays exact at any native resolution.
func EndOfDay(t time.Time) time.Time {
	return StartOfNextDay(t).Add(-Tick)
}

// EndOfNextDay returns the last instant of the calendar day after t's.
func EndOfNextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 2).Add(-Tick)
}

// EndOfPreviousDay returns the last instant of the calendar day before
// t's, one tick before StartOfDay(t).
func EndOfPreviousDay(t time.Time) time.Time {
	return StartOfDay(t).Add(-Tick)
}

// SameDay reports whether a and b fall on the same calendar date, each in
// its own frame.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
