package daytime

import (
	"fmt"
	"time"
)

// LoadZone resolves an IANA zone name (e.g. "America/New_York") against
// the platform timezone database. Obtain the handle once and thread it
// through call sites; this package keeps no zone registry of its own.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", name, err)
	}
	return loc, nil
}

// StartOfZoneDay returns, in UTC, the instant at which t's calendar day
// begins in the given zone.
//
// If the zone skips local midnight on that date (a spring-forward gap at
// 00:00), the result is normalized forward to the first wall-clock instant
// that exists, per the platform's resolution rule.
func StartOfZoneDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).UTC()
}

// StartOfNextZoneDay returns, in UTC, the start of the local day after
// t's in the given zone. The offset for the return conversion is resolved
// at the new instant, so the result is correct when a DST transition falls
// between t and the boundary.
func StartOfNextZoneDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc).UTC()
}

// StartOfPreviousZoneDay returns, in UTC, the start of the local day
// before t's in the given zone.
func StartOfPreviousZoneDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d-1, 0, 0, 0, 0, loc).UTC()
}

// EndOfZoneDay returns, in UTC, the last instant of t's local day in the
// given zone: one tick before StartOfNextZoneDay. On a fall-back day the
// post-transition offset applies, independent of the offset at t.
func EndOfZoneDay(t time.Time, loc *time.Location) time.Time {
	return StartOfNextZoneDay(t, loc).Add(-Tick)
}

// EndOfNextZoneDay returns, in UTC, the last instant of the local day
// after t's in the given zone.
func EndOfNextZoneDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d+2, 0, 0, 0, 0, loc).UTC().Add(-Tick)
}

// EndOfPreviousZoneDay returns, in UTC, the last instant of the local day
// before t's: one tick before the start of t's own local day.
func EndOfPreviousZoneDay(t time.Time, loc *time.Location) time.Time {
	return StartOfZoneDay(t, loc).Add(-Tick)
}

// SameZoneDay reports whether a and b fall on the same local calendar
// date in the given zone.
func SameZoneDay(a, b time.Time, loc *time.Location) bool {
	return SameDay(a.In(loc), b.In(loc))
}
