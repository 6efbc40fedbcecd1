// Package daybound computes timezone-aware calendar-day boundaries.
//
// The core lives in pkg/daytime; this package re-exports the common
// entry points so small consumers can depend on the module root alone.
//
// Example usage:
//
//	loc, err := daybound.LoadZone("America/New_York")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	start := daybound.StartOfZoneDay(time.Now().UTC(), loc)
//	end := daybound.EndOfZoneDay(time.Now().UTC(), loc)
package daybound

import (
	"time"

	"github.com/bft-labs/daybound/pkg/daytime"
)

// Tick is the smallest representable step between two instants.
const Tick = daytime.Tick

// LoadZone resolves an IANA zone name against the platform timezone
// database.
func LoadZone(name string) (*time.Location, error) {
	return daytime.LoadZone(name)
}

// StartOfDay returns midnight on t's calendar date in t's own frame.
func StartOfDay(t time.Time) time.Time {
	return daytime.StartOfDay(t)
}

// EndOfDay returns the last representable instant of t's calendar day in
// t's own frame.
func EndOfDay(t time.Time) time.Time {
	return daytime.EndOfDay(t)
}

// StartOfZoneDay returns, in UTC, the start of t's local day in the
// given zone.
func StartOfZoneDay(t time.Time, loc *time.Location) time.Time {
	return daytime.StartOfZoneDay(t, loc)
}

// EndOfZoneDay returns, in UTC, the last instant of t's local day in the
// given zone.
func EndOfZoneDay(t time.Time, loc *time.Location) time.Time {
	return daytime.EndOfZoneDay(t, loc)
}

// ZoneDayBounds returns, in UTC, the first and last instants of t's
// local day in the given zone.
func ZoneDayBounds(t time.Time, loc *time.Location) (start, end time.Time) {
	return daytime.ZoneDayBounds(t, loc)
}

// DayOfWeek returns the weekday of t's calendar date in t's own frame.
func DayOfWeek(t time.Time) time.Weekday {
	return daytime.DayOfWeek(t)
}
