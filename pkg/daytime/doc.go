// Package daytime computes calendar-day boundaries for instants in time.
//
// The package has two layers. The naive layer (StartOfDay, EndOfDay and
// their previous/next variants) operates in whatever frame the input
// already carries: results keep the input's Location and the caller is
// responsible for having converted beforehand. The zone layer
// (StartOfZoneDay, EndOfZoneDay, ...) takes a UTC instant plus an explicit
// *time.Location, performs the day truncation in local wall-clock time,
// and expresses the result back in UTC.
//
// The zone layer is the reason this package exists: adding fixed 24-hour
// spans to a UTC instant silently produces wrong boundaries on the days a
// DST transition adds or removes an hour from local time. Every zone
// operation therefore converts into the zone, truncates there, and lets
// the return conversion re-resolve the UTC offset at the resulting
// instant, independently of the offset that applied on the way in.
//
// # Usage
//
//	loc, err := daytime.LoadZone("America/New_York")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	start := daytime.StartOfZoneDay(time.Now().UTC(), loc)
//	end := daytime.EndOfZoneDay(time.Now().UTC(), loc)
//
// All functions are pure: no shared state, no mutation of inputs, safe for
// concurrent use. End-of-day values are always derived as the start of the
// following day minus one nanosecond, so
// EndOfZoneDay(t, loc) == StartOfNextZoneDay(t, loc) - 1ns holds across
// DST transitions by construction.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package daytime
