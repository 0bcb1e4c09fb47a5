// Package timebase resolves tick millisecond offsets into absolute timestamps.
//
// Each bi5 file stores tick times as milliseconds since the start of the
// period the file covers (conventionally one hour). The absolute time of a
// tick is base + offset, where the base comes from the caller or from the
// file's location in the provider's directory layout.
//
// A missing base is modeled explicitly with None rather than a sentinel date.
// Resolving against None uses Epoch (0000-01-01T00:00:00Z), so the result is
// the offset rendered as a time of day on the first day of year zero and must
// not be mistaken for a real calendar date.
package timebase

import "time"

// Base is an optional absolute base time.
//
// The zero value is None.
type Base struct {
	t   time.Time
	set bool
}

// Epoch returns 0000-01-01T00:00:00Z, the base used when none is given.
func Epoch() time.Time {
	return time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// None returns an unset base.
func None() Base {
	return Base{}
}

// At returns a base set to t.
func At(t time.Time) Base {
	return Base{t: t, set: true}
}

// IsSet reports whether the base carries a calendar time.
func (b Base) IsSet() bool {
	return b.set
}

// Time returns the base time and whether it is set.
func (b Base) Time() (time.Time, bool) {
	return b.t, b.set
}

// OrEpoch returns the base time, or Epoch when the base is unset.
func (b Base) OrEpoch() time.Time {
	if !b.set {
		return Epoch()
	}

	return b.t
}

// Advance returns the base moved forward by d.
//
// Advancing an unset base starts from Epoch and yields a set base: the result
// is an offset from the epoch sentinel, not a real date.
func (b Base) Advance(d time.Duration) Base {
	return At(b.OrEpoch().Add(d))
}

// String formats the base as RFC 3339 with milliseconds, or "none".
func (b Base) String() string {
	if !b.set {
		return "none"
	}

	return b.t.Format(LayoutMillis)
}

// Resolve returns the absolute time of a tick recorded millisecs after base.
//
// Calendar arithmetic is delegated to time.Time, so offsets roll over
// seconds, hours, days, months and leap days correctly. The full uint32 range
// (about 49.7 days) is always representable.
func Resolve(base Base, millisecs uint32) time.Time {
	return base.OrEpoch().Add(time.Duration(millisecs) * time.Millisecond)
}
