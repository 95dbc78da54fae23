// Package clock maps instants to the calendar days used for quota resets.
package clock

import "time"

// DayKeyLayout is the format of a day key.
const DayKeyLayout = "2006-01-02"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant. Useful in tests and replays.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Oracle turns instants into day keys for one configured location.
type Oracle struct {
	clock Clock
	loc   *time.Location
}

// NewOracle creates an Oracle. A nil location means UTC.
func NewOracle(c Clock, loc *time.Location) *Oracle {
	if c == nil {
		c = System{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Oracle{clock: c, loc: loc}
}

// Now returns the current instant from the underlying clock.
func (o *Oracle) Now() time.Time {
	return o.clock.Now()
}

// Location returns the location day keys are computed in.
func (o *Oracle) Location() *time.Location {
	return o.loc
}

// DayKey returns the calendar day of t in the oracle's location.
func (o *Oracle) DayKey(t time.Time) string {
	return DayKey(t, o.loc)
}

// SameDay reports whether a and b fall on the same calendar day.
func (o *Oracle) SameDay(a, b time.Time) bool {
	return DayKey(a, o.loc) == DayKey(b, o.loc)
}

// DayStart returns the start of t's day in the oracle's location, in UTC.
func (o *Oracle) DayStart(t time.Time) time.Time {
	local := t.In(o.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, o.loc).UTC()
}

// NextDayStart returns the start of the day after t's day, in UTC. Days are
// not always 24h long in zones with DST.
func (o *Oracle) NextDayStart(t time.Time) time.Time {
	local := t.In(o.loc)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, o.loc).UTC()
}

// DayKey returns the calendar day of t in loc as YYYY-MM-DD.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayKeyLayout)
}
