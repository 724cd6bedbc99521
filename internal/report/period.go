// Package report computes financial summaries over collections already
// loaded from the database. Every function here is a pure transformation:
// inputs arrive as slices plus an explicit reference instant, nothing is
// mutated, and the same inputs always produce the same output. Callers
// refetch and re-supply fresh collections after mutations instead of the
// aggregations reaching into a live store.
package report

import (
	"errors"
	"time"
)

// PeriodKind identifies one of the recognized reporting windows.
type PeriodKind string

const (
	PeriodToday       PeriodKind = "today"
	PeriodLast7Days   PeriodKind = "last_7_days"
	PeriodThisMonth   PeriodKind = "this_month"
	PeriodLastMonth   PeriodKind = "last_month"
	PeriodLast3Months PeriodKind = "last_3_months"
	PeriodThisYear    PeriodKind = "this_year"
	PeriodAllTime     PeriodKind = "all"
	PeriodCustom      PeriodKind = "custom"
)

// ErrEndBeforeStart reports a custom range whose end precedes its start.
// Aggregations treat such a range as an empty result set; boundaries that
// would rather reject it can check with Period.Validate.
var ErrEndBeforeStart = errors.New("period end is before start")

// Period is a reporting window: either a named kind resolved relative to
// a reference instant, or an explicit custom range.
type Period struct {
	Kind  PeriodKind
	Start time.Time // custom ranges only
	End   time.Time // custom ranges only
}

// ParsePeriod maps a period label to a Period. Unrecognized labels map
// to the all-time kind, which callers observe as "no filtering applied".
// Custom ranges are not parseable from a label; build them with Custom.
func ParsePeriod(label string) Period {
	switch PeriodKind(label) {
	case PeriodToday, PeriodLast7Days, PeriodThisMonth, PeriodLastMonth,
		PeriodLast3Months, PeriodThisYear:
		return Period{Kind: PeriodKind(label)}
	default:
		return Period{Kind: PeriodAllTime}
	}
}

// Custom returns a period covering [start, end] inclusive.
func Custom(start, end time.Time) Period {
	return Period{Kind: PeriodCustom, Start: start, End: end}
}

// Validate reports whether a custom range is well-formed. Named kinds
// are always valid.
func (p Period) Validate() error {
	if p.Kind == PeriodCustom && p.End.Before(p.Start) {
		return ErrEndBeforeStart
	}
	return nil
}

// Window resolves the period to concrete [start, end] instants relative
// to now, using now's location for calendar boundaries. bounded is false
// for the all-time kind, meaning no filtering applies.
func (p Period) Window(now time.Time) (start, end time.Time, bounded bool) {
	switch p.Kind {
	case PeriodToday:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, now, true
	case PeriodLast7Days:
		return now.Add(-7 * 24 * time.Hour), now, true
	case PeriodThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, now, true
	case PeriodLastMonth:
		// Bounded to the end of the previous month so current-month
		// transactions never leak in.
		firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start = firstOfThisMonth.AddDate(0, -1, 0)
		return start, firstOfThisMonth.Add(-time.Nanosecond), true
	case PeriodLast3Months:
		start = time.Date(now.Year(), now.Month()-3, 1, 0, 0, 0, 0, now.Location())
		return start, now, true
	case PeriodThisYear:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return start, now, true
	case PeriodCustom:
		return p.Start, p.End, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Contains reports whether t falls inside the period's window, bounds
// inclusive.
func (p Period) Contains(t, now time.Time) bool {
	start, end, bounded := p.Window(now)
	if !bounded {
		return true
	}
	return !t.Before(start) && !t.After(end)
}
