// Package services holds the ledger (the authoritative record
// collections and their persistence), the period resolver, the
// aggregation queries, and the derived-metric helpers.
package services

import "time"

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Period is a symbolic time-window selector.
type Period string

// IsValid reports whether p is a known period tag.
func (p Period) IsValid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth:
		return true
	default:
		return false
	}
}

// Interval is a concrete time window resolved from a Period. Filtering
// treats both bounds as inclusive; see Contains.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval. Both bounds
// are inclusive: the dashboard filter has always been
// `date >= start && date <= end`, including for the "today" window
// whose End is the next midnight. Consumers rely on that exact
// predicate, so it is preserved here.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.End)
}

// Resolve maps the period tag to a concrete window anchored at now.
//
//   - today: [midnight, next midnight], a calendar-day window
//   - week:  [now - 7*24h, now], a rolling window, not calendar-aligned
//   - month: [first of the current month at midnight, now]
//
// The week window deliberately uses 7*24 hours rather than calendar
// days, and only the today window extends past now. An unknown tag
// falls back to [midnight, now].
func (p Period) Resolve(now time.Time) Interval {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodToday:
		return Interval{Start: midnight, End: midnight.Add(24 * time.Hour)}
	case PeriodWeek:
		return Interval{Start: now.Add(-7 * 24 * time.Hour), End: now}
	case PeriodMonth:
		return Interval{Start: time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), End: now}
	default:
		return Interval{Start: midnight, End: now}
	}
}
