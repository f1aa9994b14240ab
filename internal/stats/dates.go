package stats

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. ISO first, then the day-first orderings
// common in the source workbooks, then month-first as a last resort. The
// first layout that parses wins, so an ambiguous 03/04/2025 resolves
// day-first deterministically.
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
}

// ParseDate resolves a cell value to a calendar date. Values that are
// already time.Time pass through; strings are matched against the known
// layouts, tolerating a trailing time component. The bool reports success.
func ParseDate(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, !val.IsZero()
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return *val, !val.IsZero()
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		// Drop a time-of-day suffix such as "2025-03-04 07:30" or an ISO "T".
		if idx := strings.IndexAny(s, " T"); idx > 0 {
			s = s[:idx]
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
