package task

import (
	"strings"
	"time"
)

// Sort ranks for due strings that cannot be placed on the clock.
// Unparseable strings rank just before tasks with no due time at all,
// and both rank after every real time of day (0..1439).
const (
	rankUnparseable = 999998
	rankNone        = 999999
)

// dueLayouts are tried in order against the upper-cased due string.
var dueLayouts = []string{"15:04", "3:04PM", "3PM"}

// dueKey maps a due string to its sort key: the minute of the day when
// one of the layouts matches, a sentinel rank otherwise. The second
// value breaks ties between equal ranks.
func dueKey(due *string) (int, string) {
	if due == nil || *due == "" {
		return rankNone, ""
	}
	trimmed := strings.TrimSpace(*due)
	upper := strings.ToUpper(trimmed)
	for _, layout := range dueLayouts {
		dt, err := time.Parse(layout, upper)
		if err != nil {
			continue
		}
		return dt.Hour()*60 + dt.Minute(), trimmed
	}
	return rankUnparseable, trimmed
}
