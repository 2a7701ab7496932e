package sqlite

import (
	"time"
)

// BoundLayout is the naive ISO-8601 layout the collector stores timestamps in.
// No zone suffix is written; bounds are local wall-clock text.
const BoundLayout = "2006-01-02T15:04:05"

// FormatBoundForDB formats a range bound for comparison against stored timestamps
func FormatBoundForDB(t time.Time) string {
	return t.Format(BoundLayout)
}
