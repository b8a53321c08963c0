package logger

import (
	"strings"
	"time"
)

// Status renders an error as a compact "ok"/"fail" log value.
func Status(err error) string {
	if err == nil {
		return "ok"
	}
	return "fail"
}

// Took is shorthand for the rounded elapsed time since start.
func Took(start time.Time) time.Duration {
	return RoundMS(time.Since(start))
}

// RoundMS clamps a duration to whole milliseconds so log fields stay short.
func RoundMS(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return d.Round(time.Millisecond)
}

// SummarizeStrings joins at most limit values for a log field and reports
// whether anything was cut off.
func SummarizeStrings(values []string, limit int) (string, bool) {
	switch {
	case limit <= 0:
		return "", len(values) > 0
	case len(values) <= limit:
		return strings.Join(values, ", "), false
	default:
		return strings.Join(values[:limit], ", "), true
	}
}
