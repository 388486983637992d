package printer

import (
	"fmt"
	"time"
)

// FormatBytes returns a short human size, backups are small so it stops at MB.
func FormatBytes(n int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)

	switch {
	case n <= 0:
		return "0 B"
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	}
	return fmt.Sprintf("%d B", n)
}

// FormatTimestamp formats t in UTC, empty for the zero time.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

// FormatDuration returns the time between two instants rounded to
// milliseconds, "-" when any of them is unknown.
func FormatDuration(from, to time.Time) string {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return "-"
	}
	return to.Sub(from).Round(time.Millisecond).String()
}

// TimeAgo returns how long ago t was in the largest whole unit.
func TimeAgo(t time.Time) string {
	d := time.Since(t)
	if d < 0 {
		return "in the future"
	}

	units := []struct {
		size time.Duration
		name string
	}{
		{24 * time.Hour, "day"},
		{time.Hour, "hour"},
		{time.Minute, "minute"},
	}
	for _, u := range units {
		if d >= u.size {
			return plural(int(d/u.size), u.name) + " ago"
		}
	}

	return plural(int(d/time.Second), "second") + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
