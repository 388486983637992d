package printer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := map[string]struct {
		n   int64
		exp string
	}{
		"Zero should be zero bytes.":           {n: 0, exp: "0 B"},
		"Negative sizes should be zero bytes.": {n: -1, exp: "0 B"},
		"Small sizes should be in bytes.":      {n: 900, exp: "900 B"},
		"Kilobytes should have one decimal.":   {n: 1536, exp: "1.5 KB"},
		"Megabytes should have one decimal.":   {n: 3 * 1024 * 1024, exp: "3.0 MB"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, FormatBytes(test.n))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	start := time.Date(2019, 10, 16, 10, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		from time.Time
		to   time.Time
		exp  string
	}{
		"A finished run should be rounded to milliseconds.": {
			from: start,
			to:   start.Add(3*time.Second + 1500*time.Microsecond),
			exp:  "3.002s",
		},
		"A run without end should be unknown.": {
			from: start,
			exp:  "-",
		},
		"An end before the start should be unknown.": {
			from: start,
			to:   start.Add(-time.Second),
			exp:  "-",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, FormatDuration(test.from, test.to))
		})
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Now()

	tests := map[string]struct {
		t   time.Time
		exp string
	}{
		"Seconds should be plural.":     {t: now.Add(-30 * time.Second), exp: "30 seconds ago"},
		"A single minute is singular.":  {t: now.Add(-61 * time.Second), exp: "1 minute ago"},
		"Hours should use whole units.": {t: now.Add(-5*time.Hour - 59*time.Minute), exp: "5 hours ago"},
		"Days should be the top unit.":  {t: now.Add(-72 * time.Hour), exp: "3 days ago"},
		"Future times should be marked.": {
			t:   now.Add(time.Hour),
			exp: "in the future",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, TimeAgo(test.t))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	paris := time.FixedZone("CEST", 2*3600)

	assert.Equal(t, "2019-10-16 08:00:00 UTC", FormatTimestamp(time.Date(2019, 10, 16, 10, 0, 0, 0, paris)))
	assert.Equal(t, "", FormatTimestamp(time.Time{}))
}
