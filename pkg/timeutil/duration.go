// Package timeutil parses the activity windows used by reports and the
// dashboard. Windows are counted in whole hours, days and weeks.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	// DefaultWindow is the activity window used when none is provided.
	DefaultWindow = "2w"

	// MaxWindow bounds how far back activity is charted.
	MaxWindow = 52 * week

	day  = 24 * time.Hour
	week = 7 * day
)

type unit struct {
	label string
	size  time.Duration
}

// units are ordered largest first for FormatWindow.
var units = []unit{
	{"w", week},
	{"d", day},
	{"h", time.Hour},
}

var aliases = map[string]string{
	"w": "w", "wk": "w", "wks": "w", "week": "w", "weeks": "w",
	"d": "d", "day": "d", "days": "d",
	"h": "h", "hr": "h", "hrs": "h", "hour": "h", "hours": "h",
}

// ParseWindow parses windows such as "2w", "3d" or "1w2d12h" and returns the
// duration with its compact form. An empty input means DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		s = DefaultWindow
	}

	var total time.Duration
	for s != "" {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		n := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
		if n <= 0 {
			return 0, "", fmt.Errorf("window %q: expected a number at %q", input, s)
		}
		value, err := strconv.Atoi(s[:n])
		if err != nil {
			return 0, "", fmt.Errorf("window %q: %w", input, err)
		}
		s = strings.TrimLeftFunc(s[n:], unicode.IsSpace)

		m := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
		if m < 0 {
			m = len(s)
		}
		label, ok := aliases[s[:m]]
		if !ok {
			return 0, "", fmt.Errorf("window %q: unsupported unit %q", input, s[:m])
		}
		s = s[m:]

		for _, u := range units {
			if u.label == label {
				total += time.Duration(value) * u.size
			}
		}
		if total > MaxWindow {
			return 0, "", fmt.Errorf("window %q: longer than %s", input, FormatWindow(MaxWindow))
		}
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window %q: must be greater than zero", input)
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d as week, day and hour tokens, for example "1w2d".
// Anything below an hour is dropped.
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range units {
		if d < u.size {
			continue
		}
		fmt.Fprintf(&b, "%d%s", d/u.size, u.label)
		d %= u.size
	}
	if b.Len() == 0 {
		return "0h"
	}
	return b.String()
}

// DayStarts returns one instant per day from now-window to now, stepping a
// day at a time and including both ends when they fall on a whole day. A
// window shorter than a day yields just the start.
func DayStarts(now time.Time, window time.Duration) []time.Time {
	if window < 0 {
		window = 0
	}
	start := now.Add(-window)
	n := int(window / day)
	out := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, start.Add(time.Duration(i)*day))
	}
	return out
}
