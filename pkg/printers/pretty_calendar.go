package printers

import (
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/xptrack/pkg/history"
)

// Tracking prints the month containing on, with days that have update events
// in bold.
func (pp *PrettyPrint) Tracking(on time.Time, records ...history.Record) {
	pp.PrintMonthCount(on, UpdateCounts(on, records))
}

// UpdateCounts counts update events per day of the month containing then.
func UpdateCounts(then time.Time, records []history.Record) []int {
	count := make([]int, DaysIn(then))
	for _, r := range records {
		if r.Action != history.ActionUpdate {
			continue
		}
		ts := r.Timestamp.Local()
		if ts.Year() == then.Local().Year() && ts.Month() == then.Local().Month() {
			count[ts.Day()-1]++
		}
	}
	return count
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)
	out := pp.out()

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	_, _ = out.Write([]byte(strings.Repeat("   ", int(d-time.Sunday))))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(out, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = out.Write([]byte("\n"))
		}
	}
	_, _ = out.Write([]byte("\n\n"))
}

func DaysIn(then time.Time) int {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Local().Year(), then.Local().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
