package history

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// Layout is the on-disk timestamp format, always local time.
	Layout    = "2006-01-02 15:04:05"
	dayLayout = "2006-01-02"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, v, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

type Timestamp struct {
	time.Time
}

// Stamp truncates t to the precision that survives a save and load.
func Stamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Round(0).Truncate(time.Second).In(time.Local)}
}

// Day returns the calendar day in local time, for example "2024-03-01".
func (t Timestamp) Day() string {
	return t.Local().Format(dayLayout)
}

func (t Timestamp) SameDay(then time.Time) bool {
	return t.Day() == then.Local().Format(dayLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.Local().Format(Layout)
}
