// Package date provides calendar-day values for due-date bucketing.
//
// A Day is a day-ordinal: the number of civil days since 1970-01-01. Storing
// days as plain integers makes bucket comparisons and sorting cheap and keeps
// the board engines free of time-zone concerns; the zone is resolved once,
// when a time.Time is converted with FromTime.
package date

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Layout is the canonical textual form of a Day.
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Day counts civil days since 1970-01-01. Days before the epoch are negative.
type Day int

// New returns the Day for the given calendar date.
func New(year int, month time.Month, day int) Day {
	u := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
	return Day(floorDiv(u, secondsPerDay))
}

// FromTime returns the Day containing t, in t's location.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Parse reads a Day in 2006-01-02 form.
func Parse(s string) (Day, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return 0, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// FromPath derives a Day from a file path whose base name (without
// extension) is a 2006-01-02 date, the daily-note naming convention.
func FromPath(path string) (Day, bool) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	d, err := Parse(name)
	if err != nil {
		return 0, false
	}
	return d, true
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// Add returns the day n days later (earlier for negative n).
func (d Day) Add(n int) Day {
	return d + Day(n)
}

// String renders the day in 2006-01-02 form.
func (d Day) String() string {
	return d.Time().Format(Layout)
}

// MarshalJSON renders the day as a "2006-01-02" string.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON reads a "2006-01-02" string.
func (d *Day) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// floorDiv divides rounding toward negative infinity, so pre-epoch days
// land on the correct ordinal.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
