package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date identifies the calendar day a show takes place. It carries structural
// equality so it can key maps directly, instead of the formatted strings the
// rest of the system would otherwise have to agree on.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.valid() {
		return Date{}, fmt.Errorf("invalid date %02d/%02d/%04d", day, month, year)
	}
	return d, nil
}

// ParseDate accepts dd/mm/yyyy, with a two-digit year read as 20yy.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want dd/mm/yyyy", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	if len(parts[2]) == 2 {
		year += 2000
	}

	return NewDate(year, time.Month(month), day)
}

func (d Date) valid() bool {
	if d.Year < 1900 || d.Year > 3000 {
		return false
	}
	t := d.Time()
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// After reports whether the date falls strictly after the day containing ref.
// A show on the current day counts as already occurred.
func (d Date) After(ref time.Time) bool {
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return d.Time().After(today)
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}
