package timebase

import (
	"path/filepath"
	"strconv"
	"time"
)

const (
	// Layout is the date-time format accepted on the command line.
	Layout = "2006-01-02T15:04:05"
	// LayoutMillis renders timestamps with millisecond precision.
	LayoutMillis = "2006-01-02T15:04:05.000"
)

// Parse parses a "YYYY-MM-DDTHH:MM:SS" string as a UTC base.
func Parse(s string) (Base, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return None(), err
	}

	return At(t), nil
}

// FromPath derives a file's base hour from the provider's archive layout:
//
//	.../<YYYY>/<MM>/<DD>/<HH>h_ticks.bi5
//
// MM is zero-based (00 = January) as published by the provider, DD is
// one-based and the hour is the first two characters of the file name.
// It returns false when the path does not follow the layout or names an
// impossible date.
func FromPath(path string) (time.Time, bool) {
	path = filepath.Clean(path)

	name := filepath.Base(path)
	dayDir := filepath.Dir(path)
	monthDir := filepath.Dir(dayDir)
	yearDir := filepath.Dir(monthDir)

	if len(name) < 2 {
		return time.Time{}, false
	}

	hour, ok := atoi(name[:2])
	if !ok {
		return time.Time{}, false
	}
	day, ok := atoi(filepath.Base(dayDir))
	if !ok {
		return time.Time{}, false
	}
	month, ok := atoi(filepath.Base(monthDir))
	if !ok {
		return time.Time{}, false
	}
	year, ok := atoi(filepath.Base(yearDir))
	if !ok {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month+1), day, hour, 0, 0, 0, time.UTC)
	// time.Date normalises out-of-range fields; reject instead of rolling over
	if t.Year() != year || int(t.Month()) != month+1 || t.Day() != day || t.Hour() != hour {
		return time.Time{}, false
	}

	return t, true
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}
