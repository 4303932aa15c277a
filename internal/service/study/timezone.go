package study

import (
	"strings"
	"time"
)

// DayStart returns midnight of now's calendar day in tz, expressed in UTC.
// "Reviewed today" counts events at or after this instant.
func DayStart(now time.Time, tz *time.Location) time.Time {
	return localDay(now, tz).UTC()
}

// ParseTimezone resolves a client timezone. It accepts IANA names
// ("Europe/Paris") and fixed offsets ("+05:30", "-08:00"). Empty, "Local" and
// unknown values fall back to UTC so the server's own zone never leaks in.
func ParseTimezone(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.UTC
	}

	if tz[0] == '+' || tz[0] == '-' {
		t, err := time.Parse("-07:00", tz)
		if err != nil {
			return time.UTC
		}
		_, offset := t.Zone()
		return time.FixedZone("UTC"+tz, offset)
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// localDay returns midnight of t's calendar day in tz.
func localDay(t time.Time, tz *time.Location) time.Time {
	lt := t.In(tz)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, tz)
}
