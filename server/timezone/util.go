// Package timezone resolves client timezones for the assistant
// pipeline. Mobile clients send either a preformatted local time or an
// IANA timezone identifier; in the latter case the server formats the
// clock time itself so the extraction prompt sees the user's wall
// clock, not the server's.
package timezone

import (
	"time"

	"github.com/pkg/errors"
)

// ParseTimezone parses an IANA timezone identifier such as
// "Asia/Shanghai". An empty identifier or "UTC" resolves to UTC.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == "UTC" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC, errors.Wrapf(err, "invalid timezone %q", tz)
	}
	return loc, nil
}

// IsValidTimezone reports whether the identifier names a known zone.
func IsValidTimezone(tz string) bool {
	_, err := ParseTimezone(tz)
	return err == nil
}

// ClockString formats the wall clock time in the given zone the way
// clients send it, e.g. "4:05:07 PM".
func ClockString(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("3:04:05 PM")
}

// DateString formats the date in the given zone as an ISO day.
func DateString(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02")
}
