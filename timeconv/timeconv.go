// Package timeconv converts between the close-approach calendar form, the
// canonical output form, and user-supplied filter dates.
package timeconv

import (
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/relvacode/iso8601"
)

// CDLayout is the Go layout of close-approach times, e.g. "2029-Apr-13 21:46".
const CDLayout = "2006-Jan-02 15:04"

var (
	minuteFormat = mustStrftime("%Y-%m-%d %H:%M")
	secondFormat = mustStrftime("%Y-%m-%d %H:%M:%S")
)

func mustStrftime(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic(fmt.Sprintf("invalid strftime pattern %q: %v", pattern, err))
	}
	return f
}

// CDToTime parses a close-approach calendar time. The result is in UTC.
func CDToTime(cd string) (time.Time, error) {
	t, err := time.ParseInLocation(CDLayout, strings.TrimSpace(cd), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", cd, err)
	}
	return t, nil
}

// DatetimeToStr renders t as "YYYY-MM-DD hh:mm", adding ":ss" only when the
// seconds are non-zero.
func DatetimeToStr(t time.Time) string {
	t = t.UTC()
	if t.Second() != 0 {
		return secondFormat.FormatString(t)
	}
	return minuteFormat.FormatString(t)
}

// ParseDate parses a filter date. It accepts a bare "YYYY-MM-DD" or any
// ISO-8601 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(time.DateOnly, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := iso8601.ParseString(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
