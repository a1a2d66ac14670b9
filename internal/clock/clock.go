// Package clock abstracts the current time so flashes and relative
// timestamps can be tested.
package clock

import (
	"fmt"
	"time"
)

// Clock provides the current time. Use Real in production and
// mocks.MockClock in tests.
type Clock interface {
	Now() time.Time
}

// Real returns the wall clock time.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Since formats how long ago t was, relative to c: "just now", "12s ago",
// "5m ago", "3h ago", "2d ago".
func Since(t time.Time, c Clock) string {
	return SinceFrom(t, c.Now())
}

// SinceFrom is Since with an explicit reference time.
func SinceFrom(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
