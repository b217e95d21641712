// Package duration renders focused-time values as human-readable strings.
package duration

import (
	"fmt"

	"github.com/haruapp/haru/internal/apperr"
	"github.com/haruapp/haru/internal/timeutil"
)

const (
	unitHour   = "시간"
	unitMinute = "분"
)

// ErrNegativeDuration is reported when a negative value is passed to the
// formatter.
var ErrNegativeDuration = &apperr.Error{
	Message: "duration must not be negative",
}

// FormatMinutes renders a minute count using hour and minute units.
// 0 yields "0분", whole hours omit the minute component, and values under an
// hour omit the hour component.
func FormatMinutes(mins int) (string, error) {
	if mins < 0 {
		return "", ErrNegativeDuration
	}

	if mins == 0 {
		return "0" + unitMinute, nil
	}

	hrs, rem := timeutil.MinsToHoursAndMins(mins)

	switch {
	case hrs == 0:
		return fmt.Sprintf("%d%s", rem, unitMinute), nil
	case rem == 0:
		return fmt.Sprintf("%d%s", hrs, unitHour), nil
	default:
		return fmt.Sprintf("%d%s %d%s", hrs, unitHour, rem, unitMinute), nil
	}
}

// FormatSeconds floors a second count to whole minutes and delegates to
// FormatMinutes.
func FormatSeconds(secs int) (string, error) {
	if secs < 0 {
		return "", ErrNegativeDuration
	}

	return FormatMinutes(secs / 60)
}
