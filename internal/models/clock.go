package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// ClockReading is a parsed 12-hour wall-clock time. Upstream stores hour,
// minute and meridiem as three separate string fields, so parsing and the
// 24-hour conversion are kept apart to stay independently testable.
type ClockReading struct {
	Hour     int
	Minute   int
	Meridiem Meridiem
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}) (AM|PM)$`)

// ParseClock joins the three stored fields back into "H:MM AM" form and
// matches them against the fixed pattern. Returns false on any malformed or
// missing field instead of an error.
func ParseClock(hour, minute string, meridiem string) (ClockReading, bool) {
	matches := clockPattern.FindStringSubmatch(
		fmt.Sprintf("%s:%s %s", hour, minute, meridiem),
	)
	if matches == nil {
		return ClockReading{}, false
	}

	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])

	if h < 1 || h > 12 || m > 59 {
		return ClockReading{}, false
	}

	return ClockReading{Hour: h, Minute: m, Meridiem: Meridiem(matches[3])}, true
}

// Hour24 converts the 12-hour reading to a 24-hour clock hour.
// 12:xx AM maps to hour 0, 12:xx PM stays 12.
func (reading ClockReading) Hour24() int {
	switch {
	case reading.Meridiem == PM && reading.Hour < 12:
		return reading.Hour + 12
	case reading.Meridiem == AM && reading.Hour == 12:
		return 0
	default:
		return reading.Hour
	}
}

// clockInstant combines a stored calendar date ("2006-01-02") with a stored
// clock reading into an instant in loc. False whenever either part is
// malformed.
func clockInstant(
	date string,
	hour, minute string,
	meridiem string,
	loc *time.Location,
) (time.Time, bool) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, false
	}

	reading, ok := ParseClock(hour, minute, meridiem)
	if !ok {
		return time.Time{}, false
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		reading.Hour24(), reading.Minute, 0, 0,
		loc,
	), true
}
