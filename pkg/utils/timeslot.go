package utils

import (
	"fmt"
	"math/rand"
)

// RandomTimeSlot picks a placeholder slot between 9:00 AM and 5:45 PM on a
// quarter-hour boundary. It carries no scheduling meaning; users edit it.
func RandomTimeSlot() string {
	hour := 9 + rand.Intn(9)
	minute := 15 * rand.Intn(4)
	return FormatClock(hour, minute)
}

// FormatClock renders a 24-hour hour/minute pair as a 12-hour clock label,
// e.g. (17, 45) -> "5:45 PM".
func FormatClock(hour, minute int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, suffix)
}
