package booking

import (
	"fmt"
	"time"
)

// FormatBookingMoment renders a stored date and time as the display pair
// used in both the notification message and the confirmation email:
// "4 November 2025" (no day padding) and "2:30 PM" (12-hour clock,
// zero-padded minutes). The time accepts "15:04:05" or "15:04".
func FormatBookingMoment(date, clock string) (string, string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", "", fmt.Errorf("parse booking date %q: %w", date, err)
	}

	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		t, err = time.Parse("15:04", clock)
		if err != nil {
			return "", "", fmt.Errorf("parse booking time %q: %w", clock, err)
		}
	}

	displayDate := fmt.Sprintf("%d %s %d", d.Day(), d.Month().String(), d.Year())

	hour := t.Hour()
	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	displayTime := fmt.Sprintf("%d:%02d %s", hour, t.Minute(), meridiem)

	return displayDate, displayTime, nil
}
