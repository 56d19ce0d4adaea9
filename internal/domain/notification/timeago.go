package notification

import (
	"fmt"
	"time"
)

// TimeAgo renders the age of createdAt relative to now as a coarse label.
// Months are 30 days and years 365; weeks cap at 5 before rolling over to
// months. These approximations are part of the product's display contract,
// so keep the thresholds as they are.
func TimeAgo(createdAt, now time.Time) string {
	diff := now.Sub(createdAt)

	secs := int(diff.Seconds())
	mins := secs / 60
	hours := mins / 60
	days := hours / 24
	weeks := days / 7
	months := days / 30
	years := days / 365

	switch {
	case secs < 60:
		return "just now"
	case mins < 60:
		if mins == 1 {
			return "1 min ago"
		}
		return fmt.Sprintf("%d mins ago", mins)
	case hours < 24:
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case days < 7:
		if days == 1 {
			return "yesterday"
		}
		return fmt.Sprintf("%d days ago", days)
	case weeks < 5:
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	case months < 12:
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	default:
		if years == 1 {
			return "1 year ago"
		}
		return fmt.Sprintf("%d years ago", years)
	}
}
