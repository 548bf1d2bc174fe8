package history

import (
	"fmt"
	"time"
)

// FormatTime renders t relative to now: "Just now", "5m ago", "3h ago",
// "2d ago", or a short date such as "Jan 15" for anything a week or older.
func FormatTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
	return t.Format("Jan 2")
}
