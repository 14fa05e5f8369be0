package journal

import (
	"math"
	"time"
)

// DDay returns the signed day count from now to the target date, rounded
// up. Negative means the target has passed; zero means due today. ok is
// false when the target is empty or not a calendar date.
func DDay(target string, now time.Time) (int, bool) {
	if target == "" {
		return 0, false
	}
	t, err := time.Parse("2006-01-02", target)
	if err != nil {
		return 0, false
	}
	return int(math.Ceil(t.Sub(now).Hours() / 24)), true
}
