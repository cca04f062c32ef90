package appointment

import (
	"time"

	"github.com/bookwise/bookwise_backend/internal/timeslot"
)

const modifyCutoff = 24 * time.Hour

// combine anchors a wall-clock "HH:mm" string onto the calendar day of
// date, in date's location. A malformed clock falls back to midnight.
func combine(date time.Time, clock string) time.Time {
	minutes, err := timeslot.ParseClock(clock)
	if err != nil {
		minutes = 0
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, date.Location())
}

// pastCutoff reports whether the appointment is too old to modify: its
// start or end lies more than the cutoff behind now. Future and recent
// appointments are always modifiable, regardless of how soon they start.
func pastCutoff(now, start, end time.Time) bool {
	return now.Sub(start) > modifyCutoff || now.Sub(end) > modifyCutoff
}
