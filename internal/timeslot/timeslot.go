// Package timeslot derives bookable time slots from a working window.
//
// Times are wall-clock strings in 24-hour "HH:mm" format; the package
// does no timezone math. Slot derivation walks the window in
// duration-sized steps and keeps only slots that fit entirely inside it.
package timeslot

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidClock    = errors.New("invalid clock value, expected HH:mm")
	ErrInvalidDuration = errors.New("duration must be positive")
)

// Slot is a single bookable interval inside a working window.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseClock parses a 24-hour "HH:mm" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:mm".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WindowMinutes returns the length of the window in minutes. The result
// is negative when start is after end; callers decide how to treat that.
func WindowMinutes(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// Generate derives consecutive slots of durationMinutes from the window
// [start, end). A partial trailing slot that would overrun the window is
// dropped. An inverted or zero-length window yields no slots.
func Generate(start, end string, durationMinutes int) ([]Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	s, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return nil, err
	}

	slots := []Slot{}
	for cur := s; cur+durationMinutes <= e; cur += durationMinutes {
		slots = append(slots, Slot{
			Start: FormatClock(cur),
			End:   FormatClock(cur + durationMinutes),
		})
	}
	return slots, nil
}

// WeekdayName returns the capitalized full English weekday name for t,
// matching the day_of_week values stored on availability records.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}
