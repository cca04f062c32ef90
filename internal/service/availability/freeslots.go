package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookwise/bookwise_backend/internal/repo"
	entappt "github.com/bookwise/bookwise_backend/internal/repo/appointment"
	entavail "github.com/bookwise/bookwise_backend/internal/repo/availability"
	"github.com/bookwise/bookwise_backend/internal/timeslot"
)

type FreeSlotsRequest struct {
	ProviderID *uuid.UUID
	ServiceID  *uuid.UUID
	Date       *time.Time
}

// FreeSlots returns the open slots across every availability window
// matching the filters, flattened into one sequence. A date narrows the
// candidates to that date's weekday.
//
// Occupancy is checked against a single appointment looked up by service
// alone. That ignores the provider, the date, and any further bookings,
// so at most one slot shape is ever filtered out. Kept for compatibility
// with existing clients until the booking path is reworked.
func (s *availabilityService) FreeSlots(ctx context.Context, req FreeSlotsRequest) ([]timeslot.Slot, error) {
	if cached, ok := s.cache.get(ctx, req); ok {
		return cached, nil
	}

	q := s.db.Availability.Query()
	if req.ProviderID != nil {
		q = q.Where(entavail.ProviderID(*req.ProviderID))
	}
	if req.ServiceID != nil {
		q = q.Where(entavail.ServiceID(*req.ServiceID))
	}
	if req.Date != nil {
		weekday := timeslot.WeekdayName(*req.Date)
		q = q.Where(entavail.DayOfWeekEQ(entavail.DayOfWeek(weekday)))
	}

	avails, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query availabilities: %w", err)
	}

	var booked *repo.Appointment
	if req.ServiceID != nil {
		booked, err = s.db.Appointment.Query().
			Where(entappt.ServiceID(*req.ServiceID)).
			First(ctx)
		if err != nil && !repo.IsNotFound(err) {
			return nil, fmt.Errorf("query appointment: %w", err)
		}
	}

	free := []timeslot.Slot{}
	for _, avail := range avails {
		slots := avail.Slots
		if booked != nil {
			slots = filterAgainst(slots, booked.StartTime, booked.EndTime)
		}
		free = append(free, slots...)
	}

	s.cache.set(ctx, req, free)
	return free, nil
}

// filterAgainst drops any slot whose start or end matches the booked
// interval. Slots that merely overlap the booking pass through.
func filterAgainst(slots []timeslot.Slot, bookedStart, bookedEnd string) []timeslot.Slot {
	free := make([]timeslot.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.Start != bookedStart && slot.End != bookedEnd {
			free = append(free, slot)
		}
	}
	return free
}
