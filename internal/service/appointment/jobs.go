package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	entappt "github.com/bookwise/bookwise_backend/internal/repo/appointment"
	entuser "github.com/bookwise/bookwise_backend/internal/repo/user"
	"github.com/bookwise/bookwise_backend/internal/service/notification"
	"github.com/bookwise/bookwise_backend/pkg/email"
)

// SendReminders emails every client with a booked appointment in the
// next 24 hours that has not been reminded yet. Returns the number of
// reminders sent.
func (s *appointmentService) SendReminders(ctx context.Context) (int, error) {
	now := time.Now()

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.StatusEQ(entappt.StatusBooked),
			entappt.DateGTE(now),
			entappt.DateLTE(now.Add(24*time.Hour)),
			entappt.ReminderSentAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query reminders: %w", err)
	}

	sent := 0
	for _, appt := range appts {
		ev, err := s.loadEvent(ctx, appt)
		if err != nil {
			continue
		}
		s.notifier.Reminder(ctx, ev)

		if err := s.db.Appointment.UpdateOne(appt).
			SetReminderSentAt(time.Now()).
			Exec(ctx); err != nil {
			return sent, fmt.Errorf("mark reminded: %w", err)
		}
		sent++
	}
	return sent, nil
}

// SendFollowUps emails every client whose appointment completed within
// the last 24 hours and has not been followed up yet.
func (s *appointmentService) SendFollowUps(ctx context.Context) (int, error) {
	now := time.Now()

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.StatusEQ(entappt.StatusCompleted),
			entappt.DateGTE(now.Add(-24*time.Hour)),
			entappt.DateLTE(now),
			entappt.FollowUpSentAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query follow-ups: %w", err)
	}

	sent := 0
	for _, appt := range appts {
		ev, err := s.loadEvent(ctx, appt)
		if err != nil {
			continue
		}
		s.notifier.FollowUp(ctx, ev)

		if err := s.db.Appointment.UpdateOne(appt).
			SetFollowUpSentAt(time.Now()).
			Exec(ctx); err != nil {
			return sent, fmt.Errorf("mark followed up: %w", err)
		}
		sent++
	}
	return sent, nil
}

// SendWeeklySummaries emails each active provider a digest of their
// completed appointments from the past seven days. Providers with an
// empty week are skipped.
func (s *appointmentService) SendWeeklySummaries(ctx context.Context) (int, error) {
	providers, err := s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleProvider),
			entuser.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query providers: %w", err)
	}

	weekAgo := time.Now().AddDate(0, 0, -7)

	sent := 0
	for _, provider := range providers {
		appts, err := s.db.Appointment.Query().
			Where(
				entappt.ProviderID(provider.ID),
				entappt.StatusEQ(entappt.StatusCompleted),
				entappt.DateGT(weekAgo),
			).
			Order(entappt.ByDate(sql.OrderAsc()), entappt.ByStartTime(sql.OrderAsc())).
			All(ctx)
		if err != nil {
			return sent, fmt.Errorf("query provider week: %w", err)
		}
		if len(appts) == 0 {
			continue
		}

		items := make([]email.SummaryItem, 0, len(appts))
		for _, appt := range appts {
			user, err := s.db.User.Get(ctx, appt.UserID)
			if err != nil {
				continue
			}
			svc, err := s.db.Service.Get(ctx, appt.ServiceID)
			if err != nil {
				continue
			}
			items = append(items, email.SummaryItem{
				UserName:    user.FirstName + " " + user.LastName,
				ServiceName: svc.Name,
				Date:        appt.Date.Format("2006-01-02"),
				StartTime:   appt.StartTime,
			})
		}

		s.notifier.SummaryForProvider(ctx, notification.WeeklySummary{
			ProviderName:  provider.FirstName + " " + provider.LastName,
			ProviderEmail: provider.Email,
			Items:         items,
		})
		sent++
	}
	return sent, nil
}
