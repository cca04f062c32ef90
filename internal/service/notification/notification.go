package notification

import (
	"context"
	"log/slog"

	"github.com/bookwise/bookwise_backend/pkg/constants"
	"github.com/bookwise/bookwise_backend/pkg/email"
)

// BookingEvent carries everything needed to notify both parties about
// an appointment.
type BookingEvent struct {
	UserName      string
	UserEmail     string
	ProviderName  string
	ProviderEmail string
	ServiceName   string
	Date          string
	StartTime     string
	EndTime       string
}

// WeeklySummary is a provider's completed week.
type WeeklySummary struct {
	ProviderName  string
	ProviderEmail string
	Items         []email.SummaryItem
}

// Dispatcher sends appointment lifecycle emails. Sends are best-effort:
// failures are logged, never propagated, so a dead SMTP server cannot
// block a booking.
type Dispatcher interface {
	BookingConfirmed(ctx context.Context, ev BookingEvent)
	BookingCanceled(ctx context.Context, ev BookingEvent)
	Reminder(ctx context.Context, ev BookingEvent)
	FollowUp(ctx context.Context, ev BookingEvent)
	SummaryForProvider(ctx context.Context, sum WeeklySummary)
}

type dispatcher struct {
	client *email.Client
	logger *slog.Logger
}

func New(client *email.Client, logger *slog.Logger) Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &dispatcher{client: client, logger: logger}
}

func (d *dispatcher) send(ctx context.Context, kind string, msg email.Message) {
	if err := d.client.Send(ctx, msg); err != nil {
		if _, disabled := err.(email.ErrDisabled); disabled {
			return
		}
		d.logger.Error("email send failed",
			"kind", kind,
			"to", msg.To,
			"error", err,
		)
		return
	}
	d.logger.Debug("email sent", "kind", kind, "to", msg.To)
}

func (d *dispatcher) userData(ev BookingEvent) email.BookingEmailData {
	return email.BookingEmailData{
		RecipientName: ev.UserName,
		Email:         ev.UserEmail,
		UserName:      ev.UserName,
		ProviderName:  ev.ProviderName,
		ServiceName:   ev.ServiceName,
		Date:          ev.Date,
		StartTime:     ev.StartTime,
		EndTime:       ev.EndTime,
		AppName:       constants.AppName,
	}
}

func (d *dispatcher) providerData(ev BookingEvent) email.BookingEmailData {
	data := d.userData(ev)
	data.RecipientName = ev.ProviderName
	data.Email = ev.ProviderEmail
	return data
}

func (d *dispatcher) BookingConfirmed(ctx context.Context, ev BookingEvent) {
	d.send(ctx, "booking_confirmation", email.BuildBookingConfirmationEmail(d.userData(ev)))
	d.send(ctx, "booking_alert", email.BuildProviderBookingAlertEmail(d.providerData(ev)))
}

func (d *dispatcher) BookingCanceled(ctx context.Context, ev BookingEvent) {
	d.send(ctx, "cancellation", email.BuildCancellationEmail(d.userData(ev)))
	d.send(ctx, "provider_cancellation", email.BuildProviderCancellationEmail(d.providerData(ev)))
}

func (d *dispatcher) Reminder(ctx context.Context, ev BookingEvent) {
	d.send(ctx, "reminder", email.BuildReminderEmail(d.userData(ev)))
}

func (d *dispatcher) FollowUp(ctx context.Context, ev BookingEvent) {
	d.send(ctx, "follow_up", email.BuildFollowUpEmail(d.userData(ev)))
}

func (d *dispatcher) SummaryForProvider(ctx context.Context, sum WeeklySummary) {
	d.send(ctx, "weekly_summary", email.BuildWeeklySummaryEmail(email.SummaryEmailData{
		ProviderName: sum.ProviderName,
		Email:        sum.ProviderEmail,
		Items:        sum.Items,
		AppName:      constants.AppName,
	}))
}
