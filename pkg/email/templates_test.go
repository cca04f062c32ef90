package email

import (
	"strings"
	"testing"
)

func TestBuildBookingConfirmationEmail(t *testing.T) {
	msg := BuildBookingConfirmationEmail(BookingEmailData{
		RecipientName: "Sara",
		Email:         "sara@example.com",
		ProviderName:  "Dr. Lee",
		ServiceName:   "Dental Checkup",
		Date:          "2026-09-14",
		StartTime:     "09:00",
		EndTime:       "09:30",
	})

	if len(msg.To) != 1 || msg.To[0] != "sara@example.com" {
		t.Errorf("To = %v, want [sara@example.com]", msg.To)
	}
	if !strings.Contains(msg.Subject, "Dental Checkup") {
		t.Errorf("Subject = %q, want service name included", msg.Subject)
	}
	for _, want := range []string{"Sara", "Dr. Lee", "2026-09-14", "09:00", "09:30"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("TextBody missing %q", want)
		}
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("HTMLBody missing %q", want)
		}
	}
}

func TestBuildReminderEmailDefaults(t *testing.T) {
	msg := BuildReminderEmail(BookingEmailData{
		Email:       "user@example.com",
		ServiceName: "Haircut",
		StartTime:   "14:00",
	})

	if !strings.Contains(msg.TextBody, "Hi there") {
		t.Errorf("TextBody should greet with default name, got %q", msg.TextBody[:40])
	}
	if !strings.Contains(msg.TextBody, "Bookwise") {
		t.Errorf("TextBody should use default app name")
	}
	if !strings.Contains(msg.Subject, "14:00") {
		t.Errorf("Subject = %q, want start time included", msg.Subject)
	}
}

func TestBuildWeeklySummaryEmail(t *testing.T) {
	tests := []struct {
		name      string
		items     []SummaryItem
		wantCount string
	}{
		{
			name:      "no appointments",
			items:     nil,
			wantCount: "0 appointment(s)",
		},
		{
			name: "two appointments",
			items: []SummaryItem{
				{UserName: "Ali", ServiceName: "Massage", Date: "2026-09-15", StartTime: "10:00"},
				{UserName: "Nina", ServiceName: "Consult", Date: "2026-09-16", StartTime: "11:30"},
			},
			wantCount: "2 appointment(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := BuildWeeklySummaryEmail(SummaryEmailData{
				ProviderName: "Dr. Lee",
				Email:        "lee@example.com",
				Items:        tt.items,
			})

			if !strings.Contains(msg.Subject, tt.wantCount) {
				t.Errorf("Subject = %q, want %q included", msg.Subject, tt.wantCount)
			}
			for _, item := range tt.items {
				if !strings.Contains(msg.HTMLBody, item.UserName) {
					t.Errorf("HTMLBody missing client %q", item.UserName)
				}
				if !strings.Contains(msg.TextBody, item.StartTime) {
					t.Errorf("TextBody missing start time %q", item.StartTime)
				}
			}
		})
	}
}
