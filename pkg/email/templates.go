package email

import (
	"fmt"
	"strings"
)

// BookingEmailData contains the data needed for appointment email templates.
type BookingEmailData struct {
	RecipientName string
	Email         string
	UserName      string
	ProviderName  string
	ServiceName   string
	Date          string
	StartTime     string
	EndTime       string
	AppName       string
}

// SummaryItem is a single appointment line in a weekly summary email.
type SummaryItem struct {
	UserName    string
	ServiceName string
	Date        string
	StartTime   string
}

// SummaryEmailData contains the data for a provider's weekly summary email.
type SummaryEmailData struct {
	ProviderName string
	Email        string
	Items        []SummaryItem
	AppName      string
}

func appNameOrDefault(name string) string {
	if name == "" {
		return "Bookwise"
	}
	return name
}

func nameOrDefault(name string) string {
	if name == "" {
		return "there"
	}
	return name
}

// BuildBookingConfirmationEmail creates the confirmation email sent to the
// user after a successful booking.
func BuildBookingConfirmationEmail(data BookingEmailData) Message {
	appName := appNameOrDefault(data.AppName)
	name := nameOrDefault(data.RecipientName)

	subject := fmt.Sprintf("Your %s appointment is confirmed", data.ServiceName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment has been booked.

Service:  %s
Provider: %s
Date:     %s
Time:     %s - %s

If you need to make changes, you can cancel or reschedule from your account.

Thanks,
The %s Team`,
		name, data.ServiceName, data.ProviderName, data.Date, data.StartTime, data.EndTime, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment has been booked.</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Service</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Provider</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Date</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Time</td><td style="padding: 6px 0;"><strong>%s - %s</strong></td></tr>
    </table>
    <p>If you need to make changes, you can cancel or reschedule from your account.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.ServiceName, data.ProviderName, data.Date, data.StartTime, data.EndTime, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildProviderBookingAlertEmail creates the notification sent to the
// provider when one of their slots is booked.
func BuildProviderBookingAlertEmail(data BookingEmailData) Message {
	appName := appNameOrDefault(data.AppName)
	name := nameOrDefault(data.RecipientName)

	subject := fmt.Sprintf("New booking: %s on %s", data.ServiceName, data.Date)

	textBody := fmt.Sprintf(`Hi %s,

You have a new booking.

Client:  %s
Service: %s
Date:    %s
Time:    %s - %s

Thanks,
The %s Team`,
		name, data.UserName, data.ServiceName, data.Date, data.StartTime, data.EndTime, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>You have a new booking.</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Client</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Service</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Date</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Time</td><td style="padding: 6px 0;"><strong>%s - %s</strong></td></tr>
    </table>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.UserName, data.ServiceName, data.Date, data.StartTime, data.EndTime, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildCancellationEmail creates the cancellation notice sent to the user.
func BuildCancellationEmail(data BookingEmailData) Message {
	appName := appNameOrDefault(data.AppName)
	name := nameOrDefault(data.RecipientName)

	subject := fmt.Sprintf("Your %s appointment was canceled", data.ServiceName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment has been canceled.

Service:  %s
Provider: %s
Date:     %s
Time:     %s - %s

You can book a new appointment at any time.

Thanks,
The %s Team`,
		name, data.ServiceName, data.ProviderName, data.Date, data.StartTime, data.EndTime, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Hi %s,</h2>
    <p>Your appointment has been canceled.</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Service</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Provider</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Date</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Time</td><td style="padding: 6px 0;"><strong>%s - %s</strong></td></tr>
    </table>
    <p>You can book a new appointment at any time.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.ServiceName, data.ProviderName, data.Date, data.StartTime, data.EndTime, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildProviderCancellationEmail creates the cancellation notice sent to
// the provider.
func BuildProviderCancellationEmail(data BookingEmailData) Message {
	appName := appNameOrDefault(data.AppName)
	name := nameOrDefault(data.RecipientName)

	subject := fmt.Sprintf("Booking canceled: %s on %s", data.ServiceName, data.Date)

	textBody := fmt.Sprintf(`Hi %s,

A booking has been canceled.

Client:  %s
Service: %s
Date:    %s
Time:    %s - %s

The slot is now available again.

Thanks,
The %s Team`,
		name, data.UserName, data.ServiceName, data.Date, data.StartTime, data.EndTime, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Hi %s,</h2>
    <p>A booking has been canceled.</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Client</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Service</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Date</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Time</td><td style="padding: 6px 0;"><strong>%s - %s</strong></td></tr>
    </table>
    <p>The slot is now available again.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.UserName, data.ServiceName, data.Date, data.StartTime, data.EndTime, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildReminderEmail creates the reminder sent the day before an appointment.
func BuildReminderEmail(data BookingEmailData) Message {
	appName := appNameOrDefault(data.AppName)
	name := nameOrDefault(data.RecipientName)

	subject := fmt.Sprintf("Reminder: %s tomorrow at %s", data.ServiceName, data.StartTime)

	textBody := fmt.Sprintf(`Hi %s,

This is a reminder for your upcoming appointment tomorrow.

Service:  %s
Provider: %s
Date:     %s
Time:     %s - %s

See you then,
The %s Team`,
		name, data.ServiceName, data.ProviderName, data.Date, data.StartTime, data.EndTime, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>This is a reminder for your upcoming appointment tomorrow.</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Service</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Provider</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Date</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 16px 6px 0; color: #6b7280;">Time</td><td style="padding: 6px 0;"><strong>%s - %s</strong></td></tr>
    </table>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">See you then,<br>The %s Team</p>
</body>
</html>`,
		name, data.ServiceName, data.ProviderName, data.Date, data.StartTime, data.EndTime, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildFollowUpEmail creates the follow-up sent the day after a completed
// appointment.
func BuildFollowUpEmail(data BookingEmailData) Message {
	appName := appNameOrDefault(data.AppName)
	name := nameOrDefault(data.RecipientName)

	subject := fmt.Sprintf("How was your %s appointment?", data.ServiceName)

	textBody := fmt.Sprintf(`Hi %s,

Thanks for visiting %s yesterday for %s.

We'd love to hear how it went. If you'd like to book a follow-up,
you can do so from your account at any time.

Thanks,
The %s Team`,
		name, data.ProviderName, data.ServiceName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Thanks for visiting %s yesterday for <strong>%s</strong>.</p>
    <p>We'd love to hear how it went. If you'd like to book a follow-up, you can do so from your account at any time.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.ProviderName, data.ServiceName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildWeeklySummaryEmail creates the weekly digest sent to a provider,
// listing their completed appointments from the past seven days.
func BuildWeeklySummaryEmail(data SummaryEmailData) Message {
	appName := appNameOrDefault(data.AppName)
	name := nameOrDefault(data.ProviderName)

	subject := fmt.Sprintf("Your weekly summary: %d appointment(s)", len(data.Items))

	var textList strings.Builder
	var htmlList strings.Builder
	for _, item := range data.Items {
		fmt.Fprintf(&textList, "- %s / %s / %s at %s\n",
			item.UserName, item.ServiceName, item.Date, item.StartTime)
		fmt.Fprintf(&htmlList,
			`<li style="padding: 4px 0;"><strong>%s</strong> &middot; %s &middot; %s at %s</li>`,
			item.UserName, item.ServiceName, item.Date, item.StartTime)
	}

	textBody := fmt.Sprintf(`Hi %s,

Here is the summary of your appointments this week:

%s
Thanks,
The %s Team`,
		name, textList.String(), appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Here is the summary of your appointments this week:</p>
    <ul style="padding-left: 20px;">%s</ul>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, htmlList.String(), appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
