package app

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"github.com/bookwise/bookwise_backend/config"
	"github.com/bookwise/bookwise_backend/internal/service/appointment"
)

// Default schedules, overridable via jobs config.
const (
	defaultReminderSpec      = "0 9 * * *"  // daily 09:00
	defaultFollowUpSpec      = "0 10 * * *" // daily 10:00
	defaultWeeklySummarySpec = "0 8 * * 1"  // Mondays 08:00
)

// JobsModule registers the cron-driven email jobs.
var JobsModule = fx.Module("jobs",
	fx.Invoke(RegisterJobs),
)

type JobParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	ApptSvc appointment.Service
}

func RegisterJobs(p JobParams) error {
	if !p.Cfg.Jobs.Enabled {
		slog.Info("scheduled jobs disabled")
		return nil
	}

	c := cron.New()

	if err := addJob(c, specOr(p.Cfg.Jobs.ReminderSpec, defaultReminderSpec), "reminders", p.ApptSvc.SendReminders); err != nil {
		return err
	}
	if err := addJob(c, specOr(p.Cfg.Jobs.FollowUpSpec, defaultFollowUpSpec), "follow_ups", p.ApptSvc.SendFollowUps); err != nil {
		return err
	}
	if err := addJob(c, specOr(p.Cfg.Jobs.WeeklySummarySpec, defaultWeeklySummarySpec), "weekly_summaries", p.ApptSvc.SendWeeklySummaries); err != nil {
		return err
	}

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			c.Start()
			slog.Info("scheduled jobs started", "entries", len(c.Entries()))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}

func specOr(spec, fallback string) string {
	if spec == "" {
		return fallback
	}
	return spec
}

func addJob(c *cron.Cron, spec, name string, run func(context.Context) (int, error)) error {
	_, err := c.AddFunc(spec, func() {
		ctx := context.Background()
		sent, err := run(ctx)
		if err != nil {
			slog.Error("scheduled job failed", "job", name, "error", err)
			return
		}
		slog.Info("scheduled job finished", "job", name, "sent", sent)
	})
	return err
}
