package app

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/bookwise/bookwise_backend/config"
	"github.com/bookwise/bookwise_backend/internal/repo"
	"github.com/bookwise/bookwise_backend/internal/service/appointment"
	"github.com/bookwise/bookwise_backend/internal/service/availability"
	"github.com/bookwise/bookwise_backend/internal/service/catalog"
	"github.com/bookwise/bookwise_backend/internal/service/notification"
	"github.com/bookwise/bookwise_backend/internal/service/reporting"
	"github.com/bookwise/bookwise_backend/internal/service/user"
	"github.com/bookwise/bookwise_backend/pkg/authorize"
	"github.com/bookwise/bookwise_backend/pkg/email"
	"github.com/bookwise/bookwise_backend/pkg/token"
	"github.com/bookwise/bookwise_backend/pkg/util/password"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideTokenManager,
		ProvideNotificationDispatcher,
		ProvideUserService,
		ProvideCatalogService,
		ProvideAvailabilityService,
		ProvideAppointmentService,
		ProvideReportingService,
	),
	fx.Invoke(ConfigurePasswordHashing),
)

// ConfigurePasswordHashing applies configured Argon2id parameters before
// any registration or login runs.
func ConfigurePasswordHashing(cfg *config.Config) {
	if cfg.Password.Algorithm == "" {
		return
	}
	password.SetDefaultParams(password.FromCentralConfig(cfg.Password).ToParams())
}

func ProvideTokenManager(cfg *config.Config) (*token.Manager, error) {
	return token.New(token.Config{
		Secret:    cfg.Auth.TokenSecret,
		Issuer:    cfg.Auth.Issuer,
		AccessTTL: time.Duration(cfg.Auth.AccessTTLMinutes) * time.Minute,
	})
}

func ProvideNotificationDispatcher(emailClient *email.Client) notification.Dispatcher {
	return notification.New(emailClient, slog.Default())
}

func ProvideUserService(db *repo.Client, tokens *token.Manager, authz authorize.IAuthorization) user.Service {
	return user.New(db, tokens, authz)
}

func ProvideCatalogService(db *repo.Client) catalog.Service {
	return catalog.New(db)
}

func ProvideAvailabilityService(db *repo.Client, rdb *redis.Client, cfg *config.Config) availability.Service {
	return availability.New(db, rdb, cfg.Cache.FreeSlotsTTLSeconds)
}

func ProvideAppointmentService(db *repo.Client, notifier notification.Dispatcher) appointment.Service {
	return appointment.New(db, notifier)
}

func ProvideReportingService(db *repo.Client) reporting.Service {
	return reporting.New(db)
}
