package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
// Called at startup; AddPermission is idempotent for duplicate rows.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	policies := []PermissionPolicy{
		// Admin: god mode
		{RoleAdmin, WildcardResource, WildcardAction, EffectAllow},

		// Provider: owns their schedule, works their appointments
		{RoleProvider, ResourceAvailability, ActionCreate, EffectAllow},
		{RoleProvider, ResourceAvailability, ActionRead, EffectAllow},
		{RoleProvider, ResourceAvailability, ActionUpdate, EffectAllow},
		{RoleProvider, ResourceAvailability, ActionDelete, EffectAllow},
		{RoleProvider, ResourceAvailability, ActionList, EffectAllow},
		{RoleProvider, ResourceAppointment, ActionRead, EffectAllow},
		{RoleProvider, ResourceAppointment, ActionList, EffectAllow},
		{RoleProvider, ResourceAppointment, ActionUpdate, EffectAllow},
		{RoleProvider, ResourceService, ActionRead, EffectAllow},
		{RoleProvider, ResourceService, ActionList, EffectAllow},
		{RoleProvider, ResourceUser, ActionRead, EffectAllow},

		// User: books and manages their own appointments
		{RoleUser, ResourceAppointment, ActionCreate, EffectAllow},
		{RoleUser, ResourceAppointment, ActionRead, EffectAllow},
		{RoleUser, ResourceAppointment, ActionList, EffectAllow},
		{RoleUser, ResourceAppointment, ActionUpdate, EffectAllow},
		{RoleUser, ResourceAvailability, ActionRead, EffectAllow},
		{RoleUser, ResourceAvailability, ActionList, EffectAllow},
		{RoleUser, ResourceService, ActionRead, EffectAllow},
		{RoleUser, ResourceService, ActionList, EffectAllow},
		{RoleUser, ResourceUser, ActionRead, EffectAllow},
		{RoleUser, ResourceUser, ActionUpdate, EffectAllow},
	}

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p.String(), "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", string(p.Subject), "resource", string(p.Object), "action", string(p.Action))
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	return nil
}
