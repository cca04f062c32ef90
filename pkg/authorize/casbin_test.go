package authorize

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func newSeededAuth(t *testing.T) IAuthorization {
	t.Helper()

	auth, err := NewAuthorization(Config{AdminBypass: true})
	if err != nil {
		t.Fatalf("NewAuthorization() error = %v", err)
	}
	if err := SeedDefaultPolicies(context.Background(), auth, nil); err != nil {
		t.Fatalf("SeedDefaultPolicies() error = %v", err)
	}
	return auth
}

func TestEnforceRolePolicies(t *testing.T) {
	auth := newSeededAuth(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		subject GroupSubject
		object  Resource
		action  Action
		want    bool
	}{
		{"user can book appointments", SubjectForRole(RoleUser), ResourceAppointment, ActionCreate, true},
		{"user can list availability", SubjectForRole(RoleUser), ResourceAvailability, ActionList, true},
		{"user cannot create availability", SubjectForRole(RoleUser), ResourceAvailability, ActionCreate, false},
		{"user cannot read reports", SubjectForRole(RoleUser), ResourceReport, ActionRead, false},
		{"user cannot delete appointments", SubjectForRole(RoleUser), ResourceAppointment, ActionDelete, false},
		{"provider can create availability", SubjectForRole(RoleProvider), ResourceAvailability, ActionCreate, true},
		{"provider can update appointments", SubjectForRole(RoleProvider), ResourceAppointment, ActionUpdate, true},
		{"provider cannot read reports", SubjectForRole(RoleProvider), ResourceReport, ActionRead, false},
		{"admin can read reports", SubjectForRole(RoleAdmin), ResourceReport, ActionRead, true},
		{"admin can delete appointments", SubjectForRole(RoleAdmin), ResourceAppointment, ActionDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.object, tt.action)
			if err != nil {
				t.Fatalf("Enforce() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce(%s, %s, %s) = %v, want %v", tt.subject, tt.object, tt.action, got, tt.want)
			}
		})
	}
}

func TestEnforceViaUserRoleGrant(t *testing.T) {
	auth := newSeededAuth(t)
	ctx := context.Background()

	userID := uuid.New()
	subject := SubjectForUser(userID)

	// No role yet: everything denied
	ok, err := auth.Enforce(ctx, subject, ResourceAppointment, ActionCreate)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if ok {
		t.Error("Enforce() = true for user without any role")
	}

	if _, err := auth.AddRoleForUser(ctx, subject, RoleProvider); err != nil {
		t.Fatalf("AddRoleForUser() error = %v", err)
	}

	ok, err = auth.Enforce(ctx, subject, ResourceAvailability, ActionCreate)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if !ok {
		t.Error("Enforce() = false after granting provider role")
	}

	roles, err := auth.GetRolesForUser(ctx, subject)
	if err != nil {
		t.Fatalf("GetRolesForUser() error = %v", err)
	}
	if len(roles) != 1 || roles[0] != RoleProvider {
		t.Errorf("GetRolesForUser() = %v, want [provider]", roles)
	}

	if _, err := auth.RemoveRoleForUser(ctx, subject, RoleProvider); err != nil {
		t.Fatalf("RemoveRoleForUser() error = %v", err)
	}
	ok, _ = auth.Enforce(ctx, subject, ResourceAvailability, ActionCreate)
	if ok {
		t.Error("Enforce() = true after revoking provider role")
	}
}

func TestEnforceValidatesArguments(t *testing.T) {
	auth := newSeededAuth(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		subject GroupSubject
		object  Resource
		action  Action
	}{
		{"empty subject", "", ResourceUser, ActionRead},
		{"unknown resource", SubjectForRole(RoleUser), Resource("spaceship"), ActionRead},
		{"unknown action", SubjectForRole(RoleUser), ResourceUser, Action("teleport")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Enforce(ctx, tt.subject, tt.object, tt.action)
			if !errors.Is(err, ErrInvalidArgs) {
				t.Errorf("Enforce() error = %v, want ErrInvalidArgs", err)
			}
		})
	}
}

func TestMustEnforceReturnsForbidden(t *testing.T) {
	auth := newSeededAuth(t)

	err := auth.MustEnforce(context.Background(), SubjectForRole(RoleUser), ResourceReport, ActionRead)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("MustEnforce() error = %v, want ErrForbidden", err)
	}
}

func TestAdminBypassForGrantedRole(t *testing.T) {
	auth := newSeededAuth(t)
	ctx := context.Background()

	subject := SubjectForUser(uuid.New())
	if _, err := auth.AddRoleForUser(ctx, subject, RoleAdmin); err != nil {
		t.Fatalf("AddRoleForUser() error = %v", err)
	}

	ok, err := auth.Enforce(ctx, subject, ResourceSystem, ActionExecute)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if !ok {
		t.Error("Enforce() = false for admin-role user with bypass enabled")
	}
}
