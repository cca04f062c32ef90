package authorize

import (
	"fmt"

	"github.com/google/uuid"
)

type Action string
type Resource string
type Role string
type PolicyEffect string

// GroupSubject is a casbin subject: a user ID or a role name.
type GroupSubject string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power action: run, trigger, start, stop, etc.
	ActionExecute Action = "execute"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {},
	ActionList: {}, ActionExecute: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	ResourceUser         Resource = "user"
	ResourceService      Resource = "service"
	ResourceAvailability Resource = "availability"
	ResourceAppointment  Resource = "appointment"
	ResourceReport       Resource = "report"
	ResourceSystem       Resource = "system"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceService: {}, ResourceAvailability: {},
	ResourceAppointment: {}, ResourceReport: {}, ResourceSystem: {},
}

// ----------------------------
// Roles
// ----------------------------

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

var KnownRoles = map[Role]struct{}{
	RoleUser: {}, RoleProvider: {}, RoleAdmin: {},
}

// IsValidRole reports whether r is one of the known roles.
func IsValidRole(r Role) bool {
	_, ok := KnownRoles[r]
	return ok
}

// ----------------------------
// Policy effects
// ----------------------------

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PermissionPolicy is one row of the p policy: role, object, action, effect.
type PermissionPolicy struct {
	Subject Role
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}

func (p PermissionPolicy) String() string {
	return fmt.Sprintf("p, %s, %s, %s, %s", p.Subject, p.Object, p.Action, p.Effect)
}

// SubjectForUser builds the casbin subject for a user ID.
func SubjectForUser(userID uuid.UUID) GroupSubject {
	return GroupSubject(userID.String())
}

// SubjectForRole builds the casbin subject for a role, so role-based
// checks can run without loading per-user grouping policies.
func SubjectForRole(role Role) GroupSubject {
	return GroupSubject(role)
}
