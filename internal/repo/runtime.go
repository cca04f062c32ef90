// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/bookwise/bookwise_backend/internal/repo/appointment"
	"github.com/bookwise/bookwise_backend/internal/repo/availability"
	"github.com/bookwise/bookwise_backend/internal/repo/service"
	"github.com/bookwise/bookwise_backend/internal/repo/user"
	"github.com/bookwise/bookwise_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescStartTime is the schema descriptor for start_time field.
	appointmentDescStartTime := appointmentFields[5].Descriptor()
	// appointment.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	appointment.StartTimeValidator = appointmentDescStartTime.Validators[0].(func(string) error)
	// appointmentDescEndTime is the schema descriptor for end_time field.
	appointmentDescEndTime := appointmentFields[6].Descriptor()
	// appointment.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	appointment.EndTimeValidator = appointmentDescEndTime.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	availabilityMixin := schema.Availability{}.Mixin()
	availabilityMixinFields0 := availabilityMixin[0].Fields()
	_ = availabilityMixinFields0
	availabilityMixinFields1 := availabilityMixin[1].Fields()
	_ = availabilityMixinFields1
	availabilityFields := schema.Availability{}.Fields()
	_ = availabilityFields
	// availabilityDescCreatedAt is the schema descriptor for created_at field.
	availabilityDescCreatedAt := availabilityMixinFields1[0].Descriptor()
	// availability.DefaultCreatedAt holds the default value on creation for the created_at field.
	availability.DefaultCreatedAt = availabilityDescCreatedAt.Default.(func() time.Time)
	// availabilityDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityDescUpdatedAt := availabilityMixinFields1[1].Descriptor()
	// availability.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availability.DefaultUpdatedAt = availabilityDescUpdatedAt.Default.(func() time.Time)
	// availability.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availability.UpdateDefaultUpdatedAt = availabilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityDescStartTime is the schema descriptor for start_time field.
	availabilityDescStartTime := availabilityFields[3].Descriptor()
	// availability.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	availability.StartTimeValidator = availabilityDescStartTime.Validators[0].(func(string) error)
	// availabilityDescEndTime is the schema descriptor for end_time field.
	availabilityDescEndTime := availabilityFields[4].Descriptor()
	// availability.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	availability.EndTimeValidator = availabilityDescEndTime.Validators[0].(func(string) error)
	// availabilityDescID is the schema descriptor for id field.
	availabilityDescID := availabilityMixinFields0[0].Descriptor()
	// availability.DefaultID holds the default value on creation for the id field.
	availability.DefaultID = availabilityDescID.Default.(func() uuid.UUID)
	serviceMixin := schema.Service{}.Mixin()
	serviceMixinFields0 := serviceMixin[0].Fields()
	_ = serviceMixinFields0
	serviceMixinFields1 := serviceMixin[1].Fields()
	_ = serviceMixinFields1
	serviceFields := schema.Service{}.Fields()
	_ = serviceFields
	// serviceDescCreatedAt is the schema descriptor for created_at field.
	serviceDescCreatedAt := serviceMixinFields1[0].Descriptor()
	// service.DefaultCreatedAt holds the default value on creation for the created_at field.
	service.DefaultCreatedAt = serviceDescCreatedAt.Default.(func() time.Time)
	// serviceDescUpdatedAt is the schema descriptor for updated_at field.
	serviceDescUpdatedAt := serviceMixinFields1[1].Descriptor()
	// service.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	service.DefaultUpdatedAt = serviceDescUpdatedAt.Default.(func() time.Time)
	// service.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	service.UpdateDefaultUpdatedAt = serviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serviceDescName is the schema descriptor for name field.
	serviceDescName := serviceFields[0].Descriptor()
	// service.NameValidator is a validator for the "name" field. It is called by the builders before save.
	service.NameValidator = serviceDescName.Validators[0].(func(string) error)
	// serviceDescIsActive is the schema descriptor for is_active field.
	serviceDescIsActive := serviceFields[4].Descriptor()
	// service.DefaultIsActive holds the default value on creation for the is_active field.
	service.DefaultIsActive = serviceDescIsActive.Default.(bool)
	// serviceDescID is the schema descriptor for id field.
	serviceDescID := serviceMixinFields0[0].Descriptor()
	// service.DefaultID holds the default value on creation for the id field.
	service.DefaultID = serviceDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[5].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[6].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
