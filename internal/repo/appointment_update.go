// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bookwise/bookwise_backend/internal/repo/appointment"
	"github.com/bookwise/bookwise_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AppointmentUpdate) SetUserID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableUserID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *AppointmentUpdate) SetProviderID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableProviderID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *AppointmentUpdate) SetServiceID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableServiceID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetAvailabilityID sets the "availability_id" field.
func (_u *AppointmentUpdate) SetAvailabilityID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetAvailabilityID(v)
	return _u
}

// SetNillableAvailabilityID sets the "availability_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAvailabilityID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetAvailabilityID(*v)
	}
	return _u
}

// ClearAvailabilityID clears the value of the "availability_id" field.
func (_u *AppointmentUpdate) ClearAvailabilityID() *AppointmentUpdate {
	_u.mutation.ClearAvailabilityID()
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdate) SetDate(v time.Time) *AppointmentUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDate(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AppointmentUpdate) SetStartTime(v string) *AppointmentUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStartTime(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AppointmentUpdate) SetEndTime(v string) *AppointmentUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEndTime(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdate) SetNotes(v string) *AppointmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNotes(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdate) ClearNotes() *AppointmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_u *AppointmentUpdate) SetReminderSentAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetReminderSentAt(v)
	return _u
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableReminderSentAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetReminderSentAt(*v)
	}
	return _u
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (_u *AppointmentUpdate) ClearReminderSentAt() *AppointmentUpdate {
	_u.mutation.ClearReminderSentAt()
	return _u
}

// SetFollowUpSentAt sets the "follow_up_sent_at" field.
func (_u *AppointmentUpdate) SetFollowUpSentAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetFollowUpSentAt(v)
	return _u
}

// SetNillableFollowUpSentAt sets the "follow_up_sent_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableFollowUpSentAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetFollowUpSentAt(*v)
	}
	return _u
}

// ClearFollowUpSentAt clears the value of the "follow_up_sent_at" field.
func (_u *AppointmentUpdate) ClearFollowUpSentAt() *AppointmentUpdate {
	_u.mutation.ClearFollowUpSentAt()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.StartTime(); ok {
		if err := appointment.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "Appointment.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := appointment.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "Appointment.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(appointment.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(appointment.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(appointment.FieldServiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AvailabilityID(); ok {
		_spec.SetField(appointment.FieldAvailabilityID, field.TypeUUID, value)
	}
	if _u.mutation.AvailabilityIDCleared() {
		_spec.ClearField(appointment.FieldAvailabilityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReminderSentAt(); ok {
		_spec.SetField(appointment.FieldReminderSentAt, field.TypeTime, value)
	}
	if _u.mutation.ReminderSentAtCleared() {
		_spec.ClearField(appointment.FieldReminderSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FollowUpSentAt(); ok {
		_spec.SetField(appointment.FieldFollowUpSentAt, field.TypeTime, value)
	}
	if _u.mutation.FollowUpSentAtCleared() {
		_spec.ClearField(appointment.FieldFollowUpSentAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AppointmentUpdateOne) SetUserID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableUserID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *AppointmentUpdateOne) SetProviderID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableProviderID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *AppointmentUpdateOne) SetServiceID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableServiceID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetAvailabilityID sets the "availability_id" field.
func (_u *AppointmentUpdateOne) SetAvailabilityID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetAvailabilityID(v)
	return _u
}

// SetNillableAvailabilityID sets the "availability_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAvailabilityID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAvailabilityID(*v)
	}
	return _u
}

// ClearAvailabilityID clears the value of the "availability_id" field.
func (_u *AppointmentUpdateOne) ClearAvailabilityID() *AppointmentUpdateOne {
	_u.mutation.ClearAvailabilityID()
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdateOne) SetDate(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDate(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AppointmentUpdateOne) SetStartTime(v string) *AppointmentUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStartTime(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AppointmentUpdateOne) SetEndTime(v string) *AppointmentUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEndTime(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdateOne) SetNotes(v string) *AppointmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNotes(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdateOne) ClearNotes() *AppointmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_u *AppointmentUpdateOne) SetReminderSentAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetReminderSentAt(v)
	return _u
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableReminderSentAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetReminderSentAt(*v)
	}
	return _u
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (_u *AppointmentUpdateOne) ClearReminderSentAt() *AppointmentUpdateOne {
	_u.mutation.ClearReminderSentAt()
	return _u
}

// SetFollowUpSentAt sets the "follow_up_sent_at" field.
func (_u *AppointmentUpdateOne) SetFollowUpSentAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetFollowUpSentAt(v)
	return _u
}

// SetNillableFollowUpSentAt sets the "follow_up_sent_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableFollowUpSentAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetFollowUpSentAt(*v)
	}
	return _u
}

// ClearFollowUpSentAt clears the value of the "follow_up_sent_at" field.
func (_u *AppointmentUpdateOne) ClearFollowUpSentAt() *AppointmentUpdateOne {
	_u.mutation.ClearFollowUpSentAt()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.StartTime(); ok {
		if err := appointment.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "Appointment.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := appointment.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "Appointment.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(appointment.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(appointment.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(appointment.FieldServiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AvailabilityID(); ok {
		_spec.SetField(appointment.FieldAvailabilityID, field.TypeUUID, value)
	}
	if _u.mutation.AvailabilityIDCleared() {
		_spec.ClearField(appointment.FieldAvailabilityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReminderSentAt(); ok {
		_spec.SetField(appointment.FieldReminderSentAt, field.TypeTime, value)
	}
	if _u.mutation.ReminderSentAtCleared() {
		_spec.ClearField(appointment.FieldReminderSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FollowUpSentAt(); ok {
		_spec.SetField(appointment.FieldFollowUpSentAt, field.TypeTime, value)
	}
	if _u.mutation.FollowUpSentAtCleared() {
		_spec.ClearField(appointment.FieldFollowUpSentAt, field.TypeTime)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
