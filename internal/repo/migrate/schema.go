// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID},
		{Name: "availability_id", Type: field.TypeUUID, Nullable: true},
		{Name: "date", Type: field.TypeTime},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "end_time", Type: field.TypeString, Size: 5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"booked", "canceled", "completed"}, Default: "booked"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reminder_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "follow_up_sent_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_provider_id_date_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[7], AppointmentsColumns[8]},
			},
			{
				Name:    "appointment_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[10]},
			},
			{
				Name:    "appointment_service_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_status_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[10], AppointmentsColumns[7]},
			},
		},
	}
	// AvailabilitiesColumns holds the columns for the "availabilities" table.
	AvailabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeEnum, Enums: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "end_time", Type: field.TypeString, Size: 5},
		{Name: "slots", Type: field.TypeJSON},
	}
	// AvailabilitiesTable holds the schema information for the "availabilities" table.
	AvailabilitiesTable = &schema.Table{
		Name:       "availabilities",
		Columns:    AvailabilitiesColumns,
		PrimaryKey: []*schema.Column{AvailabilitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "availability_provider_id_day_of_week",
				Unique:  false,
				Columns: []*schema.Column{AvailabilitiesColumns[3], AvailabilitiesColumns[5]},
			},
			{
				Name:    "availability_service_id",
				Unique:  false,
				Columns: []*schema.Column{AvailabilitiesColumns[4]},
			},
		},
	}
	// ServicesColumns holds the columns for the "services" table.
	ServicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "price", Type: field.TypeInt64, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ServicesTable holds the schema information for the "services" table.
	ServicesTable = &schema.Table{
		Name:       "services",
		Columns:    ServicesColumns,
		PrimaryKey: []*schema.Column{ServicesColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "provider", "admin"}, Default: "user"},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AvailabilitiesTable,
		ServicesTable,
		UsersTable,
	}
)

func init() {
}
