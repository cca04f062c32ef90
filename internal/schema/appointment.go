package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked slot between a user and a provider.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("Non-FK reference to users.id (the client)"),

		field.UUID("provider_id", uuid.UUID{}).
			Comment("Non-FK reference to users.id (the provider)"),

		field.UUID("service_id", uuid.UUID{}).
			Comment("Non-FK reference to services.id"),

		field.UUID("availability_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Non-FK reference to the availability the slot came from"),

		field.Time("date").
			Comment("Calendar day of the appointment; time-of-day is ignored"),

		field.String("start_time").
			MaxLen(5).
			Comment("Slot start, 24h HH:mm"),

		field.String("end_time").
			MaxLen(5).
			Comment("Slot end, 24h HH:mm"),

		field.Enum("status").
			Values("booked", "canceled", "completed").
			Default("booked"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Time("reminder_sent_at").
			Optional().
			Nillable(),

		field.Time("follow_up_sent_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id", "date", "start_time"),
		index.Fields("user_id", "status"),
		index.Fields("service_id"),
		index.Fields("status", "date"),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{}
}
