package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/bookwise/bookwise_backend/internal/timeslot"
)

// Availability is a provider's recurring weekly working window for one
// service, with the derived bookable slots stored alongside it.
type Availability struct {
	ent.Schema
}

func (Availability) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Availability) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("provider_id", uuid.UUID{}).
			Comment("Non-FK reference to users.id"),

		field.UUID("service_id", uuid.UUID{}).
			Comment("Non-FK reference to services.id"),

		field.Enum("day_of_week").
			Values("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"),

		field.String("start_time").
			MaxLen(5).
			Comment("Window start, 24h HH:mm"),

		field.String("end_time").
			MaxLen(5).
			Comment("Window end, 24h HH:mm"),

		field.JSON("slots", []timeslot.Slot{}).
			Comment("Slots derived from the window at the service's duration"),
	}
}

func (Availability) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id", "day_of_week"),
		index.Fields("service_id"),
	}
}

func (Availability) Edges() []ent.Edge {
	return []ent.Edge{}
}
