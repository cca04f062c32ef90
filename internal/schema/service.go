package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Service is a catalog entry describing a bookable offering.
type Service struct {
	ent.Schema
}

func (Service) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Service) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(200).
			Unique(),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int("duration_minutes").
			Comment("Slot length derived from this when generating availability"),

		field.Int64("price").
			Optional().
			Nillable().
			Comment("Price in the smallest currency unit; nil = not priced"),

		field.Bool("is_active").
			Default(true),
	}
}

func (Service) Indexes() []ent.Index {
	return []ent.Index{}
}

func (Service) Edges() []ent.Edge {
	return []ent.Edge{}
}
