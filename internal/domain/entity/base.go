// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is implemented by every persisted entity.
type Document interface {
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
	Touch(now time.Time, created bool)
}

// Base carries the identity and timestamps shared by all entities.
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Populated holds referenced documents resolved by a populate query, keyed by field name.
	Populated map[string]bson.M `bson:"_populated,omitempty" json:"-"`
}

func (b *Base) GetID() primitive.ObjectID {
	return b.ID
}

func (b *Base) SetID(id primitive.ObjectID) {
	b.ID = id
}

// Touch stamps UpdatedAt, and CreatedAt as well when the document is new.
func (b *Base) Touch(now time.Time, created bool) {
	if created || b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
