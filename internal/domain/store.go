package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the root scope of a tenant. UserID is the external identity of the
// owner, kept as an opaque string.
type Store struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	UserID    string             `json:"userId" bson:"userId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateStoreInput struct {
	Name string `json:"name" binding:"required"`
}

type UpdateStoreInput struct {
	Name string `json:"name" binding:"required"`
}
