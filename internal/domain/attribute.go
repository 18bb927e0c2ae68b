package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attribute is the shared shape of the size and color vocabularies. Sizes and
// colors live in separate collections but carry identical fields.
type Attribute struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StoreID   primitive.ObjectID `json:"storeId" bson:"storeId"`
	Name      string             `json:"name" bson:"name"`
	Value     string             `json:"value" bson:"value"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateAttributeInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type UpdateAttributeInput struct {
	Name  *string `json:"name"`
	Value *string `json:"value"`
}
