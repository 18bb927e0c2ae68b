package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Billboard struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StoreID   primitive.ObjectID `json:"storeId" bson:"storeId"`
	Label     string             `json:"label" bson:"label"`
	ImageURL  string             `json:"imageUrl" bson:"imageUrl"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateBillboardInput struct {
	Label    string `json:"label" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

// UpdateBillboardInput is a partial patch: nil fields are left unchanged.
type UpdateBillboardInput struct {
	Label    *string `json:"label"`
	ImageURL *string `json:"imageUrl"`
}
