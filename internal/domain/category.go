package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products under a billboard of the same store.
type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StoreID     primitive.ObjectID `json:"storeId" bson:"storeId"`
	BillboardID primitive.ObjectID `json:"billboardId" bson:"billboardId"`
	Name        string             `json:"name" bson:"name"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	BillboardID string `json:"billboardId" binding:"required"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	BillboardID *string `json:"billboardId"`
}
