package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem snapshots the product's effective price and the ordered quantity
// at creation time, so later price edits never change historical totals.
type OrderItem struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID       primitive.ObjectID `json:"productId" bson:"productId"`
	Quantity        int                `json:"quantity" bson:"quantity"`
	PriceAtPurchase float64            `json:"priceAtPurchase" bson:"priceAtPurchase"`
}

type Order struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StoreID    primitive.ObjectID `json:"storeId" bson:"storeId"`
	Phone      string             `json:"phone" bson:"phone"`
	Address    string             `json:"address" bson:"address"`
	IsPaid     bool               `json:"isPaid" bson:"isPaid"`
	OrderItems []OrderItem        `json:"orderItems" bson:"orderItems"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Total sums the captured item prices.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.OrderItems {
		total += item.PriceAtPurchase * float64(item.Quantity)
	}
	return total
}

type OrderItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	Phone   string           `json:"phone"`
	Address string           `json:"address"`
	Items   []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderInput struct {
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	IsPaid  *bool   `json:"isPaid"`
}
