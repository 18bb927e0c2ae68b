package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Order, error)
	ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Order, error)
	Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Order, error)
	Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Order, error)
}

type orderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &orderRepository{collection: db.Collection(CollectionOrders)}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var order entity.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "storeId": storeID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{"storeId": storeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders := []entity.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order entity.Order
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "storeId": storeID}, bson.M{"$set": set}, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var order entity.Order
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "storeId": storeID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}
	return &order, nil
}
