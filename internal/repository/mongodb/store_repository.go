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

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	// GetByIDAndOwner resolves a store only when both the id and the owner
	// match; a missing store and a store owned by someone else both come back
	// as (nil, nil).
	GetByIDAndOwner(ctx context.Context, id primitive.ObjectID, userID string) (*entity.Store, error)
	ListByOwner(ctx context.Context, userID string) ([]entity.Store, error)
	UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*entity.Store, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type storeRepository struct {
	collection *mongo.Collection
}

func NewStoreRepository(db *mongo.Database) StoreRepository {
	return &storeRepository{collection: db.Collection(CollectionStores)}
}

func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC()
	store.CreatedAt = now
	store.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to insert store: %w", err)
	}
	store.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *storeRepository) GetByIDAndOwner(ctx context.Context, id primitive.ObjectID, userID string) (*entity.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var store entity.Store
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&store)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find store: %w", err)
	}
	return &store, nil
}

func (r *storeRepository) ListByOwner(ctx context.Context, userID string) ([]entity.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	stores := []entity.Store{}
	if err := cur.All(ctx, &stores); err != nil {
		return nil, fmt.Errorf("failed to decode stores: %w", err)
	}
	return stores, nil
}

func (r *storeRepository) UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*entity.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"name": name, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var store entity.Store
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&store)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}
	return &store, nil
}

func (r *storeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	return nil
}
