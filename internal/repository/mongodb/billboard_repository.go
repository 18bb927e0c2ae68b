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

type BillboardRepository interface {
	Create(ctx context.Context, billboard *entity.Billboard) error
	GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Billboard, error)
	ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Billboard, error)
	Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Billboard, error)
	// Delete returns the removed document so callers can clean up its image.
	Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Billboard, error)
}

type billboardRepository struct {
	collection *mongo.Collection
}

func NewBillboardRepository(db *mongo.Database) BillboardRepository {
	return &billboardRepository{collection: db.Collection(CollectionBillboards)}
}

func (r *billboardRepository) Create(ctx context.Context, billboard *entity.Billboard) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC()
	billboard.CreatedAt = now
	billboard.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, billboard)
	if err != nil {
		return fmt.Errorf("failed to insert billboard: %w", err)
	}
	billboard.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *billboardRepository) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Billboard, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var billboard entity.Billboard
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "storeId": storeID}).Decode(&billboard)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find billboard: %w", err)
	}
	return &billboard, nil
}

func (r *billboardRepository) ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Billboard, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{"storeId": storeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list billboards: %w", err)
	}
	billboards := []entity.Billboard{}
	if err := cur.All(ctx, &billboards); err != nil {
		return nil, fmt.Errorf("failed to decode billboards: %w", err)
	}
	return billboards, nil
}

func (r *billboardRepository) Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Billboard, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var billboard entity.Billboard
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "storeId": storeID}, bson.M{"$set": set}, opts).Decode(&billboard)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update billboard: %w", err)
	}
	return &billboard, nil
}

func (r *billboardRepository) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Billboard, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var billboard entity.Billboard
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "storeId": storeID}).Decode(&billboard)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete billboard: %w", err)
	}
	return &billboard, nil
}
