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

// AttributeRepository serves both the sizes and colors collections; the two
// vocabularies share one document shape.
type AttributeRepository interface {
	Create(ctx context.Context, attribute *entity.Attribute) error
	GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Attribute, error)
	ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Attribute, error)
	Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Attribute, error)
	Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Attribute, error)
}

type attributeRepository struct {
	collection *mongo.Collection
}

func NewSizeRepository(db *mongo.Database) AttributeRepository {
	return &attributeRepository{collection: db.Collection(CollectionSizes)}
}

func NewColorRepository(db *mongo.Database) AttributeRepository {
	return &attributeRepository{collection: db.Collection(CollectionColors)}
}

func (r *attributeRepository) Create(ctx context.Context, attribute *entity.Attribute) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC()
	attribute.CreatedAt = now
	attribute.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, attribute)
	if err != nil {
		return fmt.Errorf("failed to insert attribute: %w", err)
	}
	attribute.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *attributeRepository) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Attribute, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var attribute entity.Attribute
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "storeId": storeID}).Decode(&attribute)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find attribute: %w", err)
	}
	return &attribute, nil
}

func (r *attributeRepository) ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Attribute, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{"storeId": storeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list attributes: %w", err)
	}
	attributes := []entity.Attribute{}
	if err := cur.All(ctx, &attributes); err != nil {
		return nil, fmt.Errorf("failed to decode attributes: %w", err)
	}
	return attributes, nil
}

func (r *attributeRepository) Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Attribute, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var attribute entity.Attribute
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "storeId": storeID}, bson.M{"$set": set}, opts).Decode(&attribute)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update attribute: %w", err)
	}
	return &attribute, nil
}

func (r *attributeRepository) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Attribute, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var attribute entity.Attribute
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "storeId": storeID}).Decode(&attribute)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete attribute: %w", err)
	}
	return &attribute, nil
}
