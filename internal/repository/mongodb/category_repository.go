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

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Category, error)
	ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Category, error)
	Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Category, error)
	Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Category, error)
	// CountByBillboard backs the restrict-on-delete policy for billboards.
	CountByBillboard(ctx context.Context, storeID, billboardID primitive.ObjectID) (int64, error)
}

type categoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &categoryRepository{collection: db.Collection(CollectionCategories)}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var category entity.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "storeId": storeID}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{"storeId": storeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := []entity.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category entity.Category
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "storeId": storeID}, bson.M{"$set": set}, opts).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var category entity.Category
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "storeId": storeID}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) CountByBillboard(ctx context.Context, storeID, billboardID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := r.collection.CountDocuments(ctx, bson.M{"storeId": storeID, "billboardId": billboardID})
	if err != nil {
		return 0, fmt.Errorf("failed to count categories by billboard: %w", err)
	}
	return n, nil
}
