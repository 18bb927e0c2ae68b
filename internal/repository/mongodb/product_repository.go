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

// Reference fields a product holds into the attribute vocabularies.
const (
	ProductSizeRef  = "sizeId"
	ProductColorRef = "colorId"
)

// ProductListFilter narrows List. Zero ids and a nil flag are ignored.
type ProductListFilter struct {
	CategoryID primitive.ObjectID
	SizeID     primitive.ObjectID
	ColorID    primitive.ObjectID
	Featured   *bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Product, error)
	// List excludes archived products.
	List(ctx context.Context, storeID primitive.ObjectID, filter ProductListFilter) ([]entity.Product, error)
	// Update applies $set and, when non-empty, $unset in a single call and
	// returns the post-update document.
	Update(ctx context.Context, storeID, id primitive.ObjectID, set, unset bson.M) (*entity.Product, error)
	Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Product, error)
	CountByCategory(ctx context.Context, storeID, categoryID primitive.ObjectID) (int64, error)
	// CountByRef counts products referencing a size or color; refField is one
	// of the ProductSizeRef/ProductColorRef constants.
	CountByRef(ctx context.Context, storeID primitive.ObjectID, refField string, id primitive.ObjectID) (int64, error)
}

type productRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{collection: db.Collection(CollectionProducts)}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var product entity.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "storeId": storeID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	product.Normalize()
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, storeID primitive.ObjectID, listFilter ProductListFilter) ([]entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"storeId": storeID, "isArchived": false}
	if !listFilter.CategoryID.IsZero() {
		filter["categoryId"] = listFilter.CategoryID
	}
	if !listFilter.SizeID.IsZero() {
		filter[ProductSizeRef] = listFilter.SizeID
	}
	if !listFilter.ColorID.IsZero() {
		filter[ProductColorRef] = listFilter.ColorID
	}
	if listFilter.Featured != nil {
		filter["isFeatured"] = *listFilter.Featured
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products := []entity.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	for i := range products {
		products[i].Normalize()
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, storeID, id primitive.ObjectID, set, unset bson.M) (*entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product entity.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "storeId": storeID}, update, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	product.Normalize()
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var product entity.Product
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "storeId": storeID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	product.Normalize()
	return &product, nil
}

func (r *productRepository) CountByCategory(ctx context.Context, storeID, categoryID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := r.collection.CountDocuments(ctx, bson.M{"storeId": storeID, "categoryId": categoryID})
	if err != nil {
		return 0, fmt.Errorf("failed to count products by category: %w", err)
	}
	return n, nil
}

func (r *productRepository) CountByRef(ctx context.Context, storeID primitive.ObjectID, refField string, id primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := r.collection.CountDocuments(ctx, bson.M{"storeId": storeID, refField: id})
	if err != nil {
		return 0, fmt.Errorf("failed to count products by %s: %w", refField, err)
	}
	return n, nil
}
