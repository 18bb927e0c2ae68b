package service

import (
	"context"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService struct {
	guard      *Guard
	categories repo.CategoryRepository
	billboards repo.BillboardRepository
	products   repo.ProductRepository
}

func NewCategoryService(guard *Guard, categories repo.CategoryRepository, billboards repo.BillboardRepository, products repo.ProductRepository) *CategoryService {
	return &CategoryService{guard: guard, categories: categories, billboards: billboards, products: products}
}

// resolveBillboard checks that the referenced billboard exists in the store.
func (s *CategoryService) resolveBillboard(ctx context.Context, storeID primitive.ObjectID, billboardID string) (primitive.ObjectID, error) {
	bid, err := primitive.ObjectIDFromHex(billboardID)
	if err != nil {
		return primitive.NilObjectID, entity.NewValidationError("billboardId", "must be a valid id")
	}
	billboard, err := s.billboards.GetByID(ctx, storeID, bid)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if billboard == nil {
		return primitive.NilObjectID, entity.NewValidationError("billboardId", "billboard not found in this store")
	}
	return bid, nil
}

func (s *CategoryService) Create(ctx context.Context, userID, storeID string, input entity.CreateCategoryInput) (*entity.Category, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	bid, err := s.resolveBillboard(ctx, store.ID, input.BillboardID)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{
		StoreID:     store.ID,
		BillboardID: bid,
		Name:        input.Name,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, storeID string) ([]entity.Category, error) {
	sid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.categories.ListByStore(ctx, sid)
}

func (s *CategoryService) Get(ctx context.Context, storeID, categoryID string) (*entity.Category, error) {
	sid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, ErrInvalidID
	}
	cid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, ErrInvalidID
	}
	category, err := s.categories.GetByID(ctx, sid, cid)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, storeID, categoryID string, input entity.UpdateCategoryInput) (*entity.Category, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	cid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, entity.NewValidationError("name", "must not be empty")
		}
		set["name"] = *input.Name
	}
	if input.BillboardID != nil {
		bid, err := s.resolveBillboard(ctx, store.ID, *input.BillboardID)
		if err != nil {
			return nil, err
		}
		set["billboardId"] = bid
	}

	category, err := s.categories.Update(ctx, store.ID, cid, set)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, userID, storeID, categoryID string) (*entity.Category, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	cid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, ErrInvalidID
	}

	n, err := s.products.CountByCategory(ctx, store.ID, cid)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrInUse
	}

	category, err := s.categories.Delete(ctx, store.ID, cid)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}
