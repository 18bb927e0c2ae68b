package service

import (
	"context"

	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/assets"
	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BillboardService struct {
	guard      *Guard
	billboards repo.BillboardRepository
	categories repo.CategoryRepository
	assets     assets.Destroyer
}

func NewBillboardService(guard *Guard, billboards repo.BillboardRepository, categories repo.CategoryRepository, destroyer assets.Destroyer) *BillboardService {
	return &BillboardService{guard: guard, billboards: billboards, categories: categories, assets: destroyer}
}

func (s *BillboardService) Create(ctx context.Context, userID, storeID string, input entity.CreateBillboardInput) (*entity.Billboard, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	billboard := &entity.Billboard{
		StoreID:  store.ID,
		Label:    input.Label,
		ImageURL: input.ImageURL,
	}
	if err := s.billboards.Create(ctx, billboard); err != nil {
		return nil, err
	}
	return billboard, nil
}

// List and Get serve the public storefront; they are scoped by store id only.
func (s *BillboardService) List(ctx context.Context, storeID string) ([]entity.Billboard, error) {
	sid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.billboards.ListByStore(ctx, sid)
}

func (s *BillboardService) Get(ctx context.Context, storeID, billboardID string) (*entity.Billboard, error) {
	sid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, ErrInvalidID
	}
	bid, err := primitive.ObjectIDFromHex(billboardID)
	if err != nil {
		return nil, ErrInvalidID
	}
	billboard, err := s.billboards.GetByID(ctx, sid, bid)
	if err != nil {
		return nil, err
	}
	if billboard == nil {
		return nil, ErrNotFound
	}
	return billboard, nil
}

func (s *BillboardService) Update(ctx context.Context, userID, storeID, billboardID string, input entity.UpdateBillboardInput) (*entity.Billboard, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	bid, err := primitive.ObjectIDFromHex(billboardID)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	if input.Label != nil {
		if *input.Label == "" {
			return nil, entity.NewValidationError("label", "must not be empty")
		}
		set["label"] = *input.Label
	}
	if input.ImageURL != nil {
		if *input.ImageURL == "" {
			return nil, entity.NewValidationError("imageUrl", "must not be empty")
		}
		set["imageUrl"] = *input.ImageURL
	}

	billboard, err := s.billboards.Update(ctx, store.ID, bid, set)
	if err != nil {
		return nil, err
	}
	if billboard == nil {
		return nil, ErrNotFound
	}
	return billboard, nil
}

func (s *BillboardService) Delete(ctx context.Context, userID, storeID, billboardID string) (*entity.Billboard, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	bid, err := primitive.ObjectIDFromHex(billboardID)
	if err != nil {
		return nil, ErrInvalidID
	}

	n, err := s.categories.CountByBillboard(ctx, store.ID, bid)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrInUse
	}

	billboard, err := s.billboards.Delete(ctx, store.ID, bid)
	if err != nil {
		return nil, err
	}
	if billboard == nil {
		return nil, ErrNotFound
	}
	s.assets.Destroy(ctx, billboard.ImageURL)
	return billboard, nil
}
