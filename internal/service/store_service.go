package service

import (
	"context"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"
)

type StoreService struct {
	guard  *Guard
	stores repo.StoreRepository
}

func NewStoreService(guard *Guard, stores repo.StoreRepository) *StoreService {
	return &StoreService{guard: guard, stores: stores}
}

func (s *StoreService) Create(ctx context.Context, userID string, input entity.CreateStoreInput) (*entity.Store, error) {
	store := &entity.Store{
		Name:   input.Name,
		UserID: userID,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) List(ctx context.Context, userID string) ([]entity.Store, error) {
	return s.stores.ListByOwner(ctx, userID)
}

func (s *StoreService) Get(ctx context.Context, userID, storeID string) (*entity.Store, error) {
	return s.guard.AuthorizeStore(ctx, userID, storeID)
}

func (s *StoreService) Update(ctx context.Context, userID, storeID string, input entity.UpdateStoreInput) (*entity.Store, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	updated, err := s.stores.UpdateName(ctx, store.ID, input.Name)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Deleted between the guard check and the update; last write wins.
		return nil, ErrNotOwned
	}
	return updated, nil
}

func (s *StoreService) Delete(ctx context.Context, userID, storeID string) error {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return err
	}
	return s.stores.Delete(ctx, store.ID)
}
