package service

import (
	"context"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Guard is the single ownership check every mutating operation goes through.
// It resolves the store by id and owner in one query, so a missing store and
// a store owned by someone else are indistinguishable to the caller.
type Guard struct {
	stores repo.StoreRepository
}

func NewGuard(stores repo.StoreRepository) *Guard {
	return &Guard{stores: stores}
}

func (g *Guard) AuthorizeStore(ctx context.Context, userID, storeID string) (*entity.Store, error) {
	oid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, ErrInvalidID
	}

	store, err := g.stores.GetByIDAndOwner(ctx, oid, userID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNotOwned
	}
	return store, nil
}
