package service

import (
	"context"
	"testing"

	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/assets"
	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBillboardServiceDelete(t *testing.T) {
	ctx := context.Background()
	userID := "user-a"
	storeID := primitive.NewObjectID()
	billboardID := primitive.NewObjectID()
	store := &entity.Store{ID: storeID, UserID: userID}

	t.Run("referenced billboard is not deletable", func(t *testing.T) {
		stores := new(mockStoreRepo)
		billboards := new(mockBillboardRepo)
		categories := new(mockCategoryRepo)
		stores.On("GetByIDAndOwner", mock.Anything, storeID, userID).Return(store, nil)
		categories.On("CountByBillboard", mock.Anything, storeID, billboardID).Return(int64(2), nil)

		svc := NewBillboardService(NewGuard(stores), billboards, categories, assets.Noop{})
		_, err := svc.Delete(ctx, userID, storeID.Hex(), billboardID.Hex())
		assert.ErrorIs(t, err, ErrInUse)
		billboards.AssertNotCalled(t, "Delete")
	})

	t.Run("unreferenced billboard is removed", func(t *testing.T) {
		stores := new(mockStoreRepo)
		billboards := new(mockBillboardRepo)
		categories := new(mockCategoryRepo)
		stores.On("GetByIDAndOwner", mock.Anything, storeID, userID).Return(store, nil)
		categories.On("CountByBillboard", mock.Anything, storeID, billboardID).Return(int64(0), nil)
		billboards.On("Delete", mock.Anything, storeID, billboardID).
			Return(&entity.Billboard{ID: billboardID, StoreID: storeID, Label: "summer"}, nil)

		svc := NewBillboardService(NewGuard(stores), billboards, categories, assets.Noop{})
		billboard, err := svc.Delete(ctx, userID, storeID.Hex(), billboardID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "summer", billboard.Label)
	})
}

func TestBillboardServiceUpdate(t *testing.T) {
	ctx := context.Background()
	userID := "user-a"
	storeID := primitive.NewObjectID()
	billboardID := primitive.NewObjectID()
	store := &entity.Store{ID: storeID, UserID: userID}

	t.Run("only supplied fields reach the patch", func(t *testing.T) {
		stores := new(mockStoreRepo)
		billboards := new(mockBillboardRepo)
		categories := new(mockCategoryRepo)
		stores.On("GetByIDAndOwner", mock.Anything, storeID, userID).Return(store, nil)

		var gotSet bson.M
		billboards.On("Update", mock.Anything, storeID, billboardID, mock.Anything).
			Run(func(args mock.Arguments) { gotSet = args.Get(3).(bson.M) }).
			Return(&entity.Billboard{ID: billboardID}, nil)

		label := "winter"
		svc := NewBillboardService(NewGuard(stores), billboards, categories, assets.Noop{})
		_, err := svc.Update(ctx, userID, storeID.Hex(), billboardID.Hex(), entity.UpdateBillboardInput{Label: &label})
		require.NoError(t, err)
		assert.Equal(t, bson.M{"label": "winter"}, gotSet)
	})

	t.Run("empty label rejected", func(t *testing.T) {
		stores := new(mockStoreRepo)
		billboards := new(mockBillboardRepo)
		categories := new(mockCategoryRepo)
		stores.On("GetByIDAndOwner", mock.Anything, storeID, userID).Return(store, nil)

		empty := ""
		svc := NewBillboardService(NewGuard(stores), billboards, categories, assets.Noop{})
		_, err := svc.Update(ctx, userID, storeID.Hex(), billboardID.Hex(), entity.UpdateBillboardInput{Label: &empty})
		var vErr *entity.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "label", vErr.Field)
	})
}
