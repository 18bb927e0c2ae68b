package service

import (
	"context"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockStoreRepo struct{ mock.Mock }

func (m *mockStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *mockStoreRepo) GetByIDAndOwner(ctx context.Context, id primitive.ObjectID, userID string) (*entity.Store, error) {
	args := m.Called(ctx, id, userID)
	if s := args.Get(0); s != nil {
		return s.(*entity.Store), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStoreRepo) ListByOwner(ctx context.Context, userID string) ([]entity.Store, error) {
	args := m.Called(ctx, userID)
	if s := args.Get(0); s != nil {
		return s.([]entity.Store), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStoreRepo) UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*entity.Store, error) {
	args := m.Called(ctx, id, name)
	if s := args.Get(0); s != nil {
		return s.(*entity.Store), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStoreRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockBillboardRepo struct{ mock.Mock }

func (m *mockBillboardRepo) Create(ctx context.Context, billboard *entity.Billboard) error {
	return m.Called(ctx, billboard).Error(0)
}

func (m *mockBillboardRepo) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Billboard, error) {
	args := m.Called(ctx, storeID, id)
	if b := args.Get(0); b != nil {
		return b.(*entity.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillboardRepo) ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Billboard, error) {
	args := m.Called(ctx, storeID)
	if b := args.Get(0); b != nil {
		return b.([]entity.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillboardRepo) Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Billboard, error) {
	args := m.Called(ctx, storeID, id, set)
	if b := args.Get(0); b != nil {
		return b.(*entity.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillboardRepo) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Billboard, error) {
	args := m.Called(ctx, storeID, id)
	if b := args.Get(0); b != nil {
		return b.(*entity.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Category, error) {
	args := m.Called(ctx, storeID, id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Category, error) {
	args := m.Called(ctx, storeID)
	if c := args.Get(0); c != nil {
		return c.([]entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Category, error) {
	args := m.Called(ctx, storeID, id, set)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Category, error) {
	args := m.Called(ctx, storeID, id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) CountByBillboard(ctx context.Context, storeID, billboardID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, storeID, billboardID)
	return args.Get(0).(int64), args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Product, error) {
	args := m.Called(ctx, storeID, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, storeID primitive.ObjectID, filter repo.ProductListFilter) ([]entity.Product, error) {
	args := m.Called(ctx, storeID, filter)
	if p := args.Get(0); p != nil {
		return p.([]entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, storeID, id primitive.ObjectID, set, unset bson.M) (*entity.Product, error) {
	args := m.Called(ctx, storeID, id, set, unset)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Product, error) {
	args := m.Called(ctx, storeID, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) CountByCategory(ctx context.Context, storeID, categoryID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, storeID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) CountByRef(ctx context.Context, storeID primitive.ObjectID, refField string, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, storeID, refField, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockAttributeRepo struct{ mock.Mock }

func (m *mockAttributeRepo) Create(ctx context.Context, attribute *entity.Attribute) error {
	return m.Called(ctx, attribute).Error(0)
}

func (m *mockAttributeRepo) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Attribute, error) {
	args := m.Called(ctx, storeID, id)
	if a := args.Get(0); a != nil {
		return a.(*entity.Attribute), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAttributeRepo) ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Attribute, error) {
	args := m.Called(ctx, storeID)
	if a := args.Get(0); a != nil {
		return a.([]entity.Attribute), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAttributeRepo) Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Attribute, error) {
	args := m.Called(ctx, storeID, id, set)
	if a := args.Get(0); a != nil {
		return a.(*entity.Attribute), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAttributeRepo) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Attribute, error) {
	args := m.Called(ctx, storeID, id)
	if a := args.Get(0); a != nil {
		return a.(*entity.Attribute), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Order, error) {
	args := m.Called(ctx, storeID, id)
	if o := args.Get(0); o != nil {
		return o.(*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Order, error) {
	args := m.Called(ctx, storeID)
	if o := args.Get(0); o != nil {
		return o.([]entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Order, error) {
	args := m.Called(ctx, storeID, id, set)
	if o := args.Get(0); o != nil {
		return o.(*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Order, error) {
	args := m.Called(ctx, storeID, id)
	if o := args.Get(0); o != nil {
		return o.(*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
