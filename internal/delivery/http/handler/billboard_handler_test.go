package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/assets"
	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubStoreRepo struct{ mock.Mock }

func (m *stubStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *stubStoreRepo) GetByIDAndOwner(ctx context.Context, id primitive.ObjectID, userID string) (*entity.Store, error) {
	args := m.Called(ctx, id, userID)
	if s := args.Get(0); s != nil {
		return s.(*entity.Store), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubStoreRepo) ListByOwner(ctx context.Context, userID string) ([]entity.Store, error) {
	args := m.Called(ctx, userID)
	if s := args.Get(0); s != nil {
		return s.([]entity.Store), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubStoreRepo) UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*entity.Store, error) {
	args := m.Called(ctx, id, name)
	if s := args.Get(0); s != nil {
		return s.(*entity.Store), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubStoreRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type stubBillboardRepo struct{ mock.Mock }

func (m *stubBillboardRepo) Create(ctx context.Context, billboard *entity.Billboard) error {
	return m.Called(ctx, billboard).Error(0)
}

func (m *stubBillboardRepo) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Billboard, error) {
	args := m.Called(ctx, storeID, id)
	if b := args.Get(0); b != nil {
		return b.(*entity.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubBillboardRepo) ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Billboard, error) {
	args := m.Called(ctx, storeID)
	if b := args.Get(0); b != nil {
		return b.([]entity.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubBillboardRepo) Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Billboard, error) {
	args := m.Called(ctx, storeID, id, set)
	if b := args.Get(0); b != nil {
		return b.(*entity.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubBillboardRepo) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Billboard, error) {
	args := m.Called(ctx, storeID, id)
	if b := args.Get(0); b != nil {
		return b.(*entity.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

type stubCategoryRepo struct{ mock.Mock }

func (m *stubCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *stubCategoryRepo) GetByID(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Category, error) {
	args := m.Called(ctx, storeID, id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubCategoryRepo) ListByStore(ctx context.Context, storeID primitive.ObjectID) ([]entity.Category, error) {
	args := m.Called(ctx, storeID)
	if c := args.Get(0); c != nil {
		return c.([]entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubCategoryRepo) Update(ctx context.Context, storeID, id primitive.ObjectID, set bson.M) (*entity.Category, error) {
	args := m.Called(ctx, storeID, id, set)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubCategoryRepo) Delete(ctx context.Context, storeID, id primitive.ObjectID) (*entity.Category, error) {
	args := m.Called(ctx, storeID, id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubCategoryRepo) CountByBillboard(ctx context.Context, storeID, billboardID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, storeID, billboardID)
	return args.Get(0).(int64), args.Error(1)
}

type billboardRouterFixture struct {
	stores     *stubStoreRepo
	billboards *stubBillboardRepo
	categories *stubCategoryRepo
	router     *gin.Engine
}

// newBillboardRouter wires a real handler and service over stubbed repos, with
// a stand-in auth middleware that injects the given user id.
func newBillboardRouter(userID string) *billboardRouterFixture {
	gin.SetMode(gin.TestMode)

	f := &billboardRouterFixture{
		stores:     new(stubStoreRepo),
		billboards: new(stubBillboardRepo),
		categories: new(stubCategoryRepo),
	}
	svc := service.NewBillboardService(service.NewGuard(f.stores), f.billboards, f.categories, assets.Noop{})
	h := NewBillboardHandler(svc)

	f.router = gin.New()
	authed := f.router.Group("/api/:storeId/billboards", func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	authed.POST("", h.Create)
	authed.PATCH("/:billboardId", h.Update)
	authed.DELETE("/:billboardId", h.Delete)
	f.router.GET("/api/:storeId/billboards/:billboardId", h.Get)
	return f
}

func (f *billboardRouterFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestBillboardHandlerCreate(t *testing.T) {
	storeID := primitive.NewObjectID()

	t.Run("valid body returns 201", func(t *testing.T) {
		f := newBillboardRouter("user-a")
		f.stores.On("GetByIDAndOwner", mock.Anything, storeID, "user-a").
			Return(&entity.Store{ID: storeID, UserID: "user-a"}, nil)
		f.billboards.On("Create", mock.Anything, mock.Anything).Return(nil)

		w := f.do(http.MethodPost, "/api/"+storeID.Hex()+"/billboards",
			`{"label":"summer","imageUrl":"https://cdn.example/summer.jpg"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"label":"summer"`)
	})

	t.Run("missing label returns 400", func(t *testing.T) {
		f := newBillboardRouter("user-a")

		w := f.do(http.MethodPost, "/api/"+storeID.Hex()+"/billboards",
			`{"imageUrl":"https://cdn.example/summer.jpg"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.stores.AssertNotCalled(t, "GetByIDAndOwner")
	})

	t.Run("foreign store returns generic 403", func(t *testing.T) {
		f := newBillboardRouter("intruder")
		f.stores.On("GetByIDAndOwner", mock.Anything, storeID, "intruder").Return(nil, nil)

		w := f.do(http.MethodPost, "/api/"+storeID.Hex()+"/billboards",
			`{"label":"summer","imageUrl":"https://cdn.example/summer.jpg"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
	})

	t.Run("malformed store id returns 400", func(t *testing.T) {
		f := newBillboardRouter("user-a")

		w := f.do(http.MethodPost, "/api/not-an-id/billboards",
			`{"label":"summer","imageUrl":"https://cdn.example/summer.jpg"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBillboardHandlerGet(t *testing.T) {
	storeID := primitive.NewObjectID()
	billboardID := primitive.NewObjectID()

	t.Run("missing billboard returns 404", func(t *testing.T) {
		f := newBillboardRouter("user-a")
		f.billboards.On("GetByID", mock.Anything, storeID, billboardID).Return(nil, nil)

		w := f.do(http.MethodGet, "/api/"+storeID.Hex()+"/billboards/"+billboardID.Hex(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBillboardHandlerDelete(t *testing.T) {
	storeID := primitive.NewObjectID()
	billboardID := primitive.NewObjectID()

	t.Run("referenced billboard returns 409", func(t *testing.T) {
		f := newBillboardRouter("user-a")
		f.stores.On("GetByIDAndOwner", mock.Anything, storeID, "user-a").
			Return(&entity.Store{ID: storeID, UserID: "user-a"}, nil)
		f.categories.On("CountByBillboard", mock.Anything, storeID, billboardID).Return(int64(3), nil)

		w := f.do(http.MethodDelete, "/api/"+storeID.Hex()+"/billboards/"+billboardID.Hex(), "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
