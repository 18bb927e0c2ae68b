package service

import (
	"context"
	"testing"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	utils "github.com/Brandon-S-Engineer/Freelance-1-Back-End/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestTokens() *utils.TokenManager {
	return utils.NewTokenManager(utils.JWTConfig{
		Secret:         "test-secret",
		Issuer:         "admin-api",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
	})
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hash, never the password", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByEmail", mock.Anything, "owner@shop.dev").Return(nil, nil)

		var created *entity.User
		users.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { created = args.Get(1).(*entity.User) }).
			Return(nil)

		svc := NewAuthService(users, newTestTokens())
		_, err := svc.Register(ctx, entity.RegisterInput{Email: "owner@shop.dev", Name: "Owner", Password: "hunter22"})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, created.PasswordHash)
		assert.NotEqual(t, "hunter22", created.PasswordHash)
		assert.True(t, checkPassword(created.PasswordHash, "hunter22"))
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByEmail", mock.Anything, "owner@shop.dev").
			Return(&entity.User{ID: primitive.NewObjectID(), Email: "owner@shop.dev"}, nil)

		svc := NewAuthService(users, newTestTokens())
		_, err := svc.Register(ctx, entity.RegisterInput{Email: "owner@shop.dev", Password: "hunter22"})
		assert.ErrorIs(t, err, ErrEmailTaken)
		users.AssertNotCalled(t, "Create")
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := hashPassword("hunter22")
	require.NoError(t, err)
	user := &entity.User{ID: primitive.NewObjectID(), Email: "owner@shop.dev", PasswordHash: hash}

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByEmail", mock.Anything, "owner@shop.dev").Return(user, nil)

		svc := NewAuthService(users, newTestTokens())
		resp, err := svc.Login(ctx, entity.LoginInput{Email: "owner@shop.dev", Password: "hunter22"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, user.Email, resp.User.Email)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByEmail", mock.Anything, "owner@shop.dev").Return(user, nil)
		users.On("GetByEmail", mock.Anything, "ghost@shop.dev").Return(nil, nil)

		svc := NewAuthService(users, newTestTokens())
		_, errWrong := svc.Login(ctx, entity.LoginInput{Email: "owner@shop.dev", Password: "wrong"})
		_, errGhost := svc.Login(ctx, entity.LoginInput{Email: "ghost@shop.dev", Password: "hunter22"})
		assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.ErrorIs(t, errGhost, ErrInvalidCredentials)
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokens()
	user := &entity.User{ID: primitive.NewObjectID(), Email: "owner@shop.dev"}

	t.Run("valid refresh token mints a new access token", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByID", mock.Anything, user.ID).Return(user, nil)

		refresh, err := tokens.GenerateRefreshToken(user.ID.Hex())
		require.NoError(t, err)

		svc := NewAuthService(users, tokens)
		resp, err := svc.Refresh(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewAuthService(users, tokens)
		_, err := svc.Refresh(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		users.AssertNotCalled(t, "GetByID")
	})

	t.Run("deleted account cannot refresh", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByID", mock.Anything, user.ID).Return(nil, nil)

		refresh, err := tokens.GenerateRefreshToken(user.ID.Hex())
		require.NoError(t, err)

		svc := NewAuthService(users, tokens)
		_, err = svc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
