package service

import (
	"context"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"
	utils "github.com/Brandon-S-Engineer/Freelance-1-Back-End/pkg"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService struct {
	users  repo.UserRepository
	tokens *utils.TokenManager
}

func NewAuthService(users repo.UserRepository, tokens *utils.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, input entity.RegisterInput) (*entity.User, error) {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input entity.LoginInput) (*entity.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !checkPassword(user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &entity.LoginResponse{
		Token:        access,
		RefreshToken: refresh,
		User:         user.Resp(),
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*entity.RefreshResponse, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	uid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &entity.RefreshResponse{Token: access}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
