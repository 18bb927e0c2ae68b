package service

import (
	"context"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttributeService drives both the sizes and colors endpoints; the two differ
// only in backing collection and the product field referencing them.
type AttributeService struct {
	guard      *Guard
	attributes repo.AttributeRepository
	products   repo.ProductRepository
	refField   string
}

func NewAttributeService(guard *Guard, attributes repo.AttributeRepository, products repo.ProductRepository, refField string) *AttributeService {
	return &AttributeService{guard: guard, attributes: attributes, products: products, refField: refField}
}

func (s *AttributeService) Create(ctx context.Context, userID, storeID string, input entity.CreateAttributeInput) (*entity.Attribute, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	attribute := &entity.Attribute{
		StoreID: store.ID,
		Name:    input.Name,
		Value:   input.Value,
	}
	if err := s.attributes.Create(ctx, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

func (s *AttributeService) List(ctx context.Context, storeID string) ([]entity.Attribute, error) {
	sid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.attributes.ListByStore(ctx, sid)
}

func (s *AttributeService) Get(ctx context.Context, storeID, attributeID string) (*entity.Attribute, error) {
	sid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, ErrInvalidID
	}
	aid, err := primitive.ObjectIDFromHex(attributeID)
	if err != nil {
		return nil, ErrInvalidID
	}
	attribute, err := s.attributes.GetByID(ctx, sid, aid)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, ErrNotFound
	}
	return attribute, nil
}

func (s *AttributeService) Update(ctx context.Context, userID, storeID, attributeID string, input entity.UpdateAttributeInput) (*entity.Attribute, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	aid, err := primitive.ObjectIDFromHex(attributeID)
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
	if input.Value != nil {
		if *input.Value == "" {
			return nil, entity.NewValidationError("value", "must not be empty")
		}
		set["value"] = *input.Value
	}

	attribute, err := s.attributes.Update(ctx, store.ID, aid, set)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, ErrNotFound
	}
	return attribute, nil
}

func (s *AttributeService) Delete(ctx context.Context, userID, storeID, attributeID string) (*entity.Attribute, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	aid, err := primitive.ObjectIDFromHex(attributeID)
	if err != nil {
		return nil, ErrInvalidID
	}

	n, err := s.products.CountByRef(ctx, store.ID, s.refField, aid)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrInUse
	}

	attribute, err := s.attributes.Delete(ctx, store.ID, aid)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, ErrNotFound
	}
	return attribute, nil
}
