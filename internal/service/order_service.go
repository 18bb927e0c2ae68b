package service

import (
	"context"
	"fmt"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderService struct {
	guard    *Guard
	orders   repo.OrderRepository
	products repo.ProductRepository
}

func NewOrderService(guard *Guard, orders repo.OrderRepository, products repo.ProductRepository) *OrderService {
	return &OrderService{guard: guard, orders: orders, products: products}
}

// Create snapshots each product's effective price into the order items, so
// later price edits never rewrite order history.
func (s *OrderService) Create(ctx context.Context, userID, storeID string, input entity.CreateOrderInput) (*entity.Order, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for i, item := range input.Items {
		field := fmt.Sprintf("items[%d].productId", i)
		pid, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, entity.NewValidationError(field, "must be a valid id")
		}
		product, err := s.products.GetByID(ctx, store.ID, pid)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, entity.NewValidationError(field, "product not found in this store")
		}
		if product.IsArchived {
			return nil, entity.NewValidationError(field, "product is archived")
		}
		items = append(items, entity.OrderItem{
			ID:              primitive.NewObjectID(),
			ProductID:       pid,
			Quantity:        item.Quantity,
			PriceAtPurchase: product.EffectivePrice(),
		})
	}

	order := &entity.Order{
		StoreID:    store.ID,
		Phone:      input.Phone,
		Address:    input.Address,
		OrderItems: items,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, userID, storeID string) ([]entity.Order, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	return s.orders.ListByStore(ctx, store.ID)
}

func (s *OrderService) Get(ctx context.Context, userID, storeID, orderID string) (*entity.Order, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrInvalidID
	}
	order, err := s.orders.GetByID(ctx, store.ID, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, userID, storeID, orderID string, input entity.UpdateOrderInput) (*entity.Order, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.IsPaid != nil {
		set["isPaid"] = *input.IsPaid
	}

	order, err := s.orders.Update(ctx, store.ID, oid, set)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, userID, storeID, orderID string) (*entity.Order, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrInvalidID
	}
	order, err := s.orders.Delete(ctx, store.ID, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}
