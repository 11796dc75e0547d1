package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type OrderItemInput struct {
	BookID   string
	Quantity int
}

type CreateOrderInput struct {
	UserID          string
	Items           []OrderItemInput
	ShippingAddress domain.ShippingAddress
}

type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id, userID string) (*domain.Order, error)
	ListMine(ctx context.Context, userID string) ([]domain.Order, error)
}
