package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// OrderRepository persists placed orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id, userID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
