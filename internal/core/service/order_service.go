package service

import (
	"context"
	"time"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// OrderService places and reads orders. The total is always derived from
// snapshot unit prices, never from client input.
type OrderService struct {
	orders ports.OrderRepository
	books  ports.BookRepository
}

func NewOrderService(orders ports.OrderRepository, books ports.BookRepository) *OrderService {
	return &OrderService{orders: orders, books: books}
}

func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	// Snapshot and validate every line before touching stock, so a bad line
	// never leaves earlier lines decremented.
	var total float64
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, domain.ErrEmptyOrder
		}
		book, err := s.books.FindAnyByID(ctx, it.BookID)
		if err != nil {
			return nil, err
		}
		if book.Stock < it.Quantity {
			return nil, domain.ErrInsufficientStock
		}

		total += book.Price * float64(it.Quantity)
		items = append(items, domain.OrderItem{
			BookID:    book.ID,
			Title:     book.Title,
			Quantity:  it.Quantity,
			UnitPrice: book.Price,
		})
	}

	// A concurrent order can still win a book between validation and
	// decrement; restore whatever was already taken before reporting it.
	for i, it := range items {
		if err := s.books.DecrementStock(ctx, it.BookID, it.Quantity); err != nil {
			for _, done := range items[:i] {
				_ = s.books.RestoreStock(ctx, done.BookID, done.Quantity)
			}
			return nil, err
		}
	}

	now := time.Now().UTC()
	return s.orders.Create(ctx, &domain.Order{
		UserID:          in.UserID,
		Items:           items,
		Total:           total,
		Status:          domain.OrderPending,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

func (s *OrderService) Get(ctx context.Context, id, userID string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id, userID)
}

func (s *OrderService) ListMine(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
