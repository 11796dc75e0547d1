package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// ListBooksQuery filters and paginates a book listing. OwnerID is always
// set: users only see their own catalogue.
type ListBooksQuery struct {
	OwnerID   string
	Search    string
	Author    string
	Available *bool
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// BookRepository persists catalogue entries. The isbn+created_by pair is
// unique and surfaces as domain.ErrDuplicateISBN on conflict.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id, ownerID string) (*domain.Book, error)
	List(ctx context.Context, q ListBooksQuery) ([]domain.Book, int64, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id, ownerID string) error
	// DecrementStock atomically reduces stock for a purchase and fails with
	// domain.ErrInsufficientStock when fewer than qty copies remain.
	DecrementStock(ctx context.Context, id string, qty int) error
	// RestoreStock returns qty copies to stock, undoing a decrement when
	// order placement fails partway through.
	RestoreStock(ctx context.Context, id string, qty int) error
	// FindAnyByID looks a book up without owner scoping, for order placement.
	FindAnyByID(ctx context.Context, id string) (*domain.Book, error)
}
