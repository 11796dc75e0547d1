package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type CreateBookInput struct {
	Title         string
	Author        string
	ISBN          string
	Description   string
	Genre         string
	Price         float64
	Stock         int
	PublishedYear int
	OwnerID       string
}

// UpdateBookInput carries a partial update; nil fields are left untouched.
type UpdateBookInput struct {
	ID            string
	OwnerID       string
	Title         *string
	Author        *string
	Description   *string
	Genre         *string
	Price         *float64
	Stock         *int
	PublishedYear *int
	Available     *bool
}

// BookListing is a page of books plus the total match count.
type BookListing struct {
	Books []domain.Book
	Total int64
	Page  int
	Limit int
}

type BookService interface {
	Create(ctx context.Context, in CreateBookInput) (*domain.Book, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Book, error)
	List(ctx context.Context, q ListBooksQuery) (*BookListing, error)
	Update(ctx context.Context, in UpdateBookInput) (*domain.Book, error)
	Delete(ctx context.Context, id, ownerID string) error
}
