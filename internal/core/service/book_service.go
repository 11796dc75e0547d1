package service

import (
	"context"
	"strings"
	"time"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// sortableFields are the only fields a listing may be ordered by; anything
// else falls back to created_at.
var sortableFields = map[string]bool{
	"title":          true,
	"author":         true,
	"price":          true,
	"created_at":     true,
	"published_year": true,
}

// BookService implements catalogue CRUD. Every operation is scoped to the
// owning user; one user's books are invisible to another's listing.
type BookService struct {
	repo ports.BookRepository
}

func NewBookService(repo ports.BookRepository) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) Create(ctx context.Context, in ports.CreateBookInput) (*domain.Book, error) {
	now := time.Now().UTC()
	book := &domain.Book{
		Title:         strings.TrimSpace(in.Title),
		Author:        strings.TrimSpace(in.Author),
		ISBN:          strings.TrimSpace(in.ISBN),
		Description:   in.Description,
		Genre:         in.Genre,
		Price:         in.Price,
		Stock:         in.Stock,
		PublishedYear: in.PublishedYear,
		Available:     in.Stock > 0,
		CreatedBy:     in.OwnerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return s.repo.Create(ctx, book)
}

func (s *BookService) Get(ctx context.Context, id, ownerID string) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id, ownerID)
}

func (s *BookService) List(ctx context.Context, q ports.ListBooksQuery) (*ports.BookListing, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	if !sortableFields[q.SortBy] {
		q.SortBy = "created_at"
	}
	if q.SortOrder != "asc" {
		q.SortOrder = "desc"
	}

	books, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &ports.BookListing{Books: books, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *BookService) Update(ctx context.Context, in ports.UpdateBookInput) (*domain.Book, error) {
	book, err := s.repo.FindByID(ctx, in.ID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		book.Title = strings.TrimSpace(*in.Title)
	}
	if in.Author != nil {
		book.Author = strings.TrimSpace(*in.Author)
	}
	if in.Description != nil {
		book.Description = *in.Description
	}
	if in.Genre != nil {
		book.Genre = *in.Genre
	}
	if in.Price != nil {
		book.Price = *in.Price
	}
	if in.Stock != nil {
		book.Stock = *in.Stock
		book.Available = *in.Stock > 0
	}
	if in.PublishedYear != nil {
		book.PublishedYear = *in.PublishedYear
	}
	if in.Available != nil {
		book.Available = *in.Available
	}
	book.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id, ownerID string) error {
	return s.repo.Delete(ctx, id, ownerID)
}
