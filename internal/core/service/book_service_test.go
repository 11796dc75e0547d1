package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

func createBook(t *testing.T, svc *BookService, owner, title, isbn string, price float64, stock int) *domain.Book {
	t.Helper()
	book, err := svc.Create(context.Background(), ports.CreateBookInput{
		Title:   title,
		Author:  "Author",
		ISBN:    isbn,
		Price:   price,
		Stock:   stock,
		OwnerID: owner,
	})
	if err != nil {
		t.Fatalf("create book %s: %v", title, err)
	}
	return book
}

func TestBookService_Create_AvailabilityFollowsStock(t *testing.T) {
	svc := NewBookService(newStubBookRepo())

	inStock := createBook(t, svc, "u1", "Stocked", "1111111111", 9.99, 3)
	if !inStock.Available {
		t.Fatalf("book with stock should be available")
	}

	outOfStock := createBook(t, svc, "u1", "Empty", "2222222222", 9.99, 0)
	if outOfStock.Available {
		t.Fatalf("book without stock should not be available")
	}
}

func TestBookService_Create_DuplicateISBNPerOwner(t *testing.T) {
	svc := NewBookService(newStubBookRepo())

	createBook(t, svc, "u1", "First", "1111111111", 9.99, 1)
	_, err := svc.Create(context.Background(), ports.CreateBookInput{
		Title: "Second", Author: "A", ISBN: "1111111111", Price: 5, Stock: 1, OwnerID: "u1",
	})
	if !errors.Is(err, domain.ErrDuplicateISBN) {
		t.Fatalf("expected ErrDuplicateISBN, got %v", err)
	}

	// Another owner may list the same ISBN.
	if _, err := svc.Create(context.Background(), ports.CreateBookInput{
		Title: "Third", Author: "A", ISBN: "1111111111", Price: 5, Stock: 1, OwnerID: "u2",
	}); err != nil {
		t.Fatalf("same isbn for another owner should pass: %v", err)
	}
}

func TestBookService_Get_ScopedToOwner(t *testing.T) {
	svc := NewBookService(newStubBookRepo())
	book := createBook(t, svc, "u1", "Mine", "1111111111", 9.99, 1)

	if _, err := svc.Get(context.Background(), book.ID, "u2"); !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("another owner must not see the book, got %v", err)
	}
	if _, err := svc.Get(context.Background(), book.ID, "u1"); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
}

func TestBookService_List_DefaultsPagination(t *testing.T) {
	svc := NewBookService(newStubBookRepo())
	createBook(t, svc, "u1", "One", "1111111111", 9.99, 1)
	createBook(t, svc, "u1", "Two", "2222222222", 9.99, 1)

	listing, err := svc.List(context.Background(), ports.ListBooksQuery{OwnerID: "u1", Page: 0, Limit: -5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if listing.Page != 1 || listing.Limit != defaultPageLimit {
		t.Fatalf("expected defaults page=1 limit=%d, got page=%d limit=%d", defaultPageLimit, listing.Page, listing.Limit)
	}
	if listing.Total != 2 {
		t.Fatalf("expected total 2, got %d", listing.Total)
	}
}

func TestBookService_List_CapsLimit(t *testing.T) {
	svc := NewBookService(newStubBookRepo())

	listing, err := svc.List(context.Background(), ports.ListBooksQuery{OwnerID: "u1", Limit: 10_000})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if listing.Limit != maxPageLimit {
		t.Fatalf("limit should cap at %d, got %d", maxPageLimit, listing.Limit)
	}
}

func TestBookService_List_SortFieldWhitelist(t *testing.T) {
	repo := newStubBookRepo()
	svc := NewBookService(repo)

	if _, err := svc.List(context.Background(), ports.ListBooksQuery{OwnerID: "u1", SortBy: "password_hash"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastList.SortBy != "created_at" {
		t.Fatalf("unknown sort field should fall back to created_at, got %q", repo.lastList.SortBy)
	}

	if _, err := svc.List(context.Background(), ports.ListBooksQuery{OwnerID: "u1", SortBy: "price"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastList.SortBy != "price" {
		t.Fatalf("known sort field should pass through, got %q", repo.lastList.SortBy)
	}
}

func TestBookService_Update_PartialPatch(t *testing.T) {
	svc := NewBookService(newStubBookRepo())
	book := createBook(t, svc, "u1", "Before", "1111111111", 9.99, 5)

	newStock := 0
	updated, err := svc.Update(context.Background(), ports.UpdateBookInput{
		ID:      book.ID,
		OwnerID: "u1",
		Stock:   &newStock,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Before" {
		t.Fatalf("untouched field changed: %s", updated.Title)
	}
	if updated.Stock != 0 || updated.Available {
		t.Fatalf("stock patch should zero stock and availability: %+v", updated)
	}
}

func TestBookService_Delete_ScopedToOwner(t *testing.T) {
	svc := NewBookService(newStubBookRepo())
	book := createBook(t, svc, "u1", "Gone", "1111111111", 9.99, 1)

	if err := svc.Delete(context.Background(), book.ID, "u2"); !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("another owner must not delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), book.ID, "u1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), book.ID, "u1"); !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("book should be gone, got %v", err)
	}
}
