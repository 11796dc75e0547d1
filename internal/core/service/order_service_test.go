package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

func orderFixture(t *testing.T) (*OrderService, *BookService, *stubBookRepo) {
	t.Helper()
	books := newStubBookRepo()
	return NewOrderService(newStubOrderRepo(), books), NewBookService(books), books
}

func TestOrderService_Create_TotalFromSnapshotPrices(t *testing.T) {
	orders, bookSvc, _ := orderFixture(t)
	a := createBook(t, bookSvc, "seller", "A", "1111111111", 10.50, 5)
	b := createBook(t, bookSvc, "seller", "B", "2222222222", 4.25, 5)

	order, err := orders.Create(context.Background(), ports.CreateOrderInput{
		UserID: "buyer",
		Items: []ports.OrderItemInput{
			{BookID: a.ID, Quantity: 2},
			{BookID: b.ID, Quantity: 3},
		},
		ShippingAddress: domain.ShippingAddress{Street: "1 Main St", City: "Springfield", ZipCode: "12345", Country: "US"},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	want := 2*10.50 + 3*4.25
	if math.Abs(order.Total-want) > 1e-9 {
		t.Fatalf("total %.2f, want %.2f", order.Total, want)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("new order status %s, want pending", order.Status)
	}
	if len(order.Items) != 2 || order.Items[0].UnitPrice != 10.50 || order.Items[0].Title != "A" {
		t.Fatalf("items should snapshot title and unit price: %+v", order.Items)
	}
}

func TestOrderService_Create_DecrementsStock(t *testing.T) {
	orders, bookSvc, books := orderFixture(t)
	book := createBook(t, bookSvc, "seller", "A", "1111111111", 10, 3)

	_, err := orders.Create(context.Background(), ports.CreateOrderInput{
		UserID: "buyer",
		Items:  []ports.OrderItemInput{{BookID: book.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	left, _ := books.FindAnyByID(context.Background(), book.ID)
	if left.Stock != 0 || left.Available {
		t.Fatalf("stock should be exhausted: %+v", left)
	}
}

func TestOrderService_Create_EmptyOrder(t *testing.T) {
	orders, _, _ := orderFixture(t)

	if _, err := orders.Create(context.Background(), ports.CreateOrderInput{UserID: "buyer"}); !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderService_Create_ZeroQuantity(t *testing.T) {
	orders, bookSvc, _ := orderFixture(t)
	book := createBook(t, bookSvc, "seller", "A", "1111111111", 10, 3)

	_, err := orders.Create(context.Background(), ports.CreateOrderInput{
		UserID: "buyer",
		Items:  []ports.OrderItemInput{{BookID: book.ID, Quantity: 0}},
	})
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderService_Create_UnknownBook(t *testing.T) {
	orders, _, _ := orderFixture(t)

	_, err := orders.Create(context.Background(), ports.CreateOrderInput{
		UserID: "buyer",
		Items:  []ports.OrderItemInput{{BookID: "missing", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestOrderService_Create_InsufficientStock(t *testing.T) {
	orders, bookSvc, _ := orderFixture(t)
	book := createBook(t, bookSvc, "seller", "A", "1111111111", 10, 2)

	_, err := orders.Create(context.Background(), ports.CreateOrderInput{
		UserID: "buyer",
		Items:  []ports.OrderItemInput{{BookID: book.ID, Quantity: 5}},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestOrderService_Create_FailedLineLeavesStockUntouched(t *testing.T) {
	orders, bookSvc, books := orderFixture(t)
	a := createBook(t, bookSvc, "seller", "A", "1111111111", 10, 5)
	b := createBook(t, bookSvc, "seller", "B", "2222222222", 4, 1)

	_, err := orders.Create(context.Background(), ports.CreateOrderInput{
		UserID: "buyer",
		Items: []ports.OrderItemInput{
			{BookID: a.ID, Quantity: 3},
			{BookID: b.ID, Quantity: 2},
		},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	left, _ := books.FindAnyByID(context.Background(), a.ID)
	if left.Stock != 5 {
		t.Fatalf("stock of A after failed order: %d, want 5", left.Stock)
	}
}

func TestOrderService_Create_UnknownLineLeavesStockUntouched(t *testing.T) {
	orders, bookSvc, books := orderFixture(t)
	a := createBook(t, bookSvc, "seller", "A", "1111111111", 10, 5)

	_, err := orders.Create(context.Background(), ports.CreateOrderInput{
		UserID: "buyer",
		Items: []ports.OrderItemInput{
			{BookID: a.ID, Quantity: 3},
			{BookID: "missing", Quantity: 1},
		},
	})
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}

	left, _ := books.FindAnyByID(context.Background(), a.ID)
	if left.Stock != 5 {
		t.Fatalf("stock of A after failed order: %d, want 5", left.Stock)
	}
}

func TestOrderService_Create_RollsBackOnLateDecrementFailure(t *testing.T) {
	orders, bookSvc, books := orderFixture(t)
	a := createBook(t, bookSvc, "seller", "A", "1111111111", 10, 3)

	// Both lines pass validation individually, but together they exceed
	// stock, so the second decrement fails and the first must be undone.
	_, err := orders.Create(context.Background(), ports.CreateOrderInput{
		UserID: "buyer",
		Items: []ports.OrderItemInput{
			{BookID: a.ID, Quantity: 2},
			{BookID: a.ID, Quantity: 2},
		},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	left, _ := books.FindAnyByID(context.Background(), a.ID)
	if left.Stock != 3 {
		t.Fatalf("stock of A after rollback: %d, want 3", left.Stock)
	}
}

func TestOrderService_Get_ScopedToBuyer(t *testing.T) {
	orders, bookSvc, _ := orderFixture(t)
	book := createBook(t, bookSvc, "seller", "A", "1111111111", 10, 5)

	placed, err := orders.Create(context.Background(), ports.CreateOrderInput{
		UserID: "buyer",
		Items:  []ports.OrderItemInput{{BookID: book.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if _, err := orders.Get(context.Background(), placed.ID, "other"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("another user must not see the order, got %v", err)
	}
	if _, err := orders.Get(context.Background(), placed.ID, "buyer"); err != nil {
		t.Fatalf("buyer lookup failed: %v", err)
	}
}

func TestOrderService_ListMine(t *testing.T) {
	orders, bookSvc, _ := orderFixture(t)
	book := createBook(t, bookSvc, "seller", "A", "1111111111", 10, 10)

	for i := 0; i < 3; i++ {
		if _, err := orders.Create(context.Background(), ports.CreateOrderInput{
			UserID: "buyer",
			Items:  []ports.OrderItemInput{{BookID: book.ID, Quantity: 1}},
		}); err != nil {
			t.Fatalf("create order %d: %v", i, err)
		}
	}

	mine, err := orders.ListMine(context.Background(), "buyer")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(mine))
	}
	if others, _ := orders.ListMine(context.Background(), "other"); len(others) != 0 {
		t.Fatalf("other user should have no orders")
	}
}
