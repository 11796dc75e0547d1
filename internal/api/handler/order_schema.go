package handler

import (
	"time"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type orderItemRequest struct {
	BookID   string `json:"book_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type shippingAddressRequest struct {
	Street  string `json:"street"   validate:"required"`
	City    string `json:"city"     validate:"required"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country"  validate:"required"`
}

type createOrderRequest struct {
	Items           []orderItemRequest     `json:"items"            validate:"required,min=1,dive"`
	ShippingAddress shippingAddressRequest `json:"shipping_address" validate:"required"`
}

type orderItemResponse struct {
	BookID    string  `json:"book_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type orderResponse struct {
	ID              string                 `json:"id"`
	Items           []orderItemResponse    `json:"items"`
	Total           float64                `json:"total"`
	Status          string                 `json:"status"`
	ShippingAddress shippingAddressRequest `json:"shipping_address"`
	CreatedAt       time.Time              `json:"created_at"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse(it))
	}
	return orderResponse{
		ID:              o.ID,
		Items:           items,
		Total:           o.Total,
		Status:          string(o.Status),
		ShippingAddress: shippingAddressRequest(o.ShippingAddress),
		CreatedAt:       o.CreatedAt,
	}
}
