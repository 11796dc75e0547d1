package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/api/metrics"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /v1/orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{BookID: it.BookID, Quantity: it.Quantity})
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:          identity.UserID,
		Items:           items,
		ShippingAddress: domain.ShippingAddress(req.ShippingAddress),
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderValue.Observe(order.Total)
	return respondData(c, http.StatusCreated, toOrderResponse(order))
}

// List handles GET /v1/orders, returning the caller's orders newest first.
//
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  []orderResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListMine(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return respondData(c, http.StatusOK, out)
}

// Get handles GET /v1/orders/:id.
//
// @Summary      Get one of my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), c.Param("id"), identity.UserID)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, toOrderResponse(order))
}
