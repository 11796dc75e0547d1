package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/api/metrics"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// BookHandler handles HTTP requests for catalogue operations.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /v1/books.
//
// @Summary      List books
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        page        query     int     false  "Page number"
// @Param        limit       query     int     false  "Page size"
// @Param        search      query     string  false  "Free-text search over title/author/genre/description"
// @Param        author      query     string  false  "Filter by author"
// @Param        available   query     bool    false  "Filter by availability"
// @Param        sort_by     query     string  false  "Sort field"
// @Param        sort_order  query     string  false  "asc or desc"
// @Success      200  {object}  listBooksResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/books [get]
func (h *BookHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var params listBooksParams
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	q := ports.ListBooksQuery{
		OwnerID:   identity.UserID,
		Search:    params.Search,
		Author:    params.Author,
		Page:      params.Page,
		Limit:     params.Limit,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
	}
	switch params.Available {
	case "true":
		v := true
		q.Available = &v
	case "false":
		v := false
		q.Available = &v
	}

	listing, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}

	books := make([]bookResponse, 0, len(listing.Books))
	for i := range listing.Books {
		books = append(books, toBookResponse(&listing.Books[i]))
	}

	totalPages := int((listing.Total + int64(listing.Limit) - 1) / int64(listing.Limit))
	return c.JSON(http.StatusOK, listBooksResponse{
		Success: true,
		Data:    books,
		Pagination: paginationResponse{
			Total:      listing.Total,
			Page:       listing.Page,
			Limit:      listing.Limit,
			TotalPages: totalPages,
		},
	})
}

// Get handles GET /v1/books/:id.
//
// @Summary      Get a book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  bookResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	book, err := h.service.Get(c.Request().Context(), c.Param("id"), identity.UserID)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, toBookResponse(book))
}

// Create handles POST /v1/books. Restricted to admin and author roles.
//
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookRequest  true  "Book details"
// @Success      201   {object}  bookResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/books [post]
func (h *BookHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	book, err := h.service.Create(c.Request().Context(), ports.CreateBookInput{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Description:   req.Description,
		Genre:         req.Genre,
		Price:         req.Price,
		Stock:         req.Stock,
		PublishedYear: req.PublishedYear,
		OwnerID:       identity.UserID,
	})
	if err != nil {
		return err
	}

	metrics.BooksCreatedTotal.Inc()
	return respondData(c, http.StatusCreated, toBookResponse(book))
}

// Update handles PUT /v1/books/:id.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Book id"
// @Param        body  body      updateBookRequest  true  "Fields to update"
// @Success      200   {object}  bookResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateBookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	book, err := h.service.Update(c.Request().Context(), ports.UpdateBookInput{
		ID:            c.Param("id"),
		OwnerID:       identity.UserID,
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Genre:         req.Genre,
		Price:         req.Price,
		Stock:         req.Stock,
		PublishedYear: req.PublishedYear,
		Available:     req.Available,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, toBookResponse(book))
}

// Delete handles DELETE /v1/books/:id.
//
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), identity.UserID); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Book deleted successfully")
}
