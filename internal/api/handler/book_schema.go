package handler

import (
	"time"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type createBookRequest struct {
	Title         string  `json:"title"          validate:"required,max=200"`
	Author        string  `json:"author"         validate:"required,max=100"`
	ISBN          string  `json:"isbn"           validate:"required,numeric,len=10|len=13"`
	Description   string  `json:"description"    validate:"omitempty,max=1000"`
	Genre         string  `json:"genre"          validate:"omitempty,max=50"`
	Price         float64 `json:"price"          validate:"required,gt=0"`
	Stock         int     `json:"stock"          validate:"gte=0"`
	PublishedYear int     `json:"published_year" validate:"required,gte=1000"`
}

type updateBookRequest struct {
	Title         *string  `json:"title"          validate:"omitempty,max=200"`
	Author        *string  `json:"author"         validate:"omitempty,max=100"`
	Description   *string  `json:"description"    validate:"omitempty,max=1000"`
	Genre         *string  `json:"genre"          validate:"omitempty,max=50"`
	Price         *float64 `json:"price"          validate:"omitempty,gt=0"`
	Stock         *int     `json:"stock"          validate:"omitempty,gte=0"`
	PublishedYear *int     `json:"published_year" validate:"omitempty,gte=1000"`
	Available     *bool    `json:"available"`
}

type listBooksParams struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Search    string `query:"search"`
	Author    string `query:"author"`
	Available string `query:"available"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
}

type bookResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	Description   string    `json:"description,omitempty"`
	Genre         string    `json:"genre,omitempty"`
	Price         float64   `json:"price"`
	Stock         int       `json:"stock"`
	PublishedYear int       `json:"published_year"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		Description:   b.Description,
		Genre:         b.Genre,
		Price:         b.Price,
		Stock:         b.Stock,
		PublishedYear: b.PublishedYear,
		Available:     b.Available,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listBooksResponse struct {
	Success    bool               `json:"success"`
	Data       []bookResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
