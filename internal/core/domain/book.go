package domain

import (
	"errors"
	"time"
)

var ErrBookNotFound = errors.New("book not found")
var ErrDuplicateISBN = errors.New("book with this ISBN already exists")

// Book is a catalogue entry. Books are scoped to the user that created them;
// the isbn+created_by pair is unique, not the isbn alone.
type Book struct {
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
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
