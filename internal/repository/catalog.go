// Package repository provides the in-memory catalog store.
package repository

import (
	"errors"
	"sync"

	"github.com/guttosm/book-catalog-service/internal/domain/model"
	"github.com/guttosm/book-catalog-service/internal/metrics"
)

// ErrBookNotFound is returned when no catalog entry matches the requested id.
var ErrBookNotFound = errors.New("book not found")

// Catalog is an ordered, mutex-guarded in-memory collection of books.
//
// It owns id assignment: a new book gets id 1 when the catalog is empty,
// otherwise last entry's id + 1. That policy reuses ids after the last entry
// is deleted (delete book 3 of [1 2 3], create, and the new book is 3 again).
// The behavior is intentional compatibility with the system this service
// replaces; callers must not treat ids as permanently unique.
type Catalog struct {
	mu    sync.RWMutex
	books []model.Book
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{books: []model.Book{}}
}

// SeedBooks returns the demo catalog content. Used by tests and local runs.
func SeedBooks() []model.Book {
	return []model.Book{
		{ID: 1, Title: "Computer Science Pro", Author: "codingwithroby", Description: "A very nice book!", Rating: 5, PublishedDate: 2030},
		{ID: 2, Title: "Be Fast with FastAPI", Author: "codingwithroby", Description: "A great book!", Rating: 5, PublishedDate: 2030},
		{ID: 3, Title: "Master Endpoints", Author: "codingwithroby", Description: "A awesome book!", Rating: 5, PublishedDate: 2029},
		{ID: 4, Title: "HP1", Author: "Author 1", Description: "Book Description", Rating: 2, PublishedDate: 2028},
		{ID: 5, Title: "HP2", Author: "Author 2", Description: "Book Description", Rating: 3, PublishedDate: 2027},
		{ID: 6, Title: "HP3", Author: "Author 3", Description: "Book Description", Rating: 1, PublishedDate: 2026},
	}
}

// List returns a snapshot of the catalog in insertion order.
func (c *Catalog) List() []model.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Book, len(c.books))
	copy(out, c.books)
	return out
}

// FindByID returns the first book with the given id.
// Returns ErrBookNotFound when no entry matches.
func (c *Catalog) FindByID(id int) (model.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, b := range c.books {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Book{}, ErrBookNotFound
}

// FilterByMaxRating returns all books with rating less than or equal to the
// given value, in insertion order.
func (c *Catalog) FilterByMaxRating(rating int) []model.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Book, 0)
	for _, b := range c.books {
		if b.Rating <= rating {
			out = append(out, b)
		}
	}
	return out
}

// FilterByPublishedDate returns all books published in exactly the given year,
// in insertion order.
func (c *Catalog) FilterByPublishedDate(year int) []model.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Book, 0)
	for _, b := range c.books {
		if b.PublishedDate == year {
			out = append(out, b)
		}
	}
	return out
}

// Insert appends a book, assigning its id from the current last entry.
// Returns the stored book with its assigned id.
func (c *Catalog) Insert(book model.Book) model.Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.books) == 0 {
		book.ID = 1
	} else {
		book.ID = c.books[len(c.books)-1].ID + 1
	}
	c.books = append(c.books, book)
	metrics.SetCatalogSize(len(c.books))
	return book
}

// Replace swaps the first entry whose id matches book.ID with the given book.
// Full replacement; there are no partial-field update semantics.
// Returns ErrBookNotFound when no entry matches.
func (c *Catalog) Replace(book model.Book) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.books {
		if c.books[i].ID == book.ID {
			c.books[i] = book
			return nil
		}
	}
	return ErrBookNotFound
}

// Remove deletes the first entry with the given id.
// Returns ErrBookNotFound when no entry matches.
func (c *Catalog) Remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.books {
		if c.books[i].ID == id {
			c.books = append(c.books[:i], c.books[i+1:]...)
			metrics.SetCatalogSize(len(c.books))
			return nil
		}
	}
	return ErrBookNotFound
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}
