// Package service contains the business logic for the book catalog service.
package service

import (
	"github.com/guttosm/book-catalog-service/internal/domain/model"
	"github.com/guttosm/book-catalog-service/internal/repository"
)

// BookService defines the catalog operations exposed to the HTTP layer.
type BookService interface {
	// List returns all books in insertion order.
	List() []model.Book

	// FilterByRating returns books with rating less than or equal to rating.
	FilterByRating(rating int) []model.Book

	// FilterByPublishedDate returns books published in exactly the given year.
	FilterByPublishedDate(year int) []model.Book

	// Get returns the book with the given id, or repository.ErrBookNotFound.
	Get(id int) (model.Book, error)

	// Create inserts a book and returns it with its assigned id.
	Create(book model.Book) model.Book

	// Update replaces the book matching book.ID in full, or returns
	// repository.ErrBookNotFound.
	Update(book model.Book) error

	// Delete removes the book with the given id, or returns
	// repository.ErrBookNotFound.
	Delete(id int) error
}

// bookService implements BookService on top of the in-memory catalog.
type bookService struct {
	catalog *repository.Catalog
}

// NewBookService creates a BookService backed by the given catalog.
func NewBookService(catalog *repository.Catalog) BookService {
	return &bookService{catalog: catalog}
}

func (s *bookService) List() []model.Book {
	return s.catalog.List()
}

func (s *bookService) FilterByRating(rating int) []model.Book {
	return s.catalog.FilterByMaxRating(rating)
}

func (s *bookService) FilterByPublishedDate(year int) []model.Book {
	return s.catalog.FilterByPublishedDate(year)
}

func (s *bookService) Get(id int) (model.Book, error) {
	return s.catalog.FindByID(id)
}

func (s *bookService) Create(book model.Book) model.Book {
	return s.catalog.Insert(book)
}

func (s *bookService) Update(book model.Book) error {
	return s.catalog.Replace(book)
}

func (s *bookService) Delete(id int) error {
	return s.catalog.Remove(id)
}
