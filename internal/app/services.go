// Package app provides service initialization.
package app

import (
	"github.com/guttosm/book-catalog-service/internal/domain/model"
	"github.com/guttosm/book-catalog-service/internal/repository"
	"github.com/guttosm/book-catalog-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Books service.BookService
}

// InitializeServices initializes the catalog and its service, pre-loaded with
// the demo books.
func InitializeServices() *ServiceComponents {
	catalog := repository.NewCatalog()
	for _, b := range repository.SeedBooks() {
		catalog.Insert(model.Book{
			Title:         b.Title,
			Author:        b.Author,
			Description:   b.Description,
			Rating:        b.Rating,
			PublishedDate: b.PublishedDate,
		})
	}

	return &ServiceComponents{
		Books: service.NewBookService(catalog),
	}
}
