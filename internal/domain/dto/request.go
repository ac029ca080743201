// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry the field
// constraints enforced at the boundary. Violations surface as 422 responses
// through gin's binding mechanism, not through handler logic.
package dto

import "github.com/guttosm/book-catalog-service/internal/domain/model"

// BookRequest represents the JSON request body for creating or updating a book.
//
// ID is ignored on create (the catalog assigns it) and required on update.
//
// @Description Request body for book create and update operations
// @Example {"title": "A new book", "author": "codingwithroby", "description": "A new description of a book", "rating": 5, "published_date": 2029}
type BookRequest struct {
	// ID identifies the book to replace on update; ignored on create.
	ID int `json:"id,omitempty" example:"1"`
	// Title must be at least 3 characters.
	Title string `json:"title" binding:"required,min=3" example:"A new book" minLength:"3"`
	// Author must be non-empty.
	Author string `json:"author" binding:"required,min=1" example:"codingwithroby" minLength:"1"`
	// Description must be between 1 and 100 characters.
	Description string `json:"description" binding:"required,min=1,max=100" example:"A new description of a book" minLength:"1" maxLength:"100"`
	// Rating must be between 1 and 5.
	Rating int `json:"rating" binding:"required,gt=0,lt=6" example:"5" minimum:"1" maximum:"5"`
	// PublishedDate must be a year between 2000 and 2030.
	PublishedDate int `json:"published_date" binding:"required,gt=1999,lt=2031" example:"2029" minimum:"2000" maximum:"2030"`
} // @name BookRequest

// ToBook converts the request into a domain Book. The ID carries over; the
// catalog store overwrites it on insert.
func (r BookRequest) ToBook() model.Book {
	return model.Book{
		ID:            r.ID,
		Title:         r.Title,
		Author:        r.Author,
		Description:   r.Description,
		Rating:        r.Rating,
		PublishedDate: r.PublishedDate,
	}
}

// RatingQuery binds the book_rating query parameter for the rating filter
// endpoint. Bounds are strict: 0 and 6 are rejected.
type RatingQuery struct {
	BookRating int `form:"book_rating" binding:"required,gt=0,lt=6"`
}

// PublishedDateQuery binds the published_date query parameter for the
// publish-date filter endpoint.
type PublishedDateQuery struct {
	PublishedDate int `form:"published_date" binding:"required,gt=1999,lt=2031"`
}
