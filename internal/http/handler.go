package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-catalog-service/internal/cache"
	"github.com/guttosm/book-catalog-service/internal/domain/dto"
	"github.com/guttosm/book-catalog-service/internal/domain/model"
	"github.com/guttosm/book-catalog-service/internal/repository"
	"github.com/guttosm/book-catalog-service/internal/service"
)

// encodeBook serializes a single book via its explicit field mapping.
func encodeBook(b model.Book) ([]byte, error) {
	return json.Marshal(b.Fields())
}

// encodeBooks serializes an ordered book list via the explicit field mapping.
func encodeBooks(books []model.Book) ([]byte, error) {
	return json.Marshal(model.FieldsList(books))
}

// Handler provides HTTP handlers for the book catalog routes.
//
// The list, rating-filter, and create operations go through per-operation
// response caches; get-by-id, publish-date-filter, update, and delete always
// hit the live catalog.
type Handler struct {
	books       service.BookService
	listCache   *cache.Cached[[]model.Book]
	ratingCache *cache.Cached[[]model.Book]
	createCache *cache.Cached[model.Book]
}

// NewHandler creates a Handler whose cached operations store responses in the
// given store for ttl.
func NewHandler(books service.BookService, store cache.KeyValueStore, ttl time.Duration) *Handler {
	return &Handler{
		books:       books,
		listCache:   cache.NewCached(store, "read_all_books", encodeBooks, ttl),
		ratingCache: cache.NewCached(store, "read_book_by_rating", encodeBooks, ttl),
		createCache: cache.NewCached(store, "create_book", encodeBook, ttl),
	}
}

// ListBooks handles GET /books requests.
//
// Without a book_rating query parameter it returns the full catalog; with one
// it returns books rated at or below the given value. Both variants are
// served through the response cache.
//
// @Summary      List books
// @Description  Returns all books, or books with rating less than or equal to book_rating when the query parameter is present. Responses are cached.
// @Tags         Books
// @Produce      json
// @Param        book_rating query int false "Maximum rating (1-5)" minimum(1) maximum(5)
// @Success      200 {array} model.Book
// @Failure      422 {object} dto.ErrorResponse "Validation error"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /books [get]
func (h *Handler) ListBooks(c *gin.Context) {
	if _, present := c.GetQuery("book_rating"); present {
		h.listByRating(c)
		return
	}

	payload, _, err := h.listCache.Do(c.Request.Context(), nil, func(ctx context.Context) ([]model.Book, error) {
		return h.books.List(), nil
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Cache backend error", err)
		return
	}

	c.Data(http.StatusOK, jsonContentType, payload)
}

// listByRating serves the book_rating variant of GET /books.
func (h *Handler) listByRating(c *gin.Context) {
	var q dto.RatingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortValidation(c, err)
		return
	}

	args := []cache.Arg{cache.Named("book_rating", q.BookRating)}
	payload, _, err := h.ratingCache.Do(c.Request.Context(), args, func(ctx context.Context) ([]model.Book, error) {
		return h.books.FilterByRating(q.BookRating), nil
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Cache backend error", err)
		return
	}

	c.Data(http.StatusOK, jsonContentType, payload)
}

// BooksByPublishDate handles GET /books/publish requests. Never cached.
//
// @Summary      List books by publication year
// @Description  Returns books published in exactly the given year.
// @Tags         Books
// @Produce      json
// @Param        published_date query int true "Publication year (2000-2030)" minimum(2000) maximum(2030)
// @Success      200 {array} model.Book
// @Failure      422 {object} dto.ErrorResponse "Validation error"
// @Router       /books/publish [get]
func (h *Handler) BooksByPublishDate(c *gin.Context) {
	var q dto.PublishedDateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortValidation(c, err)
		return
	}

	c.JSON(http.StatusOK, h.books.FilterByPublishedDate(q.PublishedDate))
}

// GetBook handles GET /books/{book_id} requests. Never cached.
//
// @Summary      Get a book by id
// @Tags         Books
// @Produce      json
// @Param        book_id path int true "Book id" minimum(1)
// @Success      200 {object} model.Book
// @Failure      404 {object} dto.ErrorResponse "Book not found"
// @Failure      422 {object} dto.ErrorResponse "Invalid book id"
// @Router       /books/{book_id} [get]
func (h *Handler) GetBook(c *gin.Context) {
	id, err := bookIDParam(c)
	if err != nil {
		abortValidation(c, err)
		return
	}

	book, err := h.books.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			abortNotFound(c)
			return
		}
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred", err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateBook handles POST /create-book requests.
//
// The operation is served through the response cache: a repeated identical
// request body within the TTL returns the previously created book and does
// NOT insert a new catalog entry. Inherited from the system this service
// replaces; clients depend on the response shape, so it stays.
//
// @Summary      Create a book
// @Tags         Books
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "Book to create"
// @Success      201 {object} model.Book
// @Failure      422 {object} dto.ErrorResponse "Validation error"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /create-book [post]
func (h *Handler) CreateBook(c *gin.Context) {
	req, err := BuildRequest[dto.BookRequest](c)
	if err != nil {
		abortValidation(c, err)
		return
	}

	args := []cache.Arg{cache.Pos(*req)}
	payload, _, err := h.createCache.Do(c.Request.Context(), args, func(ctx context.Context) (model.Book, error) {
		return h.books.Create(req.ToBook()), nil
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Cache backend error", err)
		return
	}

	c.Data(http.StatusCreated, jsonContentType, payload)
}

// UpdateBook handles PUT /books/update_book requests. Full replacement of the
// entry matching the body id; no partial-field semantics.
//
// @Summary      Update a book
// @Tags         Books
// @Accept       json
// @Param        request body dto.BookRequest true "Book with id to replace"
// @Success      204 "Updated"
// @Failure      404 {object} dto.ErrorResponse "Book not found"
// @Failure      422 {object} dto.ErrorResponse "Validation error"
// @Router       /books/update_book [put]
func (h *Handler) UpdateBook(c *gin.Context) {
	req, err := BuildRequest[dto.BookRequest](c)
	if err != nil {
		abortValidation(c, err)
		return
	}

	if err := h.books.Update(req.ToBook()); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			abortNotFound(c)
			return
		}
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBook handles DELETE /books/{book_id} requests.
//
// @Summary      Delete a book
// @Tags         Books
// @Param        book_id path int true "Book id" minimum(1)
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Book not found"
// @Failure      422 {object} dto.ErrorResponse "Invalid book id"
// @Router       /books/{book_id} [delete]
func (h *Handler) DeleteBook(c *gin.Context) {
	id, err := bookIDParam(c)
	if err != nil {
		abortValidation(c, err)
		return
	}

	if err := h.books.Delete(id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			abortNotFound(c)
			return
		}
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bookIDParam parses the book_id path parameter, which must be a positive integer.
func bookIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("book_id"))
	if err != nil {
		return 0, errors.New("book_id: must be an integer")
	}
	if id <= 0 {
		return 0, errors.New("book_id: must be greater than 0")
	}
	return id, nil
}
