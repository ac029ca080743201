package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-catalog-service/internal/domain/dto"
	"github.com/guttosm/book-catalog-service/internal/middleware"
)

// jsonContentType is the content type for raw cached payload responses.
const jsonContentType = "application/json; charset=utf-8"

// abortWithError writes a standardized error response and aborts the chain.
// The underlying error, when present, is attached to the gin context so the
// error handler middleware logs it.
func abortWithError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}

	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(c))
	c.AbortWithStatusJSON(statusCode, resp)
}

// abortNotFound writes the fixed 404 response used by all lookup misses.
func abortNotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, "Item not found", nil)
}

// abortValidation writes a 422 for request bodies or parameters that failed
// binding validation.
func abortValidation(c *gin.Context, err error) {
	abortWithError(c, http.StatusUnprocessableEntity, err.Error(), err)
}

// BuildRequest binds the JSON request body into T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
