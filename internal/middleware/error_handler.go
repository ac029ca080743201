package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-catalog-service/internal/domain/dto"
	"github.com/guttosm/book-catalog-service/internal/logger"
)

// ErrorHandler returns a middleware that logs errors attached to the gin
// context after the handler chain ran. If a handler recorded an error but
// never wrote a response, a generic 500 is emitted.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			errorResp := dto.NewError(dto.ErrCodeInternal, "An unexpected error occurred").
				WithRequestID(requestID)
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
