package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-catalog-service/internal/domain/dto"
	"github.com/guttosm/book-catalog-service/internal/logger"
)

// Recovery returns a middleware that recovers from panics and returns a 500.
// The panic is logged together with the request ID.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log := logger.Logger()
				log.Error().
					Str("request_id", GetRequestID(c)).
					Interface("panic", err).
					Str("path", c.Request.URL.Path).
					Msg("PANIC recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   dto.ErrCodeInternal,
					Message: "An unexpected error occurred",
				})
			}
		}()
		c.Next()
	}
}
