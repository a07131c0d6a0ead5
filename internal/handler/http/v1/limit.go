package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware ограничивает размер тела запроса.
// Запрос с известной длиной сверх лимита отклоняется сразу, остальные обрезаются при чтении.
func BodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
