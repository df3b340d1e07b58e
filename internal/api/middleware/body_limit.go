package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit limita o tamanho do corpo da requisição.
// maxBytes: máximo permitido em bytes (ex.: 1<<20 = 1MB)
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
