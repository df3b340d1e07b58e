package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen limita o tamanho do Request-ID vindo de fora,
// evitando injeção nos logs
const requestIDMaxLen = 64

// RequestID middleware de rastreamento de requisições.
// Lê o cabeçalho X-Request-ID; ausente ou inválido, gera um UUID.
// O valor vai para o gin.Context e para o cabeçalho de resposta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
