package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jovanyvelez/ejemplos/internal/domain/ports"
)

const (
	// RequestIDContextKey es la clave del request id en el contexto de Gin
	RequestIDContextKey = "request_id"
	// RequestIDHeader es el header de respuesta con el request id
	RequestIDHeader = "X-Request-ID"
)

// RequestID asigna un identificador único a cada petición, lo expone en el
// header de respuesta y registra la petición completada
func RequestID(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()

		logger.Info("request completed",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
