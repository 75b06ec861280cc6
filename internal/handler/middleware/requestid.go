package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID задаёт заголовок, в котором передаётся идентификатор запроса.
	HeaderRequestID = "X-Request-ID"

	// ContextRequestIDKey задаёт ключ идентификатора запроса в контексте Gin.
	ContextRequestIDKey = "requestID"
)

// maxRequestIDLength ограничивает длину идентификатора, пришедшего от клиента.
const maxRequestIDLength = 128

// RequestID присваивает каждому запросу идентификатор.
// Идентификатор клиента из X-Request-ID сохраняется, иначе генерируется UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(ContextRequestIDKey, id)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
