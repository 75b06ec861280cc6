package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggerStructured логирует каждый запрос одной строкой:
// метод, путь, протокол, статус, время выполнения, IP клиента, ID запроса и ошибки.
func LoggerStructured() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Printf("[%s] %s %s %d %v %s request_id=%s %s",
			c.Request.Method,
			path,
			c.Request.Proto,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			c.GetString(ContextRequestIDKey),
			c.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}
