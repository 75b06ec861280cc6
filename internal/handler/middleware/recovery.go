package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"exercise-api/internal/handler/response"
)

// Recovery перехватывает панику в обработчиках и отвечает 500
// в общем формате ошибок API.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Printf("[PANIC] %s %s from %s request_id=%s: %v\n%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.GetString(ContextRequestIDKey),
			recovered,
			debug.Stack(),
		)

		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	})
}
