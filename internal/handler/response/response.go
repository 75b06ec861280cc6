package response

import "github.com/gin-gonic/gin"

// ErrorBody описывает стандартный формат ошибки API.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody описывает ответ с текстовым подтверждением.
type MessageBody struct {
	Message string `json:"message"`
}

// Error отправляет JSON-ответ с ошибкой и прерывает цепочку обработчиков.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}

// Message отправляет JSON-ответ вида {"message": "..."}.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}
