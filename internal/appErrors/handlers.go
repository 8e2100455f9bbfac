package appErrors

import (
	"net/http"

	"tarokatalog_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке: объект error с кодом,
// сообщением и деталями.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError - обработка ошибок для Gin контекста
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", err)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// HandleUnknownError - обертка для ошибок, не являющихся *AppError
func HandleUnknownError(c *gin.Context, err error) {
	var appErr *AppError
	if As(err, &appErr) {
		HandleError(c, appErr)
		return
	}
	HandleError(c, InternalError(err))
}

// HandleValidationError - специальный обработчик для ошибок валидации
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ErrValidationFailed.WithDetails(gin.H{"details": err.Error()}))
}

// Abort - прерывает цепочку middleware с ошибкой
func Abort(c *gin.Context, err *AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, ErrorResponse{Error: err})
}

// StatusOf возвращает HTTP статус ошибки (500 для неизвестных)
func StatusOf(err error) int {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.HTTPCode
	}
	return http.StatusInternalServerError
}
