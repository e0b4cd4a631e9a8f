package apperrors

import (
	"homeserve_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the failure form of the response envelope.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// HandleError converts any error into the failure envelope. Only the
// AppError message reaches the client; causes of 5xx errors are logged.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "Server error", causeOf(appErr),
			"code", appErr.Code,
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Success: false, Message: appErr.Message})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func causeOf(e *AppError) error {
	if e.Err != nil {
		return e.Err
	}
	return e
}
