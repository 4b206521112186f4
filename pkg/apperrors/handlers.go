package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of every error the API returns. The
// HTTP status carries the machine-readable signal; the body is only a
// localized message.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HandleError resolves err to an AppError (wrapping unknown errors as
// internal) and writes the JSON error response.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("server error: %v", appErr)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Message: appErr.Message})
}

// AsAppError attempts to convert err to *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
