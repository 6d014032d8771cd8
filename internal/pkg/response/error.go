package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deskhive/interview-booking-backend/internal/pkg/apperror"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes a JSON error reply. AppError values pick their own status
// code; anything else is treated as an internal error and its details are
// kept out of the response.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
