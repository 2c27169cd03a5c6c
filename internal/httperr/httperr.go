package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError maps use case errors onto HTTP responses: business errors are
// 422 (409 for capacity), record-not-found is 404, anything else is a
// generic 500 without leaking storage detail.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		status := http.StatusUnprocessableEntity
		switch be.Code {
		case "day_capacity_reached", "slot_capacity_reached":
			status = http.StatusConflict
		}
		c.JSON(status, HTTPError{
			Code:    be.Code,
			Message: be.Message,
			Field:   be.Field,
		})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "not_found", "Resource not found.")
		return
	}

	Internal(c, "internal_error", "Unexpected error.")
}
