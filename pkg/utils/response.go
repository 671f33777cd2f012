package utils

import (
	"github.com/gin-gonic/gin"

	appErrors "segura-mente/pkg/errors"
)

// Response is the single envelope used by every endpoint. Optional fields are
// omitted when empty so the payload shape stays predictable.
type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    interface{}            `json:"data,omitempty"`
	Errors  []appErrors.FieldError `json:"errors,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessResponseWith renders a success envelope with additional top-level
// fields, e.g. token and user on login or alreadyVerified on re-verification.
func SuccessResponseWith(c *gin.Context, status int, message string, extra map[string]interface{}) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// ErrorResponseWith renders a failure envelope with additional top-level
// fields, e.g. emailNotVerified on a gated login.
func ErrorResponseWith(c *gin.Context, status int, message string, extra map[string]interface{}) {
	body := gin.H{
		"success": false,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

func ValidationErrorResponse(c *gin.Context, status int, fieldErrors []appErrors.FieldError) {
	c.JSON(status, Response{
		Success: false,
		Message: "Validation errors",
		Errors:  fieldErrors,
	})
}
