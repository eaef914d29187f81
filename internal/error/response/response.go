package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propertyops-http-service/internal/error/code"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string      `json:"error" example:"Validation failed"`
	Details interface{} `json:"details,omitempty" swaggertype:"object"`
}

// Success writes data with 200.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail writes the message and status registered for errorCode.
func Fail(c *gin.Context, errorCode int, details interface{}) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode), details)
}

// FailWithMessage writes a custom message with the status registered for errorCode.
func FailWithMessage(c *gin.Context, errorCode int, message string, details interface{}) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// NotFound writes {"error":"Not found"} with 404.
func NotFound(c *gin.Context) {
	Fail(c, code.ErrNotFound, nil)
}

// ValidationFailed writes the per-field messages with 422.
func ValidationFailed(c *gin.Context, details interface{}) {
	Fail(c, code.ErrValidation, details)
}

// ParamMissing reports an absent or empty root key with 400.
func ParamMissing(c *gin.Context, key string) {
	FailWithMessage(c, code.ErrParamMissing, code.GetMessage(code.ErrParamMissing)+": "+key, nil)
}

// BadRequest reports an undecodable body with 400.
func BadRequest(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrBind, message, nil)
}

// ServerError writes a generic 500; the cause is logged by the caller.
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}
