package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
)

// ErrorBody is the uniform error representation.
type ErrorBody struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
	Type   string `json:"type,omitempty"`
}

// MessageResponse is returned by operations that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse writes the resource representation as-is.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// MessageOK sends {"message": ...} with status 200.
func MessageOK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Status: "error",
		Detail: message,
	})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		// Never expose storage or driver details to the client.
		c.JSON(http.StatusInternalServerError, ErrorBody{
			Status: "error",
			Detail: "Internal server error occurred",
			Type:   string(errors.ErrorTypeInternal),
		})
		return
	}

	detail := appErr.Message
	if appErr.Details != "" {
		detail = appErr.Message + ": " + appErr.Details
	}

	c.JSON(appErr.Code, ErrorBody{
		Status: "error",
		Detail: detail,
		Type:   string(appErr.Type),
	})
}

// AbortWithError records err for the error middleware and stops the chain.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
