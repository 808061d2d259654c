package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"plaindoc/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error
// codes. Error messages pass through verbatim; nothing is swallowed or
// reworded.
func MapDomainError(err error) (status int, code, msg string) {
	var cfgErr *domain.ConfigError
	var upErr *domain.UploadError
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", err.Error()
	case errors.As(err, &cfgErr):
		return http.StatusUnprocessableEntity, "PROVIDER_CONFIG_INVALID", cfgErr.Error()
	case errors.Is(err, domain.ErrUnknownProvider):
		return http.StatusUnprocessableEntity, "UNKNOWN_PROVIDER", err.Error()
	case errors.Is(err, domain.ErrSignerUnavailable):
		return http.StatusInternalServerError, "SIGNER_UNAVAILABLE", err.Error()
	case errors.As(err, &upErr):
		return http.StatusBadGateway, "UPSTREAM_UPLOAD_FAILED", upErr.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
