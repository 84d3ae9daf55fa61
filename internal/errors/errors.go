package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Authentication errors
	ErrCodeNotAuthenticated   = "NOT_AUTHENTICATED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	// Authorization errors
	ErrCodeNotAuthorized = "NOT_AUTHORIZED"

	// Validation errors
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeDuplicateEmail = "DUPLICATE_EMAIL"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"

	// Storage errors
	ErrCodePersistenceFailure = "PERSISTENCE_FAILURE"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// NotAuthenticated sends a 401 response
func NotAuthenticated(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeNotAuthenticated, message))
}

// InvalidCredentials sends a 401 response with the credentials code
func InvalidCredentials(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid email or password"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeInvalidCredentials, message))
}

// NotAuthorized sends a 403 response
func NotAuthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Admin privileges required"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeNotAuthorized, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeValidation, message))
}

// DuplicateEmail sends a 409 response with the duplicate-email code
func DuplicateEmail(c *gin.Context, message string) {
	if message == "" {
		message = "Email already exists"
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(ErrCodeDuplicateEmail, message))
}

// PersistenceFailure sends a 500 response with the storage code
func PersistenceFailure(c *gin.Context, message string) {
	if message == "" {
		message = "Failed to persist changes"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodePersistenceFailure, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}
