package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned in ErrorResponse.Code
const (
	CodeInvalidInput           = "INVALID_INPUT"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeNotFound               = "NOT_FOUND"
	CodeInternalError          = "INTERNAL_ERROR"
	CodeCompanyNotFound        = "COMPANY_NOT_FOUND"
	CodeCompetitorNotFound     = "COMPETITOR_NOT_FOUND"
	CodeAnalysisNotFound       = "ANALYSIS_NOT_FOUND"
	CodeRecommendationNotFound = "RECOMMENDATION_NOT_FOUND"
	CodeBlogIdeaNotFound       = "BLOG_IDEA_NOT_FOUND"
	CodeContentNotFound        = "CONTENT_NOT_FOUND"
	CodeCompetitorsRequired    = "COMPETITORS_REQUIRED"
	CodeWebsiteRequired        = "WEBSITE_REQUIRED"
	CodeInvalidStatus          = "INVALID_STATUS"
	CodeInvalidIdea            = "INVALID_IDEA"
	CodeAIGenerationFailed     = "AI_GENERATION_FAILED"
	CodePersistenceFailed      = "PERSISTENCE_FAILED"
)

// APIError is an error that already carries its HTTP representation.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadGateway is used when an upstream provider returned nothing usable.
func BadGateway(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusBadGateway, Code: code, Message: message, Err: err}
}

// InternalError wraps err in a sanitized 500 - the message never exposes internal details.
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
