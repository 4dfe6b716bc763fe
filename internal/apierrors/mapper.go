package apierrors

import (
	"errors"

	analysisProcessor "marketing-server/internal/analysis/processor"
	authProcessor "marketing-server/internal/auth/processor"
	companyProcessor "marketing-server/internal/company/processor"
	contentProcessor "marketing-server/internal/content/processor"
	"marketing-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Auth errors
	case errors.Is(err, authProcessor.ErrMissingToken):
		return Unauthorized("Missing bearer token")

	case errors.Is(err, authProcessor.ErrExpiredToken):
		return Unauthorized("Token has expired")

	case errors.Is(err, authProcessor.ErrInvalidJWTToken), errors.Is(err, authProcessor.ErrParseJWTToken):
		return Unauthorized("Invalid token")

	// Map analysis processor errors
	case errors.Is(err, analysisProcessor.ErrCompanyNotFound):
		return NotFound(CodeCompanyNotFound, "Company profile not found. Save your company details first.")

	case errors.Is(err, analysisProcessor.ErrCompetitorNotFound):
		return NotFound(CodeCompetitorNotFound, "Competitor not found")

	case errors.Is(err, analysisProcessor.ErrLandscapeNotFound):
		return NotFound(CodeAnalysisNotFound, "No landscape analysis has been generated yet")

	case errors.Is(err, analysisProcessor.ErrNoCompetitors):
		return BadRequest(CodeCompetitorsRequired, "Add at least one of your competitors before running a landscape analysis")

	case errors.Is(err, analysisProcessor.ErrNoWebsite):
		return BadRequest(CodeWebsiteRequired, "Add a website to your company profile before running a domain analysis")

	case errors.Is(err, analysisProcessor.ErrInvalidIdea):
		return BadRequest(CodeInvalidIdea, "Blog idea must have a title")

	case errors.Is(err, analysisProcessor.ErrGenerationFailed):
		return BadGateway(CodeAIGenerationFailed, "AI generation failed. Please try again later.", err)

	case errors.Is(err, analysisProcessor.ErrPersistenceFailed):
		return InternalError(err)

	// Map company processor errors
	case errors.Is(err, companyProcessor.ErrCompanyNotFound):
		return NotFound(CodeCompanyNotFound, "Company profile not found. Save your company details first.")

	case errors.Is(err, companyProcessor.ErrCompanyNameRequired):
		return BadRequest(CodeInvalidInput, "Company name is required")

	case errors.Is(err, companyProcessor.ErrCompetitorNotFound):
		return NotFound(CodeCompetitorNotFound, "Competitor not found")

	case errors.Is(err, companyProcessor.ErrRecommendationNotFound):
		return NotFound(CodeRecommendationNotFound, "Positioning recommendation not found")

	case errors.Is(err, companyProcessor.ErrPersistenceFailed):
		return InternalError(err)

	// Map content processor errors
	case errors.Is(err, contentProcessor.ErrCompanyNotFound):
		return NotFound(CodeCompanyNotFound, "Company profile not found. Save your company details first.")

	case errors.Is(err, contentProcessor.ErrContentNotFound):
		return NotFound(CodeContentNotFound, "Content item not found")

	case errors.Is(err, contentProcessor.ErrBlogIdeaNotFound):
		return NotFound(CodeBlogIdeaNotFound, "Blog idea not found")

	case errors.Is(err, contentProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid content status. Valid values: draft, review, published")

	case errors.Is(err, contentProcessor.ErrArticleRequired):
		return BadRequest(CodeInvalidInput, "A generated article is required to publish a blog idea")

	case errors.Is(err, contentProcessor.ErrPersistenceFailed):
		return InternalError(err)

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
