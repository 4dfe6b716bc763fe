package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"marketing-server/internal/analysis/normalize"
	"marketing-server/internal/analysis/processor"
	"marketing-server/internal/apierrors"
	authHandler "marketing-server/internal/auth/handler"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalysisProcessor is the subset of processor.AnalysisProcessor served over HTTP
type AnalysisProcessor interface {
	RunCompetitorAnalysis(ctx context.Context, userID, competitorID uuid.UUID) (store.CompetitiveAnalysis, error)
	AnalyzeAllCompetitors(ctx context.Context, userID uuid.UUID) ([]store.CompetitiveAnalysis, error)
	ListCompetitorAnalyses(ctx context.Context, userID uuid.UUID) ([]store.CompetitiveAnalysis, error)
	RunDomainAnalysis(ctx context.Context, userID uuid.UUID) (processor.DomainAnalysis, error)
	RunLandscapeAnalysis(ctx context.Context, userID uuid.UUID) (store.LandscapeAnalysis, error)
	GetLatestLandscape(ctx context.Context, userID uuid.UUID) (store.LandscapeAnalysis, error)
	RunPositioningAnalysis(ctx context.Context, userID uuid.UUID) (normalize.PositioningAnalysis, error)
	GenerateBlogIdeas(ctx context.Context, userID uuid.UUID) ([]normalize.BlogIdea, error)
	GenerateArticle(ctx context.Context, userID uuid.UUID, idea normalize.BlogIdea) (normalize.Article, error)
}

type Handler struct {
	processor AnalysisProcessor
	logger    *observability.Logger
}

func New(processor AnalysisProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ArticleRequest is the blog idea an article is generated for
type ArticleRequest struct {
	ID              string   `json:"id"`
	Title           string   `json:"title" binding:"required,min=1,max=500"`
	Description     string   `json:"description"`
	Keywords        []string `json:"keywords"`
	EstimatedLength string   `json:"estimated_length"`
	Difficulty      string   `json:"difficulty"`
	TargetAudience  string   `json:"target_audience"`
	ContentPillars  []string `json:"content_pillars"`
	SEOScore        int      `json:"seo_score"`
	Rationale       string   `json:"rationale"`
}

// HandleRunCompetitorAnalysis analyzes one competitor and stores the result
func (h *Handler) HandleRunCompetitorAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	competitorID, err := uuid.Parse(c.Param("competitor_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid competitor ID format"))
		return
	}

	analysis, err := h.processor.RunCompetitorAnalysis(ctx, userID, competitorID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, analysis)
}

// HandleAnalyzeAllCompetitors analyzes every competitor, returning the ones that succeeded
func (h *Handler) HandleAnalyzeAllCompetitors(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	analyses, err := h.processor.AnalyzeAllCompetitors(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": analyses, "count": len(analyses)})
}

func (h *Handler) HandleListCompetitorAnalyses(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	analyses, err := h.processor.ListCompetitorAnalyses(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": analyses})
}

func (h *Handler) HandleRunDomainAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	result, err := h.processor.RunDomainAnalysis(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) HandleRunLandscapeAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	analysis, err := h.processor.RunLandscapeAnalysis(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, analysis)
}

// HandleGetLandscapeAnalysis returns the most recent landscape analysis
func (h *Handler) HandleGetLandscapeAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	analysis, err := h.processor.GetLatestLandscape(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// HandlePositioningAnalysis serves both GET and POST; the analysis is always regenerated
func (h *Handler) HandlePositioningAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	result, err := h.processor.RunPositioningAnalysis(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGenerateBlogIdeas serves both GET and POST; ideas are always regenerated
func (h *Handler) HandleGenerateBlogIdeas(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	ideas, err := h.processor.GenerateBlogIdeas(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

func (h *Handler) HandleGenerateArticle(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "blog_idea_title", Value: req.Title})

	article, err := h.processor.GenerateArticle(ctx, userID, normalize.BlogIdea{
		ID:              req.ID,
		Title:           req.Title,
		Description:     req.Description,
		Keywords:        req.Keywords,
		EstimatedLength: req.EstimatedLength,
		Difficulty:      req.Difficulty,
		TargetAudience:  req.TargetAudience,
		ContentPillars:  req.ContentPillars,
		SEOScore:        req.SEOScore,
		Rationale:       req.Rationale,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := authHandler.UserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return uuid.UUID{}, false
	}
	return userID, true
}
