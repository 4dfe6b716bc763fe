package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"time"

	"marketing-server/internal/analysis/normalize"
	"marketing-server/internal/apierrors"
	authHandler "marketing-server/internal/auth/handler"
	"marketing-server/internal/content/processor"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContentProcessor interface {
	ListContent(ctx context.Context, userID uuid.UUID) ([]store.ContentItem, error)
	GetContent(ctx context.Context, userID, itemID uuid.UUID) (store.ContentItem, error)
	CreateContent(ctx context.Context, userID uuid.UUID, params processor.CreateContentParams) (store.ContentItem, error)
	UpdateContent(ctx context.Context, userID, itemID uuid.UUID, params processor.UpdateContentParams) (store.ContentItem, error)
	DeleteContent(ctx context.Context, userID, itemID uuid.UUID) error
	RejectIdea(ctx context.Context, userID uuid.UUID, idea normalize.BlogIdea, reason *string) (store.BlogIdea, error)
	ListRejectedIdeas(ctx context.Context, userID uuid.UUID) ([]store.BlogIdea, error)
	PublishIdea(ctx context.Context, userID uuid.UUID, idea normalize.BlogIdea, article normalize.Article) (processor.PublishedIdea, error)
	DeleteIdea(ctx context.Context, userID, ideaID uuid.UUID) error
}

type Handler struct {
	processor ContentProcessor
	logger    *observability.Logger
}

func New(processor ContentProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateContentRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=500"`
	Body        string     `json:"body"`
	Type        string     `json:"type" binding:"omitempty,max=50"`
	Status      string     `json:"status"`
	Keywords    []string   `json:"keywords"`
	Tone        string     `json:"tone" binding:"omitempty,max=100"`
	WordCount   *int       `json:"word_count" binding:"omitempty,min=0"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type UpdateContentRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=500"`
	Body        *string    `json:"body"`
	Type        *string    `json:"type" binding:"omitempty,max=50"`
	Status      *string    `json:"status"`
	Keywords    []string   `json:"keywords"`
	Tone        *string    `json:"tone" binding:"omitempty,max=100"`
	WordCount   *int       `json:"word_count" binding:"omitempty,min=0"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// BlogIdeaPayload is a generated idea as returned by the blog ideas endpoint
type BlogIdeaPayload struct {
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

type RejectIdeaRequest struct {
	Idea   BlogIdeaPayload `json:"idea" binding:"required"`
	Reason *string         `json:"reason" binding:"omitempty,max=1000"`
}

type ArticlePayload struct {
	Title           string   `json:"title"`
	Content         string   `json:"content" binding:"required"`
	MetaDescription string   `json:"meta_description"`
	Keywords        []string `json:"keywords"`
}

type PublishIdeaRequest struct {
	Idea    BlogIdeaPayload `json:"idea" binding:"required"`
	Article ArticlePayload  `json:"article" binding:"required"`
}

func (h *Handler) HandleListContent(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	items, err := h.processor.ListContent(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) HandleGetContent(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseID(c, "content_id", "Invalid content ID format")
	if !ok {
		return
	}

	item, err := h.processor.GetContent(c.Request.Context(), userID, itemID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) HandleCreateContent(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	item, err := h.processor.CreateContent(c.Request.Context(), userID, processor.CreateContentParams{
		Title:       req.Title,
		Body:        req.Body,
		Type:        req.Type,
		Status:      req.Status,
		Keywords:    req.Keywords,
		Tone:        req.Tone,
		WordCount:   req.WordCount,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *Handler) HandleUpdateContent(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseID(c, "content_id", "Invalid content ID format")
	if !ok {
		return
	}

	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	item, err := h.processor.UpdateContent(c.Request.Context(), userID, itemID, processor.UpdateContentParams{
		Title:       req.Title,
		Body:        req.Body,
		Type:        req.Type,
		Status:      req.Status,
		Keywords:    req.Keywords,
		Tone:        req.Tone,
		WordCount:   req.WordCount,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) HandleDeleteContent(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseID(c, "content_id", "Invalid content ID format")
	if !ok {
		return
	}

	if err := h.processor.DeleteContent(c.Request.Context(), userID, itemID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleRejectIdea records a rejected idea so it is not suggested again
func (h *Handler) HandleRejectIdea(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req RejectIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	idea, err := h.processor.RejectIdea(c.Request.Context(), userID, req.Idea.toIdea(), req.Reason)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, idea)
}

func (h *Handler) HandleListRejectedIdeas(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	ideas, err := h.processor.ListRejectedIdeas(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

func (h *Handler) HandlePublishIdea(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req PublishIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.PublishIdea(c.Request.Context(), userID, req.Idea.toIdea(), normalize.Article{
		Title:           req.Article.Title,
		Content:         req.Article.Content,
		MetaDescription: req.Article.MetaDescription,
		Keywords:        req.Article.Keywords,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) HandleDeleteIdea(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	ideaID, ok := parseID(c, "idea_id", "Invalid blog idea ID format")
	if !ok {
		return
	}

	if err := h.processor.DeleteIdea(c.Request.Context(), userID, ideaID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (p BlogIdeaPayload) toIdea() normalize.BlogIdea {
	return normalize.BlogIdea{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Keywords:        p.Keywords,
		EstimatedLength: p.EstimatedLength,
		Difficulty:      p.Difficulty,
		TargetAudience:  p.TargetAudience,
		ContentPillars:  p.ContentPillars,
		SEOScore:        p.SEOScore,
		Rationale:       p.Rationale,
	}
}

func parseID(c *gin.Context, param, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, message))
		return uuid.UUID{}, false
	}
	return id, true
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := authHandler.UserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return uuid.UUID{}, false
	}
	return userID, true
}
