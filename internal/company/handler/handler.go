package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"marketing-server/internal/analysis/normalize"
	"marketing-server/internal/apierrors"
	authHandler "marketing-server/internal/auth/handler"
	"marketing-server/internal/company/processor"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CompanyProcessor interface {
	GetCompany(ctx context.Context, userID uuid.UUID) (store.Company, error)
	SaveCompany(ctx context.Context, userID uuid.UUID, params processor.SaveCompanyParams) (store.Company, error)
	ListCompetitors(ctx context.Context, userID uuid.UUID) ([]store.CompetitorSnapshot, error)
	CreateCompetitor(ctx context.Context, userID uuid.UUID, params processor.CreateCompetitorParams) (store.Competitor, error)
	DeleteCompetitor(ctx context.Context, userID, competitorID uuid.UUID) error
	SaveRecommendation(ctx context.Context, userID uuid.UUID, rec normalize.PositioningRecommendation) (store.PositioningRecommendation, error)
	ListRecommendations(ctx context.Context, userID uuid.UUID) ([]store.PositioningRecommendation, error)
	DeleteRecommendation(ctx context.Context, userID, recommendationID uuid.UUID) error
}

type Handler struct {
	processor CompanyProcessor
	logger    *observability.Logger
}

func New(processor CompanyProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SaveCompanyRequest is a partial profile; omitted fields keep their stored value
type SaveCompanyRequest struct {
	Name                     *string  `json:"name" binding:"omitempty,max=200"`
	Industry                 *string  `json:"industry" binding:"omitempty,max=200"`
	Size                     *string  `json:"size" binding:"omitempty,max=100"`
	Website                  *string  `json:"website" binding:"omitempty,max=2048"`
	Description              *string  `json:"description" binding:"omitempty,max=5000"`
	UniqueSellingProposition *string  `json:"unique_selling_proposition" binding:"omitempty,max=2000"`
	Products                 []string `json:"products"`
	Services                 []string `json:"services"`
	IdealCustomerProfile     *string  `json:"ideal_customer_profile" binding:"omitempty,max=2000"`
	PainPoints               []string `json:"pain_points"`
	TargetAudience           *string  `json:"target_audience" binding:"omitempty,max=2000"`
}

type CreateCompetitorRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Website     string `json:"website" binding:"omitempty,max=2048"`
	Description string `json:"description" binding:"omitempty,max=5000"`
}

// SaveRecommendationRequest is a generated positioning recommendation the user keeps
type SaveRecommendationRequest struct {
	Category         string   `json:"category"`
	Title            string   `json:"title" binding:"required,min=1,max=500"`
	Description      string   `json:"description"`
	KeyPoints        []string `json:"key_points"`
	MessagingStyle   string   `json:"messaging_style"`
	ValueProposition string   `json:"value_proposition"`
	Differentiators  []string `json:"differentiators"`
	TargetSegments   []string `json:"target_segments"`
	ConfidenceScore  float64  `json:"confidence_score"`
}

func (h *Handler) HandleGetCompany(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	company, err := h.processor.GetCompany(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// HandleSaveCompany creates the profile on first save and updates it afterwards
func (h *Handler) HandleSaveCompany(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req SaveCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	company, err := h.processor.SaveCompany(c.Request.Context(), userID, processor.SaveCompanyParams{
		Name:                     req.Name,
		Industry:                 req.Industry,
		Size:                     req.Size,
		Website:                  req.Website,
		Description:              req.Description,
		UniqueSellingProposition: req.UniqueSellingProposition,
		Products:                 req.Products,
		Services:                 req.Services,
		IdealCustomerProfile:     req.IdealCustomerProfile,
		PainPoints:               req.PainPoints,
		TargetAudience:           req.TargetAudience,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *Handler) HandleListCompetitors(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	competitors, err := h.processor.ListCompetitors(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"competitors": competitors})
}

func (h *Handler) HandleCreateCompetitor(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req CreateCompetitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	competitor, err := h.processor.CreateCompetitor(c.Request.Context(), userID, processor.CreateCompetitorParams{
		Name:        req.Name,
		Website:     req.Website,
		Description: req.Description,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, competitor)
}

func (h *Handler) HandleDeleteCompetitor(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	competitorID, err := uuid.Parse(c.Param("competitor_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid competitor ID format"))
		return
	}

	if err := h.processor.DeleteCompetitor(c.Request.Context(), userID, competitorID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleListRecommendations(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	recs, err := h.processor.ListRecommendations(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (h *Handler) HandleSaveRecommendation(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req SaveRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	rec, err := h.processor.SaveRecommendation(c.Request.Context(), userID, normalize.PositioningRecommendation{
		Category:         req.Category,
		Title:            req.Title,
		Description:      req.Description,
		KeyPoints:        req.KeyPoints,
		MessagingStyle:   req.MessagingStyle,
		ValueProposition: req.ValueProposition,
		Differentiators:  req.Differentiators,
		TargetSegments:   req.TargetSegments,
		ConfidenceScore:  req.ConfidenceScore,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) HandleDeleteRecommendation(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	recID, err := uuid.Parse(c.Param("recommendation_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid recommendation ID format"))
		return
	}

	if err := h.processor.DeleteRecommendation(c.Request.Context(), userID, recID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := authHandler.UserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return uuid.UUID{}, false
	}
	return userID, true
}
