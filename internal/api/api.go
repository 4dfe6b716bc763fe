package api

import (
	"net/http"

	analysisHandler "marketing-server/internal/analysis/handler"
	authHandler "marketing-server/internal/auth/handler"
	companyHandler "marketing-server/internal/company/handler"
	contentHandler "marketing-server/internal/content/handler"
	"marketing-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	authHandler     authHandler.Handler
	companyHandler  companyHandler.Handler
	analysisHandler analysisHandler.Handler
	contentHandler  contentHandler.Handler
	generationLimit gin.HandlerFunc
	metricsToken    string
}

// New wires handlers to the router. generationLimit guards every route that
// calls the AI provider. /metrics is only served when metricsToken is set.
func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	companyHandler companyHandler.Handler,
	analysisHandler analysisHandler.Handler,
	contentHandler contentHandler.Handler,
	generationLimit gin.HandlerFunc,
	metricsToken string,
) API {
	return API{
		router:          router,
		authHandler:     authHandler,
		companyHandler:  companyHandler,
		analysisHandler: analysisHandler,
		contentHandler:  contentHandler,
		generationLimit: generationLimit,
		metricsToken:    metricsToken,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	if a.metricsToken != "" {
		a.router.GET("/metrics", observability.MetricsAuth(a.metricsToken), observability.MetricsHandler())
	}

	apiGroup := a.router.Group("/api")
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.GET("/company", a.companyHandler.HandleGetCompany)
		protectedGroup.PUT("/company", a.companyHandler.HandleSaveCompany)

		protectedGroup.GET("/competitors", a.companyHandler.HandleListCompetitors)
		protectedGroup.POST("/competitors", a.companyHandler.HandleCreateCompetitor)
		protectedGroup.DELETE("/competitors/:competitor_id", a.companyHandler.HandleDeleteCompetitor)

		protectedGroup.GET("/positioning/recommendations", a.companyHandler.HandleListRecommendations)
		protectedGroup.POST("/positioning/recommendations", a.companyHandler.HandleSaveRecommendation)
		protectedGroup.DELETE("/positioning/recommendations/:recommendation_id", a.companyHandler.HandleDeleteRecommendation)

		analysisGroup := protectedGroup.Group("/analysis")
		{
			analysisGroup.POST("/competitors/:competitor_id", a.generationLimit, a.analysisHandler.HandleRunCompetitorAnalysis)
			analysisGroup.POST("/competitors", a.generationLimit, a.analysisHandler.HandleAnalyzeAllCompetitors)
			analysisGroup.GET("/competitors", a.analysisHandler.HandleListCompetitorAnalyses)
			analysisGroup.POST("/domain", a.generationLimit, a.analysisHandler.HandleRunDomainAnalysis)
			analysisGroup.POST("/landscape", a.generationLimit, a.analysisHandler.HandleRunLandscapeAnalysis)
			analysisGroup.GET("/landscape", a.analysisHandler.HandleGetLandscapeAnalysis)
			analysisGroup.POST("/positioning", a.generationLimit, a.analysisHandler.HandlePositioningAnalysis)
			analysisGroup.GET("/positioning", a.generationLimit, a.analysisHandler.HandlePositioningAnalysis)
		}

		blogGroup := protectedGroup.Group("/blog-ideas")
		{
			blogGroup.POST("", a.generationLimit, a.analysisHandler.HandleGenerateBlogIdeas)
			blogGroup.GET("", a.generationLimit, a.analysisHandler.HandleGenerateBlogIdeas)
			blogGroup.POST("/article", a.generationLimit, a.analysisHandler.HandleGenerateArticle)
			blogGroup.GET("/rejected", a.contentHandler.HandleListRejectedIdeas)
			blogGroup.POST("/reject", a.contentHandler.HandleRejectIdea)
			blogGroup.POST("/publish", a.contentHandler.HandlePublishIdea)
			blogGroup.DELETE("/:idea_id", a.contentHandler.HandleDeleteIdea)
		}

		contentGroup := protectedGroup.Group("/content")
		{
			contentGroup.GET("", a.contentHandler.HandleListContent)
			contentGroup.POST("", a.contentHandler.HandleCreateContent)
			contentGroup.GET("/:content_id", a.contentHandler.HandleGetContent)
			contentGroup.PUT("/:content_id", a.contentHandler.HandleUpdateContent)
			contentGroup.DELETE("/:content_id", a.contentHandler.HandleDeleteContent)
		}
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
