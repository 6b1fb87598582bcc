package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
	"github.com/legend-harry/pranir-aquatech/internal/repository/mongodb"
	"github.com/legend-harry/pranir-aquatech/internal/service/advisor"
)

// AdvisorHandler exposes the recommendation pipeline over HTTP.
type AdvisorHandler struct {
	svc     advisor.Advisor
	history mongodb.Repository
	logger  *zap.Logger
}

// NewAdvisorHandler constructs the HTTP handler adapter.
func NewAdvisorHandler(svc advisor.Advisor, history mongodb.Repository, logger *zap.Logger) *AdvisorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisorHandler{svc: svc, history: history, logger: logger}
}

// GenerateRecommendations runs the rule engine over a farm snapshot.
func (h *AdvisorHandler) GenerateRecommendations(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommendation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recommendations, err := h.svc.GenerateRecommendations(c.Request.Context(), req.Profile, req.Conditions, req.AIInsights())
	if err != nil {
		h.logger.Error("failed generating recommendations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	h.persistReport(c, req.Profile, recommendations)
	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

// ExportRecommendations serializes a recommendation list.
func (h *AdvisorHandler) ExportRecommendations(c *gin.Context) {
	var req models.RecommendationExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid export payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	exported, err := h.svc.ExportRecommendations(req.Recommendations, req.Format)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedFormat) {
			h.logger.Warn("failed exporting recommendations", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed exporting recommendations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"format": req.Format, "data": exported})
}

// persistReport appends the advisory run to the report collection. Best
// effort: storage failures are logged and never fail the response.
func (h *AdvisorHandler) persistReport(c *gin.Context, profile models.UserProfile, recommendations []models.Recommendation) {
	if h.history == nil {
		return
	}

	report := models.RecommendationReport{
		UserID:          profile.UserID,
		FarmName:        profile.FarmName,
		Recommendations: recommendations,
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.history.SaveRecommendationReport(c.Request.Context(), report); err != nil {
		h.logger.Error("failed persisting recommendation report", zap.Error(err))
	}
}
