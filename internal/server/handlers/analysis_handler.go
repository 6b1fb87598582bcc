package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
	"github.com/legend-harry/pranir-aquatech/internal/repository/mongodb"
	"github.com/legend-harry/pranir-aquatech/internal/repository/sheets"
	"github.com/legend-harry/pranir-aquatech/internal/service/financial"
)

// AnalysisHandler exposes the financial analysis operations over HTTP.
type AnalysisHandler struct {
	svc       *financial.Service
	priceRepo sheets.Repository
	history   mongodb.Repository
	logger    *zap.Logger
}

// NewAnalysisHandler constructs the HTTP handler adapter. The price
// repository may be nil, which disables the market trends endpoint.
func NewAnalysisHandler(svc *financial.Service, priceRepo sheets.Repository, history mongodb.Repository, logger *zap.Logger) *AnalysisHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisHandler{svc: svc, priceRepo: priceRepo, history: history, logger: logger}
}

// CalculateROI runs a full financial analysis for the supplied cycle inputs.
func (h *AnalysisHandler) CalculateROI(c *gin.Context) {
	var req models.ROIAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid roi payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.svc.CalculateROI(req.FixedCosts, req.VariableCosts, req.Production, req.Revenue, req.Sensitivity())
	if err != nil {
		h.respondError(c, err, "failed calculating roi")
		return
	}

	h.persistAnalysis(c, result)
	c.JSON(http.StatusOK, result)
}

// CompareScenarios tabulates the headline figures of several candidate plans.
func (h *AnalysisHandler) CompareScenarios(c *gin.Context) {
	var req models.ScenarioComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid scenarios payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summaries, err := h.svc.CompareScenarios(req.Scenarios)
	if err != nil {
		h.respondError(c, err, "failed comparing scenarios")
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": summaries})
}

// MarketTrends forecasts prices from the configured history spreadsheet.
func (h *AnalysisHandler) MarketTrends(c *gin.Context) {
	if h.priceRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "price history not configured"})
		return
	}

	periods := 6
	if raw, ok := c.GetQuery("periods"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "periods must be a positive integer"})
			return
		}
		periods = parsed
	}

	prices, err := h.priceRepo.ReadPriceHistory(c.Request.Context())
	if err != nil {
		h.logger.Error("failed reading price history", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load price history"})
		return
	}

	forecast, err := h.svc.PredictMarketTrends(prices, periods)
	if err != nil {
		h.respondError(c, err, "failed forecasting market trends")
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// ExportAnalysis serializes a previously computed analysis result.
func (h *AnalysisHandler) ExportAnalysis(c *gin.Context) {
	var req models.AnalysisExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid export payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	exported, err := h.svc.ExportAnalysis(req.Result, req.Format)
	if err != nil {
		h.respondError(c, err, "failed exporting analysis")
		return
	}

	c.JSON(http.StatusOK, gin.H{"format": req.Format, "data": exported})
}

// persistAnalysis appends the result to the history collection. Best effort:
// storage failures are logged and never fail the response.
func (h *AnalysisHandler) persistAnalysis(c *gin.Context, result models.FinancialAnalysisResult) {
	if h.history == nil {
		return
	}

	record := models.AnalysisRecord{Result: result, CreatedAt: time.Now().UTC()}
	if err := h.history.SaveAnalysis(c.Request.Context(), record); err != nil {
		h.logger.Error("failed persisting analysis record", zap.Error(err))
	}
}

func (h *AnalysisHandler) respondError(c *gin.Context, err error, logMessage string) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		h.logger.Warn(logMessage, zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUnsupportedFormat):
		h.logger.Warn(logMessage, zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(logMessage, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
