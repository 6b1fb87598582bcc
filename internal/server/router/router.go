package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/legend-harry/pranir-aquatech/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(analysis *handlers.AnalysisHandler, advisor *handlers.AdvisorHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.POST("/analysis/roi", analysis.CalculateROI)
	r.POST("/analysis/scenarios", analysis.CompareScenarios)
	r.GET("/analysis/market-trends", analysis.MarketTrends)
	r.POST("/analysis/export", analysis.ExportAnalysis)

	r.POST("/recommendations", advisor.GenerateRecommendations)
	r.POST("/recommendations/export", advisor.ExportRecommendations)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
