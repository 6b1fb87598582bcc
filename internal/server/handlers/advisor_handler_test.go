package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
)

type stubAdvisor struct {
	recommendations []models.Recommendation
	exported        any
	err             error
	lastAIFlag      bool
}

func (s *stubAdvisor) GenerateRecommendations(ctx context.Context, profile models.UserProfile, conditions models.FarmConditions, includeAIInsights bool) ([]models.Recommendation, error) {
	s.lastAIFlag = includeAIInsights
	return s.recommendations, s.err
}

func (s *stubAdvisor) ExportRecommendations(recommendations []models.Recommendation, format string) (any, error) {
	return s.exported, s.err
}

func newAdvisorRouter(handler *AdvisorHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/recommendations", handler.GenerateRecommendations)
	router.POST("/recommendations/export", handler.ExportRecommendations)
	return router
}

func recommendationRequestBody() map[string]any {
	return map[string]any{
		"user_profile": map[string]any{
			"user_id":   "user-1",
			"farm_name": "Sunrise Ponds",
		},
		"farm_conditions": map[string]any{
			"dissolved_oxygen": 3.5,
		},
	}
}

func TestGenerateRecommendationsEndpoint(t *testing.T) {
	advisorStub := &stubAdvisor{recommendations: []models.Recommendation{
		{Priority: models.PriorityCritical, Category: "water_quality", Action: "Increase aeration"},
	}}
	history := &stubHistory{}
	handler := NewAdvisorHandler(advisorStub, history, nil)
	router := newAdvisorRouter(handler)

	recorder := performJSON(t, router, http.MethodPost, "/recommendations", recommendationRequestBody())

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Increase aeration")
	assert.True(t, advisorStub.lastAIFlag)
	assert.Equal(t, 1, history.reports)
}

func TestGenerateRecommendationsEndpointDisablesAI(t *testing.T) {
	advisorStub := &stubAdvisor{}
	handler := NewAdvisorHandler(advisorStub, nil, nil)
	router := newAdvisorRouter(handler)

	body := recommendationRequestBody()
	body["include_ai_insights"] = false

	recorder := performJSON(t, router, http.MethodPost, "/recommendations", body)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, advisorStub.lastAIFlag)
}

func TestGenerateRecommendationsEndpointRejectsMalformedBody(t *testing.T) {
	handler := NewAdvisorHandler(&stubAdvisor{}, nil, nil)
	router := newAdvisorRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/recommendations", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGenerateRecommendationsEndpointInternalError(t *testing.T) {
	advisorStub := &stubAdvisor{err: errors.New("boom")}
	handler := NewAdvisorHandler(advisorStub, nil, nil)
	router := newAdvisorRouter(handler)

	recorder := performJSON(t, router, http.MethodPost, "/recommendations", recommendationRequestBody())

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestGenerateRecommendationsEndpointStorageFailureDoesNotFailRequest(t *testing.T) {
	advisorStub := &stubAdvisor{recommendations: []models.Recommendation{{Category: "health"}}}
	history := &stubHistory{err: errors.New("mongo down")}
	handler := NewAdvisorHandler(advisorStub, history, nil)
	router := newAdvisorRouter(handler)

	recorder := performJSON(t, router, http.MethodPost, "/recommendations", recommendationRequestBody())

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, history.reports)
}

func TestExportRecommendationsEndpoint(t *testing.T) {
	advisorStub := &stubAdvisor{exported: "# Shrimp Farm Recommendations\n\n"}
	handler := NewAdvisorHandler(advisorStub, nil, nil)
	router := newAdvisorRouter(handler)

	body := map[string]any{
		"recommendations": []models.Recommendation{{Category: "feeding"}},
		"format":          "markdown",
	}

	recorder := performJSON(t, router, http.MethodPost, "/recommendations/export", body)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "markdown")
}

func TestExportRecommendationsEndpointUnsupportedFormat(t *testing.T) {
	advisorStub := &stubAdvisor{err: models.ErrUnsupportedFormat}
	handler := NewAdvisorHandler(advisorStub, nil, nil)
	router := newAdvisorRouter(handler)

	body := map[string]any{
		"recommendations": []models.Recommendation{},
		"format":          "yaml",
	}

	recorder := performJSON(t, router, http.MethodPost, "/recommendations/export", body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
