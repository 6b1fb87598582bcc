package models

// Typed request payloads for the HTTP layer. Payloads map explicitly onto
// domain values; unknown fields are rejected at the binding layer.

// ROIAnalysisRequest carries the inputs of one ROI calculation.
type ROIAnalysisRequest struct {
	FixedCosts         FixedCosts        `json:"fixed_costs"`
	VariableCosts      VariableCosts     `json:"variable_costs"`
	Production         ProductionMetrics `json:"production_metrics" binding:"required"`
	Revenue            *RevenueStreams   `json:"revenue_streams,omitempty"`
	IncludeSensitivity *bool             `json:"include_sensitivity,omitempty"` // defaults to true
}

// Sensitivity resolves the optional flag to its default.
func (r ROIAnalysisRequest) Sensitivity() bool {
	if r.IncludeSensitivity == nil {
		return true
	}
	return *r.IncludeSensitivity
}

// ScenarioComparisonRequest carries a list of candidate plans to compare.
type ScenarioComparisonRequest struct {
	Scenarios []Scenario `json:"scenarios" binding:"required,min=1"`
}

// AnalysisExportRequest asks for a serialized view of a prior analysis.
type AnalysisExportRequest struct {
	Result FinancialAnalysisResult `json:"result" binding:"required"`
	Format string                  `json:"format" binding:"required"`
}

// RecommendationRequest carries a farm snapshot for the advisory pipeline.
type RecommendationRequest struct {
	Profile           UserProfile    `json:"user_profile" binding:"required"`
	Conditions        FarmConditions `json:"farm_conditions" binding:"required"`
	IncludeAIInsights *bool          `json:"include_ai_insights,omitempty"` // defaults to true
}

// AIInsights resolves the optional flag to its default.
func (r RecommendationRequest) AIInsights() bool {
	if r.IncludeAIInsights == nil {
		return true
	}
	return *r.IncludeAIInsights
}

// RecommendationExportRequest asks for a serialized view of a recommendation
// list.
type RecommendationExportRequest struct {
	Recommendations []Recommendation `json:"recommendations"`
	Format          string           `json:"format" binding:"required"`
}
