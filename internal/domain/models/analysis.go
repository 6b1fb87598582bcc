package models

import "time"

// NoPaybackSentinel marks a payback period outside the model horizon. Callers
// must treat it as "no payback", not as a literal number of months.
const NoPaybackSentinel = 999

// FinancialAnalysisResult is the complete output of one ROI calculation.
type FinancialAnalysisResult struct {
	TotalInvestment float64 `json:"total_investment"`
	TotalCosts      float64 `json:"total_costs"`
	TotalRevenue    float64 `json:"total_revenue"`
	NetProfit       float64 `json:"net_profit"`
	ROIPercentage   float64 `json:"roi_percentage"`
	ProfitMargin    float64 `json:"profit_margin"`

	BreakEvenPrice float64 `json:"break_even_price"`
	BreakEvenYield float64 `json:"break_even_yield"`
	BreakEvenDays  int     `json:"break_even_days"`

	TotalYieldKg float64 `json:"total_yield_kg"`
	CostPerKg    float64 `json:"cost_per_kg"`
	RevenuePerKg float64 `json:"revenue_per_kg"`
	ProfitPerKg  float64 `json:"profit_per_kg"`

	BenefitCostRatio    float64 `json:"benefit_cost_ratio"`
	PaybackPeriodMonths float64 `json:"payback_period_months"`

	SensitivityAnalysis *SensitivityAnalysis `json:"sensitivity_analysis,omitempty"`
	RiskScore           float64              `json:"risk_score"`
	RiskFactors         []string             `json:"risk_factors"`
	Recommendations     []string             `json:"recommendations"`
}

// SensitivityPoint records the outcome of recomputing the analysis with one
// input varied by VariationPct percent.
type SensitivityPoint struct {
	VariationPct float64 `json:"variation_pct"`
	ROI          float64 `json:"roi"`
	Profit       float64 `json:"profit"`
}

// SensitivityAnalysis groups the sweeps over the three most volatile inputs.
type SensitivityAnalysis struct {
	PriceSensitivity    []SensitivityPoint `json:"price_sensitivity"`
	FCRSensitivity      []SensitivityPoint `json:"fcr_sensitivity"`
	SurvivalSensitivity []SensitivityPoint `json:"survival_sensitivity"`
}

// PricePoint is one observation in a historical market price series.
type PricePoint struct {
	Date  time.Time `json:"date" bson:"date"`
	Price float64   `json:"price" bson:"price"`
}

// ForecastPoint is a single predicted price with a 95%-style band.
type ForecastPoint struct {
	Period         int     `json:"period"`
	PredictedPrice float64 `json:"predicted_price"`
	LowerBound     float64 `json:"lower_bound"`
	UpperBound     float64 `json:"upper_bound"`
}

// MarketForecast is a moving-average price extrapolation. It is a heuristic
// trend read, not a statistical forecast model.
type MarketForecast struct {
	Forecast      []ForecastPoint `json:"forecast" bson:"forecast"`
	Trend         string          `json:"trend" bson:"trend"` // "upward", "downward", "stable"
	TrendStrength float64         `json:"trend_strength" bson:"trend_strength"`
	CurrentPrice  float64         `json:"current_price" bson:"current_price"`
	Avg30d        float64         `json:"avg_30d" bson:"avg_30d"`
	Avg90d        float64         `json:"avg_90d" bson:"avg_90d"`
}

// Scenario bundles the inputs of one candidate operation plan.
type Scenario struct {
	Name       string            `json:"name"`
	Fixed      FixedCosts        `json:"fixed_costs"`
	Variable   VariableCosts     `json:"variable_costs"`
	Production ProductionMetrics `json:"production_metrics"`
}

// ScenarioSummary is one row of a scenario comparison table.
type ScenarioSummary struct {
	Scenario       string  `json:"scenario"`
	ROIPct         float64 `json:"roi_pct"`
	NetProfit      float64 `json:"net_profit"`
	ProfitMargin   float64 `json:"profit_margin"`
	BreakEvenPrice float64 `json:"break_even_price"`
	PaybackMonths  float64 `json:"payback_months"`
	RiskScore      float64 `json:"risk_score"`
}

// AnalysisRecord is the persisted form of a completed ROI analysis.
type AnalysisRecord struct {
	Result    FinancialAnalysisResult `json:"result" bson:"result"`
	CreatedAt time.Time               `json:"created_at" bson:"created_at"`
}

// MarketOutlook is the persisted snapshot produced by the scheduled
// forecasting job.
type MarketOutlook struct {
	Forecast    MarketForecast `json:"forecast" bson:"forecast"`
	PricePoints int            `json:"price_points" bson:"price_points"`
	GeneratedAt time.Time      `json:"generated_at" bson:"generated_at"`
}
