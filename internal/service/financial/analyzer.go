package financial

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
)

const (
	shortWindow      = 30
	longWindow       = 90
	confidenceZScore = 1.96
)

// Service computes deterministic financial analyses for grow-out cycles.
// All methods are pure functions of their inputs and safe for concurrent use.
type Service struct {
	logger *zap.Logger
}

// NewService wires a new financial analysis service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// CalculateROI computes the complete financial picture of one production
// cycle: core metrics, break-even analysis, per-kg figures, ratios, an
// optional sensitivity sweep, plus the attached risk assessment and textual
// advice. When revenue is nil, revenue is derived from projected yield at the
// market price. The whole call fails on invalid input; no partial result is
// returned.
func (s *Service) CalculateROI(
	fixed models.FixedCosts,
	variable models.VariableCosts,
	production models.ProductionMetrics,
	revenue *models.RevenueStreams,
	includeSensitivity bool,
) (models.FinancialAnalysisResult, error) {
	if err := validateInputs(fixed, variable, production, revenue); err != nil {
		return models.FinancialAnalysisResult{}, err
	}

	pondAreaM2 := production.PondArea * 10000
	totalStocked := pondAreaM2 * production.StockingDensity
	totalHarvested := totalStocked * production.SurvivalRate / 100
	totalYieldKg := totalHarvested * production.AverageBodyWeight / 1000

	s.logger.Debug("projected yield computed", zap.Float64("yield_kg", totalYieldKg))

	totalInvestment := fixed.Total()
	totalOperationalCosts := variable.Total()
	totalCosts := totalInvestment + totalOperationalCosts

	var revenueStreams models.RevenueStreams
	if revenue != nil {
		revenueStreams = *revenue
	} else {
		revenueStreams = models.RevenueStreams{ShrimpSales: totalYieldKg * production.MarketPricePerKg}
	}
	totalRevenue := revenueStreams.Total()

	netProfit := totalRevenue - totalCosts

	roiPct := 0.0
	if totalCosts > 0 {
		roiPct = netProfit / totalCosts * 100
	}
	profitMargin := 0.0
	if totalRevenue > 0 {
		profitMargin = netProfit / totalRevenue * 100
	}

	breakEvenPrice := 0.0
	if totalYieldKg > 0 {
		breakEvenPrice = totalCosts / totalYieldKg
	}
	breakEvenYield := totalCosts / production.MarketPricePerKg

	culturePeriod := float64(production.CulturePeriod)
	dailyRevenue := totalRevenue / culturePeriod
	dailyCosts := totalOperationalCosts / culturePeriod

	// The fallback when the cycle never out-earns its daily costs is a coarse
	// approximation (twice the culture period), kept for contract stability.
	breakEvenDays := production.CulturePeriod * 2
	if dailyRevenue > dailyCosts {
		breakEvenDays = int(math.Floor(totalInvestment / (dailyRevenue - dailyCosts)))
	}

	costPerKg, revenuePerKg, profitPerKg := 0.0, 0.0, 0.0
	if totalYieldKg > 0 {
		costPerKg = totalCosts / totalYieldKg
		revenuePerKg = totalRevenue / totalYieldKg
		profitPerKg = netProfit / totalYieldKg
	}

	benefitCostRatio := 0.0
	if totalCosts > 0 {
		benefitCostRatio = totalRevenue / totalCosts
	}

	cyclesPerYear := 365 / culturePeriod
	annualProfit := netProfit * cyclesPerYear
	paybackMonths := float64(models.NoPaybackSentinel)
	if annualProfit > 0 {
		paybackMonths = totalInvestment / annualProfit * 12
	}

	result := models.FinancialAnalysisResult{
		TotalInvestment:     totalInvestment,
		TotalCosts:          totalCosts,
		TotalRevenue:        totalRevenue,
		NetProfit:           netProfit,
		ROIPercentage:       roiPct,
		ProfitMargin:        profitMargin,
		BreakEvenPrice:      breakEvenPrice,
		BreakEvenYield:      breakEvenYield,
		BreakEvenDays:       breakEvenDays,
		TotalYieldKg:        totalYieldKg,
		CostPerKg:           costPerKg,
		RevenuePerKg:        revenuePerKg,
		ProfitPerKg:         profitPerKg,
		BenefitCostRatio:    benefitCostRatio,
		PaybackPeriodMonths: paybackMonths,
	}

	if includeSensitivity {
		sensitivity, err := s.performSensitivityAnalysis(fixed, variable, production)
		if err != nil {
			return models.FinancialAnalysisResult{}, fmt.Errorf("sensitivity analysis: %w", err)
		}
		result.SensitivityAnalysis = sensitivity
	}

	result.RiskScore, result.RiskFactors = assessRisk(result, production)
	result.Recommendations = generateAdvice(result, production)

	s.logger.Info("roi analysis complete",
		zap.Float64("roi_pct", roiPct),
		zap.Float64("net_profit", netProfit),
		zap.Float64("risk_score", result.RiskScore))

	return result, nil
}

func validateInputs(
	fixed models.FixedCosts,
	variable models.VariableCosts,
	production models.ProductionMetrics,
	revenue *models.RevenueStreams,
) error {
	if err := fixed.Validate(); err != nil {
		return err
	}
	if err := variable.Validate(); err != nil {
		return err
	}
	if err := production.Validate(); err != nil {
		return err
	}
	if revenue != nil {
		if err := revenue.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// performSensitivityAnalysis recomputes the analysis across variations of
// market price, FCR (with proportional feed-cost scaling) and survival rate.
// Every sweep point works on its own copy of the base inputs.
func (s *Service) performSensitivityAnalysis(
	fixed models.FixedCosts,
	variable models.VariableCosts,
	production models.ProductionMetrics,
) (*models.SensitivityAnalysis, error) {
	priceVariations := []float64{-30, -20, -10, 0, 10, 20, 30}
	fcrVariations := []float64{-20, -10, 0, 10, 20}
	survivalVariations := []float64{-20, -10, 0, 10, 20}

	analysis := &models.SensitivityAnalysis{}

	for _, v := range priceVariations {
		modified := production.WithMarketPrice(production.MarketPricePerKg * (1 + v/100))
		point, err := s.sweepPoint(fixed, variable, modified, v)
		if err != nil {
			return nil, err
		}
		analysis.PriceSensitivity = append(analysis.PriceSensitivity, point)
	}

	for _, v := range fcrVariations {
		modifiedMetrics := production.WithFeedConversionRatio(production.FeedConversionRatio * (1 + v/100))
		modifiedCosts := variable.WithFeed(variable.Feed * (1 + v/100))
		point, err := s.sweepPoint(fixed, modifiedCosts, modifiedMetrics, v)
		if err != nil {
			return nil, err
		}
		analysis.FCRSensitivity = append(analysis.FCRSensitivity, point)
	}

	for _, v := range survivalVariations {
		modified := production.WithSurvivalRate(production.SurvivalRate + v)
		point, err := s.sweepPoint(fixed, variable, modified, v)
		if err != nil {
			return nil, err
		}
		analysis.SurvivalSensitivity = append(analysis.SurvivalSensitivity, point)
	}

	return analysis, nil
}

func (s *Service) sweepPoint(
	fixed models.FixedCosts,
	variable models.VariableCosts,
	production models.ProductionMetrics,
	variation float64,
) (models.SensitivityPoint, error) {
	result, err := s.CalculateROI(fixed, variable, production, nil, false)
	if err != nil {
		return models.SensitivityPoint{}, err
	}
	return models.SensitivityPoint{
		VariationPct: variation,
		ROI:          result.ROIPercentage,
		Profit:       result.NetProfit,
	}, nil
}

// PredictMarketTrends extrapolates a price series by the gap between its
// short and long moving averages. It is a heuristic trend read with a
// 95%-style band, not a statistical forecast model.
func (s *Service) PredictMarketTrends(prices []models.PricePoint, periods int) (models.MarketForecast, error) {
	if len(prices) == 0 {
		return models.MarketForecast{}, fmt.Errorf("%w: price series must not be empty", models.ErrInvalidInput)
	}
	if periods <= 0 {
		periods = 6
	}

	values := make([]float64, len(prices))
	for i, p := range prices {
		values[i] = p.Price
	}

	shortSlice := tail(values, shortWindow)
	maShort, err := stats.Mean(shortSlice)
	if err != nil {
		return models.MarketForecast{}, fmt.Errorf("short moving average: %w", err)
	}
	maLong, err := stats.Mean(tail(values, longWindow))
	if err != nil {
		return models.MarketForecast{}, fmt.Errorf("long moving average: %w", err)
	}
	stdDev, err := stats.StandardDeviation(shortSlice)
	if err != nil {
		return models.MarketForecast{}, fmt.Errorf("price stddev: %w", err)
	}

	trend := maShort - maLong
	lastPrice := values[len(values)-1]

	forecast := make([]models.ForecastPoint, 0, periods)
	for i := 1; i <= periods; i++ {
		predicted := lastPrice + trend*float64(i)
		forecast = append(forecast, models.ForecastPoint{
			Period:         i,
			PredictedPrice: predicted,
			LowerBound:     predicted - confidenceZScore*stdDev,
			UpperBound:     predicted + confidenceZScore*stdDev,
		})
	}

	direction := "stable"
	switch {
	case trend > 0:
		direction = "upward"
	case trend < 0:
		direction = "downward"
	}

	s.logger.Info("market trend forecast generated",
		zap.Int("periods", periods),
		zap.String("trend", direction))

	return models.MarketForecast{
		Forecast:      forecast,
		Trend:         direction,
		TrendStrength: math.Abs(trend),
		CurrentPrice:  lastPrice,
		Avg30d:        maShort,
		Avg90d:        maLong,
	}, nil
}

func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// CompareScenarios runs the analysis for each scenario (sensitivity disabled)
// and tabulates the headline figures.
func (s *Service) CompareScenarios(scenarios []models.Scenario) ([]models.ScenarioSummary, error) {
	summaries := make([]models.ScenarioSummary, 0, len(scenarios))

	for i, scenario := range scenarios {
		result, err := s.CalculateROI(scenario.Fixed, scenario.Variable, scenario.Production, nil, false)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}

		name := scenario.Name
		if name == "" {
			name = fmt.Sprintf("Scenario %d", i+1)
		}

		summaries = append(summaries, models.ScenarioSummary{
			Scenario:       name,
			ROIPct:         result.ROIPercentage,
			NetProfit:      result.NetProfit,
			ProfitMargin:   result.ProfitMargin,
			BreakEvenPrice: result.BreakEvenPrice,
			PaybackMonths:  result.PaybackPeriodMonths,
			RiskScore:      result.RiskScore,
		})
	}

	return summaries, nil
}

// ExportAnalysis serializes a result as "dict" (map), "json" (indented
// string) or "dataframe" (header row plus one value row).
func (s *Service) ExportAnalysis(result models.FinancialAnalysisResult, format string) (any, error) {
	switch format {
	case "dict":
		raw, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("marshal analysis: %w", err)
		}
		data := map[string]any{}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("unmarshal analysis: %w", err)
		}
		return data, nil
	case "json":
		raw, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal analysis: %w", err)
		}
		return string(raw), nil
	case "dataframe":
		return analysisTable(result), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: dict, json, dataframe)", models.ErrUnsupportedFormat, format)
	}
}

func analysisTable(result models.FinancialAnalysisResult) [][]string {
	header := []string{
		"total_investment", "total_costs", "total_revenue", "net_profit",
		"roi_percentage", "profit_margin", "break_even_price", "break_even_yield",
		"break_even_days", "total_yield_kg", "cost_per_kg", "revenue_per_kg",
		"profit_per_kg", "benefit_cost_ratio", "payback_period_months", "risk_score",
	}
	row := []string{
		formatFloat(result.TotalInvestment), formatFloat(result.TotalCosts),
		formatFloat(result.TotalRevenue), formatFloat(result.NetProfit),
		formatFloat(result.ROIPercentage), formatFloat(result.ProfitMargin),
		formatFloat(result.BreakEvenPrice), formatFloat(result.BreakEvenYield),
		fmt.Sprintf("%d", result.BreakEvenDays), formatFloat(result.TotalYieldKg),
		formatFloat(result.CostPerKg), formatFloat(result.RevenuePerKg),
		formatFloat(result.ProfitPerKg), formatFloat(result.BenefitCostRatio),
		formatFloat(result.PaybackPeriodMonths), formatFloat(result.RiskScore),
	}
	return [][]string{header, row}
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
