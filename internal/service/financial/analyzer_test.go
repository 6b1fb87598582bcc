package financial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
)

const epsilon = 1e-9

func baseFixedCosts() models.FixedCosts {
	return models.FixedCosts{
		PondLease:      2000,
		Equipment:      1500,
		Infrastructure: 800,
	}
}

func baseVariableCosts() models.VariableCosts {
	return models.VariableCosts{
		Postlarvae:  8000,
		Feed:        20000,
		Labor:       5000,
		Electricity: 2700,
	}
}

func baseProduction() models.ProductionMetrics {
	return models.ProductionMetrics{
		PondArea:            1,
		StockingDensity:     70,
		AverageBodyWeight:   25,
		SurvivalRate:        75,
		FeedConversionRatio: 1.4,
		CulturePeriod:       90,
		MarketPricePerKg:    8,
	}
}

func TestCalculateROIReferenceCycle(t *testing.T) {
	svc := NewService(nil)

	result, err := svc.CalculateROI(baseFixedCosts(), baseVariableCosts(), baseProduction(), nil, false)
	require.NoError(t, err)

	assert.InDelta(t, 4300, result.TotalInvestment, epsilon)
	assert.InDelta(t, 40000, result.TotalCosts, epsilon)
	assert.InDelta(t, 13125, result.TotalYieldKg, epsilon)
	assert.InDelta(t, 105000, result.TotalRevenue, epsilon)
	assert.InDelta(t, 65000, result.NetProfit, epsilon)
	assert.InDelta(t, 162.5, result.ROIPercentage, epsilon)
}

func TestCalculateROITotalsAreFieldSums(t *testing.T) {
	svc := NewService(nil)

	fixed := baseFixedCosts()
	variable := baseVariableCosts()

	result, err := svc.CalculateROI(fixed, variable, baseProduction(), nil, false)
	require.NoError(t, err)

	assert.InDelta(t, fixed.Total()+variable.Total(), result.TotalCosts, epsilon)
}

func TestCalculateROIExplicitRevenue(t *testing.T) {
	svc := NewService(nil)

	revenue := &models.RevenueStreams{
		ShrimpSales:           90000,
		Byproducts:            2000,
		CertificationPremiums: 3000,
	}

	result, err := svc.CalculateROI(baseFixedCosts(), baseVariableCosts(), baseProduction(), revenue, false)
	require.NoError(t, err)

	assert.InDelta(t, 95000, result.TotalRevenue, epsilon)
	assert.InDelta(t, 55000, result.NetProfit, epsilon)
}

func TestCalculateROIZeroGuards(t *testing.T) {
	svc := NewService(nil)

	// Zero costs: ROI must be 0 rather than dividing by zero.
	result, err := svc.CalculateROI(models.FixedCosts{}, models.VariableCosts{}, baseProduction(), nil, false)
	require.NoError(t, err)
	assert.Zero(t, result.ROIPercentage)
	assert.Zero(t, result.BenefitCostRatio)

	// Zero revenue: profit margin must be 0.
	zeroRevenue := &models.RevenueStreams{}
	result, err = svc.CalculateROI(baseFixedCosts(), baseVariableCosts(), baseProduction(), zeroRevenue, false)
	require.NoError(t, err)
	assert.Zero(t, result.ProfitMargin)
}

func TestCalculateROIInvalidInput(t *testing.T) {
	svc := NewService(nil)

	cases := map[string]struct {
		fixed      models.FixedCosts
		variable   models.VariableCosts
		production models.ProductionMetrics
	}{
		"zero market price": {
			fixed:      baseFixedCosts(),
			variable:   baseVariableCosts(),
			production: baseProduction().WithMarketPrice(0),
		},
		"zero culture period": {
			fixed:    baseFixedCosts(),
			variable: baseVariableCosts(),
			production: func() models.ProductionMetrics {
				p := baseProduction()
				p.CulturePeriod = 0
				return p
			}(),
		},
		"survival above 100": {
			fixed:    baseFixedCosts(),
			variable: baseVariableCosts(),
			production: func() models.ProductionMetrics {
				p := baseProduction()
				p.SurvivalRate = 120
				return p
			}(),
		},
		"negative feed cost": {
			fixed:      baseFixedCosts(),
			variable:   baseVariableCosts().WithFeed(-100),
			production: baseProduction(),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CalculateROI(tc.fixed, tc.variable, tc.production, nil, true)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestCalculateROIPaybackSentinel(t *testing.T) {
	svc := NewService(nil)

	// Price low enough that the cycle loses money.
	production := baseProduction().WithMarketPrice(1)

	result, err := svc.CalculateROI(baseFixedCosts(), baseVariableCosts(), production, nil, false)
	require.NoError(t, err)

	assert.Negative(t, result.NetProfit)
	assert.InDelta(t, float64(models.NoPaybackSentinel), result.PaybackPeriodMonths, epsilon)
}

func TestCalculateROIBreakEvenDaysFallback(t *testing.T) {
	svc := NewService(nil)

	production := baseProduction().WithMarketPrice(1)

	result, err := svc.CalculateROI(baseFixedCosts(), baseVariableCosts(), production, nil, false)
	require.NoError(t, err)

	// Daily revenue below daily costs falls back to twice the culture period.
	assert.Equal(t, production.CulturePeriod*2, result.BreakEvenDays)
}

func TestSensitivitySweepShape(t *testing.T) {
	svc := NewService(nil)

	result, err := svc.CalculateROI(baseFixedCosts(), baseVariableCosts(), baseProduction(), nil, true)
	require.NoError(t, err)
	require.NotNil(t, result.SensitivityAnalysis)

	assert.Len(t, result.SensitivityAnalysis.PriceSensitivity, 7)
	assert.Len(t, result.SensitivityAnalysis.FCRSensitivity, 5)
	assert.Len(t, result.SensitivityAnalysis.SurvivalSensitivity, 5)

	// The zero-variation point must reproduce the base analysis.
	zeroPoint := result.SensitivityAnalysis.PriceSensitivity[3]
	assert.Zero(t, zeroPoint.VariationPct)
	assert.InDelta(t, result.ROIPercentage, zeroPoint.ROI, epsilon)
	assert.InDelta(t, result.NetProfit, zeroPoint.Profit, epsilon)
}

func TestSensitivitySweepIndependence(t *testing.T) {
	svc := NewService(nil)

	fixed := baseFixedCosts()
	variable := baseVariableCosts()
	production := baseProduction()

	first, err := svc.CalculateROI(fixed, variable, production, nil, true)
	require.NoError(t, err)
	second, err := svc.CalculateROI(fixed, variable, production, nil, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Sweep points never mutate the shared base inputs.
	assert.Equal(t, baseFixedCosts(), fixed)
	assert.Equal(t, baseVariableCosts(), variable)
	assert.Equal(t, baseProduction(), production)
}

func TestPredictMarketTrendsUpward(t *testing.T) {
	svc := NewService(nil)

	prices := make([]models.PricePoint, 0, 40)
	for i := 0; i < 40; i++ {
		prices = append(prices, models.PricePoint{Price: 5 + float64(i)*0.1})
	}

	forecast, err := svc.PredictMarketTrends(prices, 6)
	require.NoError(t, err)

	assert.Equal(t, "upward", forecast.Trend)
	assert.Len(t, forecast.Forecast, 6)
	assert.InDelta(t, prices[len(prices)-1].Price, forecast.CurrentPrice, epsilon)

	trend := forecast.Avg30d - forecast.Avg90d
	for i, point := range forecast.Forecast {
		expected := forecast.CurrentPrice + trend*float64(i+1)
		assert.InDelta(t, expected, point.PredictedPrice, epsilon)
		assert.InDelta(t, point.PredictedPrice-point.LowerBound, point.UpperBound-point.PredictedPrice, epsilon)
	}
}

func TestPredictMarketTrendsStable(t *testing.T) {
	svc := NewService(nil)

	prices := make([]models.PricePoint, 0, 10)
	for i := 0; i < 10; i++ {
		prices = append(prices, models.PricePoint{Price: 7.5})
	}

	forecast, err := svc.PredictMarketTrends(prices, 3)
	require.NoError(t, err)

	assert.Equal(t, "stable", forecast.Trend)
	assert.Zero(t, forecast.TrendStrength)
}

func TestPredictMarketTrendsEmptySeries(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.PredictMarketTrends(nil, 6)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestCompareScenarios(t *testing.T) {
	svc := NewService(nil)

	scenarios := []models.Scenario{
		{Name: "Conservative", Fixed: baseFixedCosts(), Variable: baseVariableCosts(), Production: baseProduction()},
		{Fixed: baseFixedCosts(), Variable: baseVariableCosts(), Production: baseProduction().WithMarketPrice(10)},
	}

	summaries, err := svc.CompareScenarios(scenarios)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Conservative", summaries[0].Scenario)
	assert.Equal(t, "Scenario 2", summaries[1].Scenario)
	assert.Greater(t, summaries[1].ROIPct, summaries[0].ROIPct)
}

func TestExportAnalysis(t *testing.T) {
	svc := NewService(nil)

	result, err := svc.CalculateROI(baseFixedCosts(), baseVariableCosts(), baseProduction(), nil, false)
	require.NoError(t, err)

	dict, err := svc.ExportAnalysis(result, "dict")
	require.NoError(t, err)
	data, ok := dict.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "roi_percentage")
	assert.Contains(t, data, "total_yield_kg")

	asJSON, err := svc.ExportAnalysis(result, "json")
	require.NoError(t, err)
	assert.Contains(t, asJSON.(string), "\"net_profit\"")

	table, err := svc.ExportAnalysis(result, "dataframe")
	require.NoError(t, err)
	rows, ok := table.([][]string)
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Len(t, rows[1], len(rows[0]))

	_, err = svc.ExportAnalysis(result, "csv")
	assert.ErrorIs(t, err, models.ErrUnsupportedFormat)
}
