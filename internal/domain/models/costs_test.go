package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedCostsTotal(t *testing.T) {
	costs := FixedCosts{
		PondLease:       1000,
		Equipment:       500,
		Infrastructure:  300,
		PermitsLicenses: 100,
		Insurance:       50,
		Depreciation:    25,
	}

	assert.InDelta(t, 1975, costs.Total(), 1e-9)
	assert.Zero(t, FixedCosts{}.Total())
}

func TestVariableCostsTotal(t *testing.T) {
	costs := VariableCosts{
		Postlarvae: 100,
		Feed:       200,
		Labor:      300,
		Packaging:  50,
	}

	assert.InDelta(t, 650, costs.Total(), 1e-9)
}

func TestRevenueStreamsTotal(t *testing.T) {
	revenue := RevenueStreams{
		ShrimpSales:           90000,
		Byproducts:            1000,
		CertificationPremiums: 500,
		GovernmentSubsidies:   250,
	}

	assert.InDelta(t, 91750, revenue.Total(), 1e-9)
}

func TestCostValidationRejectsNegatives(t *testing.T) {
	assert.ErrorIs(t, FixedCosts{Equipment: -1}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, VariableCosts{Medication: -5}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, RevenueStreams{Byproducts: -2}.Validate(), ErrInvalidInput)

	assert.NoError(t, FixedCosts{}.Validate())
	assert.NoError(t, VariableCosts{}.Validate())
	assert.NoError(t, RevenueStreams{}.Validate())
}

func validMetrics() ProductionMetrics {
	return ProductionMetrics{
		PondArea:            1,
		StockingDensity:     70,
		AverageBodyWeight:   25,
		SurvivalRate:        75,
		FeedConversionRatio: 1.4,
		CulturePeriod:       90,
		MarketPricePerKg:    8,
	}
}

func TestProductionMetricsValidate(t *testing.T) {
	assert.NoError(t, validMetrics().Validate())

	zeroPrice := validMetrics()
	zeroPrice.MarketPricePerKg = 0
	assert.ErrorIs(t, zeroPrice.Validate(), ErrInvalidInput)

	zeroPeriod := validMetrics()
	zeroPeriod.CulturePeriod = 0
	assert.ErrorIs(t, zeroPeriod.Validate(), ErrInvalidInput)

	badSurvival := validMetrics()
	badSurvival.SurvivalRate = 101
	assert.ErrorIs(t, badSurvival.Validate(), ErrInvalidInput)
}

func TestWithSurvivalRateClamps(t *testing.T) {
	base := validMetrics()

	assert.InDelta(t, 100, base.WithSurvivalRate(130).SurvivalRate, 1e-9)
	assert.InDelta(t, 0, base.WithSurvivalRate(-10).SurvivalRate, 1e-9)
	assert.InDelta(t, 80, base.WithSurvivalRate(80).SurvivalRate, 1e-9)

	// Copy-with-override never touches the receiver.
	assert.InDelta(t, 75, base.SurvivalRate, 1e-9)
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 0, PriorityCritical.Rank())
	assert.Equal(t, 1, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 3, PriorityLow.Rank())
	assert.Equal(t, 4, PriorityInfo.Rank())
	assert.Equal(t, 5, Priority("BOGUS").Rank())
}

func TestRequestFlagDefaults(t *testing.T) {
	assert.True(t, ROIAnalysisRequest{}.Sensitivity())
	assert.True(t, RecommendationRequest{}.AIInsights())

	off := false
	assert.False(t, ROIAnalysisRequest{IncludeSensitivity: &off}.Sensitivity())
	assert.False(t, RecommendationRequest{IncludeAIInsights: &off}.AIInsights())
}
