package financial

import (
	"fmt"

	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
)

// assessRisk produces an additive 0-100 risk score and the qualitative
// factors behind it. Each rule contributes at most one tier, evaluated
// high-severity first.
func assessRisk(result models.FinancialAnalysisResult, metrics models.ProductionMetrics) (float64, []string) {
	var score float64
	factors := []string{}

	if result.ProfitMargin < 10 {
		factors = append(factors, "Low profit margin (<10%)")
		score += 20
	} else if result.ProfitMargin < 20 {
		factors = append(factors, "Moderate profit margin (10-20%)")
		score += 10
	}

	if metrics.FeedConversionRatio > 1.8 {
		factors = append(factors, "High FCR (>1.8) - feed efficiency poor")
		score += 15
	} else if metrics.FeedConversionRatio > 1.5 {
		factors = append(factors, "Moderate FCR (1.5-1.8)")
		score += 8
	}

	if metrics.SurvivalRate < 60 {
		factors = append(factors, "Low survival rate (<60%)")
		score += 25
	} else if metrics.SurvivalRate < 75 {
		factors = append(factors, "Moderate survival rate (60-75%)")
		score += 12
	}

	if result.PaybackPeriodMonths > 24 {
		factors = append(factors, "Long payback period (>2 years)")
		score += 15
	} else if result.PaybackPeriodMonths > 18 {
		factors = append(factors, "Moderate payback period (18-24 months)")
		score += 8
	}

	if result.ROIPercentage < 0 {
		factors = append(factors, "NEGATIVE ROI - operation not profitable")
		score += 40
	} else if result.ROIPercentage < 15 {
		factors = append(factors, "Low ROI (<15%)")
		score += 20
	}

	if result.BreakEvenPrice > metrics.MarketPricePerKg {
		factors = append(factors, "Break-even price above market price")
		score += 30
	}

	if score > 100 {
		score = 100
	}

	return score, factors
}

// generateAdvice emits independent textual suggestions in a fixed sequence.
// The conditions are not mutually exclusive.
func generateAdvice(result models.FinancialAnalysisResult, metrics models.ProductionMetrics) []string {
	advice := []string{}

	if metrics.FeedConversionRatio > 1.5 {
		advice = append(advice, fmt.Sprintf(
			"Improve FCR from %.2f to 1.3-1.5: optimize feeding frequency, use quality feed, monitor water quality",
			metrics.FeedConversionRatio))
	}

	if metrics.SurvivalRate < 75 {
		advice = append(advice, fmt.Sprintf(
			"Increase survival rate from %.1f%% to 80%%+: implement biosecurity measures, regular water quality monitoring, disease prevention",
			metrics.SurvivalRate))
	}

	if result.CostPerKg > result.RevenuePerKg*0.7 {
		advice = append(advice,
			"Reduce production costs: negotiate bulk feed prices, optimize labor, reduce electricity use with aerator timers")
	}

	if result.BreakEvenPrice > metrics.MarketPricePerKg*0.9 {
		advice = append(advice,
			"Explore premium markets: organic certification, direct-to-consumer sales, larger shrimp size for better prices")
	}

	if metrics.StockingDensity < 50 {
		advice = append(advice,
			"Consider increasing stocking density to 50-80 PL/m2 for intensive farming (ensure proper aeration and water quality management)")
	} else if metrics.StockingDensity > 100 {
		advice = append(advice,
			"High stocking density (>100 PL/m2): monitor closely for disease outbreaks and water quality issues")
	}

	if result.ROIPercentage < 20 {
		advice = append(advice,
			"ROI below target: focus on reducing FCR, improving survival rate, and exploring value-added products")
	}

	return advice
}
