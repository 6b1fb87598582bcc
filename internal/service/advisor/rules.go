package advisor

import (
	"fmt"

	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
)

// Each rule family is a pure function over the snapshot. Rules only fire when
// their reading is present; an absent field never counts as a worst case.

func analyzeWaterQuality(conditions models.FarmConditions) []models.Recommendation {
	recs := []models.Recommendation{}

	if conditions.PH != nil {
		if *conditions.PH < 7.5 {
			recs = append(recs, models.Recommendation{
				Priority:        models.PriorityHigh,
				Category:        "water_quality",
				Action:          "Increase pH using calcium carbonate (lime)",
				Reason:          fmt.Sprintf("Current pH (%.1f) is below optimal range (7.5-8.5)", *conditions.PH),
				ExpectedImpact:  "Improved shrimp immunity and growth rate (5-10%)",
				EstimatedCost:   50,
				TimeToImplement: "1-3 days",
				ResourcesNeeded: []string{"Calcium carbonate", "pH meter"},
				Confidence:      0.9,
			})
		} else if *conditions.PH > 8.5 {
			recs = append(recs, models.Recommendation{
				Priority:        models.PriorityMedium,
				Category:        "water_quality",
				Action:          "Reduce pH by increasing aeration and water exchange",
				Reason:          fmt.Sprintf("Current pH (%.1f) is above optimal range (7.5-8.5)", *conditions.PH),
				ExpectedImpact:  "Reduced ammonia toxicity, better feed utilization",
				TimeToImplement: "immediate",
				ResourcesNeeded: []string{"Aerators"},
				Confidence:      0.85,
			})
		}
	}

	if conditions.DissolvedOxygen != nil && *conditions.DissolvedOxygen < 4.0 {
		recs = append(recs, models.Recommendation{
			Priority:        models.PriorityCritical,
			Category:        "water_quality",
			Action:          "URGENT: increase aeration immediately",
			Reason:          fmt.Sprintf("DO level (%.1f mg/L) is critically low (min: 4 mg/L)", *conditions.DissolvedOxygen),
			ExpectedImpact:  "Prevent mass mortality, restore normal metabolic function",
			TimeToImplement: "immediate",
			ResourcesNeeded: []string{"Additional paddle wheel aerators", "Emergency generators"},
			Confidence:      0.95,
		})
	}

	if conditions.Ammonia != nil && *conditions.Ammonia > 0.5 {
		priority := models.PriorityMedium
		if *conditions.Ammonia > 1.0 {
			priority = models.PriorityHigh
		}
		recs = append(recs, models.Recommendation{
			Priority:        priority,
			Category:        "water_quality",
			Action:          "Reduce ammonia levels through water exchange and probiotics",
			Reason:          fmt.Sprintf("Ammonia (%.2f mg/L) exceeds safe level (< 0.5 mg/L)", *conditions.Ammonia),
			ExpectedImpact:  "Reduced stress, improved survival rate (10-15%)",
			EstimatedCost:   200,
			TimeToImplement: "1-3 days",
			ResourcesNeeded: []string{"Nitrifying bacteria", "Zeolite", "Water pump"},
			Confidence:      0.88,
		})
	}

	if conditions.Temperature != nil {
		if *conditions.Temperature < 26 {
			recs = append(recs, models.Recommendation{
				Priority:        models.PriorityMedium,
				Category:        "water_quality",
				Action:          "Monitor temperature closely; consider heating if it drops further",
				Reason:          fmt.Sprintf("Temperature (%.1f C) is below optimal (28-32 C)", *conditions.Temperature),
				ExpectedImpact:  "Improved metabolic rate and growth",
				TimeToImplement: "1 week",
				Confidence:      0.75,
			})
		} else if *conditions.Temperature > 32 {
			recs = append(recs, models.Recommendation{
				Priority:        models.PriorityMedium,
				Category:        "water_quality",
				Action:          "Increase water depth and exchange to reduce temperature",
				Reason:          fmt.Sprintf("Temperature (%.1f C) is above optimal (28-32 C)", *conditions.Temperature),
				ExpectedImpact:  "Reduced stress and disease susceptibility",
				TimeToImplement: "immediate",
				Confidence:      0.8,
			})
		}
	}

	return recs
}

func analyzeFeeding(conditions models.FarmConditions) []models.Recommendation {
	recs := []models.Recommendation{}

	if conditions.FCR != nil {
		if *conditions.FCR > 1.8 {
			recs = append(recs, models.Recommendation{
				Priority:        models.PriorityHigh,
				Category:        "feeding",
				Action:          "Optimize feeding regimen: reduce feed quantity by 10%, increase frequency",
				Reason:          fmt.Sprintf("FCR (%.2f) is above target (1.2-1.5 for intensive farming)", *conditions.FCR),
				ExpectedImpact:  "Reduce feed costs by 15-20%, improve FCR to 1.5-1.6",
				EstimatedCost:   -500, // savings
				TimeToImplement: "immediate",
				ResourcesNeeded: []string{"Feed trays", "Feeding schedule"},
				Confidence:      0.87,
			})
		} else if *conditions.FCR < 1.0 {
			recs = append(recs, models.Recommendation{
				Priority:       models.PriorityInfo,
				Category:       "feeding",
				Action:         "Excellent FCR, maintain current feeding practices",
				Reason:         fmt.Sprintf("FCR (%.2f) is exceptionally good", *conditions.FCR),
				ExpectedImpact: "Continue optimal performance",
				Confidence:     0.9,
			})
		}
	}

	if conditions.GrowthRate != nil && *conditions.GrowthRate < 1.0 {
		recs = append(recs, models.Recommendation{
			Priority:        models.PriorityMedium,
			Category:        "feeding",
			Action:          "Increase protein content in feed (38-40% protein)",
			Reason:          fmt.Sprintf("Growth rate (%.2f g/week) is below target (>1.5 g/week)", *conditions.GrowthRate),
			ExpectedImpact:  "Increase growth rate by 20-30%",
			EstimatedCost:   300,
			TimeToImplement: "1-3 days",
			ResourcesNeeded: []string{"High-protein feed"},
			Confidence:      0.82,
		})
	}

	return recs
}

func analyzeHealth(conditions models.FarmConditions) []models.Recommendation {
	recs := []models.Recommendation{}

	if conditions.DiseasePresent {
		recs = append(recs, models.Recommendation{
			Priority:        models.PriorityCritical,
			Category:        "health",
			Action:          "Implement disease management protocol immediately",
			Reason:          "Disease detected in pond",
			ExpectedImpact:  "Prevent disease spread, minimize losses",
			TimeToImplement: "immediate",
			ResourcesNeeded: []string{"Veterinary consultation", "Treatment medications"},
			Confidence:      0.95,
		})
	}

	if conditions.RecentMortality {
		recs = append(recs, models.Recommendation{
			Priority:        models.PriorityHigh,
			Category:        "health",
			Action:          "Investigate mortality cause: test water, check for disease, inspect feed quality",
			Reason:          "Recent mortality events detected",
			ExpectedImpact:  "Identify and address root cause",
			TimeToImplement: "1-3 days",
			ResourcesNeeded: []string{"Water testing kit", "Disease diagnostic kit"},
			Confidence:      0.88,
		})
	}

	return recs
}

func analyzeFinancials(conditions models.FarmConditions, profile models.UserProfile) []models.Recommendation {
	recs := []models.Recommendation{}

	if conditions.FeedCost != nil && profile.Budget != nil {
		if budget, ok := profile.Budget["feed"]; ok && *conditions.FeedCost > budget {
			recs = append(recs, models.Recommendation{
				Priority:        models.PriorityHigh,
				Category:        "financial",
				Action:          "Reduce feed costs: negotiate bulk discounts or switch supplier",
				Reason:          fmt.Sprintf("Feed costs (%.2f) exceed budget (%.2f)", *conditions.FeedCost, budget),
				ExpectedImpact:  "Save 10-15% on feed costs",
				EstimatedCost:   -500,
				TimeToImplement: "1 week",
				ResourcesNeeded: []string{"Supplier quotes"},
				Confidence:      0.75,
			})
		}
	}

	return recs
}

func analyzeGrowth(conditions models.FarmConditions) []models.Recommendation {
	recs := []models.Recommendation{}

	if conditions.SurvivalRate != nil && *conditions.SurvivalRate < 70 {
		recs = append(recs, models.Recommendation{
			Priority:        models.PriorityHigh,
			Category:        "production",
			Action:          "Improve survival rate: enhance biosecurity, reduce stocking density",
			Reason:          fmt.Sprintf("Survival rate (%.1f%%) is below target (>80%%)", *conditions.SurvivalRate),
			ExpectedImpact:  "Increase yield by 15-25%",
			TimeToImplement: "next cycle",
			ResourcesNeeded: []string{"Biosecurity equipment", "Disease monitoring"},
			Confidence:      0.85,
		})
	}

	return recs
}
