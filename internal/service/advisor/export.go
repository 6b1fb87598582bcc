package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
)

// ExportRecommendations serializes a recommendation list as "dict" (slice of
// maps), "json" (indented string) or "markdown" (rendered report).
func (s *Service) ExportRecommendations(recommendations []models.Recommendation, format string) (any, error) {
	switch format {
	case "dict":
		raw, err := json.Marshal(recommendations)
		if err != nil {
			return nil, fmt.Errorf("marshal recommendations: %w", err)
		}
		data := []map[string]any{}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("unmarshal recommendations: %w", err)
		}
		return data, nil
	case "json":
		raw, err := json.MarshalIndent(recommendations, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal recommendations: %w", err)
		}
		return string(raw), nil
	case "markdown":
		return formatMarkdown(recommendations), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: dict, json, markdown)", models.ErrUnsupportedFormat, format)
	}
}

var priorityGlyphs = map[models.Priority]string{
	models.PriorityCritical: "[!!]",
	models.PriorityHigh:     "[!]",
	models.PriorityMedium:   "[*]",
	models.PriorityLow:      "[-]",
	models.PriorityInfo:     "[i]",
}

func formatMarkdown(recommendations []models.Recommendation) string {
	var b strings.Builder
	b.WriteString("# Shrimp Farm Recommendations\n\n")

	for i, rec := range recommendations {
		fmt.Fprintf(&b, "## %d. %s %s\n\n", i+1, priorityGlyphs[rec.Priority], rec.Action)
		fmt.Fprintf(&b, "**Priority:** %s\n\n", rec.Priority)
		fmt.Fprintf(&b, "**Category:** %s\n\n", rec.Category)
		fmt.Fprintf(&b, "**Reason:** %s\n\n", rec.Reason)
		fmt.Fprintf(&b, "**Expected Impact:** %s\n\n", rec.ExpectedImpact)

		if rec.EstimatedCost != 0 {
			label := "Cost"
			if rec.EstimatedCost < 0 {
				label = "Savings"
			}
			fmt.Fprintf(&b, "**%s:** $%.2f\n\n", label, abs(rec.EstimatedCost))
		}

		if rec.TimeToImplement != "" {
			fmt.Fprintf(&b, "**Time to Implement:** %s\n\n", rec.TimeToImplement)
		}

		if len(rec.ResourcesNeeded) > 0 {
			fmt.Fprintf(&b, "**Resources Needed:** %s\n\n", strings.Join(rec.ResourcesNeeded, ", "))
		}

		fmt.Fprintf(&b, "**Confidence:** %.0f%%\n\n", rec.Confidence*100)
		b.WriteString("---\n\n")
	}

	return b.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
