package models

import "time"

// Priority enumerates recommendation urgency levels.
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
	PriorityInfo     Priority = "INFO"
)

// Rank maps a priority to its sort position; lower sorts first. Unknown
// priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	case PriorityInfo:
		return 4
	default:
		return 5
	}
}

// Recommendation is one unit of actionable advice produced by a rule family.
// EstimatedCost below zero denotes an expected saving.
type Recommendation struct {
	Priority        Priority `json:"priority"`
	Category        string   `json:"category"` // "water_quality", "feeding", "health", "financial", "production", "ai_insight"
	Action          string   `json:"action"`
	Reason          string   `json:"reason"`
	ExpectedImpact  string   `json:"expected_impact"`
	EstimatedCost   float64  `json:"estimated_cost,omitempty"`
	TimeToImplement string   `json:"time_to_implement,omitempty"` // "immediate", "1-3 days", "1 week"
	ResourcesNeeded []string `json:"resources_needed,omitempty"`
	Confidence      float64  `json:"confidence"` // 0-1
}

// FarmConditions is a snapshot of the readings available for one pond or
// farm. Nil pointer fields mean "not measured"; the rule engine skips rules
// whose inputs are absent rather than assuming a worst case.
type FarmConditions struct {
	// Water chemistry
	PH              *float64 `json:"ph,omitempty"`
	DissolvedOxygen *float64 `json:"dissolved_oxygen,omitempty"` // mg/L
	Temperature     *float64 `json:"temperature,omitempty"`      // °C
	Salinity        *float64 `json:"salinity,omitempty"`         // ppt
	Ammonia         *float64 `json:"ammonia,omitempty"`          // mg/L
	Nitrite         *float64 `json:"nitrite,omitempty"`          // mg/L
	Alkalinity      *float64 `json:"alkalinity,omitempty"`       // mg/L

	// Production
	GrowthRate      *float64 `json:"growth_rate,omitempty"` // g/week
	SurvivalRate    *float64 `json:"survival_rate,omitempty"`
	FCR             *float64 `json:"fcr,omitempty"`
	DOC             *int     `json:"doc,omitempty"` // days of culture
	StockingDensity *float64 `json:"stocking_density,omitempty"`

	// Financial
	FeedCost             *float64 `json:"feed_cost,omitempty"`
	LaborCost            *float64 `json:"labor_cost,omitempty"`
	TotalOperationalCost *float64 `json:"total_operational_cost,omitempty"`

	// Health
	DiseasePresent  bool   `json:"disease_present"`
	RecentMortality bool   `json:"recent_mortality"`
	FeedingResponse string `json:"feeding_response,omitempty"` // "excellent", "good", "poor"
}

// UserProfile identifies the farm and the operator's context.
type UserProfile struct {
	UserID          string  `json:"user_id"`
	FarmName        string  `json:"farm_name"`
	ExperienceLevel string  `json:"experience_level"` // "beginner", "intermediate", "expert"
	FarmSizeHa      float64 `json:"farm_size_hectares"`
	NumPonds        int     `json:"num_ponds"`
	FarmingSystem   string  `json:"farming_system"` // "extensive", "semi-intensive", "intensive", "super-intensive"

	Budget map[string]float64 `json:"budget,omitempty"` // per-category caps, e.g. {"feed": 10000}

	RiskTolerance       string `json:"risk_tolerance,omitempty"` // "low", "moderate", "high"
	SustainabilityFocus bool   `json:"sustainability_focus"`
	OrganicCertified    bool   `json:"organic_certified"`

	TargetYieldKg     float64 `json:"target_yield,omitempty"`
	TargetHarvestDate string  `json:"target_harvest_date,omitempty"`
}

// RecommendationReport is the persisted form of one advisory run.
type RecommendationReport struct {
	UserID          string           `json:"user_id" bson:"user_id"`
	FarmName        string           `json:"farm_name" bson:"farm_name"`
	Recommendations []Recommendation `json:"recommendations" bson:"recommendations"`
	CreatedAt       time.Time        `json:"created_at" bson:"created_at"`
}
