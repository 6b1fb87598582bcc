package models

import "fmt"

// FixedCosts captures one-time capital investments for a grow-out operation.
type FixedCosts struct {
	PondLease       float64 `json:"pond_lease"`
	Equipment       float64 `json:"equipment"`
	Infrastructure  float64 `json:"infrastructure"`
	PermitsLicenses float64 `json:"permits_licenses"`
	Insurance       float64 `json:"insurance"`
	Depreciation    float64 `json:"depreciation"`
}

// Total is the arithmetic sum of every named fixed-cost field.
func (c FixedCosts) Total() float64 {
	return c.PondLease + c.Equipment + c.Infrastructure + c.PermitsLicenses + c.Insurance + c.Depreciation
}

// Validate rejects negative cost entries.
func (c FixedCosts) Validate() error {
	fields := map[string]float64{
		"pond_lease":       c.PondLease,
		"equipment":        c.Equipment,
		"infrastructure":   c.Infrastructure,
		"permits_licenses": c.PermitsLicenses,
		"insurance":        c.Insurance,
		"depreciation":     c.Depreciation,
	}
	for name, v := range fields {
		if v < 0 {
			return fmt.Errorf("%w: fixed cost %s must not be negative, got %.2f", ErrInvalidInput, name, v)
		}
	}
	return nil
}

// VariableCosts captures per-cycle operating costs.
type VariableCosts struct {
	Postlarvae     float64 `json:"postlarvae"`
	Feed           float64 `json:"feed"`
	Labor          float64 `json:"labor"`
	Electricity    float64 `json:"electricity"`
	Fuel           float64 `json:"fuel"`
	Medication     float64 `json:"medication"`
	Probiotics     float64 `json:"probiotics"`
	WaterTreatment float64 `json:"water_treatment"`
	Maintenance    float64 `json:"maintenance"`
	Transportation float64 `json:"transportation"`
	Packaging      float64 `json:"packaging"`
	Miscellaneous  float64 `json:"miscellaneous"`
}

// Total is the arithmetic sum of every named variable-cost field.
func (c VariableCosts) Total() float64 {
	return c.Postlarvae + c.Feed + c.Labor + c.Electricity + c.Fuel + c.Medication +
		c.Probiotics + c.WaterTreatment + c.Maintenance + c.Transportation + c.Packaging + c.Miscellaneous
}

// Validate rejects negative cost entries.
func (c VariableCosts) Validate() error {
	fields := map[string]float64{
		"postlarvae":      c.Postlarvae,
		"feed":            c.Feed,
		"labor":           c.Labor,
		"electricity":     c.Electricity,
		"fuel":            c.Fuel,
		"medication":      c.Medication,
		"probiotics":      c.Probiotics,
		"water_treatment": c.WaterTreatment,
		"maintenance":     c.Maintenance,
		"transportation":  c.Transportation,
		"packaging":       c.Packaging,
		"miscellaneous":   c.Miscellaneous,
	}
	for name, v := range fields {
		if v < 0 {
			return fmt.Errorf("%w: variable cost %s must not be negative, got %.2f", ErrInvalidInput, name, v)
		}
	}
	return nil
}

// WithFeed returns a copy with the feed cost replaced. Used by sensitivity
// sweeps so the shared base value is never mutated.
func (c VariableCosts) WithFeed(feed float64) VariableCosts {
	c.Feed = feed
	return c
}

// RevenueStreams captures income sources for one production cycle.
type RevenueStreams struct {
	ShrimpSales           float64 `json:"shrimp_sales"`
	Byproducts            float64 `json:"byproducts"`
	CertificationPremiums float64 `json:"certification_premiums"`
	GovernmentSubsidies   float64 `json:"government_subsidies"`
}

// Total is the arithmetic sum of every named revenue field.
func (r RevenueStreams) Total() float64 {
	return r.ShrimpSales + r.Byproducts + r.CertificationPremiums + r.GovernmentSubsidies
}

// Validate rejects negative revenue entries.
func (r RevenueStreams) Validate() error {
	fields := map[string]float64{
		"shrimp_sales":           r.ShrimpSales,
		"byproducts":             r.Byproducts,
		"certification_premiums": r.CertificationPremiums,
		"government_subsidies":   r.GovernmentSubsidies,
	}
	for name, v := range fields {
		if v < 0 {
			return fmt.Errorf("%w: revenue %s must not be negative, got %.2f", ErrInvalidInput, name, v)
		}
	}
	return nil
}

// ProductionMetrics describes the production parameters of one grow-out cycle.
type ProductionMetrics struct {
	PondArea            float64 `json:"pond_area"`            // hectares
	StockingDensity     float64 `json:"stocking_density"`     // PL per m²
	AverageBodyWeight   float64 `json:"average_body_weight"`  // grams at harvest
	SurvivalRate        float64 `json:"survival_rate"`        // percent, 0-100
	FeedConversionRatio float64 `json:"feed_conversion_ratio"`
	CulturePeriod       int     `json:"culture_period"` // days
	MarketPricePerKg    float64 `json:"market_price_per_kg"`
}

// Validate enforces the numeric domains needed for a well-defined analysis.
func (m ProductionMetrics) Validate() error {
	switch {
	case m.PondArea <= 0:
		return fmt.Errorf("%w: pond_area must be positive, got %.2f", ErrInvalidInput, m.PondArea)
	case m.StockingDensity <= 0:
		return fmt.Errorf("%w: stocking_density must be positive, got %.2f", ErrInvalidInput, m.StockingDensity)
	case m.AverageBodyWeight <= 0:
		return fmt.Errorf("%w: average_body_weight must be positive, got %.2f", ErrInvalidInput, m.AverageBodyWeight)
	case m.SurvivalRate < 0 || m.SurvivalRate > 100:
		return fmt.Errorf("%w: survival_rate must be within [0,100], got %.2f", ErrInvalidInput, m.SurvivalRate)
	case m.FeedConversionRatio < 0:
		return fmt.Errorf("%w: feed_conversion_ratio must not be negative, got %.2f", ErrInvalidInput, m.FeedConversionRatio)
	case m.CulturePeriod <= 0:
		return fmt.Errorf("%w: culture_period must be positive, got %d", ErrInvalidInput, m.CulturePeriod)
	case m.MarketPricePerKg <= 0:
		return fmt.Errorf("%w: market_price_per_kg must be positive, got %.2f", ErrInvalidInput, m.MarketPricePerKg)
	}
	return nil
}

// WithMarketPrice returns a copy with the market price replaced.
func (m ProductionMetrics) WithMarketPrice(price float64) ProductionMetrics {
	m.MarketPricePerKg = price
	return m
}

// WithFeedConversionRatio returns a copy with the FCR replaced.
func (m ProductionMetrics) WithFeedConversionRatio(fcr float64) ProductionMetrics {
	m.FeedConversionRatio = fcr
	return m
}

// WithSurvivalRate returns a copy with the survival rate replaced, clamped
// to [0,100].
func (m ProductionMetrics) WithSurvivalRate(rate float64) ProductionMetrics {
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}
	m.SurvivalRate = rate
	return m
}
