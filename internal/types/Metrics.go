/*

This file contains the derived-metric types produced by the analyzer. A
CalculatedMetrics value is a pure function of one SuggestionRequest: computed
fresh per request, never cached, never persisted beyond the optional history
record.

*/

package types

// VolumeTrend classifies the direction of pair volume over the window.
type VolumeTrend string

const (
	TrendIncreasing VolumeTrend = "increasing"
	TrendDecreasing VolumeTrend = "decreasing"
	TrendStable     VolumeTrend = "stable"
)

// MarketCondition classifies the overall market regime for the pair.
type MarketCondition string

const (
	MarketVolatile     MarketCondition = "volatile"
	MarketTrendingUp   MarketCondition = "trending_up"
	MarketTrendingDown MarketCondition = "trending_down"
	MarketStable       MarketCondition = "stable"
)

// SocialMomentum classifies short-term social engagement versus the weekly
// baseline.
type SocialMomentum string

const (
	MomentumRising    SocialMomentum = "rising"
	MomentumDeclining SocialMomentum = "declining"
	MomentumStable    SocialMomentum = "stable"
)

// FeeVolatilityRisk classifies how aggressive the variable-fee curve of the
// candidate pools is.
type FeeVolatilityRisk string

const (
	FeeRiskLow    FeeVolatilityRisk = "low"
	FeeRiskMedium FeeVolatilityRisk = "medium"
	FeeRiskHigh   FeeVolatilityRisk = "high"
)

// ViralAnalysis summarizes the social-signal inputs to the strategy.
type ViralAnalysis struct {
	TokenXPulseScore float64        `json:"tokenXPulseScore"`
	TokenYPulseScore float64        `json:"tokenYPulseScore"`
	BestViralRank    *int           `json:"bestViralRank,omitempty"` // Lower is better; nil when neither token is ranked.
	BoostMultiplier  float64        `json:"boostMultiplier"`         // 1.00 when unranked.
	SocialMomentum   SocialMomentum `json:"socialMomentum"`
}

// PoolParameterAnalysis summarizes the fee-curve parameters across candidate
// pools.
type PoolParameterAnalysis struct {
	AvgProtocolSharePct float64           `json:"avgProtocolSharePct"`
	BestPoolForLPs      string            `json:"bestPoolForLPs"` // Pair address with the lowest protocol share; empty when no pool exposes parameters.
	FeeVolatilityRisk   FeeVolatilityRisk `json:"feeVolatilityRisk"`
}

// CalculatedMetrics is the full set of derived scores for one request.
// Every field has a defined neutral fallback, so the calculator never fails.
// All 0-100 scores are clamped and all values carry fixed rounding so that
// identical inputs produce bit-identical outputs.
type CalculatedMetrics struct {
	TokenXVolatility   float64  `json:"tokenXVolatility"`   // 0-100
	TokenYVolatility   float64  `json:"tokenYVolatility"`   // 0-100
	CombinedVolatility float64  `json:"combinedVolatility"` // 0-100
	HourlyVolatility   *float64 `json:"hourlyVolatility,omitempty"`

	VolumeTrend      VolumeTrend     `json:"volumeTrend"`
	MarketCondition  MarketCondition `json:"marketCondition"`
	PriceChange7dPct float64         `json:"priceChange7dPct"`

	FeeAPRByPool       map[string]float64 `json:"feeAPRByPool"`       // Pair address -> raw fee APR %.
	EffectiveAPRByPool map[string]float64 `json:"effectiveAPRByPool"` // Fee APR scaled by the viral boost multiplier.

	LiquidityConcentrationPct float64 `json:"liquidityConcentrationPct"` // 0-100, share of value within the active window.
	ActiveBinsCount           int     `json:"activeBinsCount"`

	ViralAnalysis         ViralAnalysis         `json:"viralAnalysis"`
	PoolParameterAnalysis PoolParameterAnalysis `json:"poolParameterAnalysis"`
}
