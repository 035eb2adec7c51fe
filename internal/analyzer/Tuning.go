/*

This file contains the tuned thresholds for the metrics calculator.

These values are empirical: they were calibrated against observed pool
behavior on the exchange, not derived from first principles. Treat them as
tunable knobs, not domain truths.

*/

package analyzer

const (
	// NeutralVolatility is reported when price history is too short to
	// measure anything.
	NeutralVolatility = 50.0

	// VolatilityScale maps the mean daily high-low range percentage onto
	// the 0-100 score.
	VolatilityScale = 10.0

	// VolatilityCap bounds every volatility score.
	VolatilityCap = 100.0

	// Volume trend windows: the most recent days are compared against the
	// earliest days of a full week of history.
	TrendWindowDays = 7
	TrendRecentDays = 3
	TrendEarlyDays  = 4

	// TrendChangePct is the band outside which volume counts as trending.
	TrendChangePct = 20.0

	// VolatileMarketThreshold is the combined volatility above which the
	// market is classified volatile regardless of price direction.
	VolatileMarketThreshold = 70.0

	// TrendingPricePct is the 7-day price change band for trend
	// classification.
	TrendingPricePct = 10.0

	// ConcentrationWindowBins is the half-width of the active window used
	// for liquidity concentration (activeId +/- this many bins).
	ConcentrationWindowBins = 10

	// NeutralConcentration is reported when there is no measurable
	// liquidity.
	NeutralConcentration = 50.0

	// DaysPerYear annualizes the 24h fee yield.
	DaysPerYear = 365

	// DefaultProtocolSharePct is assumed when no pool exposes fee
	// parameters.
	DefaultProtocolSharePct = 50.0

	// Variable-fee-control bands for fee volatility risk.
	FeeControlHighThreshold   = 500000.0
	FeeControlMediumThreshold = 100000.0

	// Social momentum ratio bands (1-day engagement vs 7-day daily mean).
	MomentumRisingRatio    = 1.5
	MomentumDecliningRatio = 0.5
)

// Viral boost multipliers by leaderboard rank. Unranked tokens get no boost.
const (
	BoostRank1 = 1.80
	BoostRank2 = 1.60
	BoostRank3 = 1.20
	BoostNone  = 1.00
)
