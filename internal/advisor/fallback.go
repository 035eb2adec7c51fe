/*

This file contains the deterministic fallback strategy. It is the terminal
answer for every failure in the model path (missing credential, network or
API error, unparseable response) and sizes the bin range purely from the
combined volatility score and the user's risk profile.

The volatility bands (60/30) and the range factors are tuned values, carried
over unchanged from production behavior.

*/

package advisor

import (
	"fmt"
	"math"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

const (
	fallbackVolatilityHigh = 60.0
	fallbackVolatilityLow  = 30.0

	fallbackWideHalfRange  = 35
	fallbackMidHalfRange   = 25
	fallbackTightHalfRange = 15

	defensiveRangeFactor  = 1.5
	aggressiveRangeFactor = 0.7
)

// FallbackStrategy synthesizes a complete recommendation from the metrics
// alone. It always targets the highest-TVL candidate pool.
func FallbackStrategy(req types.SuggestionRequest, metrics types.CalculatedMetrics) types.AIStrategyRecommendation {
	pool := HighestTVLPool(req.AvailablePools)
	volatility := metrics.CombinedVolatility
	aggressive := req.RiskProfile == types.RiskAggressive

	var halfRange int
	shape := types.ShapeSpot
	ilRisk := types.ILRiskLow
	frequency := types.RebalanceRarely

	switch {
	case volatility > fallbackVolatilityHigh:
		halfRange = fallbackWideHalfRange
		ilRisk = types.ILRiskHigh
		frequency = types.RebalanceDaily
	case volatility > fallbackVolatilityLow:
		halfRange = fallbackMidHalfRange
		ilRisk = types.ILRiskMedium
		frequency = types.RebalanceWeekly
		if aggressive {
			shape = types.ShapeCurve
		}
	default:
		halfRange = fallbackTightHalfRange
		if aggressive {
			shape = types.ShapeCurve
		}
	}

	// Profile adjustment after the volatility base; the branches are
	// mutually exclusive.
	switch req.RiskProfile {
	case types.RiskDefensive:
		halfRange = int(math.Round(float64(halfRange) * defensiveRangeFactor))
		shape = types.ShapeSpot
	case types.RiskAggressive:
		halfRange = int(math.Round(float64(halfRange) * aggressiveRangeFactor))
	}

	minBin := req.CurrentActiveID - halfRange
	maxBin := req.CurrentActiveID + halfRange

	apr := metrics.FeeAPRByPool[pool.PairAddress]
	if apr <= 0 {
		apr = DefaultExpectedAPR
	}

	return types.AIStrategyRecommendation{
		RecommendedPool: types.RecommendedPool{
			PairAddress: pool.PairAddress,
			BinStep:     pool.BinStep,
			Reason:      "Highest TVL among candidate pools.",
		},
		Strategy: types.StrategyParams{
			MinBinID:          minBin,
			MaxBinID:          maxBin,
			BinCount:          maxBin - minBin + 1,
			DistributionShape: shape,
		},
		RiskAssessment: types.RiskAssessment{
			ImpermanentLossRisk: ilRisk,
			RebalanceFrequency:  frequency,
			ExpectedAprRange:    [2]float64{apr * aprRangeLowFactor, apr * aprRangeHighFactor},
		},
		Analysis: fmt.Sprintf(
			"Heuristic strategy: combined volatility %.1f and %s risk profile size the range at %d bins around the active bin (%s distribution).",
			volatility, req.RiskProfile, maxBin-minBin+1, shape),
	}
}
