/*

This file contains the main entry point of the metrics calculator. It
orchestrates the modular calculations into one CalculatedMetrics value.

The calculator is pure and total: every sub-result has a defined neutral
fallback, so the function never fails and identical inputs always produce
bit-identical outputs.

*/

package analyzer

import (
	"github.com/meme-pulse/dlmm-strategy-engine/internal/logger"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/utils"
)

var metricsLogger = logger.GetForComponent("metrics_calculator")

// CalculateMetrics derives the full metric set for one suggestion request.
func CalculateMetrics(req types.SuggestionRequest) types.CalculatedMetrics {
	tokenXVolatility := CalculateDailyVolatility(req.TokenXPriceHistory)
	tokenYVolatility := CalculateDailyVolatility(req.TokenYPriceHistory)
	combined := CombineVolatility(tokenXVolatility, tokenYVolatility)

	bestRank := BestViralRank(req.TokenXViral, req.TokenYViral)
	boost := ViralBoostMultiplier(bestRank)

	feeAPRs := make(map[string]float64, len(req.AvailablePools))
	effectiveAPRs := make(map[string]float64, len(req.AvailablePools))
	for _, pool := range req.AvailablePools {
		apr := CalculateFeeAPR(pool)
		feeAPRs[pool.PairAddress] = apr
		effectiveAPRs[pool.PairAddress] = utils.RoundTo(apr*boost, 2)
	}

	viral := types.ViralAnalysis{
		BestViralRank:   bestRank,
		BoostMultiplier: utils.RoundTo(boost, 2),
		SocialMomentum:  AnalyzeSocialMomentum(req.TokenXViral, req.TokenYViral),
	}
	if req.TokenXViral != nil {
		viral.TokenXPulseScore = utils.RoundTo(req.TokenXViral.PulseScore, 1)
	}
	if req.TokenYViral != nil {
		viral.TokenYPulseScore = utils.RoundTo(req.TokenYViral.PulseScore, 1)
	}

	metrics := types.CalculatedMetrics{
		TokenXVolatility:   tokenXVolatility,
		TokenYVolatility:   tokenYVolatility,
		CombinedVolatility: combined,
		HourlyVolatility:   CalculateHourlyVolatility(req.HourlyVolumes),

		VolumeTrend:      AnalyzeVolumeTrend(req.PairHistory),
		MarketCondition:  ClassifyMarketCondition(combined, req.TokenXPriceHistory),
		PriceChange7dPct: CalculatePriceChangePct(req.TokenXPriceHistory),

		FeeAPRByPool:       feeAPRs,
		EffectiveAPRByPool: effectiveAPRs,

		LiquidityConcentrationPct: CalculateLiquidityConcentration(req.BinData, req.CurrentActiveID),
		ActiveBinsCount:           CountActiveBins(req.BinData),

		ViralAnalysis:         viral,
		PoolParameterAnalysis: AnalyzePoolParameters(req.AvailablePools),
	}

	metricsLogger.Debug().
		Str("pair", req.TokenX.Symbol+"/"+req.TokenY.Symbol).
		Float64("combinedVolatility", metrics.CombinedVolatility).
		Str("volumeTrend", string(metrics.VolumeTrend)).
		Str("marketCondition", string(metrics.MarketCondition)).
		Float64("concentrationPct", metrics.LiquidityConcentrationPct).
		Int("activeBins", metrics.ActiveBinsCount).
		Float64("boostMultiplier", metrics.ViralAnalysis.BoostMultiplier).
		Msg("Metrics calculated")

	return metrics
}
