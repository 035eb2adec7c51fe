/*

This file contains the trend classifiers: pair volume direction, overall
market condition, and social-engagement momentum.

*/

package analyzer

import (
	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/utils"
)

// AnalyzeVolumeTrend compares the mean volume of the most recent days
// against the earliest days of the window. It requires a full week of
// history; anything shorter reports stable.
func AnalyzeVolumeTrend(history []types.PairHistoryData) types.VolumeTrend {
	if len(history) < TrendWindowDays {
		return types.TrendStable
	}

	recent := history[len(history)-TrendRecentDays:]
	early := history[:TrendEarlyDays]

	var recentSum, earlySum float64
	for _, day := range recent {
		recentSum += day.VolumeUSD
	}
	for _, day := range early {
		earlySum += day.VolumeUSD
	}

	recentMean := recentSum / float64(len(recent))
	earlyMean := earlySum / float64(len(early))
	if earlyMean == 0 {
		// No baseline to compare against.
		return types.TrendStable
	}

	changePct := (recentMean - earlyMean) / earlyMean * 100
	switch {
	case changePct > TrendChangePct:
		return types.TrendIncreasing
	case changePct < -TrendChangePct:
		return types.TrendDecreasing
	default:
		return types.TrendStable
	}
}

// CalculatePriceChangePct returns the total close-to-close price change over
// the window as a percentage, rounded to 2 decimals. Fewer than two days of
// history, or a non-positive starting price, yields zero.
func CalculatePriceChangePct(history []types.TokenPriceData) float64 {
	if len(history) < 2 {
		return 0
	}
	first := history[0].Close
	last := history[len(history)-1].Close
	if first <= 0 {
		return 0
	}
	return utils.RoundTo((last-first)/first*100, 2)
}

// ClassifyMarketCondition buckets the market regime. High combined
// volatility dominates; otherwise the 7-day price direction decides.
func ClassifyMarketCondition(combinedVolatility float64, tokenXHistory []types.TokenPriceData) types.MarketCondition {
	if combinedVolatility > VolatileMarketThreshold {
		return types.MarketVolatile
	}
	if len(tokenXHistory) < 2 {
		return types.MarketStable
	}

	changePct := CalculatePriceChangePct(tokenXHistory)
	switch {
	case changePct > TrendingPricePct:
		return types.MarketTrendingUp
	case changePct < -TrendingPricePct:
		return types.MarketTrendingDown
	default:
		return types.MarketStable
	}
}

// AnalyzeSocialMomentum compares the combined 1-day engagement of both
// tokens against their 7-day daily average. Without viral data the momentum
// is stable; a dead week with fresh 1-day engagement counts as rising.
func AnalyzeSocialMomentum(tokenXViral, tokenYViral *types.ViralScoreData) types.SocialMomentum {
	if tokenXViral == nil && tokenYViral == nil {
		return types.MomentumStable
	}

	var engagement1d, engagement7d float64
	for _, viral := range []*types.ViralScoreData{tokenXViral, tokenYViral} {
		if viral == nil {
			continue
		}
		engagement1d += viral.Engagement1d()
		engagement7d += viral.Engagement7d()
	}

	dailyAverage := engagement7d / 7
	if dailyAverage == 0 {
		if engagement1d > 0 {
			return types.MomentumRising
		}
		return types.MomentumStable
	}

	ratio := engagement1d / dailyAverage
	switch {
	case ratio > MomentumRisingRatio:
		return types.MomentumRising
	case ratio < MomentumDecliningRatio:
		return types.MomentumDeclining
	default:
		return types.MomentumStable
	}
}
