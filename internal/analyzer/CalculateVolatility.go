/*

This file contains the volatility calculations: a 0-100 score per token from
daily OHLC ranges, and an optional intra-day score from hourly volume.

*/

package analyzer

import (
	"math"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/utils"
)

// CalculateDailyVolatility scores a token's volatility from its daily price
// history: the mean of per-day (high-low)/midpoint range percentages, scaled
// onto 0-100. Fewer than two days of data yields the neutral score.
func CalculateDailyVolatility(history []types.TokenPriceData) float64 {
	if len(history) < 2 {
		return NeutralVolatility
	}

	var sum float64
	var count int
	for _, day := range history {
		midpoint := (day.High + day.Low) / 2
		if midpoint <= 0 {
			// Zero or inverted quotes carry no range information.
			continue
		}
		sum += (day.High - day.Low) / midpoint * 100
		count++
	}
	if count == 0 {
		return NeutralVolatility
	}

	score := sum / float64(count) * VolatilityScale
	return utils.RoundTo(utils.Clamp(score, 0, VolatilityCap), 1)
}

// CombineVolatility averages the two per-token scores into the pair score.
func CombineVolatility(tokenX, tokenY float64) float64 {
	return utils.RoundTo((tokenX+tokenY)/2, 1)
}

// CalculateHourlyVolatility scores intra-day activity as the coefficient of
// variation of an hourly volume series, capped at 100. It returns nil when
// fewer than two points are available (insufficient data) and zero when the
// series has a zero mean.
func CalculateHourlyVolatility(volumes []float64) *float64 {
	if len(volumes) < 2 {
		return nil
	}

	var sum float64
	for _, v := range volumes {
		sum += v
	}
	mean := sum / float64(len(volumes))
	if mean == 0 {
		zero := 0.0
		return &zero
	}

	var sumSqDiff float64
	for _, v := range volumes {
		sumSqDiff += (v - mean) * (v - mean)
	}
	stdDev := math.Sqrt(sumSqDiff / float64(len(volumes)))

	cv := utils.RoundTo(math.Min(stdDev/mean*100, VolatilityCap), 1)
	return &cv
}
