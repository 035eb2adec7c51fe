/*

This file contains the liquidity-shape calculations: how much of the pair's
value sits near the active bin, how many bins hold liquidity at all, and the
annualized fee yield per pool.

*/

package analyzer

import (
	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/utils"
)

// CalculateLiquidityConcentration returns the percentage of total bin USD
// value held within the active window (activeId +/- ConcentrationWindowBins).
// With no bins, or no measurable value, the neutral score is reported.
func CalculateLiquidityConcentration(bins []types.BinData, activeID int) float64 {
	if len(bins) == 0 {
		return NeutralConcentration
	}

	var totalValue, windowValue float64
	for _, bin := range bins {
		value := bin.USDValue()
		totalValue += value
		if bin.BinID >= activeID-ConcentrationWindowBins && bin.BinID <= activeID+ConcentrationWindowBins {
			windowValue += value
		}
	}
	if totalValue == 0 {
		return NeutralConcentration
	}

	return utils.RoundTo(windowValue/totalValue*100, 1)
}

// CountActiveBins counts bins holding nonzero reserve on either side.
func CountActiveBins(bins []types.BinData) int {
	count := 0
	for _, bin := range bins {
		if bin.ReserveX > 0 || bin.ReserveY > 0 {
			count++
		}
	}
	return count
}

// CalculateFeeAPR annualizes a pool's trailing 24h fee yield against its
// TVL, in percent. A pool with zero TVL earns nothing by definition.
func CalculateFeeAPR(pool types.PoolInfo) float64 {
	if pool.TvlUSD == 0 {
		return 0
	}
	return utils.RoundTo(pool.Fees24hUSD/pool.TvlUSD*DaysPerYear*100, 2)
}
