/*

This file contains the fee-parameter analysis across candidate pools: the
average protocol fee share, the pool keeping the most fees for LPs, and a
risk bucket for the variable-fee curve.

*/

package analyzer

import (
	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/utils"
)

// AnalyzePoolParameters summarizes the fee curves of all pools that expose
// parameters. Pools without parameters are skipped; if none expose them the
// protocol share falls back to the default assumption and no best pool is
// named.
func AnalyzePoolParameters(pools []types.PoolInfo) types.PoolParameterAnalysis {
	analysis := types.PoolParameterAnalysis{
		AvgProtocolSharePct: DefaultProtocolSharePct,
		FeeVolatilityRisk:   types.FeeRiskLow,
	}

	var shareSum float64
	var shareCount int
	var bestShare float64
	var maxFeeControl float64

	for _, pool := range pools {
		if pool.FeeParameters == nil {
			continue
		}
		params := *pool.FeeParameters

		shareSum += params.ProtocolSharePct
		shareCount++

		// Lower protocol share means more of the fees reach LPs.
		if analysis.BestPoolForLPs == "" || params.ProtocolSharePct < bestShare {
			analysis.BestPoolForLPs = pool.PairAddress
			bestShare = params.ProtocolSharePct
		}

		if params.VariableFeeControl > maxFeeControl {
			maxFeeControl = params.VariableFeeControl
		}
	}

	if shareCount > 0 {
		analysis.AvgProtocolSharePct = utils.RoundTo(shareSum/float64(shareCount), 1)
	}

	switch {
	case maxFeeControl > FeeControlHighThreshold:
		analysis.FeeVolatilityRisk = types.FeeRiskHigh
	case maxFeeControl > FeeControlMediumThreshold:
		analysis.FeeVolatilityRisk = types.FeeRiskMedium
	}

	return analysis
}
