/*

This file contains the strategy hint generator. Hints are short, human
readable guidance lines derived from the calculated metrics; they are fed
into the model prompt as auxiliary context and never parsed downstream.

*/

package advisor

import (
	"fmt"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

// BuildHints derives the ordered hint list for a prompt. Every rule is a
// purely additive threshold check; the list always contains at least the
// risk-profile hint.
func BuildHints(metrics types.CalculatedMetrics, profile types.RiskProfile) []string {
	hints := make([]string, 0, 8)

	switch profile {
	case types.RiskAggressive:
		hints = append(hints, "User prefers aggressive positioning: tighter ranges and higher fee capture are acceptable at the cost of more frequent rebalancing.")
	case types.RiskDefensive:
		hints = append(hints, "User prefers defensive positioning: favor wide ranges and SPOT distribution to minimize impermanent loss and rebalancing.")
	default:
		hints = append(hints, "User selected auto mode: balance fee capture against impermanent loss using the metrics below.")
	}

	vol := metrics.CombinedVolatility
	switch {
	case vol > 70:
		hints = append(hints, "Combined volatility is extreme; a wide range or SPOT distribution limits rebalancing losses.")
	case vol > 50:
		hints = append(hints, "Combined volatility is elevated; leave headroom around the active bin.")
	case vol < 30:
		hints = append(hints, "Market is calm; a tighter range captures more fees per dollar of liquidity.")
	}

	switch metrics.VolumeTrend {
	case types.TrendIncreasing:
		hints = append(hints, "Pair volume is rising; concentrated liquidity near the active bin earns outsized fees.")
	case types.TrendDecreasing:
		hints = append(hints, "Pair volume is falling; fee income may not compensate for impermanent loss in a tight range.")
	}

	switch metrics.MarketCondition {
	case types.MarketTrendingUp:
		hints = append(hints, "Price is trending up; consider skewing the range above the active bin.")
	case types.MarketTrendingDown:
		hints = append(hints, "Price is trending down; consider skewing the range below the active bin.")
	}

	if rank := metrics.ViralAnalysis.BestViralRank; rank != nil {
		hints = append(hints, fmt.Sprintf(
			"Pair token holds viral leaderboard rank %d: fee APR is boosted %.2fx while the rank lasts.",
			*rank, metrics.ViralAnalysis.BoostMultiplier))
	}

	switch metrics.ViralAnalysis.SocialMomentum {
	case types.MomentumRising:
		hints = append(hints, "Social engagement is accelerating; expect short-term volume spikes.")
	case types.MomentumDeclining:
		hints = append(hints, "Social engagement is fading; viral-driven volume may not persist.")
	}

	switch metrics.PoolParameterAnalysis.FeeVolatilityRisk {
	case types.FeeRiskHigh:
		hints = append(hints, "Variable fee control is set aggressively on at least one pool; realized fees will swing with volatility.")
	case types.FeeRiskMedium:
		hints = append(hints, "Variable fees are moderately sensitive to volatility on these pools.")
	}

	return hints
}
