/*

This file contains the prompt builder. The prompt embeds the risk profile,
the pair, a rounded JSON summary of the candidate pools, every calculated
metric, and the hint list, and instructs the model to answer with a raw JSON
object only.

*/

package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/utils"
)

// poolSummary is the rounded view of a candidate pool embedded in the prompt.
type poolSummary struct {
	PairAddress  string  `json:"pairAddress"`
	BinStep      int     `json:"binStep"`
	TvlUSD       float64 `json:"tvlUSD"`
	Volume24hUSD float64 `json:"volume24hUSD"`
	Fees24hUSD   float64 `json:"fees24hUSD"`
	FeeAPR       float64 `json:"feeAPR"`
	EffectiveAPR float64 `json:"effectiveAPR"`
	LpCount      int     `json:"lpCount"`
}

// BuildPrompt renders the user message for the strategy request.
func BuildPrompt(req types.SuggestionRequest, metrics types.CalculatedMetrics, hints []string) string {
	var sb strings.Builder

	sb.WriteString("Recommend a DLMM liquidity provision strategy for the following market.\n\n")
	fmt.Fprintf(&sb, "PAIR: %s/%s\n", req.TokenX.Symbol, req.TokenY.Symbol)
	fmt.Fprintf(&sb, "RISK PROFILE: %s\n", req.RiskProfile)
	fmt.Fprintf(&sb, "CURRENT ACTIVE BIN: %d\n\n", req.CurrentActiveID)

	sb.WriteString("CANDIDATE POOLS:\n")
	summaries := make([]poolSummary, 0, len(req.AvailablePools))
	for _, pool := range req.AvailablePools {
		summaries = append(summaries, poolSummary{
			PairAddress:  pool.PairAddress,
			BinStep:      pool.BinStep,
			TvlUSD:       utils.RoundTo(pool.TvlUSD, 2),
			Volume24hUSD: utils.RoundTo(pool.Volume24hUSD, 2),
			Fees24hUSD:   utils.RoundTo(pool.Fees24hUSD, 2),
			FeeAPR:       metrics.FeeAPRByPool[pool.PairAddress],
			EffectiveAPR: metrics.EffectiveAPRByPool[pool.PairAddress],
			LpCount:      pool.LpCount,
		})
	}
	if encoded, err := json.MarshalIndent(summaries, "", "  "); err == nil {
		sb.Write(encoded)
	}
	sb.WriteString("\n\n")

	sb.WriteString("CALCULATED METRICS:\n")
	fmt.Fprintf(&sb, "- Token X volatility: %.1f/100\n", metrics.TokenXVolatility)
	fmt.Fprintf(&sb, "- Token Y volatility: %.1f/100\n", metrics.TokenYVolatility)
	fmt.Fprintf(&sb, "- Combined volatility: %.1f/100\n", metrics.CombinedVolatility)
	if metrics.HourlyVolatility != nil {
		fmt.Fprintf(&sb, "- Hourly volume variation: %.1f/100\n", *metrics.HourlyVolatility)
	}
	fmt.Fprintf(&sb, "- Volume trend: %s\n", metrics.VolumeTrend)
	fmt.Fprintf(&sb, "- Market condition: %s\n", metrics.MarketCondition)
	fmt.Fprintf(&sb, "- 7-day price change: %.2f%%\n", metrics.PriceChange7dPct)
	fmt.Fprintf(&sb, "- Liquidity concentration near active bin: %.1f%%\n", metrics.LiquidityConcentrationPct)
	fmt.Fprintf(&sb, "- Active bins: %d\n", metrics.ActiveBinsCount)
	if metrics.ViralAnalysis.BestViralRank != nil {
		fmt.Fprintf(&sb, "- Viral rank: %d (APR boost %.2fx)\n",
			*metrics.ViralAnalysis.BestViralRank, metrics.ViralAnalysis.BoostMultiplier)
	}
	fmt.Fprintf(&sb, "- Social momentum: %s\n", metrics.ViralAnalysis.SocialMomentum)
	fmt.Fprintf(&sb, "- Avg protocol fee share: %.1f%%\n", metrics.PoolParameterAnalysis.AvgProtocolSharePct)
	fmt.Fprintf(&sb, "- Fee volatility risk: %s\n\n", metrics.PoolParameterAnalysis.FeeVolatilityRisk)

	sb.WriteString("GUIDANCE:\n")
	for _, hint := range hints {
		sb.WriteString("- ")
		sb.WriteString(hint)
		sb.WriteString("\n")
	}

	sb.WriteString("\nRespond with ONLY a raw JSON object in exactly this schema, no markdown, no prose:\n")
	sb.WriteString(`{
  "recommendedPool": {"pairAddress": "<address from candidates>", "reason": "<one sentence>"},
  "strategy": {"minBinId": <int>, "maxBinId": <int>, "distributionShape": "SPOT|CURVE|BID_ASK"},
  "riskAssessment": {"impermanentLossRisk": "low|medium|high", "rebalanceFrequency": "hourly|daily|weekly|rarely", "expectedAprRange": [<low>, <high>]},
  "analysis": "<2-3 sentences>"
}`)
	sb.WriteString("\n")

	return sb.String()
}
