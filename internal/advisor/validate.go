/*

This file contains the parse-and-repair step for model output. The response
is first decoded into a raw candidate where every field is optional, then
repaired field by field into a fully-populated recommendation. Enum values
are allow-listed; nothing from the model is trusted as-is.

*/

package advisor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

var ErrNoJSONFound = errors.New("no JSON object found in model response")

const (
	// defaultHalfRange sizes the bin window when the model omits the range.
	defaultHalfRange = 25

	// DefaultExpectedAPR stands in when the recommended pool's fee APR is
	// unknown or zero, in percent.
	DefaultExpectedAPR = 15.0

	aprRangeLowFactor  = 0.8
	aprRangeHighFactor = 1.2
)

// rawRecommendation mirrors the response schema with every field optional
// and loosely typed. A decode failure at this level means the response is
// unusable and the caller falls back.
type rawRecommendation struct {
	RecommendedPool *struct {
		PairAddress *string `json:"pairAddress"`
		Reason      *string `json:"reason"`
	} `json:"recommendedPool"`
	Strategy *struct {
		MinBinID          *int    `json:"minBinId"`
		MaxBinID          *int    `json:"maxBinId"`
		BinCount          *int    `json:"binCount"`
		DistributionShape *string `json:"distributionShape"`
	} `json:"strategy"`
	RiskAssessment *struct {
		ImpermanentLossRisk *string   `json:"impermanentLossRisk"`
		RebalanceFrequency  *string   `json:"rebalanceFrequency"`
		ExpectedAprRange    []float64 `json:"expectedAprRange"`
	} `json:"riskAssessment"`
	Analysis *string `json:"analysis"`
}

// ParseRecommendation extracts and decodes the model's JSON into the raw
// candidate shape.
func ParseRecommendation(responseText string) (rawRecommendation, error) {
	var raw rawRecommendation

	extracted := ExtractJSON(responseText)
	if extracted == "" {
		return raw, ErrNoJSONFound
	}
	if err := json.Unmarshal([]byte(extracted), &raw); err != nil {
		return raw, fmt.Errorf("failed to decode model JSON: %w", err)
	}
	return raw, nil
}

// RepairRecommendation turns a raw candidate into a complete, internally
// consistent recommendation. Every missing or invalid field gets its
// documented default, and binCount is always recomputed from the repaired
// range.
func RepairRecommendation(raw rawRecommendation, req types.SuggestionRequest, metrics types.CalculatedMetrics) types.AIStrategyRecommendation {
	pool := resolvePool(raw, req)

	minBin := req.CurrentActiveID - defaultHalfRange
	maxBin := req.CurrentActiveID + defaultHalfRange
	shape := types.ShapeSpot
	if raw.Strategy != nil {
		if raw.Strategy.MinBinID != nil {
			minBin = *raw.Strategy.MinBinID
		}
		if raw.Strategy.MaxBinID != nil {
			maxBin = *raw.Strategy.MaxBinID
		}
		if raw.Strategy.DistributionShape != nil {
			candidate := types.DistributionShape(strings.ToUpper(strings.TrimSpace(*raw.Strategy.DistributionShape)))
			if candidate.Valid() {
				shape = candidate
			}
		}
	}
	if minBin > maxBin {
		minBin, maxBin = maxBin, minBin
	}

	ilRisk := types.ILRiskMedium
	frequency := types.RebalanceDaily
	aprRange := defaultAprRange(pool.PairAddress, metrics)
	if raw.RiskAssessment != nil {
		if raw.RiskAssessment.ImpermanentLossRisk != nil {
			candidate := types.ILRisk(strings.ToLower(strings.TrimSpace(*raw.RiskAssessment.ImpermanentLossRisk)))
			if candidate.Valid() {
				ilRisk = candidate
			}
		}
		if raw.RiskAssessment.RebalanceFrequency != nil {
			candidate := types.RebalanceFrequency(strings.ToLower(strings.TrimSpace(*raw.RiskAssessment.RebalanceFrequency)))
			if candidate.Valid() {
				frequency = candidate
			}
		}
		if validAprRange(raw.RiskAssessment.ExpectedAprRange) {
			aprRange = [2]float64{raw.RiskAssessment.ExpectedAprRange[0], raw.RiskAssessment.ExpectedAprRange[1]}
		}
	}

	analysis := "Strategy generated from current pool metrics."
	if raw.Analysis != nil && strings.TrimSpace(*raw.Analysis) != "" {
		analysis = strings.TrimSpace(*raw.Analysis)
	}

	return types.AIStrategyRecommendation{
		RecommendedPool: pool,
		Strategy: types.StrategyParams{
			MinBinID:          minBin,
			MaxBinID:          maxBin,
			BinCount:          maxBin - minBin + 1,
			DistributionShape: shape,
		},
		RiskAssessment: types.RiskAssessment{
			ImpermanentLossRisk: ilRisk,
			RebalanceFrequency:  frequency,
			ExpectedAprRange:    aprRange,
		},
		Analysis: analysis,
	}
}

// resolvePool maps the model's pool choice back onto the request's
// candidates; anything unknown or missing resolves to the highest-TVL pool.
func resolvePool(raw rawRecommendation, req types.SuggestionRequest) types.RecommendedPool {
	reason := "Highest TVL among candidate pools."
	if raw.RecommendedPool != nil {
		if raw.RecommendedPool.PairAddress != nil {
			for _, candidate := range req.AvailablePools {
				if strings.EqualFold(candidate.PairAddress, *raw.RecommendedPool.PairAddress) {
					poolReason := "Selected by model."
					if raw.RecommendedPool.Reason != nil && strings.TrimSpace(*raw.RecommendedPool.Reason) != "" {
						poolReason = strings.TrimSpace(*raw.RecommendedPool.Reason)
					}
					return types.RecommendedPool{
						PairAddress: candidate.PairAddress,
						BinStep:     candidate.BinStep,
						Reason:      poolReason,
					}
				}
			}
		}
	}

	best := HighestTVLPool(req.AvailablePools)
	return types.RecommendedPool{
		PairAddress: best.PairAddress,
		BinStep:     best.BinStep,
		Reason:      reason,
	}
}

// HighestTVLPool returns the deepest candidate pool. The request validator
// guarantees at least one pool.
func HighestTVLPool(pools []types.PoolInfo) types.PoolInfo {
	best := pools[0]
	for _, pool := range pools[1:] {
		if pool.TvlUSD > best.TvlUSD {
			best = pool
		}
	}
	return best
}

func defaultAprRange(pairAddress string, metrics types.CalculatedMetrics) [2]float64 {
	apr := metrics.FeeAPRByPool[pairAddress]
	if apr <= 0 {
		apr = DefaultExpectedAPR
	}
	return [2]float64{apr * aprRangeLowFactor, apr * aprRangeHighFactor}
}

func validAprRange(r []float64) bool {
	if len(r) != 2 {
		return false
	}
	for _, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return r[0] <= r[1]
}
