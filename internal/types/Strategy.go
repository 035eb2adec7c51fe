/*

This file contains the strategy recommendation returned to the UI. The
validator guarantees every field is populated: anything missing or invalid in
the model's output is replaced with a documented default before the value
leaves the advisor.

*/

package types

// DistributionShape is the liquidity distribution preset of the DLMM.
type DistributionShape string

const (
	ShapeSpot   DistributionShape = "SPOT"
	ShapeCurve  DistributionShape = "CURVE"
	ShapeBidAsk DistributionShape = "BID_ASK"
)

// Valid reports whether the shape is one of the supported presets.
func (s DistributionShape) Valid() bool {
	switch s {
	case ShapeSpot, ShapeCurve, ShapeBidAsk:
		return true
	}
	return false
}

// ILRisk is the impermanent-loss risk classification.
type ILRisk string

const (
	ILRiskLow    ILRisk = "low"
	ILRiskMedium ILRisk = "medium"
	ILRiskHigh   ILRisk = "high"
)

func (r ILRisk) Valid() bool {
	switch r {
	case ILRiskLow, ILRiskMedium, ILRiskHigh:
		return true
	}
	return false
}

// RebalanceFrequency is the suggested cadence for repositioning the range.
type RebalanceFrequency string

const (
	RebalanceHourly RebalanceFrequency = "hourly"
	RebalanceDaily  RebalanceFrequency = "daily"
	RebalanceWeekly RebalanceFrequency = "weekly"
	RebalanceRarely RebalanceFrequency = "rarely"
)

func (f RebalanceFrequency) Valid() bool {
	switch f {
	case RebalanceHourly, RebalanceDaily, RebalanceWeekly, RebalanceRarely:
		return true
	}
	return false
}

// RecommendedPool identifies which candidate pool the strategy targets.
type RecommendedPool struct {
	PairAddress string `json:"pairAddress"`
	BinStep     int    `json:"binStep"`
	Reason      string `json:"reason"`
}

// StrategyParams is the bin-range portion of the recommendation.
// BinCount is always recomputed as MaxBinID-MinBinID+1 by the validator, so
// the three fields are internally consistent by construction.
type StrategyParams struct {
	MinBinID          int               `json:"minBinId"`
	MaxBinID          int               `json:"maxBinId"`
	BinCount          int               `json:"binCount"`
	DistributionShape DistributionShape `json:"distributionShape"`
}

// RiskAssessment carries the qualitative risk portion of the recommendation.
type RiskAssessment struct {
	ImpermanentLossRisk ILRisk             `json:"impermanentLossRisk"`
	RebalanceFrequency  RebalanceFrequency `json:"rebalanceFrequency"`
	ExpectedAprRange    [2]float64         `json:"expectedAprRange"` // [low, high] in percent.
}

// AIStrategyRecommendation is the final, fully-populated recommendation.
type AIStrategyRecommendation struct {
	RecommendedPool RecommendedPool `json:"recommendedPool"`
	Strategy        StrategyParams  `json:"strategy"`
	RiskAssessment  RiskAssessment  `json:"riskAssessment"`
	Analysis        string          `json:"analysis"`
}
