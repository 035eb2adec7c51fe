package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

// testRequest builds a two-pool request used across the advisor tests.
// Pool 0xdeep carries the higher TVL.
func testRequest(profile types.RiskProfile) types.SuggestionRequest {
	return types.SuggestionRequest{
		RiskProfile: profile,
		TokenX:      types.TokenDescriptor{Address: "0xtokenx", Symbol: "PEPE", Decimals: 18},
		TokenY:      types.TokenDescriptor{Address: "0xtokeny", Symbol: "USDC", Decimals: 6},
		AvailablePools: []types.PoolInfo{
			{PairAddress: "0xshallow", BinStep: 25, TvlUSD: 100_000, Volume24hUSD: 40_000, Fees24hUSD: 120, LpCount: 12},
			{PairAddress: "0xdeep", BinStep: 10, TvlUSD: 500_000, Volume24hUSD: 250_000, Fees24hUSD: 900, LpCount: 85},
		},
		CurrentActiveID: 8_388_608,
	}
}

func testMetrics(volatility float64) types.CalculatedMetrics {
	return types.CalculatedMetrics{
		TokenXVolatility:   volatility,
		TokenYVolatility:   volatility,
		CombinedVolatility: volatility,
		VolumeTrend:        types.TrendStable,
		MarketCondition:    types.MarketStable,
		FeeAPRByPool: map[string]float64{
			"0xshallow": 43.8,
			"0xdeep":    65.7,
		},
		EffectiveAPRByPool: map[string]float64{
			"0xshallow": 43.8,
			"0xdeep":    65.7,
		},
		LiquidityConcentrationPct: 50,
		ViralAnalysis: types.ViralAnalysis{
			BoostMultiplier: 1.0,
			SocialMomentum:  types.MomentumStable,
		},
		PoolParameterAnalysis: types.PoolParameterAnalysis{
			FeeVolatilityRisk: types.FeeRiskLow,
		},
	}
}

func TestParseRecommendation(t *testing.T) {
	t.Run("valid response decodes", func(t *testing.T) {
		raw, err := ParseRecommendation("```json\n" + `{
			"recommendedPool": {"pairAddress": "0xdeep", "reason": "Deepest liquidity."},
			"strategy": {"minBinId": 8388588, "maxBinId": 8388628, "distributionShape": "CURVE"},
			"riskAssessment": {"impermanentLossRisk": "medium", "rebalanceFrequency": "daily", "expectedAprRange": [40, 80]},
			"analysis": "Concentrate around the active bin."
		}` + "\n```")
		require.NoError(t, err)
		require.NotNil(t, raw.Strategy)
		assert.Equal(t, 8_388_588, *raw.Strategy.MinBinID)
		assert.Equal(t, "CURVE", *raw.Strategy.DistributionShape)
	})

	t.Run("no JSON is a sentinel error", func(t *testing.T) {
		_, err := ParseRecommendation("I cannot produce a strategy right now.")
		assert.ErrorIs(t, err, ErrNoJSONFound)
	})

	t.Run("malformed JSON errors", func(t *testing.T) {
		_, err := ParseRecommendation(`{"strategy": {"minBinId": oops}}`)
		assert.Error(t, err)
	})
}

func TestRepairRecommendation(t *testing.T) {
	req := testRequest(types.RiskAuto)
	metrics := testMetrics(40)

	t.Run("empty raw yields complete defaults", func(t *testing.T) {
		rec := RepairRecommendation(rawRecommendation{}, req, metrics)

		assert.Equal(t, "0xdeep", rec.RecommendedPool.PairAddress)
		assert.Equal(t, 10, rec.RecommendedPool.BinStep)
		assert.Equal(t, req.CurrentActiveID-defaultHalfRange, rec.Strategy.MinBinID)
		assert.Equal(t, req.CurrentActiveID+defaultHalfRange, rec.Strategy.MaxBinID)
		assert.Equal(t, 51, rec.Strategy.BinCount)
		assert.Equal(t, types.ShapeSpot, rec.Strategy.DistributionShape)
		assert.Equal(t, types.ILRiskMedium, rec.RiskAssessment.ImpermanentLossRisk)
		assert.Equal(t, types.RebalanceDaily, rec.RiskAssessment.RebalanceFrequency)
		assert.InDelta(t, 65.7*0.8, rec.RiskAssessment.ExpectedAprRange[0], 1e-9)
		assert.InDelta(t, 65.7*1.2, rec.RiskAssessment.ExpectedAprRange[1], 1e-9)
		assert.NotEmpty(t, rec.Analysis)
	})

	t.Run("swapped range is reordered and binCount recomputed", func(t *testing.T) {
		minBin, maxBin := 8_388_700, 8_388_600
		wrongCount := 999
		raw := rawRecommendation{}
		raw.Strategy = &struct {
			MinBinID          *int    `json:"minBinId"`
			MaxBinID          *int    `json:"maxBinId"`
			BinCount          *int    `json:"binCount"`
			DistributionShape *string `json:"distributionShape"`
		}{MinBinID: &minBin, MaxBinID: &maxBin, BinCount: &wrongCount}

		rec := RepairRecommendation(raw, req, metrics)
		assert.Equal(t, 8_388_600, rec.Strategy.MinBinID)
		assert.Equal(t, 8_388_700, rec.Strategy.MaxBinID)
		assert.Equal(t, 101, rec.Strategy.BinCount)
	})

	t.Run("enum case is normalized before validation", func(t *testing.T) {
		shape := " curve "
		ilRisk := "HIGH"
		frequency := "Weekly"
		raw := rawRecommendation{}
		raw.Strategy = &struct {
			MinBinID          *int    `json:"minBinId"`
			MaxBinID          *int    `json:"maxBinId"`
			BinCount          *int    `json:"binCount"`
			DistributionShape *string `json:"distributionShape"`
		}{DistributionShape: &shape}
		raw.RiskAssessment = &struct {
			ImpermanentLossRisk *string   `json:"impermanentLossRisk"`
			RebalanceFrequency  *string   `json:"rebalanceFrequency"`
			ExpectedAprRange    []float64 `json:"expectedAprRange"`
		}{ImpermanentLossRisk: &ilRisk, RebalanceFrequency: &frequency}

		rec := RepairRecommendation(raw, req, metrics)
		assert.Equal(t, types.ShapeCurve, rec.Strategy.DistributionShape)
		assert.Equal(t, types.ILRiskHigh, rec.RiskAssessment.ImpermanentLossRisk)
		assert.Equal(t, types.RebalanceWeekly, rec.RiskAssessment.RebalanceFrequency)
	})

	t.Run("garbage enums fall back to defaults", func(t *testing.T) {
		shape := "TRIANGLE"
		ilRisk := "catastrophic"
		frequency := "sometimes"
		aprRange := []float64{90, 10}
		raw := rawRecommendation{}
		raw.Strategy = &struct {
			MinBinID          *int    `json:"minBinId"`
			MaxBinID          *int    `json:"maxBinId"`
			BinCount          *int    `json:"binCount"`
			DistributionShape *string `json:"distributionShape"`
		}{DistributionShape: &shape}
		raw.RiskAssessment = &struct {
			ImpermanentLossRisk *string   `json:"impermanentLossRisk"`
			RebalanceFrequency  *string   `json:"rebalanceFrequency"`
			ExpectedAprRange    []float64 `json:"expectedAprRange"`
		}{ImpermanentLossRisk: &ilRisk, RebalanceFrequency: &frequency, ExpectedAprRange: aprRange}

		rec := RepairRecommendation(raw, req, metrics)
		assert.Equal(t, types.ShapeSpot, rec.Strategy.DistributionShape)
		assert.Equal(t, types.ILRiskMedium, rec.RiskAssessment.ImpermanentLossRisk)
		assert.Equal(t, types.RebalanceDaily, rec.RiskAssessment.RebalanceFrequency)
		assert.InDelta(t, 65.7*0.8, rec.RiskAssessment.ExpectedAprRange[0], 1e-9)
	})

	t.Run("unknown pool address resolves to highest TVL", func(t *testing.T) {
		address := "0xnotacandidate"
		raw := rawRecommendation{}
		raw.RecommendedPool = &struct {
			PairAddress *string `json:"pairAddress"`
			Reason      *string `json:"reason"`
		}{PairAddress: &address}

		rec := RepairRecommendation(raw, req, metrics)
		assert.Equal(t, "0xdeep", rec.RecommendedPool.PairAddress)
		assert.Equal(t, "Highest TVL among candidate pools.", rec.RecommendedPool.Reason)
	})

	t.Run("pool address match is case insensitive", func(t *testing.T) {
		address := "0xSHALLOW"
		raw := rawRecommendation{}
		raw.RecommendedPool = &struct {
			PairAddress *string `json:"pairAddress"`
			Reason      *string `json:"reason"`
		}{PairAddress: &address}

		rec := RepairRecommendation(raw, req, metrics)
		assert.Equal(t, "0xshallow", rec.RecommendedPool.PairAddress)
		assert.Equal(t, 25, rec.RecommendedPool.BinStep)
		assert.Equal(t, "Selected by model.", rec.RecommendedPool.Reason)
	})
}

func TestHighestTVLPool(t *testing.T) {
	req := testRequest(types.RiskAuto)
	assert.Equal(t, "0xdeep", HighestTVLPool(req.AvailablePools).PairAddress)

	single := []types.PoolInfo{{PairAddress: "0xonly", TvlUSD: 1}}
	assert.Equal(t, "0xonly", HighestTVLPool(single).PairAddress)
}
