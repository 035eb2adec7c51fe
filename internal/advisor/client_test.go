package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

func TestGenerateStrategyUnconfigured(t *testing.T) {
	client := NewClient("", "claude-sonnet-4-5", 1500)
	req := testRequest(types.RiskAggressive)
	metrics := testMetrics(75)

	rec, source := client.GenerateStrategy(context.Background(), req, metrics)

	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, "0xdeep", rec.RecommendedPool.PairAddress)
	assert.Equal(t, 51, rec.Strategy.BinCount)
	assert.True(t, rec.Strategy.DistributionShape.Valid())
	assert.True(t, rec.RiskAssessment.ImpermanentLossRisk.Valid())
	assert.True(t, rec.RiskAssessment.RebalanceFrequency.Valid())
	assert.NotEmpty(t, rec.Analysis)
}

func TestBuildPrompt(t *testing.T) {
	req := testRequest(types.RiskAggressive)
	metrics := testMetrics(55)
	rank := 1
	metrics.ViralAnalysis.BestViralRank = &rank
	metrics.ViralAnalysis.BoostMultiplier = 1.80

	hints := BuildHints(metrics, req.RiskProfile)
	prompt := BuildPrompt(req, metrics, hints)

	require.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "PEPE/USDC")
	assert.Contains(t, prompt, "RISK PROFILE: aggressive")
	assert.Contains(t, prompt, "0xdeep")
	assert.Contains(t, prompt, "0xshallow")
	assert.Contains(t, prompt, "Combined volatility: 55.0/100")
	assert.Contains(t, prompt, "Viral rank: 1")
	assert.Contains(t, prompt, "ONLY a raw JSON object")
	assert.Contains(t, prompt, `"distributionShape": "SPOT|CURVE|BID_ASK"`)

	for _, hint := range hints {
		assert.Contains(t, prompt, hint)
	}

	// The candidate pool block is valid JSON the model can anchor on.
	start := strings.Index(prompt, "[")
	end := strings.Index(prompt, "]")
	require.Greater(t, end, start)
}
