package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

func day(high, low, close float64) types.TokenPriceData {
	return types.TokenPriceData{Date: "2025-08-25", High: high, Low: low, Close: close}
}

func TestCalculateDailyVolatility(t *testing.T) {
	t.Run("insufficient history returns neutral score", func(t *testing.T) {
		assert.Equal(t, NeutralVolatility, CalculateDailyVolatility(nil))
		assert.Equal(t, NeutralVolatility, CalculateDailyVolatility([]types.TokenPriceData{day(10, 9, 9.5)}))
	})

	t.Run("flat prices score zero", func(t *testing.T) {
		history := []types.TokenPriceData{day(10, 10, 10), day(10, 10, 10)}
		assert.Equal(t, 0.0, CalculateDailyVolatility(history))
	})

	t.Run("range percentage is scaled and averaged", func(t *testing.T) {
		// Each day: (11-9)/10*100 = 20%, scaled x10 -> clamped to 100.
		history := []types.TokenPriceData{day(11, 9, 10), day(11, 9, 10)}
		assert.Equal(t, 100.0, CalculateDailyVolatility(history))

		// (10.2-9.8)/10*100 = 4%, x10 = 40.
		history = []types.TokenPriceData{day(10.2, 9.8, 10), day(10.2, 9.8, 10)}
		assert.Equal(t, 40.0, CalculateDailyVolatility(history))
	})

	t.Run("score is clamped to 100", func(t *testing.T) {
		history := []types.TokenPriceData{day(30, 10, 20), day(30, 10, 20)}
		assert.LessOrEqual(t, CalculateDailyVolatility(history), 100.0)
	})

	t.Run("days with non-positive midpoint are skipped", func(t *testing.T) {
		history := []types.TokenPriceData{day(0, 0, 0), day(10.2, 9.8, 10)}
		assert.Equal(t, 40.0, CalculateDailyVolatility(history))
	})
}

func TestCombineVolatility(t *testing.T) {
	assert.Equal(t, 50.0, CombineVolatility(40, 60))
	assert.Equal(t, 45.5, CombineVolatility(40.5, 50.5))
}

func TestCalculateHourlyVolatility(t *testing.T) {
	t.Run("insufficient data returns nil", func(t *testing.T) {
		assert.Nil(t, CalculateHourlyVolatility(nil))
		assert.Nil(t, CalculateHourlyVolatility([]float64{100}))
	})

	t.Run("zero mean returns zero rather than nil", func(t *testing.T) {
		result := CalculateHourlyVolatility([]float64{0, 0, 0})
		require.NotNil(t, result)
		assert.Equal(t, 0.0, *result)
	})

	t.Run("constant series has zero variation", func(t *testing.T) {
		result := CalculateHourlyVolatility([]float64{100, 100, 100, 100})
		require.NotNil(t, result)
		assert.Equal(t, 0.0, *result)
	})

	t.Run("coefficient of variation is capped at 100", func(t *testing.T) {
		result := CalculateHourlyVolatility([]float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 1000})
		require.NotNil(t, result)
		assert.Equal(t, 100.0, *result)
	})

	t.Run("known series", func(t *testing.T) {
		// Mean 100, population stddev 50 -> CV 50%.
		result := CalculateHourlyVolatility([]float64{50, 150})
		require.NotNil(t, result)
		assert.Equal(t, 50.0, *result)
	})
}
