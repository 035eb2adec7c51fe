package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/advisor"
)

func newTestServer() *WebServer {
	// No API key: every suggestion is served by the fallback path.
	client := advisor.NewClient("", "claude-sonnet-4-5", 1500)
	return NewWebServer("0", client, false)
}

func suggestBody(overrides map[string]interface{}) []byte {
	body := map[string]interface{}{
		"riskProfile": "auto",
		"tokenX":      map[string]interface{}{"address": "0xtokenx", "symbol": "PEPE", "decimals": 18},
		"tokenY":      map[string]interface{}{"address": "0xtokeny", "symbol": "USDC", "decimals": 6},
		"availablePools": []map[string]interface{}{
			{
				"pairAddress":  "0xpool1",
				"binStep":      10,
				"tvlUSD":       500000,
				"volume24hUSD": 250000,
				"fees24hUSD":   900,
				"lpCount":      85,
			},
		},
		"currentActiveId": 8388608,
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	encoded, _ := json.Marshal(body)
	return encoded
}

func postJSON(t *testing.T, server *WebServer, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)
	return recorder
}

func TestHandleSuggest(t *testing.T) {
	server := newTestServer()

	t.Run("complete recommendation without model credentials", func(t *testing.T) {
		recorder := postJSON(t, server, "/api/suggest", suggestBody(nil))
		require.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			Success bool `json:"success"`
			Data    struct {
				Recommendation struct {
					RecommendedPool struct {
						PairAddress string `json:"pairAddress"`
					} `json:"recommendedPool"`
					Strategy struct {
						MinBinID          int    `json:"minBinId"`
						MaxBinID          int    `json:"maxBinId"`
						BinCount          int    `json:"binCount"`
						DistributionShape string `json:"distributionShape"`
					} `json:"strategy"`
				} `json:"recommendation"`
				Metadata struct {
					SuggestionID string `json:"suggestionId"`
					Source       string `json:"source"`
					Model        string `json:"model"`
				} `json:"metadata"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

		assert.True(t, response.Success)
		assert.Equal(t, "0xpool1", response.Data.Recommendation.RecommendedPool.PairAddress)
		assert.Equal(t, "fallback", response.Data.Metadata.Source)
		assert.Empty(t, response.Data.Metadata.Model)
		assert.NotEmpty(t, response.Data.Metadata.SuggestionID)

		strategy := response.Data.Recommendation.Strategy
		assert.Equal(t, strategy.MaxBinID-strategy.MinBinID+1, strategy.BinCount)
		assert.Contains(t, []string{"SPOT", "CURVE", "BID_ASK"}, strategy.DistributionShape)
	})

	t.Run("missing currentActiveId is rejected", func(t *testing.T) {
		recorder := postJSON(t, server, "/api/suggest", suggestBody(map[string]interface{}{"currentActiveId": nil}))
		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var response struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "currentActiveId")
	})

	t.Run("zero is a legal active bin id", func(t *testing.T) {
		recorder := postJSON(t, server, "/api/suggest", suggestBody(map[string]interface{}{"currentActiveId": 0}))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("invalid risk profile is rejected", func(t *testing.T) {
		recorder := postJSON(t, server, "/api/suggest", suggestBody(map[string]interface{}{"riskProfile": "yolo"}))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("empty pool list is rejected", func(t *testing.T) {
		recorder := postJSON(t, server, "/api/suggest", suggestBody(map[string]interface{}{"availablePools": []map[string]interface{}{}}))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		recorder := postJSON(t, server, "/api/suggest", []byte(`{"riskProfile":`))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandleMetricsPreview(t *testing.T) {
	server := newTestServer()

	recorder := postJSON(t, server, "/api/metrics/preview", suggestBody(nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Metrics map[string]interface{} `json:"calculatedMetrics"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Contains(t, response.Data.Metrics, "combinedVolatility")
	assert.Contains(t, response.Data.Metrics, "marketCondition")
}

func TestHandleGetSuggestionsDisabled(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/suggestions", nil)
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "OK", response.Status)
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/suggest", nil)
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
