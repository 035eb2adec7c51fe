/*
This file is used to fetch viral engagement scores from the meme-pulse API.

Viral scores are an optional enrichment: a request that already carries
scores is served as-is, and a fetch failure never blocks a suggestion.
*/

package datafetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/config"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/logger"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

var viralLogger = logger.GetForComponent("viral_retriever")

var ErrViralAPIUnconfigured = errors.New("pulse API endpoint not configured")
var ErrInvalidViralData = errors.New("invalid viral score data received")

const (
	VIRAL_TIMEOUT_SECONDS = 10
	VIRAL_MAX_RETRIES     = 2
)

type pulseScoreResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		TokenAddress string  `json:"tokenAddress"`
		Views1h      int64   `json:"views1h"`
		Views1d      int64   `json:"views1d"`
		Views7d      int64   `json:"views7d"`
		Likes1h      int64   `json:"likes1h"`
		Likes1d      int64   `json:"likes1d"`
		Likes7d      int64   `json:"likes7d"`
		PulseScore   float64 `json:"pulseScore"`
		ViralRank    *int    `json:"viralRank"`
	} `json:"data"`
}

// FetchViralScore retrieves the viral score for a token address. Returns
// ErrViralAPIUnconfigured when no endpoint is configured so callers can
// treat enrichment as best-effort.
func FetchViralScore(ctx context.Context, tokenAddress string) (*types.ViralScoreData, error) {
	if config.PulseAPI == "" {
		return nil, ErrViralAPIUnconfigured
	}

	tokenAddress = strings.TrimSpace(tokenAddress)
	if tokenAddress == "" {
		return nil, fmt.Errorf("%w: empty token address", ErrInvalidViralData)
	}

	requestURL := fmt.Sprintf("%s/api/scores/%s", strings.TrimRight(config.PulseAPI, "/"), url.PathEscape(tokenAddress))

	client := &http.Client{
		Timeout: VIRAL_TIMEOUT_SECONDS * time.Second,
	}

	var lastErr error
	for attempt := 1; attempt <= VIRAL_MAX_RETRIES; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build viral score request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed on attempt %d: %w", attempt, err)
			viralLogger.Warn().
				Err(err).
				Str("token", tokenAddress).
				Int("attempt", attempt).
				Msg("Viral score request failed, will retry if attempts remain")
			if attempt < VIRAL_MAX_RETRIES {
				time.Sleep(time.Duration(attempt) * time.Second)
				continue
			}
			break
		}

		score, err := processViralResponse(resp, tokenAddress)
		if err != nil {
			lastErr = err
			if attempt < VIRAL_MAX_RETRIES {
				time.Sleep(time.Duration(attempt) * time.Second)
				continue
			}
			break
		}
		return score, nil
	}

	return nil, fmt.Errorf("failed to fetch viral score for %s after %d attempts: %w", tokenAddress, VIRAL_MAX_RETRIES, lastErr)
}

func processViralResponse(resp *http.Response, tokenAddress string) (*types.ViralScoreData, error) {
	defer resp.Body.Close()

	// A token with no social presence is a normal outcome, not an error.
	if resp.StatusCode == http.StatusNotFound {
		viralLogger.Debug().
			Str("token", tokenAddress).
			Msg("Token not tracked by pulse API")
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pulse API returned status %d for %s", resp.StatusCode, tokenAddress)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read viral score response for %s: %w", tokenAddress, err)
	}

	var pulseResp pulseScoreResponse
	if err := json.Unmarshal(body, &pulseResp); err != nil {
		return nil, fmt.Errorf("failed to parse viral score response for %s: %w", tokenAddress, err)
	}
	if !pulseResp.Success {
		return nil, fmt.Errorf("pulse API error for %s: %s", tokenAddress, pulseResp.Error)
	}

	score := types.ViralScoreData{
		Views1h:    pulseResp.Data.Views1h,
		Views1d:    pulseResp.Data.Views1d,
		Views7d:    pulseResp.Data.Views7d,
		Likes1h:    pulseResp.Data.Likes1h,
		Likes1d:    pulseResp.Data.Likes1d,
		Likes7d:    pulseResp.Data.Likes7d,
		PulseScore: pulseResp.Data.PulseScore,
		ViralRank:  pulseResp.Data.ViralRank,
	}
	if err := validateViralScore(score, tokenAddress); err != nil {
		return nil, err
	}

	viralLogger.Debug().
		Str("token", tokenAddress).
		Float64("pulseScore", score.PulseScore).
		Msg("Viral score retrieved")

	return &score, nil
}

func validateViralScore(score types.ViralScoreData, tokenAddress string) error {
	counts := []struct {
		value int64
		name  string
	}{
		{score.Views1h, "views1h"},
		{score.Views1d, "views1d"},
		{score.Views7d, "views7d"},
		{score.Likes1h, "likes1h"},
		{score.Likes1d, "likes1d"},
		{score.Likes7d, "likes7d"},
	}
	for _, count := range counts {
		if count.value < 0 {
			return fmt.Errorf("%w: %s for %s is negative: %d", ErrInvalidViralData, count.name, tokenAddress, count.value)
		}
	}

	if math.IsNaN(score.PulseScore) || math.IsInf(score.PulseScore, 0) || score.PulseScore < 0 {
		return fmt.Errorf("%w: pulse score for %s is invalid: %f", ErrInvalidViralData, tokenAddress, score.PulseScore)
	}
	if score.ViralRank != nil && *score.ViralRank < 1 {
		return fmt.Errorf("%w: viral rank for %s must be positive: %d", ErrInvalidViralData, tokenAddress, *score.ViralRank)
	}
	return nil
}

// EnrichRequest fills in missing viral scores on the request in place.
// Fetch failures are logged and swallowed; metrics degrade to neutral when
// scores stay absent.
func EnrichRequest(ctx context.Context, req *types.SuggestionRequest) {
	if config.PulseAPI == "" {
		return
	}

	if req.TokenXViral == nil {
		score, err := FetchViralScore(ctx, req.TokenX.Address)
		if err != nil {
			viralLogger.Warn().
				Err(err).
				Str("token", req.TokenX.Address).
				Msg("Viral enrichment failed for token X, continuing without")
		} else {
			req.TokenXViral = score
		}
	}

	if req.TokenYViral == nil {
		score, err := FetchViralScore(ctx, req.TokenY.Address)
		if err != nil {
			viralLogger.Warn().
				Err(err).
				Str("token", req.TokenY.Address).
				Msg("Viral enrichment failed for token Y, continuing without")
		} else {
			req.TokenYViral = score
		}
	}
}
