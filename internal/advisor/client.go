/*

This file contains the AI strategy client. It wraps the Anthropic Messages
API behind a single GenerateStrategy call that never fails: any error on the
model path (missing credential, transport failure, unusable response) is
logged and answered with the deterministic fallback strategy instead.

*/

package advisor

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/logger"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

// Source labels where a recommendation came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

var ErrUnconfigured = errors.New("anthropic API key not configured")

const samplingTemperature = 0.3

const systemPrompt = `You are a DLMM (Discretized Liquidity Market Maker) strategy advisor for meme-token pairs.
You receive pre-calculated market metrics and candidate pools and respond with one liquidity
provision strategy. You never invent pool addresses; you pick from the candidates given.
You respond with a single raw JSON object and nothing else.`

// Client generates strategy recommendations, preferring the model and
// degrading to the heuristic fallback.
type Client struct {
	anthropic *anthropic.Client
	model     string
	maxTokens int
	logger    zerolog.Logger
}

// NewClient builds a strategy client. An empty apiKey is valid and yields a
// client that always answers from the fallback path.
func NewClient(apiKey, model string, maxTokens int) *Client {
	c := &Client{
		model:     model,
		maxTokens: maxTokens,
		logger:    logger.GetForComponent("strategy_advisor"),
	}
	if apiKey != "" {
		sdk := anthropic.NewClient(option.WithAPIKey(apiKey))
		c.anthropic = &sdk
	}
	return c
}

// GenerateStrategy produces a recommendation for the request. The model path
// is attempted first; every failure degrades to the deterministic fallback,
// so the call itself never errors.
func (c *Client) GenerateStrategy(ctx context.Context, req types.SuggestionRequest, metrics types.CalculatedMetrics) (types.AIStrategyRecommendation, Source) {
	recommendation, err := c.generateFromModel(ctx, req, metrics)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("pair", fmt.Sprintf("%s/%s", req.TokenX.Symbol, req.TokenY.Symbol)).
			Msg("Model path failed, using fallback strategy")
		return FallbackStrategy(req, metrics), SourceFallback
	}
	return recommendation, SourceModel
}

func (c *Client) generateFromModel(ctx context.Context, req types.SuggestionRequest, metrics types.CalculatedMetrics) (types.AIStrategyRecommendation, error) {
	var empty types.AIStrategyRecommendation

	if c.anthropic == nil {
		return empty, ErrUnconfigured
	}

	hints := BuildHints(metrics, req.RiskProfile)
	prompt := BuildPrompt(req, metrics, hints)

	message, err := c.anthropic.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(c.maxTokens),
		Temperature: anthropic.Float(samplingTemperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return empty, fmt.Errorf("anthropic API call failed: %w", err)
	}
	if len(message.Content) == 0 {
		return empty, errors.New("empty response from model")
	}

	responseText := message.Content[0].Text
	raw, err := ParseRecommendation(responseText)
	if err != nil {
		return empty, err
	}

	return RepairRecommendation(raw, req, metrics), nil
}
