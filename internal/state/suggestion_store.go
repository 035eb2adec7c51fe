package state

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

// SuggestionRecord is one generated strategy suggestion as persisted for
// audit and history queries.
type SuggestionRecord struct {
	SuggestionID   string                         `json:"suggestionId"`
	CreatedAt      time.Time                      `json:"createdAt"`
	TokenXAddress  string                         `json:"tokenXAddress"`
	TokenYAddress  string                         `json:"tokenYAddress"`
	PairSymbol     string                         `json:"pairSymbol"`
	RiskProfile    types.RiskProfile              `json:"riskProfile"`
	Source         string                         `json:"source"`
	Model          string                         `json:"model,omitempty"`
	GenerationMs   int64                          `json:"generationMs"`
	Recommendation types.AIStrategyRecommendation `json:"recommendation"`
	Metrics        types.CalculatedMetrics        `json:"calculatedMetrics"`
}

// SaveSuggestion persists one suggestion.
func SaveSuggestion(record SuggestionRecord) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	recommendationJSON, err := json.Marshal(record.Recommendation)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}
	metricsJSON, err := json.Marshal(record.Metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal calculated_metrics: %w", err)
	}

	query := `
		INSERT INTO strategy_suggestions (
			suggestion_id, created_at, token_x_address, token_y_address,
			pair_symbol, risk_profile, source, model, generation_ms,
			recommendation, calculated_metrics
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err = DB.Exec(
		query,
		record.SuggestionID, record.CreatedAt, record.TokenXAddress, record.TokenYAddress,
		record.PairSymbol, string(record.RiskProfile), record.Source, record.Model, record.GenerationMs,
		recommendationJSON, metricsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save suggestion: %w", err)
	}

	log.Debug().
		Str("suggestion_id", record.SuggestionID).
		Str("pair", record.PairSymbol).
		Str("source", record.Source).
		Msg("Suggestion saved to database")

	return nil
}

// GetRecentSuggestions returns the most recent suggestions, newest first.
func GetRecentSuggestions(limit int) ([]SuggestionRecord, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT suggestion_id, created_at, token_x_address, token_y_address,
		       pair_symbol, risk_profile, source, COALESCE(model, ''), generation_ms,
		       recommendation, calculated_metrics
		FROM strategy_suggestions
		ORDER BY created_at DESC
		LIMIT $1;
	`

	rows, err := DB.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	records := make([]SuggestionRecord, 0, limit)
	for rows.Next() {
		var record SuggestionRecord
		var profile string
		var recommendationJSON, metricsJSON []byte

		err := rows.Scan(
			&record.SuggestionID, &record.CreatedAt, &record.TokenXAddress, &record.TokenYAddress,
			&record.PairSymbol, &profile, &record.Source, &record.Model, &record.GenerationMs,
			&recommendationJSON, &metricsJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan suggestion row: %w", err)
		}

		record.RiskProfile = types.RiskProfile(profile)
		if err := json.Unmarshal(recommendationJSON, &record.Recommendation); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recommendation for %s: %w", record.SuggestionID, err)
		}
		if err := json.Unmarshal(metricsJSON, &record.Metrics); err != nil {
			return nil, fmt.Errorf("failed to unmarshal calculated_metrics for %s: %w", record.SuggestionID, err)
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating suggestion rows: %w", err)
	}

	return records, nil
}
