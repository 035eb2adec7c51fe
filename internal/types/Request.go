/*

This file contains the inbound request types for the strategy suggestion
pipeline. A SuggestionRequest is a self-contained snapshot of everything the
engine needs for one recommendation; nothing in it outlives the request.

*/

package types

import "errors"

// RiskProfile selects how aggressively the engine should position liquidity.
type RiskProfile string

const (
	RiskAggressive RiskProfile = "aggressive"
	RiskDefensive  RiskProfile = "defensive"
	RiskAuto       RiskProfile = "auto"
)

// Valid reports whether the profile is one of the three accepted values.
func (r RiskProfile) Valid() bool {
	switch r {
	case RiskAggressive, RiskDefensive, RiskAuto:
		return true
	}
	return false
}

// TokenDescriptor identifies one side of the trading pair.
type TokenDescriptor struct {
	Address  string `json:"address"`  // e.g., "0x71b3...c4d2"
	Symbol   string `json:"symbol"`   // e.g., "WAVAX"
	Decimals int    `json:"decimals"` // e.g., 18
}

// SuggestionRequest carries all raw telemetry for a single strategy
// suggestion: the pair, candidate pools, a week of price and volume history,
// the current per-bin liquidity snapshot, and optional social signals.
type SuggestionRequest struct {
	RiskProfile        RiskProfile       `json:"riskProfile"`
	TokenX             TokenDescriptor   `json:"tokenX"`
	TokenY             TokenDescriptor   `json:"tokenY"`
	AvailablePools     []PoolInfo        `json:"availablePools"`
	TokenXPriceHistory []TokenPriceData  `json:"tokenXPriceHistory"`
	TokenYPriceHistory []TokenPriceData  `json:"tokenYPriceHistory"`
	PairHistory        []PairHistoryData `json:"pairHistory"`
	BinData            []BinData         `json:"binData"`
	CurrentActiveID    int               `json:"currentActiveId"`

	// Optional social-virality signals per token.
	TokenXViral *ViralScoreData `json:"tokenXViral,omitempty"`
	TokenYViral *ViralScoreData `json:"tokenYViral,omitempty"`

	// Optional recent hourly volume series for intra-day volatility.
	HourlyVolumes []float64 `json:"hourlyVolumes,omitempty"`
}

var (
	ErrMissingTokenAddress = errors.New("token address is required")
	ErrInvalidRiskProfile  = errors.New("riskProfile must be aggressive, defensive, or auto")
	ErrNoPools             = errors.New("availablePools must contain at least one pool")
	ErrNegativeTVL         = errors.New("pool tvlUSD cannot be negative")
)

// Validate checks the structural invariants the transport layer enforces
// before any metric is computed. Presence of currentActiveId is checked at
// decode time since zero is a legal bin id.
func (r SuggestionRequest) Validate() error {
	if r.TokenX.Address == "" || r.TokenY.Address == "" {
		return ErrMissingTokenAddress
	}
	if !r.RiskProfile.Valid() {
		return ErrInvalidRiskProfile
	}
	if len(r.AvailablePools) == 0 {
		return ErrNoPools
	}
	for _, pool := range r.AvailablePools {
		if pool.TvlUSD < 0 {
			return ErrNegativeTVL
		}
	}
	return nil
}
