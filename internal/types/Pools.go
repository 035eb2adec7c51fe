/*

This file contains the market-data value objects consumed by the metrics
calculator: candidate pools, daily price and volume history, and the per-bin
liquidity snapshot of the liquidity book.

*/

package types

// FeeParameters exposes the variable-fee curve of a liquidity-book pool.
// Not every pool surfaces these; both fields come straight from the indexer.
type FeeParameters struct {
	ProtocolSharePct   float64 `json:"protocolSharePct"`   // Share of fees kept by the protocol (0-100).
	VariableFeeControl float64 `json:"variableFeeControl"` // Raw variable-fee control parameter.
}

// PoolInfo describes one candidate pool for the pair.
type PoolInfo struct {
	PairAddress   string         `json:"pairAddress"`  // e.g., "0x9f8a...11ab"
	BinStep       int            `json:"binStep"`      // Fee-tier discretization unit in basis points.
	TvlUSD        float64        `json:"tvlUSD"`       // Total value locked, USD. Never negative.
	Volume24hUSD  float64        `json:"volume24hUSD"` // Trailing 24h volume, USD.
	Fees24hUSD    float64        `json:"fees24hUSD"`   // Trailing 24h fees, USD.
	LpCount       int            `json:"lpCount"`      // Number of liquidity providers.
	FeeParameters *FeeParameters `json:"feeParameters,omitempty"`
}

// TokenPriceData is one OHLC-style daily record for a token, USD.
type TokenPriceData struct {
	Date  string  `json:"date"` // e.g., "2025-08-25"
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// PairHistoryData is one daily volume/fee aggregate for the pair.
type PairHistoryData struct {
	Date      string  `json:"date"`
	VolumeUSD float64 `json:"volumeUSD"`
	FeesUSD   float64 `json:"feesUSD"`
}

// BinData is a liquidity snapshot of one discretized price bin.
type BinData struct {
	BinID    int     `json:"binId"`
	ReserveX float64 `json:"reserveX"`
	ReserveY float64 `json:"reserveY"`
	PriceX   float64 `json:"priceX"` // USD price of token X in this bin.
	PriceY   float64 `json:"priceY"` // USD price of token Y in this bin.
}

// USDValue returns the combined USD value of both reserves in the bin.
func (b BinData) USDValue() float64 {
	return b.ReserveX*b.PriceX + b.ReserveY*b.PriceY
}
