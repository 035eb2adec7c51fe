/*

This file contains the viral-boost derivation: leaderboard ranks translate
into fee-APR multipliers, rewarding pools whose tokens are trending.

*/

package analyzer

import (
	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

// BestViralRank returns the better (numerically lower) leaderboard rank of
// the two tokens, or nil when neither token is ranked.
func BestViralRank(tokenXViral, tokenYViral *types.ViralScoreData) *int {
	var best *int
	for _, viral := range []*types.ViralScoreData{tokenXViral, tokenYViral} {
		if viral == nil || viral.ViralRank == nil {
			continue
		}
		if best == nil || *viral.ViralRank < *best {
			rank := *viral.ViralRank
			best = &rank
		}
	}
	return best
}

// ViralBoostMultiplier maps a leaderboard rank to its APR multiplier.
// Unknown ranks (outside 1-3) and unranked tokens get no boost.
func ViralBoostMultiplier(rank *int) float64 {
	if rank == nil {
		return BoostNone
	}
	switch *rank {
	case 1:
		return BoostRank1
	case 2:
		return BoostRank2
	case 3:
		return BoostRank3
	default:
		return BoostNone
	}
}
