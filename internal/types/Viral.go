package types

// ViralScoreData is a per-token social-engagement snapshot from the pulse
// API. Windows are trailing 1 hour, 1 day, and 7 days.
type ViralScoreData struct {
	Views1h int64 `json:"views1h"`
	Likes1h int64 `json:"likes1h"`
	Views1d int64 `json:"views1d"`
	Likes1d int64 `json:"likes1d"`
	Views7d int64 `json:"views7d"`
	Likes7d int64 `json:"likes7d"`

	// PulseScore is a composite 0-100 engagement score.
	PulseScore float64 `json:"pulseScore"`

	// ViralRank is set only for tokens currently on the leaderboard (1-3,
	// 1 is best). Nil when unranked.
	ViralRank *int `json:"viralRank,omitempty"`
}

// Engagement1d returns combined views and likes over the trailing day.
func (v ViralScoreData) Engagement1d() float64 {
	return float64(v.Views1d + v.Likes1d)
}

// Engagement7d returns combined views and likes over the trailing week.
func (v ViralScoreData) Engagement7d() float64 {
	return float64(v.Views7d + v.Likes7d)
}
