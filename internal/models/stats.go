package models

// SessionStats represents aggregate statistics over all recorded sessions
type SessionStats struct {
	// TotalSessions is the number of recorded sessions
	TotalSessions int `json:"total_sessions"`

	// TotalClays is the sum of targets presented across all sessions
	TotalClays int `json:"total_clays"`

	// TotalHits is the sum of targets broken across all sessions
	TotalHits int `json:"total_hits"`

	// OverallAccuracy is TotalHits/TotalClays as a percentage, one decimal
	OverallAccuracy float64 `json:"overall_accuracy"`

	// BestSessionAccuracy is the highest single-session accuracy among
	// sessions that presented at least one clay, one decimal
	BestSessionAccuracy float64 `json:"best_session_accuracy"`

	// CurrentStreak is the count of consecutive most-recent sessions at
	// or above the streak threshold
	CurrentStreak int `json:"current_streak"`

	// FavoriteDiscipline is the most frequently shot discipline, or the
	// empty string when no sessions exist
	FavoriteDiscipline string `json:"favorite_discipline"`
}
