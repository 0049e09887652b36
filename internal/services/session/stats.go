package session

import (
	"context"
	"math"

	"github.com/KirkDiggler/claytrack/internal/models"
	sessionRepo "github.com/KirkDiggler/claytrack/internal/repositories/session"
)

// GetStats computes aggregate statistics over all recorded sessions.
// Retrieval is capped at the configured stats fetch limit and the capped
// result is treated as the full session set.
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	out, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{
		Limit: s.statsFetchLimit,
	})
	if err != nil {
		return nil, err
	}

	return &GetStatsOutput{
		Stats: computeStats(out.Sessions, s.streakThreshold),
	}, nil
}

// computeStats aggregates a session list already ordered by date descending.
// An empty list yields all zeros and an empty favorite discipline.
func computeStats(sessions []*models.Session, streakThreshold float64) *models.SessionStats {
	stats := &models.SessionStats{}
	if len(sessions) == 0 {
		return stats
	}

	stats.TotalSessions = len(sessions)

	var bestAccuracy float64
	for _, sess := range sessions {
		stats.TotalClays += sess.TotalClays
		stats.TotalHits += sess.ClaysHit

		// Sessions that presented no clays are excluded from the maximum
		if sess.TotalClays > 0 && sess.Accuracy() > bestAccuracy {
			bestAccuracy = sess.Accuracy()
		}
	}

	if stats.TotalClays > 0 {
		stats.OverallAccuracy = roundOneDecimal(float64(stats.TotalHits) / float64(stats.TotalClays) * 100)
	}
	stats.BestSessionAccuracy = roundOneDecimal(bestAccuracy)

	stats.FavoriteDiscipline = favoriteDiscipline(sessions)
	stats.CurrentStreak = currentStreak(sessions, streakThreshold)

	return stats
}

// favoriteDiscipline returns the most frequently shot discipline. Ties go
// to whichever discipline was seen first in tally order, which here is the
// store's date-descending return order.
func favoriteDiscipline(sessions []*models.Session) string {
	counts := make(map[models.DisciplineType]int)
	var order []models.DisciplineType

	for _, sess := range sessions {
		if _, seen := counts[sess.Discipline]; !seen {
			order = append(order, sess.Discipline)
		}
		counts[sess.Discipline]++
	}

	var favorite models.DisciplineType
	best := 0
	for _, d := range order {
		if counts[d] > best {
			favorite = d
			best = counts[d]
		}
	}

	return string(favorite)
}

// currentStreak counts consecutive most-recent sessions at or above the
// threshold, walking the date-descending list from the top. A session with
// no clays presented counts as 0% and breaks the streak. Ordering between
// sessions sharing a date follows whatever order the store returned.
func currentStreak(sessions []*models.Session, threshold float64) int {
	streak := 0
	for _, sess := range sessions {
		if sess.Accuracy() < threshold {
			break
		}
		streak++
	}
	return streak
}

// roundOneDecimal rounds to one decimal place
func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
