package sim

import (
	"math"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
)

const (
	homeCourtBonus = 3.0
	// A full 100-point rating gap is worth at most 30 percentage points
	// of win probability.
	ratingProbWeight = 0.3

	baseScore      = 100.0
	scoreVariation = 25.0
	scoreRatingPct = 0.2

	maxWinnerBump = 10
)

// Outcome is the result of one simulated game before persistence.
type Outcome struct {
	HomeWin   bool
	HomeScore int
	AwayScore int
	HomeStats model.TeamBoxScore
	AwayStats model.TeamBoxScore
}

// GenerateOutcome turns two team strengths into a winner, a final score,
// and team-level box stats. The scoreboard always agrees with the
// probabilistic winner and a tie is impossible by construction.
func GenerateOutcome(rng Source, homeRating, awayRating float64) Outcome {
	adjustedDiff := homeRating - awayRating + homeCourtBonus
	winProb := clampFloat(0.5+adjustedDiff/100*ratingProbWeight, 0, 1)
	homeWin := rng.Float64() < winProb

	homeScore := rawScore(rng, homeRating)
	awayScore := rawScore(rng, awayRating)

	// Force the scoreboard to match the drawn winner.
	if homeWin && homeScore <= awayScore {
		homeScore = awayScore + 1 + rng.Intn(maxWinnerBump)
	} else if !homeWin && awayScore <= homeScore {
		awayScore = homeScore + 1 + rng.Intn(maxWinnerBump)
	}

	return Outcome{
		HomeWin:   homeWin,
		HomeScore: homeScore,
		AwayScore: awayScore,
		HomeStats: teamBoxScore(rng, homeScore),
		AwayStats: teamBoxScore(rng, awayScore),
	}
}

// rawScore is 100 plus a uniform perturbation in [-12.5,+12.5], floored,
// plus a rating-driven bonus of floor(rating*0.2).
func rawScore(rng Source, rating float64) int {
	score := int(math.Floor(baseScore + (rng.Float64()-0.5)*scoreVariation))
	return score + int(math.Floor(rating*scoreRatingPct))
}

// teamBoxScore derives descriptive aggregate stats from a side's final
// score. These are not reconciled against the individual player lines.
func teamBoxScore(rng Source, score int) model.TeamBoxScore {
	return model.TeamBoxScore{
		FieldGoals:    int(float64(score)*0.4) + rng.Intn(10),
		ThreePointers: int(float64(score)*0.12) + rng.Intn(5),
		Rebounds:      40 + rng.Intn(20),
		Assists:       int(float64(score)*0.2) + rng.Intn(8),
		Turnovers:     12 + rng.Intn(8),
	}
}
