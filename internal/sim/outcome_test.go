package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOutcomeNeverTies(t *testing.T) {
	rng := NewSource(42)
	for i := 0; i < 2000; i++ {
		out := GenerateOutcome(rng, 50, 50)
		assert.NotEqual(t, out.HomeScore, out.AwayScore)
	}
}

func TestGenerateOutcomeWinnerHasHigherScore(t *testing.T) {
	rng := NewSource(7)
	for i := 0; i < 2000; i++ {
		out := GenerateOutcome(rng, 85, 60)
		if out.HomeWin {
			assert.Greater(t, out.HomeScore, out.AwayScore)
		} else {
			assert.Greater(t, out.AwayScore, out.HomeScore)
		}
	}
}

func TestGenerateOutcomeScoresNonNegative(t *testing.T) {
	rng := NewSource(3)
	for i := 0; i < 500; i++ {
		out := GenerateOutcome(rng, 0, 0)
		assert.GreaterOrEqual(t, out.HomeScore, 0)
		assert.GreaterOrEqual(t, out.AwayScore, 0)
	}
}

func TestGenerateOutcomeWinRate(t *testing.T) {
	// Home 90 vs away 70: expected home win probability is
	// 0.5 + ((90-70+3)/100)*0.3 = 0.569.
	rng := NewSource(1)
	const trials = 1000
	homeWins := 0
	for i := 0; i < trials; i++ {
		out := GenerateOutcome(rng, 90, 70)
		assert.NotEqual(t, out.HomeScore, out.AwayScore)
		if out.HomeWin {
			homeWins++
		}
	}
	rate := float64(homeWins) / trials
	assert.InDelta(t, 0.569, rate, 0.05)
}

func TestGenerateOutcomeBoxStatsRanges(t *testing.T) {
	rng := NewSource(9)
	for i := 0; i < 200; i++ {
		out := GenerateOutcome(rng, 75, 75)
		for _, side := range []struct {
			score int
			fg    int
			tp    int
			reb   int
			ast   int
			tov   int
		}{
			{out.HomeScore, out.HomeStats.FieldGoals, out.HomeStats.ThreePointers, out.HomeStats.Rebounds, out.HomeStats.Assists, out.HomeStats.Turnovers},
			{out.AwayScore, out.AwayStats.FieldGoals, out.AwayStats.ThreePointers, out.AwayStats.Rebounds, out.AwayStats.Assists, out.AwayStats.Turnovers},
		} {
			assert.GreaterOrEqual(t, side.fg, int(float64(side.score)*0.4))
			assert.Less(t, side.fg, int(float64(side.score)*0.4)+10)
			assert.GreaterOrEqual(t, side.tp, int(float64(side.score)*0.12))
			assert.Less(t, side.tp, int(float64(side.score)*0.12)+5)
			assert.GreaterOrEqual(t, side.reb, 40)
			assert.Less(t, side.reb, 60)
			assert.GreaterOrEqual(t, side.ast, int(float64(side.score)*0.2))
			assert.Less(t, side.ast, int(float64(side.score)*0.2)+8)
			assert.GreaterOrEqual(t, side.tov, 12)
			assert.Less(t, side.tov, 20)
		}
	}
}

func TestGenerateOutcomeExtremeGapClampsProbability(t *testing.T) {
	// A maximal gap pushes the formula past 1.0; the clamp keeps sampling
	// valid and the stronger home side should win every trial.
	rng := NewSource(11)
	for i := 0; i < 200; i++ {
		out := GenerateOutcome(rng, 100, 0)
		assert.True(t, out.HomeWin)
		assert.Greater(t, out.HomeScore, out.AwayScore)
	}
}
