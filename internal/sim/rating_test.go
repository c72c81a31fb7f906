package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
)

func player(overall, morale int, status model.PlayerStatus) model.Player {
	return model.Player{Overall: overall, Morale: morale, Status: status}
}

func TestTeamRatingEmptyRoster(t *testing.T) {
	assert.Equal(t, 50.0, TeamRating(nil, nil))
	assert.Equal(t, 50.0, TeamRating([]model.Player{}, nil))
}

func TestTeamRatingFullRoster(t *testing.T) {
	roster := []model.Player{
		player(80, 75, model.PlayerActive),
		player(80, 40, model.PlayerActive),
		player(80, 40, model.PlayerActive),
		player(80, 40, model.PlayerActive),
		player(80, 40, model.PlayerActive),
	}
	// base 80, no coach, top starter morale at baseline
	assert.Equal(t, 80.0, TeamRating(roster, nil))
}

func TestTeamRatingIsPure(t *testing.T) {
	roster := []model.Player{
		player(92, 88, model.PlayerActive),
		player(75, 60, model.PlayerActive),
		player(81, 70, model.PlayerActive),
	}
	coach := &model.Coach{OverallRating: 82}
	first := TeamRating(roster, coach)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, TeamRating(roster, coach))
	}
	assert.GreaterOrEqual(t, first, 0.0)
	assert.LessOrEqual(t, first, 100.0)
}

func TestTeamRatingShortBenchPenalty(t *testing.T) {
	// Three active players at 80: divisor stays 5, so base is 48.
	roster := []model.Player{
		player(80, 75, model.PlayerActive),
		player(80, 75, model.PlayerActive),
		player(80, 75, model.PlayerActive),
	}
	assert.Equal(t, 48.0, TeamRating(roster, nil))
}

func TestTeamRatingIgnoresInactivePlayers(t *testing.T) {
	roster := []model.Player{
		player(95, 75, model.PlayerInjured),
		player(90, 75, model.PlayerSuspended),
		player(85, 75, model.PlayerRetired),
		player(60, 75, model.PlayerActive),
	}
	// Only the one active player counts: 60/5 = 12.
	assert.Equal(t, 12.0, TeamRating(roster, nil))
}

func TestTeamRatingCoachAdjustment(t *testing.T) {
	roster := []model.Player{
		player(80, 75, model.PlayerActive),
		player(80, 75, model.PlayerActive),
		player(80, 75, model.PlayerActive),
		player(80, 75, model.PlayerActive),
		player(80, 75, model.PlayerActive),
	}
	assert.Equal(t, 81.0, TeamRating(roster, &model.Coach{OverallRating: 85}))
	assert.Equal(t, 79.0, TeamRating(roster, &model.Coach{OverallRating: 65}))
}

func TestTeamRatingMoraleUsesTopStarterOnly(t *testing.T) {
	roster := []model.Player{
		player(90, 95, model.PlayerActive), // +1.0 morale adjustment
		player(80, 0, model.PlayerActive),
		player(80, 0, model.PlayerActive),
		player(80, 0, model.PlayerActive),
		player(80, 0, model.PlayerActive),
	}
	// base (90+320)/5 = 82, morale (95-75)*0.05 = +1
	assert.Equal(t, 83.0, TeamRating(roster, nil))
}

func TestTeamRatingClamped(t *testing.T) {
	roster := []model.Player{
		player(100, 100, model.PlayerActive),
		player(100, 100, model.PlayerActive),
		player(100, 100, model.PlayerActive),
		player(100, 100, model.PlayerActive),
		player(100, 100, model.PlayerActive),
	}
	got := TeamRating(roster, &model.Coach{OverallRating: 100})
	assert.Equal(t, 100.0, got)
}

func TestStartersSelection(t *testing.T) {
	roster := []model.Player{
		{ID: "a", Overall: 70, Status: model.PlayerActive},
		{ID: "b", Overall: 90, Status: model.PlayerActive},
		{ID: "c", Overall: 85, Status: model.PlayerInjured},
		{ID: "d", Overall: 80, Status: model.PlayerActive},
		{ID: "e", Overall: 75, Status: model.PlayerActive},
		{ID: "f", Overall: 95, Status: model.PlayerActive},
		{ID: "g", Overall: 65, Status: model.PlayerActive},
	}
	starters := Starters(roster)
	require.Len(t, starters, 5)
	assert.Equal(t, "f", starters[0].ID)
	assert.Equal(t, "b", starters[1].ID)
	assert.Equal(t, "d", starters[2].ID)
	assert.Equal(t, "e", starters[3].ID)
	assert.Equal(t, "a", starters[4].ID)
}

func TestStartersStableOnTies(t *testing.T) {
	roster := []model.Player{
		{ID: "x", Overall: 80, Status: model.PlayerActive},
		{ID: "y", Overall: 80, Status: model.PlayerActive},
		{ID: "z", Overall: 80, Status: model.PlayerActive},
	}
	starters := Starters(roster)
	require.Len(t, starters, 3)
	assert.Equal(t, "x", starters[0].ID)
	assert.Equal(t, "y", starters[1].ID)
	assert.Equal(t, "z", starters[2].ID)
}
