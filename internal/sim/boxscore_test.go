package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
)

func starterList(n int) []model.Player {
	out := make([]model.Player, n)
	for i := range out {
		out[i] = model.Player{ID: string(rune('a' + i)), Status: model.PlayerActive}
	}
	return out
}

func TestAllocatePlayerLinesPointsSumToTeamScore(t *testing.T) {
	rng := NewSource(5)
	for i := 0; i < 500; i++ {
		score := 80 + rng.Intn(60)
		lines := AllocatePlayerLines(rng, starterList(5), score)
		require.Len(t, lines, 5)
		total := 0
		for _, l := range lines {
			assert.GreaterOrEqual(t, l.Points, 0)
			total += l.Points
		}
		assert.Equal(t, score, total)
	}
}

func TestAllocatePlayerLinesLastPlayerAbsorbsRemainder(t *testing.T) {
	rng := NewSource(13)
	lines := AllocatePlayerLines(rng, starterList(5), 100)
	require.Len(t, lines, 5)
	sumFirstFour := 0
	for _, l := range lines[:4] {
		sumFirstFour += l.Points
	}
	assert.Equal(t, 100-sumFirstFour, lines[4].Points)
}

func TestAllocatePlayerLinesStatRanges(t *testing.T) {
	rng := NewSource(21)
	for i := 0; i < 200; i++ {
		for _, l := range AllocatePlayerLines(rng, starterList(5), 110) {
			assert.GreaterOrEqual(t, l.Rebounds, 0)
			assert.Less(t, l.Rebounds, 12)
			assert.GreaterOrEqual(t, l.Assists, 0)
			assert.Less(t, l.Assists, 8)
			assert.GreaterOrEqual(t, l.Steals, 0)
			assert.Less(t, l.Steals, 3)
			assert.GreaterOrEqual(t, l.Blocks, 0)
			assert.Less(t, l.Blocks, 2)
		}
	}
}

func TestAllocatePlayerLinesZeroScore(t *testing.T) {
	rng := NewSource(2)
	lines := AllocatePlayerLines(rng, starterList(5), 0)
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.Zero(t, l.Points)
	}
}

func TestAllocatePlayerLinesFewerStarters(t *testing.T) {
	rng := NewSource(4)
	lines := AllocatePlayerLines(rng, starterList(3), 90)
	require.Len(t, lines, 3)
	total := 0
	for _, l := range lines {
		total += l.Points
	}
	assert.Equal(t, 90, total)
}

func TestAllocatePlayerLinesKeepsPlayerOrder(t *testing.T) {
	rng := NewSource(6)
	starters := starterList(5)
	lines := AllocatePlayerLines(rng, starters, 95)
	for i, l := range lines {
		assert.Equal(t, starters[i].ID, l.PlayerID)
	}
}
