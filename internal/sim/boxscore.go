package sim

import (
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
)

// AllocatePlayerLines distributes a team's final score across its starters.
//
// Each non-final starter draws uniformly from [0, 40% of the points still
// unallocated); the last starter absorbs the remainder. The decreasing
// remainder makes the split asymmetric, which is accepted: the lines are
// cosmetic and only their sum matters. Rebounds, assists, steals, and
// blocks are independent draws in fixed ranges and are not constrained to
// match the team aggregates.
func AllocatePlayerLines(rng Source, starters []model.Player, teamScore int) []model.PlayerLine {
	lines := make([]model.PlayerLine, 0, len(starters))
	remaining := teamScore
	for i, p := range starters {
		points := remaining
		if i < len(starters)-1 {
			points = 0
			if limit := int(float64(remaining) * 0.4); limit > 0 {
				points = rng.Intn(limit)
			}
		}
		remaining -= points
		lines = append(lines, model.PlayerLine{
			PlayerID: p.ID,
			Points:   points,
			Rebounds: rng.Intn(12),
			Assists:  rng.Intn(8),
			Steals:   rng.Intn(3),
			Blocks:   rng.Intn(2),
		})
	}
	return lines
}
