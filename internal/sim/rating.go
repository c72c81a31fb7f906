package sim

import (
	"sort"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
)

const (
	startersPerTeam = 5
	neutralRating   = 50.0

	coachBaseline  = 75
	coachWeight    = 0.1
	moraleBaseline = 75
	moraleWeight   = 0.05
)

// Starters selects up to five active players ordered by overall rating,
// highest first. The sort is stable so equal-rated players keep roster
// order. The same list feeds team-strength aggregation, box-score
// allocation, and the post-game stat update within one simulation.
func Starters(roster []model.Player) []model.Player {
	active := make([]model.Player, 0, len(roster))
	for _, p := range roster {
		if p.Active() {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Overall > active[j].Overall
	})
	if len(active) > startersPerTeam {
		active = active[:startersPerTeam]
	}
	return active
}

// TeamRating reduces a roster and optional coach to one strength scalar in
// [0,100]. An empty roster yields the neutral default of 50.
//
// The base is the starters' overall sum divided by a fixed 5, so a team
// with fewer than five active players is penalized for its missing
// starters. Downstream balance depends on that penalty.
func TeamRating(roster []model.Player, coach *model.Coach) float64 {
	if len(roster) == 0 {
		return neutralRating
	}
	starters := Starters(roster)
	return ratingFromStarters(starters, coach)
}

// ratingFromStarters is the aggregation step for an already-selected
// starters list, used when the caller threads one selection through the
// whole simulation.
func ratingFromStarters(starters []model.Player, coach *model.Coach) float64 {
	sum := 0
	for _, p := range starters {
		sum += p.Overall
	}
	rating := float64(sum) / float64(startersPerTeam)

	if coach != nil {
		rating += float64(coach.OverallRating-coachBaseline) * coachWeight
	}
	// Morale adjustment uses only the top starter.
	if len(starters) > 0 {
		rating += float64(starters[0].Morale-moraleBaseline) * moraleWeight
	}
	return clampFloat(rating, 0, 100)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
