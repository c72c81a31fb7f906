// Package seed generates a playable demo league: coaches, teams,
// position-balanced rosters, and a double round-robin schedule. Used by
// franchisectl and optionally at API startup when the in-memory store is
// empty.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/config"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/sim"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store"
)

const rosterSize = 10

var positions = []string{"PG", "SG", "SF", "PF", "C"}

var cities = []string{
	"Springfield", "Riverton", "Oakdale", "Lakeside", "Fairview",
	"Brookhaven", "Ironwood", "Summit", "Harborview", "Redmond",
	"Crestline", "Milltown", "Eastport", "Stonebridge", "Westfall", "Northgate",
}

var nicknames = []string{
	"Hawks", "Comets", "Wolves", "Pioneers", "Stallions",
	"Raptors", "Miners", "Captains", "Storm", "Rockets",
	"Guardians", "Flyers", "Admirals", "Bulldogs", "Titans", "Express",
}

var firstNames = []string{
	"Marcus", "Jalen", "Tyrese", "Devin", "Andre", "Isaiah", "Malik",
	"Jordan", "Chris", "Darius", "Trey", "Kevin", "Anthony", "Luka",
	"Nikola", "Victor", "Evan", "Cole", "Damian", "Zion",
}

var lastNames = []string{
	"Johnson", "Williams", "Carter", "Mitchell", "Brooks", "Edwards",
	"Thompson", "Robinson", "Harris", "Turner", "Walker", "Young",
	"Bennett", "Porter", "Reed", "Murray", "Grant", "Holiday", "Vance", "Cole",
}

// Result tracks counts and errors from a seeding run.
type Result struct {
	Teams    int
	Coaches  int
	Players  int
	Games    int
	Errors   []string
	Duration time.Duration
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seed run.
func (r *Result) Summary() string {
	return fmt.Sprintf("teams=%d coaches=%d players=%d games=%d errors=%d dur=%s",
		r.Teams, r.Coaches, r.Players, r.Games, len(r.Errors),
		r.Duration.Round(time.Millisecond))
}

// League creates teamCount teams with coaches and full rosters, then a
// double round-robin schedule. teamCount is clamped to what the name pools
// support and rounded down to an even number for scheduling.
func League(ctx context.Context, st store.Store, rng sim.Source, teamCount int, logger *slog.Logger) Result {
	start := time.Now()
	var result Result

	if teamCount < 2 {
		teamCount = 2
	}
	if teamCount > len(cities) {
		teamCount = len(cities)
	}
	if teamCount%2 != 0 {
		teamCount--
	}

	logger.Info("Seeding demo league", "teams", teamCount)

	teams := make([]model.Team, 0, teamCount)
	for i := 0; i < teamCount; i++ {
		coach, err := st.CreateCoach(ctx, randomCoach(rng))
		if err != nil {
			result.AddErrorf("create coach %d: %v", i, err)
			continue
		}
		result.Coaches++

		team, err := st.CreateTeam(ctx, randomTeam(rng, i, coach.ID))
		if err != nil {
			result.AddErrorf("create team %d: %v", i, err)
			continue
		}
		result.Teams++

		coach.TeamID = &team.ID
		if err := st.UpdateCoach(ctx, coach); err != nil {
			result.AddErrorf("link coach %s: %v", coach.ID, err)
		}

		for j := 0; j < rosterSize; j++ {
			p := randomPlayer(rng, team.ID, positions[j%len(positions)], j+1)
			if _, err := st.CreatePlayer(ctx, p); err != nil {
				result.AddErrorf("create player for team %s: %v", team.ID, err)
				continue
			}
			result.Players++
		}
		teams = append(teams, team)
	}

	result.Games = scheduleRoundRobin(ctx, st, teams, &result)
	result.Duration = time.Since(start)

	logger.Info("Demo league seeded", "summary", result.Summary())
	return result
}

func randomCoach(rng sim.Source) model.Coach {
	return model.Coach{
		Name:              pick(rng, firstNames) + " " + pick(rng, lastNames),
		OverallRating:     60 + rng.Intn(35),
		OffenseRating:     60 + rng.Intn(35),
		DefenseRating:     60 + rng.Intn(35),
		DevelopmentRating: 60 + rng.Intn(35),
		Salary:            2_000_000 + rng.Intn(6_000_000),
		ContractYears:     1 + rng.Intn(4),
	}
}

func randomTeam(rng sim.Source, i int, coachID string) model.Team {
	return model.Team{
		Name:          nicknames[i],
		City:          cities[i],
		OverallRating: 65 + rng.Intn(25),
		OffenseRating: 65 + rng.Intn(25),
		DefenseRating: 65 + rng.Intn(25),
		SalaryCap:     120_000_000,
		TeamMorale:    60 + rng.Intn(30),
		TeamChemistry: 60 + rng.Intn(30),
		HeadCoachID:   &coachID,
	}
}

func randomPlayer(rng sim.Source, teamID, position string, jersey int) model.Player {
	p := model.Player{
		Name:          pick(rng, firstNames) + " " + pick(rng, lastNames),
		Position:      position,
		JerseyNumber:  jersey,
		TeamID:        &teamID,
		Salary:        1_000_000 + rng.Intn(30_000_000),
		ContractYears: 1 + rng.Intn(5),
		Offense:       55 + rng.Intn(40),
		Defense:       55 + rng.Intn(40),
		Speed:         55 + rng.Intn(40),
		Shooting:      55 + rng.Intn(40),
		ThreePoint:    50 + rng.Intn(45),
		Rebounding:    50 + rng.Intn(45),
		Passing:       50 + rng.Intn(45),
		Status:        model.PlayerActive,
		Morale:        55 + rng.Intn(40),
	}
	p.Overall = sim.OverallRating(&p)
	p.Potential = model.ClampRating(p.Overall + rng.Intn(15))
	return p
}

func pick(rng sim.Source, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// scheduleRoundRobin creates a double round-robin: every pairing plays
// twice with home court swapped. Weeks follow the circle method so each
// team plays once per week.
func scheduleRoundRobin(ctx context.Context, st store.Store, teams []model.Team, result *Result) int {
	n := len(teams)
	if n < 2 {
		return 0
	}

	created := 0
	week := 1
	firstTip := time.Date(config.CurrentSeason, time.October, 20, 19, 0, 0, 0, time.UTC)

	// Circle method: fix teams[0], rotate the rest. One full rotation is a
	// single round robin; the second pass swaps home and away.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for pass := 0; pass < 2; pass++ {
		for round := 0; round < n-1; round++ {
			for i := 0; i < n/2; i++ {
				home, away := idx[i], idx[n-1-i]
				if pass == 1 {
					home, away = away, home
				}
				g := model.Game{
					HomeTeamID:    teams[home].ID,
					AwayTeamID:    teams[away].ID,
					Status:        model.GameScheduled,
					ScheduledDate: firstTip.AddDate(0, 0, (week-1)*7),
					Season:        config.CurrentSeason,
					Week:          week,
				}
				if _, err := st.CreateGame(ctx, g); err != nil {
					result.AddErrorf("create game week %d: %v", week, err)
					continue
				}
				created++
			}
			// rotate all but idx[0]
			last := idx[n-1]
			copy(idx[2:], idx[1:n-1])
			idx[1] = last
			week++
		}
	}
	return created
}
