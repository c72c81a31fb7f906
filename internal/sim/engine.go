// Package sim implements the game simulation and player progression engine:
// team-strength aggregation, outcome generation, box-score allocation, the
// post-game stat update, and training-driven rating progression.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store"
)

// ErrInvalidState is returned when a game is simulated while not in
// scheduled status. The HTTP layer maps it to 409.
var ErrInvalidState = errors.New("invalid state")

// Engine runs simulations against an injected store and random source.
type Engine struct {
	store store.Store
	rng   Source
	log   *slog.Logger
	now   func() time.Time

	// gameMu serializes simulations of the same game so two concurrent
	// requests cannot double-increment win/loss records.
	mu     sync.Mutex
	gameMu map[string]*sync.Mutex
}

// New creates an engine. A nil logger discards nothing and falls back to
// slog.Default.
func New(st store.Store, rng Source, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:  st,
		rng:    rng,
		log:    logger,
		now:    time.Now,
		gameMu: make(map[string]*sync.Mutex),
	}
}

// WithClock overrides the engine's clock. Tests use it to move time past a
// training's end date.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func (e *Engine) lockGame(id string) func() {
	e.mu.Lock()
	m, ok := e.gameMu[id]
	if !ok {
		m = &sync.Mutex{}
		e.gameMu[id] = m
	}
	e.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// side holds one team's loaded state for the duration of a simulation. The
// starters are selected once and threaded through rating, allocation, and
// the stat update so roster changes mid-flow cannot cause drift.
type side struct {
	team     model.Team
	starters []model.Player
	rating   float64
}

// SimulateGame loads a scheduled game, generates its outcome, and persists
// the completed game, the win/loss deltas, and the starters' season-average
// updates in one atomic store call. No mutation happens before every
// reference has resolved.
func (e *Engine) SimulateGame(ctx context.Context, gameID string) (model.Game, error) {
	unlock := e.lockGame(gameID)
	defer unlock()

	game, err := e.store.GetGame(ctx, gameID)
	if err != nil {
		return model.Game{}, fmt.Errorf("load game: %w", err)
	}
	if game.Status != model.GameScheduled {
		return model.Game{}, fmt.Errorf("game %s is %s: %w", gameID, game.Status, ErrInvalidState)
	}

	home, err := e.loadSide(ctx, game.HomeTeamID)
	if err != nil {
		return model.Game{}, err
	}
	away, err := e.loadSide(ctx, game.AwayTeamID)
	if err != nil {
		return model.Game{}, err
	}

	out := GenerateOutcome(e.rng, home.rating, away.rating)
	homeLines := AllocatePlayerLines(e.rng, home.starters, out.HomeScore)
	awayLines := AllocatePlayerLines(e.rng, away.starters, out.AwayScore)

	game.Status = model.GameCompleted
	game.HomeScore = out.HomeScore
	game.AwayScore = out.AwayScore
	game.HomeTeamStats = &out.HomeStats
	game.AwayTeamStats = &out.AwayStats
	game.HomePlayerLines = homeLines
	game.AwayPlayerLines = awayLines

	if out.HomeWin {
		home.team.Wins++
		away.team.Losses++
	} else {
		away.team.Wins++
		home.team.Losses++
	}

	players := make([]model.Player, 0, len(home.starters)+len(away.starters))
	players = append(players, rollAverages(home.starters, homeLines)...)
	players = append(players, rollAverages(away.starters, awayLines)...)

	res := store.GameResult{
		Game:    game,
		Teams:   []model.Team{home.team, away.team},
		Players: players,
	}
	if err := e.store.ApplyGameResult(ctx, res); err != nil {
		return model.Game{}, fmt.Errorf("persist game result: %w", err)
	}

	e.log.Info("game simulated",
		"game", game.ID,
		"home", home.team.Name, "away", away.team.Name,
		"score", fmt.Sprintf("%d-%d", game.HomeScore, game.AwayScore))
	return game, nil
}

// loadSide resolves one team, its roster, its optional coach, and the
// derived starters and strength rating.
func (e *Engine) loadSide(ctx context.Context, teamID string) (side, error) {
	team, err := e.store.GetTeam(ctx, teamID)
	if err != nil {
		return side{}, fmt.Errorf("load team: %w", err)
	}
	roster, err := e.store.PlayersByTeam(ctx, teamID)
	if err != nil {
		return side{}, fmt.Errorf("load roster: %w", err)
	}
	var coach *model.Coach
	if team.HeadCoachID != nil {
		c, err := e.store.GetCoach(ctx, *team.HeadCoachID)
		if err != nil {
			return side{}, fmt.Errorf("load coach: %w", err)
		}
		coach = &c
	}

	s := side{team: team, starters: Starters(roster)}
	if len(roster) == 0 {
		s.rating = neutralRating
	} else {
		s.rating = ratingFromStarters(s.starters, coach)
	}
	return s, nil
}

// rollAverages advances each starter's season averages with the incremental
// mean update, rounded to one decimal. Players outside the starters did not
// play and are untouched.
func rollAverages(starters []model.Player, lines []model.PlayerLine) []model.Player {
	out := make([]model.Player, 0, len(starters))
	for i, p := range starters {
		line := lines[i]
		played := p.GamesPlayed
		p.GamesPlayed = played + 1
		p.PointsPerGame = incrementalMean(p.PointsPerGame, played, line.Points)
		p.ReboundsPerGame = incrementalMean(p.ReboundsPerGame, played, line.Rebounds)
		p.AssistsPerGame = incrementalMean(p.AssistsPerGame, played, line.Assists)
		out = append(out, p)
	}
	return out
}

// incrementalMean folds one new observation into a running average:
// (oldAvg*n + value) / (n+1), rounded to one decimal place.
func incrementalMean(oldAvg float64, oldGames int, value int) float64 {
	avg := (oldAvg*float64(oldGames) + float64(value)) / float64(oldGames+1)
	return math.Round(avg*10) / 10
}
