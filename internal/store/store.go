// Package store defines the storage contract the simulation engine and API
// layer depend on. Implementations live in memstore (default, in-memory) and
// pgstore (Postgres). The engine never touches a concrete backend directly.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
)

// ErrNotFound is returned when a referenced entity cannot be resolved.
// Callers treat it as a fatal precondition failure for the invocation.
var ErrNotFound = errors.New("not found")

// PlayerFilter narrows ListPlayers. A nil field means "don't filter".
type PlayerFilter struct {
	TeamID     *string
	FreeAgents bool
}

// GameResult carries every mutation produced by one game simulation so a
// backend can commit them atomically: the completed game, both teams with
// updated records, and the starters with rolled-forward season averages.
type GameResult struct {
	Game    model.Game
	Teams   []model.Team
	Players []model.Player
}

// TrainingResult carries the mutations of one training completion: the
// training record flipped to completed and the player with updated ratings.
type TrainingResult struct {
	Training model.Training
	Player   model.Player
}

// Store is the persistence contract. All methods are safe for concurrent
// use. Get/List return copies; mutating a returned value does not affect
// stored state until it is written back.
type Store interface {
	CreateTeam(ctx context.Context, t model.Team) (model.Team, error)
	GetTeam(ctx context.Context, id string) (model.Team, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	UpdateTeam(ctx context.Context, t model.Team) error
	DeleteTeam(ctx context.Context, id string) error

	CreatePlayer(ctx context.Context, p model.Player) (model.Player, error)
	GetPlayer(ctx context.Context, id string) (model.Player, error)
	ListPlayers(ctx context.Context, f PlayerFilter) ([]model.Player, error)
	PlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error)
	UpdatePlayer(ctx context.Context, p model.Player) error
	DeletePlayer(ctx context.Context, id string) error

	CreateCoach(ctx context.Context, c model.Coach) (model.Coach, error)
	GetCoach(ctx context.Context, id string) (model.Coach, error)
	ListCoaches(ctx context.Context) ([]model.Coach, error)
	UpdateCoach(ctx context.Context, c model.Coach) error
	DeleteCoach(ctx context.Context, id string) error

	CreateGame(ctx context.Context, g model.Game) (model.Game, error)
	GetGame(ctx context.Context, id string) (model.Game, error)
	ListGames(ctx context.Context) ([]model.Game, error)
	UpdateGame(ctx context.Context, g model.Game) error
	DeleteGame(ctx context.Context, id string) error

	CreateTraining(ctx context.Context, t model.Training) (model.Training, error)
	GetTraining(ctx context.Context, id string) (model.Training, error)
	ListTrainings(ctx context.Context) ([]model.Training, error)
	ListPendingTrainings(ctx context.Context, before time.Time) ([]model.Training, error)
	UpdateTraining(ctx context.Context, t model.Training) error
	DeleteTraining(ctx context.Context, id string) error

	// ApplyGameResult commits all mutations of one simulated game in a
	// single atomic step. No partial writes are observable.
	ApplyGameResult(ctx context.Context, res GameResult) error

	// ApplyTrainingResult commits a training completion and the player's
	// rating changes atomically.
	ApplyTrainingResult(ctx context.Context, res TrainingResult) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}
