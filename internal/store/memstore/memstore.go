// Package memstore is the default map-backed implementation of store.Store.
// All state lives in process memory behind a single RWMutex; reads and
// writes exchange deep copies so callers can never alias stored records.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store"
)

// Store is an in-memory store.Store.
type Store struct {
	mu        sync.RWMutex
	teams     map[string]model.Team
	players   map[string]model.Player
	coaches   map[string]model.Coach
	games     map[string]model.Game
	trainings map[string]model.Training
}

var _ store.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		teams:     make(map[string]model.Team),
		players:   make(map[string]model.Player),
		coaches:   make(map[string]model.Coach),
		games:     make(map[string]model.Game),
		trainings: make(map[string]model.Training),
	}
}

// NewID returns a new globally unique entity identifier.
func NewID() string { return xid.New().String() }

// --------------------------------------------------------------------------
// Copy helpers — pointer and slice fields must not escape the store
// --------------------------------------------------------------------------

func copyStrPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyPlayer(p model.Player) model.Player {
	p.TeamID = copyStrPtr(p.TeamID)
	return p
}

func copyTeam(t model.Team) model.Team {
	t.HeadCoachID = copyStrPtr(t.HeadCoachID)
	return t
}

func copyCoach(c model.Coach) model.Coach {
	c.TeamID = copyStrPtr(c.TeamID)
	return c
}

func copyGame(g model.Game) model.Game {
	if g.HomeTeamStats != nil {
		s := *g.HomeTeamStats
		g.HomeTeamStats = &s
	}
	if g.AwayTeamStats != nil {
		s := *g.AwayTeamStats
		g.AwayTeamStats = &s
	}
	if g.HomePlayerLines != nil {
		g.HomePlayerLines = append([]model.PlayerLine(nil), g.HomePlayerLines...)
	}
	if g.AwayPlayerLines != nil {
		g.AwayPlayerLines = append([]model.PlayerLine(nil), g.AwayPlayerLines...)
	}
	return g
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

func (s *Store) CreateTeam(_ context.Context, t model.Team) (model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = NewID()
	}
	s.teams[t.ID] = copyTeam(t)
	return t, nil
}

func (s *Store) GetTeam(_ context.Context, id string) (model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return model.Team{}, fmt.Errorf("team %s: %w", id, store.ErrNotFound)
	}
	return copyTeam(t), nil
}

func (s *Store) ListTeams(_ context.Context) ([]model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, copyTeam(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateTeam(_ context.Context, t model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[t.ID]; !ok {
		return fmt.Errorf("team %s: %w", t.ID, store.ErrNotFound)
	}
	s.teams[t.ID] = copyTeam(t)
	return nil
}

func (s *Store) DeleteTeam(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[id]; !ok {
		return fmt.Errorf("team %s: %w", id, store.ErrNotFound)
	}
	delete(s.teams, id)
	return nil
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

func (s *Store) CreatePlayer(_ context.Context, p model.Player) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = NewID()
	}
	s.players[p.ID] = copyPlayer(p)
	return p, nil
}

func (s *Store) GetPlayer(_ context.Context, id string) (model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return model.Player{}, fmt.Errorf("player %s: %w", id, store.ErrNotFound)
	}
	return copyPlayer(p), nil
}

func (s *Store) ListPlayers(_ context.Context, f store.PlayerFilter) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		if f.FreeAgents && p.TeamID != nil {
			continue
		}
		if f.TeamID != nil && (p.TeamID == nil || *p.TeamID != *f.TeamID) {
			continue
		}
		out = append(out, copyPlayer(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) PlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error) {
	return s.ListPlayers(ctx, store.PlayerFilter{TeamID: &teamID})
}

func (s *Store) UpdatePlayer(_ context.Context, p model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[p.ID]; !ok {
		return fmt.Errorf("player %s: %w", p.ID, store.ErrNotFound)
	}
	s.players[p.ID] = copyPlayer(p)
	return nil
}

func (s *Store) DeletePlayer(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return fmt.Errorf("player %s: %w", id, store.ErrNotFound)
	}
	delete(s.players, id)
	return nil
}

// --------------------------------------------------------------------------
// Coaches
// --------------------------------------------------------------------------

func (s *Store) CreateCoach(_ context.Context, c model.Coach) (model.Coach, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = NewID()
	}
	s.coaches[c.ID] = copyCoach(c)
	return c, nil
}

func (s *Store) GetCoach(_ context.Context, id string) (model.Coach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.coaches[id]
	if !ok {
		return model.Coach{}, fmt.Errorf("coach %s: %w", id, store.ErrNotFound)
	}
	return copyCoach(c), nil
}

func (s *Store) ListCoaches(_ context.Context) ([]model.Coach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Coach, 0, len(s.coaches))
	for _, c := range s.coaches {
		out = append(out, copyCoach(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateCoach(_ context.Context, c model.Coach) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.coaches[c.ID]; !ok {
		return fmt.Errorf("coach %s: %w", c.ID, store.ErrNotFound)
	}
	s.coaches[c.ID] = copyCoach(c)
	return nil
}

func (s *Store) DeleteCoach(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.coaches[id]; !ok {
		return fmt.Errorf("coach %s: %w", id, store.ErrNotFound)
	}
	delete(s.coaches, id)
	return nil
}

// --------------------------------------------------------------------------
// Games
// --------------------------------------------------------------------------

func (s *Store) CreateGame(_ context.Context, g model.Game) (model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.ID == "" {
		g.ID = NewID()
	}
	if g.Status == "" {
		g.Status = model.GameScheduled
	}
	s.games[g.ID] = copyGame(g)
	return g, nil
}

func (s *Store) GetGame(_ context.Context, id string) (model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return model.Game{}, fmt.Errorf("game %s: %w", id, store.ErrNotFound)
	}
	return copyGame(g), nil
}

func (s *Store) ListGames(_ context.Context) ([]model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Game, 0, len(s.games))
	for _, g := range s.games {
		out = append(out, copyGame(g))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledDate.Equal(out[j].ScheduledDate) {
			return out[i].ScheduledDate.Before(out[j].ScheduledDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpdateGame(_ context.Context, g model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[g.ID]; !ok {
		return fmt.Errorf("game %s: %w", g.ID, store.ErrNotFound)
	}
	s.games[g.ID] = copyGame(g)
	return nil
}

func (s *Store) DeleteGame(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return fmt.Errorf("game %s: %w", id, store.ErrNotFound)
	}
	delete(s.games, id)
	return nil
}

// --------------------------------------------------------------------------
// Trainings
// --------------------------------------------------------------------------

func (s *Store) CreateTraining(_ context.Context, t model.Training) (model.Training, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = NewID()
	}
	s.trainings[t.ID] = t
	return t, nil
}

func (s *Store) GetTraining(_ context.Context, id string) (model.Training, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trainings[id]
	if !ok {
		return model.Training{}, fmt.Errorf("training %s: %w", id, store.ErrNotFound)
	}
	return t, nil
}

func (s *Store) ListTrainings(_ context.Context) ([]model.Training, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Training, 0, len(s.trainings))
	for _, t := range s.trainings {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListPendingTrainings(_ context.Context, before time.Time) ([]model.Training, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Training
	for _, t := range s.trainings {
		if !t.Completed && !t.EndDate.After(before) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateTraining(_ context.Context, t model.Training) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainings[t.ID]; !ok {
		return fmt.Errorf("training %s: %w", t.ID, store.ErrNotFound)
	}
	s.trainings[t.ID] = t
	return nil
}

func (s *Store) DeleteTraining(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainings[id]; !ok {
		return fmt.Errorf("training %s: %w", id, store.ErrNotFound)
	}
	delete(s.trainings, id)
	return nil
}

// --------------------------------------------------------------------------
// Atomic result application
// --------------------------------------------------------------------------

// ApplyGameResult validates every reference first, then commits the game,
// team, and player mutations under one lock so readers never observe a
// half-applied simulation.
func (s *Store) ApplyGameResult(_ context.Context, res store.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[res.Game.ID]; !ok {
		return fmt.Errorf("game %s: %w", res.Game.ID, store.ErrNotFound)
	}
	for _, t := range res.Teams {
		if _, ok := s.teams[t.ID]; !ok {
			return fmt.Errorf("team %s: %w", t.ID, store.ErrNotFound)
		}
	}
	for _, p := range res.Players {
		if _, ok := s.players[p.ID]; !ok {
			return fmt.Errorf("player %s: %w", p.ID, store.ErrNotFound)
		}
	}
	s.games[res.Game.ID] = copyGame(res.Game)
	for _, t := range res.Teams {
		s.teams[t.ID] = copyTeam(t)
	}
	for _, p := range res.Players {
		s.players[p.ID] = copyPlayer(p)
	}
	return nil
}

// ApplyTrainingResult commits a training completion and the player's new
// ratings under one lock.
func (s *Store) ApplyTrainingResult(_ context.Context, res store.TrainingResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainings[res.Training.ID]; !ok {
		return fmt.Errorf("training %s: %w", res.Training.ID, store.ErrNotFound)
	}
	if _, ok := s.players[res.Player.ID]; !ok {
		return fmt.Errorf("player %s: %w", res.Player.ID, store.ErrNotFound)
	}
	s.trainings[res.Training.ID] = res.Training
	s.players[res.Player.ID] = copyPlayer(res.Player)
	return nil
}

// Ping always succeeds for the in-memory backend.
func (s *Store) Ping(_ context.Context) error { return nil }
