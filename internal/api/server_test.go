package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/cache"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/config"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/sim"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store/memstore"
)

type testServer struct {
	router http.Handler
	store  *memstore.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	st := memstore.New()
	engine := sim.New(st, sim.NewSource(42), nil)
	cfg := &config.Config{
		Environment:      "test",
		RateLimitEnabled: false,
		CacheEnabled:     true,
	}
	return &testServer{
		router: NewRouter(st, engine, cache.New(true), cfg),
		store:  st,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Detail  string `json:"detail,omitempty"`
	} `json:"error"`
}

func (s *testServer) createTeam(t *testing.T, name, city string) model.Team {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/teams", model.Team{Name: name, City: city})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[model.Team](t, rec)
}

func (s *testServer) createRoster(t *testing.T, teamID string, size int) {
	t.Helper()
	for i := 0; i < size; i++ {
		rec := s.do(t, http.MethodPost, "/api/v1/players", model.Player{
			Name:    fmt.Sprintf("Player %d", i),
			TeamID:  &teamID,
			Overall: 70 + i*2,
			Morale:  75,
			Status:  model.PlayerActive,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/health/store", "/health/cache"} {
		rec := s.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestTeamLifecycle(t *testing.T) {
	s := newTestServer(t)

	team := s.createTeam(t, "Hawks", "Springfield")
	require.NotEmpty(t, team.ID)

	rec := s.do(t, http.MethodGet, "/api/v1/teams/"+team.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hawks", decode[model.Team](t, rec).Name)

	team.Wins = 5
	rec = s.do(t, http.MethodPut, "/api/v1/teams/"+team.ID, team)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/v1/teams/"+team.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/teams/"+team.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode[apiError](t, rec).Error.Code)
}

func TestCreatePlayerValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/players", model.Player{Overall: 80})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_NAME", decode[apiError](t, rec).Error.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/players", model.Player{Name: "Over", Overall: 150})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RATING", decode[apiError](t, rec).Error.Code)

	// Status defaults to active.
	rec = s.do(t, http.MethodPost, "/api/v1/players", model.Player{Name: "Rook", Overall: 60})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.PlayerActive, decode[model.Player](t, rec).Status)
}

func TestListPlayersFilters(t *testing.T) {
	s := newTestServer(t)
	team := s.createTeam(t, "Hawks", "Springfield")
	s.createRoster(t, team.ID, 2)

	rec := s.do(t, http.MethodPost, "/api/v1/players", model.Player{Name: "Free", Overall: 60})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/players?teamId="+team.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Player](t, rec), 2)

	rec = s.do(t, http.MethodGet, "/api/v1/players?freeAgents=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	free := decode[[]model.Player](t, rec)
	require.Len(t, free, 1)
	assert.Equal(t, "Free", free[0].Name)
}

func TestCreateGameValidation(t *testing.T) {
	s := newTestServer(t)
	team := s.createTeam(t, "Hawks", "Springfield")

	rec := s.do(t, http.MethodPost, "/api/v1/games", model.Game{HomeTeamID: team.ID})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_TEAM", decode[apiError](t, rec).Error.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/games", model.Game{HomeTeamID: team.ID, AwayTeamID: team.ID})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SAME_TEAM", decode[apiError](t, rec).Error.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/games", model.Game{HomeTeamID: team.ID, AwayTeamID: "ghost"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSimulateGameFlow(t *testing.T) {
	s := newTestServer(t)
	home := s.createTeam(t, "Hawks", "Springfield")
	away := s.createTeam(t, "Comets", "Riverton")
	s.createRoster(t, home.ID, 5)
	s.createRoster(t, away.ID, 5)

	rec := s.do(t, http.MethodPost, "/api/v1/games", model.Game{
		HomeTeamID: home.ID, AwayTeamID: away.ID, Season: 2026, Week: 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	game := decode[model.Game](t, rec)
	assert.Equal(t, model.GameScheduled, game.Status)

	rec = s.do(t, http.MethodPost, "/api/v1/games/"+game.ID+"/simulate", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	done := decode[model.Game](t, rec)
	assert.Equal(t, model.GameCompleted, done.Status)
	assert.NotEqual(t, done.HomeScore, done.AwayScore)
	require.NotNil(t, done.HomeTeamStats)
	assert.Len(t, done.HomePlayerLines, 5)

	// Re-simulation answers 409.
	rec = s.do(t, http.MethodPost, "/api/v1/games/"+game.ID+"/simulate", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATE", decode[apiError](t, rec).Error.Code)

	// Unknown game answers 404.
	rec = s.do(t, http.MethodPost, "/api/v1/games/ghost/simulate", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateGame(t *testing.T) {
	s := newTestServer(t)
	home := s.createTeam(t, "Hawks", "Springfield")
	away := s.createTeam(t, "Comets", "Riverton")
	other := s.createTeam(t, "Wolves", "Oakdale")
	s.createRoster(t, home.ID, 5)
	s.createRoster(t, away.ID, 5)

	rec := s.do(t, http.MethodPost, "/api/v1/games", model.Game{
		HomeTeamID: home.ID, AwayTeamID: away.ID, Season: 2026, Week: 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	game := decode[model.Game](t, rec)

	// Reschedule against a different opponent.
	rec = s.do(t, http.MethodPut, "/api/v1/games/"+game.ID, model.Game{
		HomeTeamID: home.ID, AwayTeamID: other.ID, Season: 2026, Week: 3,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[model.Game](t, rec)
	assert.Equal(t, other.ID, updated.AwayTeamID)
	assert.Equal(t, 3, updated.Week)
	assert.Equal(t, model.GameScheduled, updated.Status)

	rec = s.do(t, http.MethodPut, "/api/v1/games/"+game.ID, model.Game{
		HomeTeamID: home.ID, AwayTeamID: home.ID,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SAME_TEAM", decode[apiError](t, rec).Error.Code)

	rec = s.do(t, http.MethodPut, "/api/v1/games/ghost", model.Game{
		HomeTeamID: home.ID, AwayTeamID: away.ID,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateGameRejectsCompletedGame(t *testing.T) {
	s := newTestServer(t)
	home := s.createTeam(t, "Hawks", "Springfield")
	away := s.createTeam(t, "Comets", "Riverton")
	s.createRoster(t, home.ID, 5)
	s.createRoster(t, away.ID, 5)

	rec := s.do(t, http.MethodPost, "/api/v1/games", model.Game{
		HomeTeamID: home.ID, AwayTeamID: away.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	game := decode[model.Game](t, rec)

	rec = s.do(t, http.MethodPost, "/api/v1/games/"+game.ID+"/simulate", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/v1/games/"+game.ID, model.Game{
		HomeTeamID: home.ID, AwayTeamID: away.ID, Week: 9,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATE", decode[apiError](t, rec).Error.Code)

	// The completed result survives the rejected update.
	rec = s.do(t, http.MethodGet, "/api/v1/games/"+game.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[model.Game](t, rec)
	assert.Equal(t, model.GameCompleted, got.Status)
	assert.NotEqual(t, got.HomeScore, got.AwayScore)
}

func TestUpdateTraining(t *testing.T) {
	s := newTestServer(t)
	team := s.createTeam(t, "Hawks", "Springfield")
	s.createRoster(t, team.ID, 1)

	rec := s.do(t, http.MethodGet, "/api/v1/players?teamId="+team.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	player := decode[[]model.Player](t, rec)[0]

	rec = s.do(t, http.MethodPost, "/api/v1/trainings", model.Training{
		PlayerID: player.ID, Type: model.TrainingShooting,
		RatingImprovement: 3, DurationDays: 14,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	training := decode[model.Training](t, rec)

	rec = s.do(t, http.MethodPut, "/api/v1/trainings/"+training.ID, model.Training{
		PlayerID: player.ID, Type: model.TrainingDefense,
		RatingImprovement: 5, DurationDays: 7,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[model.Training](t, rec)
	assert.Equal(t, model.TrainingDefense, updated.Type)
	assert.Equal(t, 5, updated.RatingImprovement)
	assert.False(t, updated.Completed)
	// Start date carries over; the end date follows the new duration.
	assert.True(t, updated.StartDate.Equal(training.StartDate))
	assert.True(t, updated.EndDate.Equal(training.StartDate.AddDate(0, 0, 7)))

	rec = s.do(t, http.MethodPut, "/api/v1/trainings/"+training.ID, model.Training{
		PlayerID: player.ID, Type: "yoga", RatingImprovement: 3,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_TYPE", decode[apiError](t, rec).Error.Code)

	rec = s.do(t, http.MethodPut, "/api/v1/trainings/ghost", model.Training{
		PlayerID: player.ID, Type: model.TrainingSpeed, RatingImprovement: 2,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTrainingRejectsCompletedTraining(t *testing.T) {
	s := newTestServer(t)
	team := s.createTeam(t, "Hawks", "Springfield")
	s.createRoster(t, team.ID, 1)

	rec := s.do(t, http.MethodGet, "/api/v1/players?teamId="+team.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	player := decode[[]model.Player](t, rec)[0]

	// A program whose end date has already passed completes on check.
	start := time.Now().UTC().AddDate(0, 0, -14)
	rec = s.do(t, http.MethodPost, "/api/v1/trainings", model.Training{
		PlayerID: player.ID, Type: model.TrainingSpeed,
		RatingImprovement: 2, DurationDays: 7,
		StartDate: start, EndDate: start.AddDate(0, 0, 7),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	training := decode[model.Training](t, rec)

	rec = s.do(t, http.MethodPost, "/api/v1/trainings/"+training.ID+"/check", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode[model.Training](t, rec).Completed)

	rec = s.do(t, http.MethodPut, "/api/v1/trainings/"+training.ID, model.Training{
		PlayerID: player.ID, Type: model.TrainingSpeed, RatingImprovement: 9,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATE", decode[apiError](t, rec).Error.Code)
}

func TestCreateTrainingValidation(t *testing.T) {
	s := newTestServer(t)
	team := s.createTeam(t, "Hawks", "Springfield")
	s.createRoster(t, team.ID, 1)

	rec := s.do(t, http.MethodGet, "/api/v1/players?teamId="+team.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	player := decode[[]model.Player](t, rec)[0]

	rec = s.do(t, http.MethodPost, "/api/v1/trainings", model.Training{
		PlayerID: player.ID, Type: "yoga", RatingImprovement: 3,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_TYPE", decode[apiError](t, rec).Error.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/trainings", model.Training{
		PlayerID: player.ID, Type: model.TrainingShooting, RatingImprovement: 99,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_IMPROVEMENT", decode[apiError](t, rec).Error.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/trainings", model.Training{
		PlayerID: "ghost", Type: model.TrainingShooting, RatingImprovement: 3,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/trainings", model.Training{
		PlayerID: player.ID, Type: model.TrainingShooting,
		RatingImprovement: 3, DurationDays: 14,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[model.Training](t, rec)
	assert.False(t, created.Completed)
	assert.True(t, created.EndDate.Equal(created.StartDate.AddDate(0, 0, 14)))
}

func TestProcessTrainingsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/trainings/process?workers=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[sim.SweepResult](t, rec)
	assert.Zero(t, result.Found)
}

func TestStandingsCachingAndETag(t *testing.T) {
	s := newTestServer(t)
	s.createTeam(t, "Hawks", "Springfield")
	s.createTeam(t, "Comets", "Riverton")

	rec := s.do(t, http.MethodGet, "/api/v1/standings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/standings", nil)
	req.Header.Set("If-None-Match", etag)
	rec2 := httptest.NewRecorder()
	s.router.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusNotModified, rec2.Code)

	rec3 := s.do(t, http.MethodGet, "/api/v1/standings", nil)
	require.Equal(t, http.StatusOK, rec3.Code)
	assert.Equal(t, "HIT", rec3.Header().Get("X-Cache"))
}

func TestStandingsSortedByWinPct(t *testing.T) {
	s := newTestServer(t)
	best := s.createTeam(t, "Hawks", "Springfield")
	worst := s.createTeam(t, "Comets", "Riverton")

	best.Wins, best.Losses = 8, 2
	rec := s.do(t, http.MethodPut, "/api/v1/teams/"+best.ID, best)
	require.Equal(t, http.StatusOK, rec.Code)
	worst.Wins, worst.Losses = 2, 8
	rec = s.do(t, http.MethodPut, "/api/v1/teams/"+worst.ID, worst)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/standings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decode[[]map[string]any](t, rec)
	require.Len(t, rows, 2)
	assert.Equal(t, best.ID, rows[0]["teamId"])
	assert.Equal(t, worst.ID, rows[1]["teamId"])
}
