package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/api/respond"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
)

// CreateGame schedules a game between two teams.
// @Summary Schedule game
// @Tags games
// @Accept json
// @Produce json
// @Param game body model.Game true "Game"
// @Success 201 {object} model.Game
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /games [post]
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var g model.Game
	if err := respond.ReadJSON(r, &g); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if g.HomeTeamID == "" || g.AwayTeamID == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_TEAM", "homeTeamId and awayTeamId are required")
		return
	}
	if g.HomeTeamID == g.AwayTeamID {
		respond.WriteError(w, http.StatusBadRequest, "SAME_TEAM", "a team cannot play itself")
		return
	}
	// Both teams must resolve before the game is persisted.
	for _, id := range []string{g.HomeTeamID, g.AwayTeamID} {
		if _, err := h.store.GetTeam(r.Context(), id); err != nil {
			writeStoreError(w, err)
			return
		}
	}
	g.Status = model.GameScheduled
	created, err := h.store.CreateGame(r.Context(), g)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, created)
}

// GetGame returns one game.
// @Summary Get game
// @Tags games
// @Produce json
// @Param gameID path string true "Game ID"
// @Success 200 {object} model.Game
// @Failure 404 {object} respond.ErrorResponse
// @Router /games/{gameID} [get]
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	g, err := h.store.GetGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, g)
}

// ListGames returns all games in schedule order.
// @Summary List games
// @Tags games
// @Produce json
// @Success 200 {array} model.Game
// @Router /games [get]
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.store.ListGames(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, games)
}

// UpdateGame replaces a scheduled game's matchup and scheduling fields.
// Completed games are immutable.
// @Summary Update game
// @Tags games
// @Accept json
// @Produce json
// @Param gameID path string true "Game ID"
// @Param game body model.Game true "Game"
// @Success 200 {object} model.Game
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /games/{gameID} [put]
func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	existing, err := h.store.GetGame(r.Context(), gameID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if existing.Status != model.GameScheduled {
		respond.WriteErrorDetail(w, http.StatusConflict, "INVALID_STATE",
			"completed games are immutable", string(existing.Status))
		return
	}

	var g model.Game
	if err := respond.ReadJSON(r, &g); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if g.HomeTeamID == "" || g.AwayTeamID == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_TEAM", "homeTeamId and awayTeamId are required")
		return
	}
	if g.HomeTeamID == g.AwayTeamID {
		respond.WriteError(w, http.StatusBadRequest, "SAME_TEAM", "a team cannot play itself")
		return
	}
	for _, id := range []string{g.HomeTeamID, g.AwayTeamID} {
		if _, err := h.store.GetTeam(r.Context(), id); err != nil {
			writeStoreError(w, err)
			return
		}
	}

	// Results stay empty until simulation writes them.
	g.ID = gameID
	g.Status = model.GameScheduled
	g.HomeScore, g.AwayScore = 0, 0
	g.HomeTeamStats, g.AwayTeamStats = nil, nil
	g.HomePlayerLines, g.AwayPlayerLines = nil, nil

	if err := h.store.UpdateGame(r.Context(), g); err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, g)
}

// DeleteGame removes a game.
// @Summary Delete game
// @Tags games
// @Param gameID path string true "Game ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /games/{gameID} [delete]
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteGame(r.Context(), chi.URLParam(r, "gameID")); err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteNoContent(w)
}

// SimulateGame runs one scheduled game to completion.
// @Summary Simulate game
// @Description Simulates a scheduled game: final score, box stats, player lines, win/loss records, and season averages. A non-scheduled game is rejected with 409.
// @Tags games
// @Produce json
// @Param gameID path string true "Game ID"
// @Success 200 {object} model.Game
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /games/{gameID}/simulate [post]
func (h *Handler) SimulateGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	// Cheap pre-check so an already-completed game answers 409 without
	// taking the engine's per-game lock. The engine re-checks under lock.
	g, err := h.store.GetGame(r.Context(), gameID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if g.Status != model.GameScheduled {
		respond.WriteErrorDetail(w, http.StatusConflict, "INVALID_STATE",
			"game is not in scheduled status", string(g.Status))
		return
	}

	simulated, err := h.engine.SimulateGame(r.Context(), gameID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.cache.InvalidatePrefix("standings")
	respond.WriteJSONObject(w, http.StatusOK, simulated)
}
