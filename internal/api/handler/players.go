package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/api/respond"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store"
)

func validPlayer(p *model.Player) (code, msg string) {
	if p.Name == "" {
		return "MISSING_NAME", "player name is required"
	}
	for _, v := range []int{p.Overall, p.Offense, p.Defense, p.Speed,
		p.Shooting, p.ThreePoint, p.Rebounding, p.Passing, p.Potential, p.Morale} {
		if v < 0 || v > 100 {
			return "INVALID_RATING", "rating fields must be within 0-100"
		}
	}
	if p.Status == "" {
		p.Status = model.PlayerActive
	}
	return "", ""
}

// CreatePlayer creates a player.
// @Summary Create player
// @Tags players
// @Accept json
// @Produce json
// @Param player body model.Player true "Player"
// @Success 201 {object} model.Player
// @Failure 400 {object} respond.ErrorResponse
// @Router /players [post]
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var p model.Player
	if err := respond.ReadJSON(r, &p); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if code, msg := validPlayer(&p); code != "" {
		respond.WriteError(w, http.StatusBadRequest, code, msg)
		return
	}
	created, err := h.store.CreatePlayer(r.Context(), p)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, created)
}

// GetPlayer returns one player.
// @Summary Get player
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} model.Player
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetPlayer(r.Context(), chi.URLParam(r, "playerID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, p)
}

// ListPlayers returns players, optionally filtered by team or free agency.
// @Summary List players
// @Tags players
// @Produce json
// @Param teamId query string false "Filter by team"
// @Param freeAgents query bool false "Only unsigned players"
// @Success 200 {array} model.Player
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	var f store.PlayerFilter
	if teamID := r.URL.Query().Get("teamId"); teamID != "" {
		f.TeamID = &teamID
	}
	if r.URL.Query().Get("freeAgents") == "true" {
		f.FreeAgents = true
	}
	players, err := h.store.ListPlayers(r.Context(), f)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, players)
}

// UpdatePlayer replaces a player record.
// @Summary Update player
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param player body model.Player true "Player"
// @Success 200 {object} model.Player
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID} [put]
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var p model.Player
	if err := respond.ReadJSON(r, &p); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	p.ID = chi.URLParam(r, "playerID")
	if code, msg := validPlayer(&p); code != "" {
		respond.WriteError(w, http.StatusBadRequest, code, msg)
		return
	}
	if err := h.store.UpdatePlayer(r.Context(), p); err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, p)
}

// DeletePlayer removes a player.
// @Summary Delete player
// @Tags players
// @Param playerID path string true "Player ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID} [delete]
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeletePlayer(r.Context(), chi.URLParam(r, "playerID")); err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteNoContent(w)
}
