package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/api/respond"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
)

// CreateTeam creates a franchise.
// @Summary Create team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body model.Team true "Team"
// @Success 201 {object} model.Team
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams [post]
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var t model.Team
	if err := respond.ReadJSON(r, &t); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if t.Name == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_NAME", "team name is required")
		return
	}
	created, err := h.store.CreateTeam(r.Context(), t)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, created)
}

// GetTeam returns one team.
// @Summary Get team
// @Tags teams
// @Produce json
// @Param teamID path string true "Team ID"
// @Success 200 {object} model.Team
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, t)
}

// ListTeams returns all teams.
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {array} model.Team
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, teams)
}

// UpdateTeam replaces a team record.
// @Summary Update team
// @Tags teams
// @Accept json
// @Produce json
// @Param teamID path string true "Team ID"
// @Param team body model.Team true "Team"
// @Success 200 {object} model.Team
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID} [put]
func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var t model.Team
	if err := respond.ReadJSON(r, &t); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	t.ID = chi.URLParam(r, "teamID")
	if err := h.store.UpdateTeam(r.Context(), t); err != nil {
		writeStoreError(w, err)
		return
	}
	h.cache.InvalidatePrefix("standings")
	respond.WriteJSONObject(w, http.StatusOK, t)
}

// DeleteTeam removes a team.
// @Summary Delete team
// @Tags teams
// @Param teamID path string true "Team ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID} [delete]
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTeam(r.Context(), chi.URLParam(r, "teamID")); err != nil {
		writeStoreError(w, err)
		return
	}
	h.cache.InvalidatePrefix("standings")
	respond.WriteNoContent(w)
}
