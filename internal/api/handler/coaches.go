package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/api/respond"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
)

// CreateCoach creates a coach.
// @Summary Create coach
// @Tags coaches
// @Accept json
// @Produce json
// @Param coach body model.Coach true "Coach"
// @Success 201 {object} model.Coach
// @Failure 400 {object} respond.ErrorResponse
// @Router /coaches [post]
func (h *Handler) CreateCoach(w http.ResponseWriter, r *http.Request) {
	var c model.Coach
	if err := respond.ReadJSON(r, &c); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if c.Name == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_NAME", "coach name is required")
		return
	}
	created, err := h.store.CreateCoach(r.Context(), c)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, created)
}

// GetCoach returns one coach.
// @Summary Get coach
// @Tags coaches
// @Produce json
// @Param coachID path string true "Coach ID"
// @Success 200 {object} model.Coach
// @Failure 404 {object} respond.ErrorResponse
// @Router /coaches/{coachID} [get]
func (h *Handler) GetCoach(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.GetCoach(r.Context(), chi.URLParam(r, "coachID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, c)
}

// ListCoaches returns all coaches.
// @Summary List coaches
// @Tags coaches
// @Produce json
// @Success 200 {array} model.Coach
// @Router /coaches [get]
func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.store.ListCoaches(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, coaches)
}

// UpdateCoach replaces a coach record.
// @Summary Update coach
// @Tags coaches
// @Accept json
// @Produce json
// @Param coachID path string true "Coach ID"
// @Param coach body model.Coach true "Coach"
// @Success 200 {object} model.Coach
// @Failure 404 {object} respond.ErrorResponse
// @Router /coaches/{coachID} [put]
func (h *Handler) UpdateCoach(w http.ResponseWriter, r *http.Request) {
	var c model.Coach
	if err := respond.ReadJSON(r, &c); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	c.ID = chi.URLParam(r, "coachID")
	if err := h.store.UpdateCoach(r.Context(), c); err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, c)
}

// DeleteCoach removes a coach.
// @Summary Delete coach
// @Tags coaches
// @Param coachID path string true "Coach ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /coaches/{coachID} [delete]
func (h *Handler) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCoach(r.Context(), chi.URLParam(r, "coachID")); err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteNoContent(w)
}
