package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/api/respond"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
)

// CreateTraining starts a training program for a player. The end date is
// derived from the start date and duration when not supplied.
// @Summary Create training
// @Tags trainings
// @Accept json
// @Produce json
// @Param training body model.Training true "Training"
// @Success 201 {object} model.Training
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /trainings [post]
func (h *Handler) CreateTraining(w http.ResponseWriter, r *http.Request) {
	var t model.Training
	if err := respond.ReadJSON(r, &t); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if !model.ValidTrainingType(t.Type) {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_TYPE",
			"type must be one of strength, shooting, defense, speed, endurance")
		return
	}
	if t.RatingImprovement < 0 || t.RatingImprovement > 10 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_IMPROVEMENT",
			"ratingImprovement must be within 0-10")
		return
	}
	if _, err := h.store.GetPlayer(r.Context(), t.PlayerID); err != nil {
		writeStoreError(w, err)
		return
	}
	if t.StartDate.IsZero() {
		t.StartDate = time.Now().UTC()
	}
	if t.EndDate.IsZero() {
		t.EndDate = t.StartDate.AddDate(0, 0, t.DurationDays)
	}
	t.Completed = false
	created, err := h.store.CreateTraining(r.Context(), t)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, created)
}

// GetTraining returns one training record.
// @Summary Get training
// @Tags trainings
// @Produce json
// @Param trainingID path string true "Training ID"
// @Success 200 {object} model.Training
// @Failure 404 {object} respond.ErrorResponse
// @Router /trainings/{trainingID} [get]
func (h *Handler) GetTraining(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.GetTraining(r.Context(), chi.URLParam(r, "trainingID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, t)
}

// ListTrainings returns all training records.
// @Summary List trainings
// @Tags trainings
// @Produce json
// @Success 200 {array} model.Training
// @Router /trainings [get]
func (h *Handler) ListTrainings(w http.ResponseWriter, r *http.Request) {
	trainings, err := h.store.ListTrainings(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, trainings)
}

// UpdateTraining replaces a pending training program. Completed trainings
// are immutable.
// @Summary Update training
// @Tags trainings
// @Accept json
// @Produce json
// @Param trainingID path string true "Training ID"
// @Param training body model.Training true "Training"
// @Success 200 {object} model.Training
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /trainings/{trainingID} [put]
func (h *Handler) UpdateTraining(w http.ResponseWriter, r *http.Request) {
	trainingID := chi.URLParam(r, "trainingID")
	existing, err := h.store.GetTraining(r.Context(), trainingID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if existing.Completed {
		respond.WriteError(w, http.StatusConflict, "INVALID_STATE",
			"completed trainings are immutable")
		return
	}

	var t model.Training
	if err := respond.ReadJSON(r, &t); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if !model.ValidTrainingType(t.Type) {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_TYPE",
			"type must be one of strength, shooting, defense, speed, endurance")
		return
	}
	if t.RatingImprovement < 0 || t.RatingImprovement > 10 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_IMPROVEMENT",
			"ratingImprovement must be within 0-10")
		return
	}
	if _, err := h.store.GetPlayer(r.Context(), t.PlayerID); err != nil {
		writeStoreError(w, err)
		return
	}
	if t.StartDate.IsZero() {
		t.StartDate = existing.StartDate
	}
	if t.EndDate.IsZero() {
		t.EndDate = t.StartDate.AddDate(0, 0, t.DurationDays)
	}
	t.ID = trainingID
	t.Completed = false

	if err := h.store.UpdateTraining(r.Context(), t); err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, t)
}

// DeleteTraining removes a training record.
// @Summary Delete training
// @Tags trainings
// @Param trainingID path string true "Training ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /trainings/{trainingID} [delete]
func (h *Handler) DeleteTraining(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTraining(r.Context(), chi.URLParam(r, "trainingID")); err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteNoContent(w)
}

// CheckTraining runs the poll-style completion check for one training.
// @Summary Check training completion
// @Description Completes the training (applying rating bumps) if its end date has passed. No-op for already-completed or still-running programs.
// @Tags trainings
// @Produce json
// @Param trainingID path string true "Training ID"
// @Success 200 {object} model.Training
// @Failure 404 {object} respond.ErrorResponse
// @Router /trainings/{trainingID}/check [post]
func (h *Handler) CheckTraining(w http.ResponseWriter, r *http.Request) {
	t, err := h.engine.CheckTraining(r.Context(), chi.URLParam(r, "trainingID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, t)
}

// ProcessTrainings sweeps all due trainings.
// @Summary Process due trainings
// @Description Completes every pending training whose end date has passed, using a bounded worker pool.
// @Tags trainings
// @Produce json
// @Param workers query int false "Worker count (default 4)"
// @Success 200 {object} sim.SweepResult
// @Router /trainings/process [post]
func (h *Handler) ProcessTrainings(w http.ResponseWriter, r *http.Request) {
	workers := 4
	if s := r.URL.Query().Get("workers"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			workers = n
		}
	}
	result := h.engine.ProcessDueTrainings(r.Context(), workers)
	respond.WriteJSONObject(w, http.StatusOK, result)
}
