package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store"
)

// Overall recompute weights. Fixed across the system; training is the only
// writer that recomputes overall.
const (
	weightOffense    = 0.25
	weightDefense    = 0.25
	weightSpeed      = 0.15
	weightShooting   = 0.15
	weightRebounding = 0.10
	weightPassing    = 0.10
)

// CheckTraining inspects one training record and completes it when its end
// date has passed: the type-specific rating bumps are applied (clamped to
// [0,100]), the player's overall is recomputed, and the record flips to
// completed. The call is idempotent — an already-completed record, or one
// whose end date is still in the future, is a no-op.
func (e *Engine) CheckTraining(ctx context.Context, trainingID string) (model.Training, error) {
	training, err := e.store.GetTraining(ctx, trainingID)
	if err != nil {
		return model.Training{}, fmt.Errorf("load training: %w", err)
	}
	if training.Completed || e.now().Before(training.EndDate) {
		return training, nil
	}

	player, err := e.store.GetPlayer(ctx, training.PlayerID)
	if err != nil {
		return model.Training{}, fmt.Errorf("load player: %w", err)
	}

	applyTraining(&player, training.Type, training.RatingImprovement)
	training.Completed = true

	res := store.TrainingResult{Training: training, Player: player}
	if err := e.store.ApplyTrainingResult(ctx, res); err != nil {
		return model.Training{}, fmt.Errorf("persist training result: %w", err)
	}

	e.log.Info("training completed",
		"training", training.ID,
		"player", player.Name,
		"type", training.Type,
		"overall", player.Overall)
	return training, nil
}

// applyTraining mutates the player's skill ratings for one completed
// program, then recomputes overall from the fixed weighted formula.
func applyTraining(p *model.Player, t model.TrainingType, improvement int) {
	switch t {
	case model.TrainingStrength:
		p.Rebounding = model.ClampRating(p.Rebounding + improvement)
		p.Defense = model.ClampRating(p.Defense + improvement/2)
	case model.TrainingShooting:
		p.Shooting = model.ClampRating(p.Shooting + improvement)
		p.ThreePoint = model.ClampRating(p.ThreePoint + improvement)
	case model.TrainingDefense:
		p.Defense = model.ClampRating(p.Defense + improvement)
	case model.TrainingSpeed:
		p.Speed = model.ClampRating(p.Speed + improvement)
	case model.TrainingEndurance:
		p.Morale = model.ClampRating(p.Morale + improvement)
	}
	p.Overall = OverallRating(p)
}

// OverallRating computes the composite 0-100 skill score from the fixed
// weighted sum, rounded to the nearest integer.
func OverallRating(p *model.Player) int {
	overall := float64(p.Offense)*weightOffense +
		float64(p.Defense)*weightDefense +
		float64(p.Speed)*weightSpeed +
		float64(p.Shooting)*weightShooting +
		float64(p.Rebounding)*weightRebounding +
		float64(p.Passing)*weightPassing
	return model.ClampRating(int(math.Round(overall)))
}
