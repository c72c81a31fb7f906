package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store/memstore"
)

func trainingFixture(t *testing.T, typ model.TrainingType, improvement int, endDate time.Time) (*Engine, *memstore.Store, model.Player, model.Training) {
	t.Helper()
	ctx := context.Background()
	st := memstore.New()

	player, err := st.CreatePlayer(ctx, model.Player{
		Name: "Trey Bennett", Status: model.PlayerActive,
		Offense: 80, Defense: 80, Speed: 80, Shooting: 80,
		ThreePoint: 80, Rebounding: 80, Passing: 80, Overall: 80, Morale: 80,
	})
	require.NoError(t, err)

	training, err := st.CreateTraining(ctx, model.Training{
		PlayerID:          player.ID,
		Type:              typ,
		DurationDays:      14,
		StartDate:         endDate.AddDate(0, 0, -14),
		EndDate:           endDate,
		RatingImprovement: improvement,
	})
	require.NoError(t, err)

	engine := New(st, NewSource(1), nil)
	return engine, st, player, training
}

func TestCheckTrainingBeforeEndDateIsNoop(t *testing.T) {
	ctx := context.Background()
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	engine, st, player, training := trainingFixture(t, model.TrainingShooting, 5, end)
	engine.WithClock(func() time.Time { return end.Add(-time.Hour) })

	got, err := engine.CheckTraining(ctx, training.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)

	p, err := st.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, p.Shooting)
}

func TestCheckTrainingCompletesAtEndDate(t *testing.T) {
	ctx := context.Background()
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	engine, st, player, training := trainingFixture(t, model.TrainingShooting, 5, end)
	engine.WithClock(func() time.Time { return end })

	got, err := engine.CheckTraining(ctx, training.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	p, err := st.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 85, p.Shooting)
	assert.Equal(t, 85, p.ThreePoint)

	stored, err := st.GetTraining(ctx, training.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
}

func TestCheckTrainingIdempotent(t *testing.T) {
	ctx := context.Background()
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	engine, st, player, training := trainingFixture(t, model.TrainingDefense, 6, end)
	engine.WithClock(func() time.Time { return end.Add(time.Hour) })

	_, err := engine.CheckTraining(ctx, training.ID)
	require.NoError(t, err)
	first, err := st.GetPlayer(ctx, player.ID)
	require.NoError(t, err)

	_, err = engine.CheckTraining(ctx, training.ID)
	require.NoError(t, err)
	second, err := st.GetPlayer(ctx, player.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 86, second.Defense)
}

func TestApplyTrainingEffects(t *testing.T) {
	cases := []struct {
		name        string
		typ         model.TrainingType
		improvement int
		check       func(t *testing.T, p model.Player)
	}{
		{
			name: "strength bumps rebounding and half defense",
			typ:  model.TrainingStrength, improvement: 6,
			check: func(t *testing.T, p model.Player) {
				assert.Equal(t, 86, p.Rebounding)
				assert.Equal(t, 83, p.Defense)
			},
		},
		{
			name: "shooting bumps shooting and three point",
			typ:  model.TrainingShooting, improvement: 4,
			check: func(t *testing.T, p model.Player) {
				assert.Equal(t, 84, p.Shooting)
				assert.Equal(t, 84, p.ThreePoint)
			},
		},
		{
			name: "defense bumps defense only",
			typ:  model.TrainingDefense, improvement: 7,
			check: func(t *testing.T, p model.Player) {
				assert.Equal(t, 87, p.Defense)
				assert.Equal(t, 80, p.Rebounding)
			},
		},
		{
			name: "speed bumps speed only",
			typ:  model.TrainingSpeed, improvement: 3,
			check: func(t *testing.T, p model.Player) {
				assert.Equal(t, 83, p.Speed)
			},
		},
		{
			name: "endurance bumps morale only",
			typ:  model.TrainingEndurance, improvement: 8,
			check: func(t *testing.T, p model.Player) {
				assert.Equal(t, 88, p.Morale)
				assert.Equal(t, 80, p.Overall)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
			engine, st, player, training := trainingFixture(t, tc.typ, tc.improvement, end)
			engine.WithClock(func() time.Time { return end })

			_, err := engine.CheckTraining(ctx, training.ID)
			require.NoError(t, err)
			p, err := st.GetPlayer(ctx, player.ID)
			require.NoError(t, err)
			tc.check(t, p)
		})
	}
}

func TestTrainingClampsRatingsAt100(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	player, err := st.CreatePlayer(ctx, model.Player{
		Name: "Max", Status: model.PlayerActive,
		Offense: 98, Defense: 98, Speed: 98, Shooting: 98,
		ThreePoint: 98, Rebounding: 98, Passing: 98, Overall: 98, Morale: 98,
	})
	require.NoError(t, err)

	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	training, err := st.CreateTraining(ctx, model.Training{
		PlayerID: player.ID, Type: model.TrainingShooting,
		RatingImprovement: 10, StartDate: end.AddDate(0, 0, -7), EndDate: end,
	})
	require.NoError(t, err)

	engine := New(st, NewSource(1), nil).WithClock(func() time.Time { return end })
	_, err = engine.CheckTraining(ctx, training.ID)
	require.NoError(t, err)

	p, err := st.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Shooting)
	assert.Equal(t, 100, p.ThreePoint)
	assert.LessOrEqual(t, p.Overall, 100)
}

func TestOverallRatingUniformSkills(t *testing.T) {
	p := model.Player{
		Offense: 80, Defense: 80, Speed: 80,
		Shooting: 80, Rebounding: 80, Passing: 80,
	}
	assert.Equal(t, 80, OverallRating(&p))
}

func TestOverallRatingWeights(t *testing.T) {
	p := model.Player{
		Offense: 100, Defense: 60, Speed: 80,
		Shooting: 70, Rebounding: 50, Passing: 90,
	}
	// 100*.25 + 60*.25 + 80*.15 + 70*.15 + 50*.10 + 90*.10 = 76.5 -> 77
	assert.Equal(t, 77, OverallRating(&p))
}
