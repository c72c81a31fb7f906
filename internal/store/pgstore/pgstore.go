// Package pgstore is the Postgres-backed implementation of store.Store,
// selected when DATABASE_URL is set. Simulation results commit inside a
// single transaction so no partial writes are observable.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/xid"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/db"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store"
)

// Store is a Postgres store.Store.
type Store struct {
	pool *db.Pool
}

var _ store.Store = (*Store)(nil)

// New wraps a validated connection pool.
func New(pool *db.Pool) *Store {
	return &Store{pool: pool}
}

func notFound(kind, id string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", kind, id, store.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", kind, id, err)
}

// affected converts an UPDATE/DELETE row count into a not-found error.
func affected(kind, id string, n int64) error {
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, store.ErrNotFound)
	}
	return nil
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

const teamCols = `id, name, city, wins, losses, overall_rating, offense_rating,
	defense_rating, points_per_game, points_allowed_per_game, salary_cap,
	salary_used, team_morale, team_chemistry, head_coach_id`

func scanTeam(row pgx.Row) (model.Team, error) {
	var t model.Team
	err := row.Scan(&t.ID, &t.Name, &t.City, &t.Wins, &t.Losses,
		&t.OverallRating, &t.OffenseRating, &t.DefenseRating,
		&t.PointsPerGame, &t.PointsAllowedPerGame, &t.SalaryCap, &t.SalaryUsed,
		&t.TeamMorale, &t.TeamChemistry, &t.HeadCoachID)
	return t, err
}

func (s *Store) CreateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	if t.ID == "" {
		t.ID = xid.New().String()
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO teams (`+teamCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		t.ID, t.Name, t.City, t.Wins, t.Losses, t.OverallRating, t.OffenseRating,
		t.DefenseRating, t.PointsPerGame, t.PointsAllowedPerGame, t.SalaryCap,
		t.SalaryUsed, t.TeamMorale, t.TeamChemistry, t.HeadCoachID)
	if err != nil {
		return model.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return t, nil
}

func (s *Store) GetTeam(ctx context.Context, id string) (model.Team, error) {
	t, err := scanTeam(s.pool.QueryRow(ctx, `SELECT `+teamCols+` FROM teams WHERE id = $1`, id))
	if err != nil {
		return model.Team{}, notFound("team", id, err)
	}
	return t, nil
}

func (s *Store) ListTeams(ctx context.Context) ([]model.Team, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+teamCols+` FROM teams ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()
	out := []model.Team{}
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) UpdateTeam(ctx context.Context, t model.Team) error {
	tag, err := s.pool.Exec(ctx, `UPDATE teams SET name=$2, city=$3, wins=$4,
		losses=$5, overall_rating=$6, offense_rating=$7, defense_rating=$8,
		points_per_game=$9, points_allowed_per_game=$10, salary_cap=$11,
		salary_used=$12, team_morale=$13, team_chemistry=$14, head_coach_id=$15
		WHERE id=$1`,
		t.ID, t.Name, t.City, t.Wins, t.Losses, t.OverallRating, t.OffenseRating,
		t.DefenseRating, t.PointsPerGame, t.PointsAllowedPerGame, t.SalaryCap,
		t.SalaryUsed, t.TeamMorale, t.TeamChemistry, t.HeadCoachID)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	return affected("team", t.ID, tag.RowsAffected())
}

func (s *Store) DeleteTeam(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return affected("team", id, tag.RowsAffected())
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

const playerCols = `id, name, position, jersey_number, team_id, salary,
	contract_years, overall, offense, defense, speed, shooting, three_point,
	rebounding, passing, games_played, points_per_game, rebounds_per_game,
	assists_per_game, status, potential, morale`

func scanPlayer(row pgx.Row) (model.Player, error) {
	var p model.Player
	err := row.Scan(&p.ID, &p.Name, &p.Position, &p.JerseyNumber, &p.TeamID,
		&p.Salary, &p.ContractYears, &p.Overall, &p.Offense, &p.Defense,
		&p.Speed, &p.Shooting, &p.ThreePoint, &p.Rebounding, &p.Passing,
		&p.GamesPlayed, &p.PointsPerGame, &p.ReboundsPerGame, &p.AssistsPerGame,
		&p.Status, &p.Potential, &p.Morale)
	return p, err
}

func (s *Store) CreatePlayer(ctx context.Context, p model.Player) (model.Player, error) {
	if p.ID == "" {
		p.ID = xid.New().String()
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO players (`+playerCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
		p.ID, p.Name, p.Position, p.JerseyNumber, p.TeamID, p.Salary,
		p.ContractYears, p.Overall, p.Offense, p.Defense, p.Speed, p.Shooting,
		p.ThreePoint, p.Rebounding, p.Passing, p.GamesPlayed, p.PointsPerGame,
		p.ReboundsPerGame, p.AssistsPerGame, p.Status, p.Potential, p.Morale)
	if err != nil {
		return model.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return p, nil
}

func (s *Store) GetPlayer(ctx context.Context, id string) (model.Player, error) {
	p, err := scanPlayer(s.pool.QueryRow(ctx, `SELECT `+playerCols+` FROM players WHERE id = $1`, id))
	if err != nil {
		return model.Player{}, notFound("player", id, err)
	}
	return p, nil
}

func (s *Store) ListPlayers(ctx context.Context, f store.PlayerFilter) ([]model.Player, error) {
	q := `SELECT ` + playerCols + ` FROM players`
	var args []interface{}
	switch {
	case f.FreeAgents:
		q += ` WHERE team_id IS NULL`
	case f.TeamID != nil:
		q += ` WHERE team_id = $1`
		args = append(args, *f.TeamID)
	}
	q += ` ORDER BY id`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()
	out := []model.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) PlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error) {
	return s.ListPlayers(ctx, store.PlayerFilter{TeamID: &teamID})
}

const playerUpdateSQL = `UPDATE players SET name=$2, position=$3,
	jersey_number=$4, team_id=$5, salary=$6, contract_years=$7, overall=$8,
	offense=$9, defense=$10, speed=$11, shooting=$12, three_point=$13,
	rebounding=$14, passing=$15, games_played=$16, points_per_game=$17,
	rebounds_per_game=$18, assists_per_game=$19, status=$20, potential=$21,
	morale=$22 WHERE id=$1`

func playerUpdateArgs(p model.Player) []interface{} {
	return []interface{}{p.ID, p.Name, p.Position, p.JerseyNumber, p.TeamID,
		p.Salary, p.ContractYears, p.Overall, p.Offense, p.Defense, p.Speed,
		p.Shooting, p.ThreePoint, p.Rebounding, p.Passing, p.GamesPlayed,
		p.PointsPerGame, p.ReboundsPerGame, p.AssistsPerGame, p.Status,
		p.Potential, p.Morale}
}

func (s *Store) UpdatePlayer(ctx context.Context, p model.Player) error {
	tag, err := s.pool.Exec(ctx, playerUpdateSQL, playerUpdateArgs(p)...)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return affected("player", p.ID, tag.RowsAffected())
}

func (s *Store) DeletePlayer(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return affected("player", id, tag.RowsAffected())
}

// --------------------------------------------------------------------------
// Coaches
// --------------------------------------------------------------------------

const coachCols = `id, name, team_id, overall_rating, offense_rating,
	defense_rating, development_rating, salary, contract_years`

func scanCoach(row pgx.Row) (model.Coach, error) {
	var c model.Coach
	err := row.Scan(&c.ID, &c.Name, &c.TeamID, &c.OverallRating,
		&c.OffenseRating, &c.DefenseRating, &c.DevelopmentRating,
		&c.Salary, &c.ContractYears)
	return c, err
}

func (s *Store) CreateCoach(ctx context.Context, c model.Coach) (model.Coach, error) {
	if c.ID == "" {
		c.ID = xid.New().String()
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO coaches (`+coachCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.Name, c.TeamID, c.OverallRating, c.OffenseRating,
		c.DefenseRating, c.DevelopmentRating, c.Salary, c.ContractYears)
	if err != nil {
		return model.Coach{}, fmt.Errorf("insert coach: %w", err)
	}
	return c, nil
}

func (s *Store) GetCoach(ctx context.Context, id string) (model.Coach, error) {
	c, err := scanCoach(s.pool.QueryRow(ctx, `SELECT `+coachCols+` FROM coaches WHERE id = $1`, id))
	if err != nil {
		return model.Coach{}, notFound("coach", id, err)
	}
	return c, nil
}

func (s *Store) ListCoaches(ctx context.Context) ([]model.Coach, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+coachCols+` FROM coaches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	defer rows.Close()
	out := []model.Coach{}
	for rows.Next() {
		c, err := scanCoach(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coach: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) UpdateCoach(ctx context.Context, c model.Coach) error {
	tag, err := s.pool.Exec(ctx, `UPDATE coaches SET name=$2, team_id=$3,
		overall_rating=$4, offense_rating=$5, defense_rating=$6,
		development_rating=$7, salary=$8, contract_years=$9 WHERE id=$1`,
		c.ID, c.Name, c.TeamID, c.OverallRating, c.OffenseRating,
		c.DefenseRating, c.DevelopmentRating, c.Salary, c.ContractYears)
	if err != nil {
		return fmt.Errorf("update coach: %w", err)
	}
	return affected("coach", c.ID, tag.RowsAffected())
}

func (s *Store) DeleteCoach(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM coaches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coach: %w", err)
	}
	return affected("coach", id, tag.RowsAffected())
}

// --------------------------------------------------------------------------
// Games
// --------------------------------------------------------------------------

const gameCols = `id, home_team_id, away_team_id, status, home_score,
	away_score, home_team_stats, away_team_stats, home_player_lines,
	away_player_lines, scheduled_date, season, week`

func scanGame(row pgx.Row) (model.Game, error) {
	var g model.Game
	var homeStats, awayStats, homeLines, awayLines []byte
	err := row.Scan(&g.ID, &g.HomeTeamID, &g.AwayTeamID, &g.Status,
		&g.HomeScore, &g.AwayScore, &homeStats, &awayStats,
		&homeLines, &awayLines, &g.ScheduledDate, &g.Season, &g.Week)
	if err != nil {
		return g, err
	}
	for _, pair := range []struct {
		raw []byte
		dst interface{}
	}{
		{homeStats, &g.HomeTeamStats},
		{awayStats, &g.AwayTeamStats},
		{homeLines, &g.HomePlayerLines},
		{awayLines, &g.AwayPlayerLines},
	} {
		if pair.raw != nil {
			if err := json.Unmarshal(pair.raw, pair.dst); err != nil {
				return g, fmt.Errorf("decode game stats: %w", err)
			}
		}
	}
	return g, nil
}

func gameJSONArgs(g model.Game) (homeStats, awayStats, homeLines, awayLines []byte, err error) {
	marshal := func(v interface{}) ([]byte, error) {
		if v == nil {
			return nil, nil
		}
		return json.Marshal(v)
	}
	if g.HomeTeamStats != nil {
		if homeStats, err = marshal(g.HomeTeamStats); err != nil {
			return
		}
	}
	if g.AwayTeamStats != nil {
		if awayStats, err = marshal(g.AwayTeamStats); err != nil {
			return
		}
	}
	if g.HomePlayerLines != nil {
		if homeLines, err = marshal(g.HomePlayerLines); err != nil {
			return
		}
	}
	if g.AwayPlayerLines != nil {
		if awayLines, err = marshal(g.AwayPlayerLines); err != nil {
			return
		}
	}
	return
}

func (s *Store) CreateGame(ctx context.Context, g model.Game) (model.Game, error) {
	if g.ID == "" {
		g.ID = xid.New().String()
	}
	if g.Status == "" {
		g.Status = model.GameScheduled
	}
	if g.ScheduledDate.IsZero() {
		g.ScheduledDate = time.Now().UTC()
	}
	homeStats, awayStats, homeLines, awayLines, err := gameJSONArgs(g)
	if err != nil {
		return model.Game{}, fmt.Errorf("encode game stats: %w", err)
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO games (`+gameCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		g.ID, g.HomeTeamID, g.AwayTeamID, g.Status, g.HomeScore, g.AwayScore,
		homeStats, awayStats, homeLines, awayLines, g.ScheduledDate, g.Season, g.Week)
	if err != nil {
		return model.Game{}, fmt.Errorf("insert game: %w", err)
	}
	return g, nil
}

func (s *Store) GetGame(ctx context.Context, id string) (model.Game, error) {
	g, err := scanGame(s.pool.QueryRow(ctx, `SELECT `+gameCols+` FROM games WHERE id = $1`, id))
	if err != nil {
		return model.Game{}, notFound("game", id, err)
	}
	return g, nil
}

func (s *Store) ListGames(ctx context.Context) ([]model.Game, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+gameCols+` FROM games ORDER BY scheduled_date, id`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()
	out := []model.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

const gameUpdateSQL = `UPDATE games SET home_team_id=$2, away_team_id=$3,
	status=$4, home_score=$5, away_score=$6, home_team_stats=$7,
	away_team_stats=$8, home_player_lines=$9, away_player_lines=$10,
	scheduled_date=$11, season=$12, week=$13 WHERE id=$1`

func (s *Store) UpdateGame(ctx context.Context, g model.Game) error {
	homeStats, awayStats, homeLines, awayLines, err := gameJSONArgs(g)
	if err != nil {
		return fmt.Errorf("encode game stats: %w", err)
	}
	tag, err := s.pool.Exec(ctx, gameUpdateSQL,
		g.ID, g.HomeTeamID, g.AwayTeamID, g.Status, g.HomeScore, g.AwayScore,
		homeStats, awayStats, homeLines, awayLines, g.ScheduledDate, g.Season, g.Week)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	return affected("game", g.ID, tag.RowsAffected())
}

func (s *Store) DeleteGame(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return affected("game", id, tag.RowsAffected())
}

// --------------------------------------------------------------------------
// Trainings
// --------------------------------------------------------------------------

const trainingCols = `id, player_id, type, duration_days, start_date,
	end_date, rating_improvement, completed`

func scanTraining(row pgx.Row) (model.Training, error) {
	var t model.Training
	err := row.Scan(&t.ID, &t.PlayerID, &t.Type, &t.DurationDays,
		&t.StartDate, &t.EndDate, &t.RatingImprovement, &t.Completed)
	return t, err
}

func (s *Store) CreateTraining(ctx context.Context, t model.Training) (model.Training, error) {
	if t.ID == "" {
		t.ID = xid.New().String()
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO trainings (`+trainingCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		t.ID, t.PlayerID, t.Type, t.DurationDays, t.StartDate, t.EndDate,
		t.RatingImprovement, t.Completed)
	if err != nil {
		return model.Training{}, fmt.Errorf("insert training: %w", err)
	}
	return t, nil
}

func (s *Store) GetTraining(ctx context.Context, id string) (model.Training, error) {
	t, err := scanTraining(s.pool.QueryRow(ctx, `SELECT `+trainingCols+` FROM trainings WHERE id = $1`, id))
	if err != nil {
		return model.Training{}, notFound("training", id, err)
	}
	return t, nil
}

func (s *Store) ListTrainings(ctx context.Context) ([]model.Training, error) {
	return s.queryTrainings(ctx, `SELECT `+trainingCols+` FROM trainings ORDER BY id`)
}

func (s *Store) ListPendingTrainings(ctx context.Context, before time.Time) ([]model.Training, error) {
	return s.queryTrainings(ctx,
		`SELECT `+trainingCols+` FROM trainings WHERE NOT completed AND end_date <= $1 ORDER BY id`,
		before)
}

func (s *Store) queryTrainings(ctx context.Context, q string, args ...interface{}) ([]model.Training, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}
	defer rows.Close()
	out := []model.Training{}
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, fmt.Errorf("scan training: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

const trainingUpdateSQL = `UPDATE trainings SET player_id=$2, type=$3,
	duration_days=$4, start_date=$5, end_date=$6, rating_improvement=$7,
	completed=$8 WHERE id=$1`

func trainingUpdateArgs(t model.Training) []interface{} {
	return []interface{}{t.ID, t.PlayerID, t.Type, t.DurationDays,
		t.StartDate, t.EndDate, t.RatingImprovement, t.Completed}
}

func (s *Store) UpdateTraining(ctx context.Context, t model.Training) error {
	tag, err := s.pool.Exec(ctx, trainingUpdateSQL, trainingUpdateArgs(t)...)
	if err != nil {
		return fmt.Errorf("update training: %w", err)
	}
	return affected("training", t.ID, tag.RowsAffected())
}

func (s *Store) DeleteTraining(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM trainings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete training: %w", err)
	}
	return affected("training", id, tag.RowsAffected())
}

// --------------------------------------------------------------------------
// Atomic result application
// --------------------------------------------------------------------------

// ApplyGameResult commits one simulation's mutations inside a single
// transaction.
func (s *Store) ApplyGameResult(ctx context.Context, res store.GameResult) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		homeStats, awayStats, homeLines, awayLines, err := gameJSONArgs(res.Game)
		if err != nil {
			return fmt.Errorf("encode game stats: %w", err)
		}
		g := res.Game
		tag, err := tx.Exec(ctx, gameUpdateSQL,
			g.ID, g.HomeTeamID, g.AwayTeamID, g.Status, g.HomeScore, g.AwayScore,
			homeStats, awayStats, homeLines, awayLines, g.ScheduledDate, g.Season, g.Week)
		if err != nil {
			return fmt.Errorf("update game: %w", err)
		}
		if err := affected("game", g.ID, tag.RowsAffected()); err != nil {
			return err
		}

		for _, t := range res.Teams {
			tag, err := tx.Exec(ctx,
				`UPDATE teams SET wins=$2, losses=$3 WHERE id=$1`,
				t.ID, t.Wins, t.Losses)
			if err != nil {
				return fmt.Errorf("update team record: %w", err)
			}
			if err := affected("team", t.ID, tag.RowsAffected()); err != nil {
				return err
			}
		}

		for _, p := range res.Players {
			tag, err := tx.Exec(ctx, playerUpdateSQL, playerUpdateArgs(p)...)
			if err != nil {
				return fmt.Errorf("update player stats: %w", err)
			}
			if err := affected("player", p.ID, tag.RowsAffected()); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyTrainingResult commits a training completion and the player's
// rating changes inside a single transaction.
func (s *Store) ApplyTrainingResult(ctx context.Context, res store.TrainingResult) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, trainingUpdateSQL, trainingUpdateArgs(res.Training)...)
		if err != nil {
			return fmt.Errorf("update training: %w", err)
		}
		if err := affected("training", res.Training.ID, tag.RowsAffected()); err != nil {
			return err
		}
		tag, err = tx.Exec(ctx, playerUpdateSQL, playerUpdateArgs(res.Player)...)
		if err != nil {
			return fmt.Errorf("update player ratings: %w", err)
		}
		return affected("player", res.Player.ID, tag.RowsAffected())
	})
}

// Ping verifies database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.HealthCheck(ctx)
}
