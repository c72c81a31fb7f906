// Package model defines the franchise domain entities shared by the store,
// the simulation engine, and the API layer.
package model

import "time"

// --------------------------------------------------------------------------
// Enumerations
// --------------------------------------------------------------------------

// PlayerStatus describes a player's availability. Only active players
// participate in game simulation.
type PlayerStatus string

const (
	PlayerActive    PlayerStatus = "active"
	PlayerInjured   PlayerStatus = "injured"
	PlayerSuspended PlayerStatus = "suspended"
	PlayerRetired   PlayerStatus = "retired"
)

// GameStatus is a one-way scheduled -> completed transition.
type GameStatus string

const (
	GameScheduled GameStatus = "scheduled"
	GameCompleted GameStatus = "completed"
)

// TrainingType selects which skill ratings a training program improves.
type TrainingType string

const (
	TrainingStrength  TrainingType = "strength"
	TrainingShooting  TrainingType = "shooting"
	TrainingDefense   TrainingType = "defense"
	TrainingSpeed     TrainingType = "speed"
	TrainingEndurance TrainingType = "endurance"
)

// ValidTrainingType reports whether t is one of the known training types.
func ValidTrainingType(t TrainingType) bool {
	switch t {
	case TrainingStrength, TrainingShooting, TrainingDefense, TrainingSpeed, TrainingEndurance:
		return true
	}
	return false
}

// --------------------------------------------------------------------------
// Entities
// --------------------------------------------------------------------------

// Player is a roster member or free agent (TeamID == nil).
// All rating fields stay within [0,100]; writers clamp before persisting.
type Player struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	JerseyNumber int     `json:"jerseyNumber"`
	TeamID       *string `json:"teamId"`

	Salary        int `json:"salary"`
	ContractYears int `json:"contractYears"`

	Overall    int `json:"overall"`
	Offense    int `json:"offense"`
	Defense    int `json:"defense"`
	Speed      int `json:"speed"`
	Shooting   int `json:"shooting"`
	ThreePoint int `json:"threePoint"`
	Rebounding int `json:"rebounding"`
	Passing    int `json:"passing"`

	GamesPlayed     int     `json:"gamesPlayed"`
	PointsPerGame   float64 `json:"pointsPerGame"`
	ReboundsPerGame float64 `json:"reboundsPerGame"`
	AssistsPerGame  float64 `json:"assistsPerGame"`

	Status    PlayerStatus `json:"status"`
	Potential int          `json:"potential"`
	Morale    int          `json:"morale"`
}

// FreeAgent reports whether the player is unsigned.
func (p *Player) FreeAgent() bool { return p.TeamID == nil }

// Active reports whether the player can appear in a simulated game.
func (p *Player) Active() bool { return p.Status == PlayerActive }

// Team is a franchise with a win/loss record and aggregate ratings.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`

	Wins   int `json:"wins"`
	Losses int `json:"losses"`

	OverallRating int `json:"overallRating"`
	OffenseRating int `json:"offenseRating"`
	DefenseRating int `json:"defenseRating"`

	PointsPerGame        float64 `json:"pointsPerGame"`
	PointsAllowedPerGame float64 `json:"pointsAllowedPerGame"`

	SalaryCap  int `json:"salaryCap"`
	SalaryUsed int `json:"salaryUsed"`

	TeamMorale    int `json:"teamMorale"`
	TeamChemistry int `json:"teamChemistry"`

	HeadCoachID *string `json:"headCoachId"`
}

// Coach is read-only input to team-strength aggregation.
type Coach struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	TeamID            *string `json:"teamId"`
	OverallRating     int     `json:"overallRating"`
	OffenseRating     int     `json:"offenseRating"`
	DefenseRating     int     `json:"defenseRating"`
	DevelopmentRating int     `json:"developmentRating"`
	Salary            int     `json:"salary"`
	ContractYears     int     `json:"contractYears"`
}

// TeamBoxScore is the team-level statistical summary of one simulated game.
// The numbers are descriptive aggregates and are not reconciled against the
// individual player lines.
type TeamBoxScore struct {
	FieldGoals    int `json:"fieldGoals"`
	ThreePointers int `json:"threePointers"`
	Rebounds      int `json:"rebounds"`
	Assists       int `json:"assists"`
	Turnovers     int `json:"turnovers"`
}

// PlayerLine is one starter's stat line for a single game.
type PlayerLine struct {
	PlayerID string `json:"playerId"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
	Steals   int    `json:"steals"`
	Blocks   int    `json:"blocks"`
}

// Game is a scheduled or completed matchup. Scores, box scores, and player
// lines are populated only once the game completes.
type Game struct {
	ID         string     `json:"id"`
	HomeTeamID string     `json:"homeTeamId"`
	AwayTeamID string     `json:"awayTeamId"`
	Status     GameStatus `json:"status"`

	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`

	HomeTeamStats *TeamBoxScore `json:"homeTeamStats,omitempty"`
	AwayTeamStats *TeamBoxScore `json:"awayTeamStats,omitempty"`

	HomePlayerLines []PlayerLine `json:"homePlayerLines,omitempty"`
	AwayPlayerLines []PlayerLine `json:"awayPlayerLines,omitempty"`

	ScheduledDate time.Time `json:"scheduledDate"`
	Season        int       `json:"season"`
	Week          int       `json:"week"`
}

// Training is a per-player program that bumps skill ratings once its end
// date has passed. Completed is a terminal flag: the record is immutable
// afterwards.
type Training struct {
	ID                string       `json:"id"`
	PlayerID          string       `json:"playerId"`
	Type              TrainingType `json:"type"`
	DurationDays      int          `json:"durationDays"`
	StartDate         time.Time    `json:"startDate"`
	EndDate           time.Time    `json:"endDate"`
	RatingImprovement int          `json:"ratingImprovement"`
	Completed         bool         `json:"completed"`
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// ClampRating bounds a rating to [0,100].
func ClampRating(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
