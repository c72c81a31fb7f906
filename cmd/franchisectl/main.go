// Command franchisectl is the operational CLI for the Basketball Simulator.
//
// Usage:
//
//	franchisectl demo --teams 8 --games 20
//	franchisectl seed --teams 8
//	franchisectl simulate --game <id>
//	franchisectl trainings process --workers 4
//	franchisectl standings
//
// demo runs fully in memory; the other commands require DATABASE_URL.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/config"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/db"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/model"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/seed"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/sim"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store/memstore"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/store/pgstore"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "franchisectl",
		Short: "Basketball Simulator operations CLI",
	}

	root.AddCommand(demoCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(simulateCmd())
	root.AddCommand(trainingsCmd())
	root.AddCommand(standingsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runWithPGStore wires config and the Postgres store for commands that
// operate on shared state.
func runWithPGStore(fn func(ctx context.Context, cfg *config.Config, st store.Store) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.UseMemStore() {
		return fmt.Errorf("DATABASE_URL is required (an in-memory store does not outlive the process)")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pgstore.New(pool))
}

// --------------------------------------------------------------------------
// demo command — full in-memory season
// --------------------------------------------------------------------------

func demoCmd() *cobra.Command {
	var teams, games int
	var seedVal int64
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Seed an in-memory league, simulate games, print standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st := memstore.New()
			rng := sim.NewSource(seedVal)
			engine := sim.New(st, rng, logger)

			result := seed.League(ctx, st, rng, teams, logger)
			if len(result.Errors) > 0 {
				for _, e := range result.Errors {
					logger.Error("seed error", "error", e)
				}
			}

			scheduled, err := st.ListGames(ctx)
			if err != nil {
				return err
			}
			simulated := 0
			for _, g := range scheduled {
				if games > 0 && simulated >= games {
					break
				}
				if _, err := engine.SimulateGame(ctx, g.ID); err != nil {
					return fmt.Errorf("simulate game %s: %w", g.ID, err)
				}
				simulated++
			}
			logger.Info("Demo season done", "simulated", simulated)

			teamList, err := st.ListTeams(ctx)
			if err != nil {
				return err
			}
			printStandings(teamList)
			return nil
		},
	}
	cmd.Flags().IntVar(&teams, "teams", 8, "Number of teams")
	cmd.Flags().IntVar(&games, "games", 0, "Games to simulate (0 = full schedule)")
	cmd.Flags().Int64Var(&seedVal, "seed", 0, "Random seed (0 = time-seeded)")
	return cmd
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	var teams int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed a demo league into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPGStore(func(ctx context.Context, cfg *config.Config, st store.Store) error {
				rng := sim.NewSource(cfg.SimSeed)
				result := seed.League(ctx, st, rng, teams, logger)
				if len(result.Errors) > 0 {
					for _, e := range result.Errors {
						logger.Error("seed error", "error", e)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&teams, "teams", 8, "Number of teams")
	return cmd
}

// --------------------------------------------------------------------------
// simulate command
// --------------------------------------------------------------------------

func simulateCmd() *cobra.Command {
	var gameID string
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate one scheduled game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameID == "" {
				return fmt.Errorf("--game is required")
			}
			return runWithPGStore(func(ctx context.Context, cfg *config.Config, st store.Store) error {
				engine := sim.New(st, sim.NewSource(cfg.SimSeed), logger)
				game, err := engine.SimulateGame(ctx, gameID)
				if err != nil {
					return err
				}
				fmt.Printf("final: %d-%d (game %s)\n", game.HomeScore, game.AwayScore, game.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&gameID, "game", "", "Game ID")
	return cmd
}

// --------------------------------------------------------------------------
// trainings command
// --------------------------------------------------------------------------

func trainingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trainings",
		Short: "Training program operations",
	}
	cmd.AddCommand(trainingsProcessCmd())
	return cmd
}

func trainingsProcessCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Complete every due training program",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPGStore(func(ctx context.Context, cfg *config.Config, st store.Store) error {
				engine := sim.New(st, sim.NewSource(cfg.SimSeed), logger)
				result := engine.ProcessDueTrainings(ctx, workers)
				logger.Info("Sweep finished", "summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("sweep error", "error", e)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "Worker pool size")
	return cmd
}

// --------------------------------------------------------------------------
// standings command
// --------------------------------------------------------------------------

func standingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Print the league table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPGStore(func(ctx context.Context, cfg *config.Config, st store.Store) error {
				teams, err := st.ListTeams(ctx)
				if err != nil {
					return err
				}
				printStandings(teams)
				return nil
			})
		},
	}
}

func printStandings(teams []model.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		return winPct(teams[i]) > winPct(teams[j])
	})
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TEAM\tW\tL\tPCT")
	for _, t := range teams {
		fmt.Fprintf(w, "%s %s\t%d\t%d\t%.3f\n", t.City, t.Name, t.Wins, t.Losses, winPct(t))
	}
	w.Flush()
}

func winPct(t model.Team) float64 {
	if played := t.Wins + t.Losses; played > 0 {
		return float64(t.Wins) / float64(played)
	}
	return 0
}
