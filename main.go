// Command stratego runs agent-vs-agent benchmark matches and writes the
// per-game and per-move CSV records.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"stratego/experiments"
	"stratego/game"
)

func main() {
	cmd := &cli.Command{
		Name:  "stratego",
		Usage: "benchmark agents against each other in Stratego matches",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: game.DefaultBoardSize, Usage: "board size (4-10)"},
			&cli.IntFlag{Name: "games", Value: 30, Usage: "number of games to play"},
			&cli.IntFlag{Name: "turn-limit", Value: game.DefaultTurnLimit, Usage: "turns before a draw is declared"},
			&cli.IntFlag{Name: "invalid-threshold", Value: game.DefaultInvalidMoveThreshold, Usage: "invalid actions tolerated per player"},
			&cli.StringFlag{Name: "p1", Value: "random", Usage: "first agent kind (random|heuristic)"},
			&cli.StringFlag{Name: "p2", Value: "heuristic", Usage: "second agent kind (random|heuristic)"},
			&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "base RNG seed"},
			&cli.StringFlag{Name: "name", Value: "benchmark", Usage: "run name used in the output path"},
			&cli.StringFlag{Name: "out", Value: "experiments/output", Usage: "directory for CSV records"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		},
		Action: runBenchmark,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
}

func runBenchmark(ctx context.Context, cmd *cli.Command) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cmd.Bool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rules := game.NewStandardRules(
		game.WithBoardSize(int(cmd.Int("size"))),
		game.WithTurnLimit(int(cmd.Int("turn-limit"))),
		game.WithInvalidMoveThreshold(int(cmd.Int("invalid-threshold"))),
	)

	seed := cmd.Uint64("seed")
	config1 := experiments.AgentConfig{Name: "p1-" + cmd.String("p1"), Kind: cmd.String("p1"), Seed: seed}
	config2 := experiments.AgentConfig{Name: "p2-" + cmd.String("p2"), Kind: cmd.String("p2"), Seed: seed + 1000}

	return experiments.Benchmark(ctx, cmd.String("name"), cmd.String("out"),
		int(cmd.Int("games")), config1, config2, rules)
}
