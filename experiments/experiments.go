// Package experiments runs benchmark matchups between agent
// configurations and stores the per-game and per-move records as CSV. All
// cross-match scoring happens here, downstream of the engine.
package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"stratego/agent"
	"stratego/engine"
	"stratego/experiments/metrics"
	"stratego/game"
)

// AgentConfig names a built-in agent. Kind is "random" or "heuristic".
type AgentConfig struct {
	Name string
	Kind string
	Seed uint64
}

func (c AgentConfig) build(offset uint64) (engine.Agent, error) {
	switch c.Kind {
	case "random":
		return agent.NewRandomAgent(c.Seed + offset), nil
	case "heuristic":
		return agent.NewHeuristicAgent(c.Seed + offset), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", c.Kind)
	}
}

// Benchmark plays numGames matches between two agent configs under the
// given rules, alternating seats each game, and writes the records under
// outDir/name.
func Benchmark(ctx context.Context, name, outDir string, numGames int, config1, config2 AgentConfig, rules *game.Rules) error {
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}

	log.Info().Msgf("starting %s benchmark: %s vs %s, %d games", name, config1.Name, config2.Name, numGames)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for i := 0; i < numGames; i++ {
		// Alternate seats so neither config always moves first.
		first, second := config1, config2
		if i%2 == 1 {
			first, second = config2, config1
		}

		log.Info().Msgf("starting game %d of %d (%s moves first)", i+1, numGames, first.Name)

		result, gameRecord, moves, err := runMatch(ctx, first, second, rules, uint64(i))
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		gameRecords = append(gameRecords, gameRecord)
		moveRecords = append(moveRecords, moves...)

		log.Info().Msgf("completed game %d of %d: %s after %d turns (%s)",
			i+1, numGames, result.Winner, result.TurnCount, result.Reason)
	}

	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return fmt.Errorf("failed to create benchmark writer: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	if err := writer.WriteSummary(metrics.Summarize(gameRecords)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	log.Info().Msgf("completed %s benchmark, records in %s", name, writer.Dir())
	return nil
}

// runMatch plays a single match between two agent configs and returns the
// result plus its records.
func runMatch(ctx context.Context, first, second AgentConfig, rules *game.Rules, gameIndex uint64) (game.MatchResult, metrics.GameRecord, []metrics.MoveRecord, error) {
	zero := game.MatchResult{}

	agent1, err := first.build(gameIndex)
	if err != nil {
		return zero, metrics.GameRecord{}, nil, err
	}
	agent2, err := second.build(gameIndex + 1)
	if err != nil {
		return zero, metrics.GameRecord{}, nil, err
	}

	rng := rand.New(rand.NewSource(placementSeed(first, second, gameIndex)))
	board, err := game.NewRandomBoard(rules, rng)
	if err != nil {
		return zero, metrics.GameRecord{}, nil, fmt.Errorf("placement: %w", err)
	}

	recorder := metrics.NewMatchRecorder(first.Name, second.Name, rules.BoardSize)
	controller := engine.NewMatchController(
		game.NewMatchState(rules, board),
		agent1, agent2,
		engine.WithRecorder(recorder),
	)

	result, err := controller.Run(ctx)
	if err != nil {
		return zero, metrics.GameRecord{}, nil, err
	}
	gameRecord, ok := recorder.Game()
	if !ok {
		return zero, metrics.GameRecord{}, nil, fmt.Errorf("match ended without a final record")
	}
	return result, gameRecord, recorder.Moves(), nil
}

func placementSeed(first, second AgentConfig, gameIndex uint64) uint64 {
	return first.Seed*31 + second.Seed*17 + gameIndex
}
