package experiments

import (
	"fmt"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher"

	"github.com/rs/zerolog/log"
)

// AdversarialKinds are the searchers that look past the controlled agent's move.
var AdversarialKinds = []string{"minimax", "alphabeta", "expectimax"}

// MatchedConfigs returns one config per kind, all searching to the same depth
// with the same evaluation.
func MatchedConfigs(kinds []string, depth int, evaluation string) []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, 0, len(kinds))
	for i, kind := range kinds {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Kind: kind, Depth: depth, Evaluation: evaluation})
	}
	return configs
}

// DepthSweep returns a config for every kind at every depth from 1 to maxDepth.
func DepthSweep(kinds []string, maxDepth int, evaluation string) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for depth := 1; depth <= maxDepth; depth++ {
		for _, kind := range kinds {
			configs = append(configs, metrics.AgentConfig{ID: len(configs) + 1, Kind: kind, Depth: depth, Evaluation: evaluation})
		}
	}
	return configs
}

// Compare lets every configured agent search every position. Agents are
// seeded identically so tie-breaks are comparable across kinds.
func Compare(positions []game.State, configs []metrics.AgentConfig, seed uint64) ([]metrics.Record, error) {
	records := make([]metrics.Record, 0, len(positions)*len(configs))

	for _, config := range configs {
		log.Info().Msgf("starting agent %d (%s, depth=%d, evaluation=%s)...", config.ID, config.Kind, config.Depth, config.Evaluation)

		for pi, position := range positions {
			agent, err := createAgent(config, position, seed)
			if err != nil {
				return nil, err
			}
			decision, err := agent.FindMove(position)
			if err != nil {
				return nil, fmt.Errorf("agent %d failed on position %d: %w", config.ID, pi, err)
			}

			records = append(records, metrics.Record{
				Agent:    config.ID,
				Position: pi,
				Action:   decision.Action,
				Value:    decision.Value,
				Duration: decision.Metrics.Duration,
				Nodes:    decision.Metrics.Nodes,
				Cutoffs:  decision.Metrics.Cutoffs,
				Prunes:   decision.Metrics.Prunes,
			})
		}
		log.Info().Msgf("completed agent %d", config.ID)
	}
	return records, nil
}

// Run compares the agents and stores configs and records under root/name.
// It returns the directory written to.
func Run(name, root string, positions []game.State, configs []metrics.AgentConfig, seed uint64) (string, error) {
	log.Info().Msgf("starting %s experiment...", name)

	records, err := Compare(positions, configs, seed)
	if err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteRecords(records)
	if err != nil {
		return "", fmt.Errorf("failed to write records: %w", err)
	}
	log.Info().Msg("stored records")

	return writer.Dir(), nil
}

func createAgent(config metrics.AgentConfig, position game.State, seed uint64) (searcher.Agent, error) {
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Evaluation != "" {
		options = append(options, searcher.WithEvaluationFn(config.Evaluation))
	}
	// The grid heuristic needs grid positions; anything else is judged by score
	if _, ok := position.(game.GridState); !ok && config.Kind == "reflex" {
		options = append(options, searcher.WithReflexEvaluation(searcher.EvaluateSuccessorScore))
	}

	agent, err := searcher.New(config.Kind, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent %d: %w", config.ID, err)
	}
	return agent, nil
}
