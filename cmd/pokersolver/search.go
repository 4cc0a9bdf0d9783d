package main

import (
	"github.com/rs/zerolog/log"

	"github.com/lox/pokersolver/internal/fastrng"
	"github.com/lox/pokersolver/mcts"
)

// SearchCmd runs MCTS search against a named game fixture.
type SearchCmd struct {
	Game       string `help:"game fixture to search" default:"kuhn" enum:"kuhn"`
	Iterations int    `help:"number of MCTS simulations (0 uses the engine config default)"`
	Seed       uint64 `help:"RNG seed; 0 uses the engine config default"`
}

func (cmd *SearchCmd) Run() error {
	rules, err := newGameFixture(cmd.Game)
	if err != nil {
		return err
	}

	search := mcts.New(rules, fastrng.New(cmd.Seed))
	search.Run(cmd.Iterations)

	stats := search.Stats()
	action, ok := search.BestAction()

	event := log.Info().
		Int("simulations", stats.TotalSimulations).
		Int("nodes", stats.NodeCount).
		Int("max_depth", stats.MaxDepth).
		Float64("best_child_avg_value", stats.BestChildAvgValue)
	if ok {
		event = event.Interface("best_action", action)
	}
	event.Msg("search complete")
	return nil
}
