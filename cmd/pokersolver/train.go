package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lox/pokersolver/cfr"
	"github.com/lox/pokersolver/internal/fixtures/kuhn"
)

// TrainCmd runs CFR+ training against a named game fixture. GameRules is
// an abstraction the caller must supply; this command only knows how to
// construct the fixtures bundled with the engine.
type TrainCmd struct {
	Game          string `help:"game fixture to train against" default:"kuhn" enum:"kuhn"`
	Iterations    int    `help:"number of CFR+ iterations (0 uses the engine config default)"`
	Players       int    `help:"number of players (0 uses the engine config default)"`
	DiscountEvery int    `help:"discount regrets/strategy sums every N iterations; -1 disables, 0 uses the engine config default" default:"0"`
	ProgressEvery int    `help:"log progress every N iterations (0 disables)" default:"1000"`
}

func (cmd *TrainCmd) Run(ctx context.Context) error {
	rules, err := newGameFixture(cmd.Game)
	if err != nil {
		return err
	}

	trainer := cfr.NewTrainer(rules, cmd.Players)
	switch {
	case cmd.DiscountEvery < 0:
		trainer.SetDiscountEvery(0)
	case cmd.DiscountEvery > 0:
		trainer.SetDiscountEvery(cmd.DiscountEvery)
	}

	var progress func(cfr.Progress)
	if cmd.ProgressEvery > 0 {
		progress = func(p cfr.Progress) {
			if p.Iteration%cmd.ProgressEvery == 0 {
				log.Info().
					Int("iteration", p.Iteration).
					Int("info_sets", p.InfoSets).
					Dur("iteration_time", p.Stats.IterationTime).
					Msg("training progress")
			}
		}
	}

	if err := trainer.Run(ctx, cmd.Iterations, progress); err != nil {
		return err
	}

	log.Info().
		Int("iterations", trainer.Iteration()).
		Float64("exploitability", trainer.Table().ExploitabilityEstimate()).
		Int("info_sets", trainer.Table().Size()).
		Msg("training complete")
	return nil
}

func newGameFixture(name string) (cfr.GameRules, error) {
	switch name {
	case "kuhn":
		return kuhn.New(), nil
	default:
		return nil, fmt.Errorf("unknown game fixture %q", name)
	}
}
