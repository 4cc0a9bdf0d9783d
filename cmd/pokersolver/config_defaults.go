package main

import "github.com/lox/pokersolver/config"

// applyConfigDefaults backfills CLI flags left at their zero value with the
// loaded engine configuration. Flags explicitly set on the command line
// always win, since kong has already populated them by this point.
func applyConfigDefaults(cfg *config.EngineConfig) {
	if cli.Train.Iterations == 0 {
		cli.Train.Iterations = cfg.Training.Iterations
	}
	if cli.Train.Players == 0 {
		cli.Train.Players = cfg.Training.Players
	}
	if cli.Train.DiscountEvery == 0 {
		cli.Train.DiscountEvery = cfg.Training.DiscountEvery
	}
	if cli.Search.Iterations == 0 {
		cli.Search.Iterations = cfg.Search.Iterations
	}
	if cli.Search.Seed == 0 {
		cli.Search.Seed = cfg.Search.Seed
	}
	if cli.EQR.OverridesFile == "" {
		cli.EQR.OverridesFile = cfg.EQRConfig.OverridesFile
	}
}
