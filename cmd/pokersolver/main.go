package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lox/pokersolver/config"
)

var cli struct {
	Debug      bool   `help:"enable debug logging"`
	ConfigPath string `help:"path to an HCL engine configuration file" default:"pokersolver.hcl"`

	Equity EquityCmd `cmd:"" help:"estimate hero equity via Monte Carlo simulation"`
	Train  TrainCmd  `cmd:"" help:"run CFR+ training against a named game fixture"`
	Search SearchCmd `cmd:"" help:"run MCTS search against a named game fixture"`
	EQR    EQRCmd    `cmd:"" help:"apply the equity-realization context adjustment"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("pokersolver"),
		kong.Description("No-limit hold'em decision engine tooling"),
		kong.UsageOnError(),
	)

	setupLogger(cli.Debug)

	cfg, err := config.Load(cli.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load engine configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid engine configuration")
	}
	applyConfigDefaults(cfg)

	switch ctx.Command() {
	case "equity":
		err = cli.Equity.Run()
	case "train":
		err = cli.Train.Run(context.Background())
	case "search":
		err = cli.Search.Run()
	case "eqr":
		err = cli.EQR.Run()
	default:
		log.Fatal().Msgf("unknown command: %s", ctx.Command())
	}
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func setupLogger(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}
