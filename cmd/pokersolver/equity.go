package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/lox/pokersolver/equity"
	"github.com/lox/pokersolver/poker"
)

// EquityCmd runs a Monte Carlo equity estimate for a hero hand against a
// number of random opponents, optionally with a partial board.
type EquityCmd struct {
	Hero       string `help:"hero hole cards, e.g. 'As Ah'" required:""`
	Board      string `help:"community cards dealt so far, e.g. '2h 7d Jc'"`
	Opponents  int    `help:"number of opponents" default:"1"`
	Iterations int    `help:"number of Monte Carlo rollouts" default:"100000"`
	Seed       uint64 `help:"base RNG seed; 0 derives per-worker seeds from 0" default:"0"`
}

func (cmd *EquityCmd) Run() error {
	hero, err := parseCardList(cmd.Hero)
	if err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	board, err := parseCardList(cmd.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	result, err := equity.Calculate(equity.Request{
		Hero:       hero,
		Board:      board,
		Opponents:  cmd.Opponents,
		Iterations: cmd.Iterations,
		BaseSeed:   cmd.Seed,
	})
	if err != nil {
		return err
	}

	log.Info().
		Float64("equity", result.Equity()).
		Uint64("wins", result.Wins).
		Uint64("ties", result.Ties).
		Uint64("losses", result.Losses).
		Uint64("iterations", result.IterationsRun).
		Str("hero_category", string(result.HeroCategory)).
		Msg("equity estimate complete")
	return nil
}

func parseCardList(s string) (poker.Hand, error) {
	hand := poker.NewHand()
	for _, tok := range strings.Fields(s) {
		card, err := poker.ParseCard(tok)
		if err != nil {
			return poker.Hand(0), err
		}
		hand.AddCard(card)
	}
	return hand, nil
}
