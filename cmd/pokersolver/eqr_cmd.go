package main

import (
	"github.com/rs/zerolog/log"

	"github.com/lox/pokersolver/eqr"
)

// EQRCmd applies the equity-realization context adjustment to a raw
// Monte Carlo equity figure, optionally loading factor-table overrides
// from a TOML file.
type EQRCmd struct {
	Raw           float64 `help:"raw equity in [0,1]" required:""`
	Position      int     `help:"seat position, UTG=0 .. BB=8" required:""`
	Stack         float64 `help:"effective stack"`
	Pot           float64 `help:"current pot"`
	Texture       int     `help:"board texture: 0=dry 1=semi 2=wet" default:"0"`
	Opponents     int     `help:"number of opponents still in the hand" default:"1"`
	InPosition    bool    `help:"whether hero acts last post-flop"`
	Skill         float64 `help:"opponent skill estimate in [0,1]" default:"0.5"`
	OverridesFile string  `help:"path to a TOML file of factor overrides"`
}

func (cmd *EQRCmd) Run() error {
	table := eqr.DefaultTable()
	if cmd.OverridesFile != "" {
		loaded, err := eqr.LoadTOMLOverrides(cmd.OverridesFile)
		if err != nil {
			return err
		}
		table = loaded
	}

	result := table.Adjust(cmd.Raw, eqr.Context{
		Position:      eqr.Position(cmd.Position),
		Stack:         cmd.Stack,
		Pot:           cmd.Pot,
		Texture:       eqr.Texture(cmd.Texture),
		Opponents:     cmd.Opponents,
		InPosition:    cmd.InPosition,
		OpponentSkill: cmd.Skill,
	})

	log.Info().
		Float64("raw", result.RawEquity).
		Float64("position_factor", result.PositionFactor).
		Float64("stack_factor", result.StackFactor).
		Float64("board_factor", result.BoardFactor).
		Float64("multiway_factor", result.MultiwayFactor).
		Float64("skill_factor", result.SkillFactor).
		Float64("adjusted", result.Adjusted).
		Msg("eqr adjustment complete")
	return nil
}
