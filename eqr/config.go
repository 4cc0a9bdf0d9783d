package eqr

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// overrideDoc mirrors a subset of Table in a form convenient for TOML
// authoring. Any section a caller omits falls back to the default table.
type overrideDoc struct {
	Position map[string]float64 `toml:"position"`
	Board    map[string]float64 `toml:"board"`
	Multiway struct {
		Slope float64 `toml:"slope"`
	} `toml:"multiway"`
	Skill struct {
		Base  float64 `toml:"base"`
		Slope float64 `toml:"slope"`
	} `toml:"skill"`
}

var positionNames = map[string]Position{
	"utg": UTG, "utg1": UTG1, "utg2": UTG2, "mp": MP, "hj": HJ,
	"co": CO, "btn": BTN, "sb": SB, "bb": BB,
}

var boardNames = map[string]boardKey{
	"dry_ip": {Dry, true}, "dry_oop": {Dry, false},
	"semi_ip": {Semi, true}, "semi_oop": {Semi, false},
	"wet_ip": {Wet, true}, "wet_oop": {Wet, false},
}

// LoadTOMLOverrides reads a TOML file of factor overrides and applies them
// on top of DefaultTable. It is an error to reference an unknown position
// or board key.
func LoadTOMLOverrides(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("eqr: read overrides: %w", err)
	}

	var doc overrideDoc
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return Table{}, fmt.Errorf("eqr: decode overrides: %w", err)
	}

	table := DefaultTable()

	for name, value := range doc.Position {
		pos, ok := positionNames[name]
		if !ok {
			return Table{}, fmt.Errorf("eqr: unknown position override %q", name)
		}
		table.Position[pos] = value
	}

	for name, value := range doc.Board {
		key, ok := boardNames[name]
		if !ok {
			return Table{}, fmt.Errorf("eqr: unknown board override %q", name)
		}
		table.Board[key] = value
	}

	if doc.Multiway.Slope != 0 {
		table.Multiway.Slope = doc.Multiway.Slope
	}
	if doc.Skill.Base != 0 {
		table.Skill.Base = doc.Skill.Base
	}
	if doc.Skill.Slope != 0 {
		table.Skill.Slope = doc.Skill.Slope
	}

	return table, nil
}
