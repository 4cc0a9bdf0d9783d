package eqr

// Table holds the EQR factor values. The zero value is not meaningful;
// use DefaultTable or LoadTOMLOverrides to obtain one.
type Table struct {
	Position map[Position]float64
	SPR      []sprBucket
	Board    map[boardKey]float64
	Multiway multiwayParams
	Skill    skillParams
	StreetMultiplier map[Street]float64
}

type sprBucket struct {
	ceiling float64 // bucket applies when spr < ceiling; last bucket has no ceiling
	factor  float64
}

type boardKey struct {
	Texture    Texture
	InPosition bool
}

type multiwayParams struct {
	Base float64 // 1 / (1 + Slope*(opponents-1))
	Slope float64
}

type skillParams struct {
	Base  float64 // Base - Slope*opponent_skill
	Slope float64
}

// DefaultTable returns the literal factor values fixed by the design.
func DefaultTable() Table {
	return Table{
		Position: map[Position]float64{
			UTG:  0.75,
			UTG1: 0.78,
			UTG2: 0.82,
			MP:   0.86,
			HJ:   0.92,
			CO:   0.98,
			BTN:  1.18,
			SB:   0.70,
			BB:   0.68,
		},
		SPR: []sprBucket{
			{ceiling: 1, factor: 1.25},
			{ceiling: 3, factor: 1.15},
			{ceiling: 7, factor: 1.05},
			{ceiling: 13, factor: 1.00},
			{ceiling: 25, factor: 0.95},
			{ceiling: 0, factor: 0.90}, // ceiling 0 marks the catch-all final bucket
		},
		Board: map[boardKey]float64{
			{Dry, true}:   1.08,
			{Dry, false}:  0.95,
			{Semi, true}:  1.02,
			{Semi, false}: 0.98,
			{Wet, true}:   0.95,
			{Wet, false}:  0.92,
		},
		Multiway: multiwayParams{Base: 1, Slope: 0.18},
		Skill:    skillParams{Base: 1.05, Slope: 0.15},
		StreetMultiplier: map[Street]float64{
			Preflop: 0.95,
			Flop:    1.00,
			Turn:    1.03,
			River:   1.05,
		},
	}
}

func (t Table) positionFactor(p Position) float64 {
	if f, ok := t.Position[p]; ok {
		return f
	}
	return 1
}

func (t Table) stackFactor(spr float64) float64 {
	for _, b := range t.SPR {
		if b.ceiling == 0 {
			return b.factor
		}
		if spr < b.ceiling {
			return b.factor
		}
	}
	return 1
}

func (t Table) boardFactor(texture Texture, inPosition bool) float64 {
	if f, ok := t.Board[boardKey{texture, inPosition}]; ok {
		return f
	}
	return 1
}

func (t Table) multiwayFactor(opponents int) float64 {
	if opponents < 1 {
		opponents = 1
	}
	return t.Multiway.Base / (1 + t.Multiway.Slope*float64(opponents-1))
}

func (t Table) skillFactor(skill float64) float64 {
	return t.Skill.Base - t.Skill.Slope*skill
}

func (t Table) streetFactor(s Street) float64 {
	if f, ok := t.StreetMultiplier[s]; ok {
		return f
	}
	return 1
}
