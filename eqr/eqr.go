// Package eqr adjusts raw Monte Carlo equity by a set of multiplicative
// context factors (position, stack depth, board texture, opponent count,
// opponent skill, and optionally street) to produce an equity-realization
// estimate.
package eqr

import "github.com/lox/pokersolver/poker"

// Position enumerates the nine seats at a 9-max table, UTG through BB.
type Position int

const (
	UTG Position = iota
	UTG1
	UTG2
	MP
	HJ
	CO
	BTN
	SB
	BB
)

// Texture is the 3-bucket board coordination level used by the EQR
// adjustment (a coarser view than classifyWetness's internal scoring).
type Texture int

const (
	Dry Texture = iota
	Semi
	Wet
)

// Street identifies the optional street multiplier applied on top of the
// base factors.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// Context bundles every input the EQR adjustment needs beyond raw equity.
type Context struct {
	Position     Position
	Stack        float64
	Pot          float64
	Texture      Texture
	Opponents    int
	InPosition   bool
	OpponentSkill float64

	// Street, when non-nil, applies the optional street multiplier. Most
	// callers leave this unset; the multiplier is a supplemental factor,
	// not part of the base five.
	Street *Street
}

// Result bundles the raw equity with each individual factor and the final
// clamped product, so callers can explain an adjustment rather than treat
// it as a black box.
type Result struct {
	RawEquity      float64
	PositionFactor float64
	StackFactor    float64
	BoardFactor    float64
	MultiwayFactor float64
	SkillFactor    float64
	StreetFactor   float64
	Adjusted       float64
}

// Adjust returns the EQR-adjusted equity for rawEquity under ctx, using the
// default factor tables. Use a Table to apply TOML-overridden factors.
func Adjust(rawEquity float64, ctx Context) Result {
	return DefaultTable().Adjust(rawEquity, ctx)
}

// Adjust computes the clamped product of every applicable factor from t
// against rawEquity.
func (t Table) Adjust(rawEquity float64, ctx Context) Result {
	position := t.positionFactor(ctx.Position)
	stack := t.stackFactor(sprOf(ctx.Stack, ctx.Pot))
	board := t.boardFactor(ctx.Texture, ctx.InPosition)
	multiway := t.multiwayFactor(ctx.Opponents)
	skill := t.skillFactor(ctx.OpponentSkill)
	street := 1.0
	if ctx.Street != nil {
		street = t.streetFactor(*ctx.Street)
	}

	product := rawEquity * position * stack * board * multiway * skill * street
	if product < 0 {
		product = 0
	}
	if product > 1 {
		product = 1
	}

	return Result{
		RawEquity:      rawEquity,
		PositionFactor: position,
		StackFactor:    stack,
		BoardFactor:    board,
		MultiwayFactor: multiway,
		SkillFactor:    skill,
		StreetFactor:   street,
		Adjusted:       product,
	}
}

func sprOf(stack, pot float64) float64 {
	if pot == 0 {
		return 100
	}
	return stack / pot
}

// ClassifyTexture maps a board's wetness score onto the three buckets this
// adjustment consumes.
func ClassifyTexture(board poker.Hand) Texture {
	switch classifyWetness(board) {
	case wetnessDry:
		return Dry
	case wetnessSemiWet:
		return Semi
	default:
		return Wet
	}
}
