package cfr

// Action is an opaque action identifier understood only by the GameRules
// implementation that produced it. The solver never inspects its contents;
// it only threads values returned by LegalActions back into ApplyAction.
type Action any

// ChanceOutcome pairs a chance event with its probability. The
// probabilities returned by GameRules.ChanceOutcomes must sum to 1.
type ChanceOutcome struct {
	Outcome     any
	Probability float64
}

// GameRules is the abstract game tree the solver traverses. An
// implementation is stateful and mutated in place by Apply/Revert; it must
// never be shared between concurrently running solvers.
type GameRules interface {
	IsTerminal() bool
	IsChanceNode() bool
	CurrentPlayer() int
	InfoSetKey() string
	LegalActions() []Action
	Payoff(player int) float64
	ChanceOutcomes() []ChanceOutcome

	ApplyAction(a Action)
	RevertAction(a Action)
	ApplyChance(outcome any)
	RevertChance(outcome any)
}
