package cfr

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// TraversalStats tracks per-iteration tree-walk statistics for progress
// reporting.
type TraversalStats struct {
	NodesVisited  int64
	TerminalNodes int64
	MaxDepth      int
	IterationTime time.Duration
}

// Progress is reported to the caller-supplied callback after each
// completed iteration.
type Progress struct {
	Iteration int
	InfoSets  int
	Stats     TraversalStats
}

const (
	defaultDiscountEvery = 100
	discountAlpha        = 1.5
	discountBeta         = 0.5
	discountAlphaI       = 1.0 / discountAlpha
	discountBetaI        = 1.0 / discountBeta
)

// Trainer runs CFR+ with linear averaging against a single GameRules
// instance. GameRules is mutated in place for the life of the trainer; it
// must not be shared with any other trainer.
type Trainer struct {
	rules         GameRules
	table         *RegretTable
	players       int
	discountEvery int
	iteration     int
	stats         TraversalStats
	clock         quartz.Clock
}

// NewTrainer returns a trainer bound to rules, tracking regrets for the
// given number of players (2 for heads-up).
func NewTrainer(rules GameRules, players int) *Trainer {
	if players < 2 {
		players = 2
	}
	return &Trainer{
		rules:         rules,
		table:         NewRegretTable(),
		players:       players,
		discountEvery: defaultDiscountEvery,
		clock:         quartz.NewReal(),
	}
}

// SetDiscountEvery overrides the CFR+ discount interval (in iterations).
// Values less than 1 disable discounting entirely.
func (tr *Trainer) SetDiscountEvery(n int) {
	tr.discountEvery = n
}

// SetClock overrides the trainer's time source, primarily so tests can
// inject a quartz.Mock and assert on IterationTime deterministically.
func (tr *Trainer) SetClock(clock quartz.Clock) {
	tr.clock = clock
}

// Table exposes the trainer's regret table, primarily for building a
// Blueprint after training completes.
func (tr *Trainer) Table() *RegretTable {
	return tr.table
}

// Iteration returns the last completed iteration count.
func (tr *Trainer) Iteration() int {
	return tr.iteration
}

// Run executes iterations full CFR+ passes, one per player per iteration,
// calling progress (if non-nil) after each iteration completes. It returns
// early if ctx is cancelled.
func (tr *Trainer) Run(ctx context.Context, iterations int, progress func(Progress)) error {
	for i := 1; i <= iterations; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		start := tr.clock.Now()
		tr.iteration = i
		tr.stats = TraversalStats{}

		for player := 0; player < tr.players; player++ {
			tr.traverse(player, 1, 1, 0)
		}

		if tr.discountEvery > 0 && i%tr.discountEvery == 0 {
			tr.table.Discount(discountAlphaI, discountBetaI)
		}

		tr.stats.IterationTime = tr.clock.Since(start)
		if progress != nil {
			progress(Progress{Iteration: i, InfoSets: tr.table.Size(), Stats: tr.stats})
		}
	}
	return nil
}

// traverse implements the per-player CFR+ recursion described by the
// solver's design: player nodes update regret and strategy sums for the
// target player, opponent nodes only propagate reach probability, and
// chance nodes average over outcomes weighted by their probability.
func (tr *Trainer) traverse(target int, reachPlayer, reachOthers float64, depth int) float64 {
	tr.stats.NodesVisited++
	if depth > tr.stats.MaxDepth {
		tr.stats.MaxDepth = depth
	}

	if tr.rules.IsTerminal() {
		tr.stats.TerminalNodes++
		return tr.rules.Payoff(target)
	}

	if tr.rules.IsChanceNode() {
		total := 0.0
		for _, outcome := range tr.rules.ChanceOutcomes() {
			tr.rules.ApplyChance(outcome.Outcome)
			u := tr.traverse(target, reachPlayer, reachOthers*outcome.Probability, depth+1)
			tr.rules.RevertChance(outcome.Outcome)
			total += outcome.Probability * u
		}
		return total
	}

	current := tr.rules.CurrentPlayer()
	actions := tr.rules.LegalActions()
	if len(actions) == 0 {
		tr.stats.TerminalNodes++
		return tr.rules.Payoff(target)
	}

	key := tr.rules.InfoSetKey()
	entry := tr.table.Get(key, len(actions))
	strategy := entry.Strategy()

	if current == target {
		util := make([]float64, len(actions))
		nodeUtil := 0.0
		for i, a := range actions {
			tr.rules.ApplyAction(a)
			util[i] = tr.traverse(target, reachPlayer*strategy[i], reachOthers, depth+1)
			tr.rules.RevertAction(a)
			nodeUtil += strategy[i] * util[i]
		}

		regrets := make([]float64, len(actions))
		for i := range actions {
			regrets[i] = reachOthers * (util[i] - nodeUtil)
		}
		entry.Update(regrets, strategy, RegretUpdateOptions{
			ClampNegativeRegrets: true,
			LinearAveraging:      true,
			Iteration:            tr.iteration,
		})
		return nodeUtil
	}

	nodeUtil := 0.0
	for i, a := range actions {
		tr.rules.ApplyAction(a)
		u := tr.traverse(target, reachPlayer, reachOthers*strategy[i], depth+1)
		tr.rules.RevertAction(a)
		nodeUtil += strategy[i] * u
	}
	return nodeUtil
}
