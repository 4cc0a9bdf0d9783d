// Package equity computes Monte Carlo win/tie/loss equity for a hero hand
// against N random opponents, fanning the simulation count out across
// worker goroutines.
package equity

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokersolver/internal/fastrng"
	"github.com/lox/pokersolver/poker"
)

// ErrInvalidDeckState is returned when the surviving deck cannot supply
// enough cards to complete the board and deal every opponent two holes.
var ErrInvalidDeckState = errors.New("equity: not enough cards remaining in deck")

// ErrWrongHoleCardCount is returned when the hero hand does not hold
// exactly two cards.
var ErrWrongHoleCardCount = errors.New("equity: hero must hold exactly two cards")

// ErrDuplicateCard is returned when the hero and board masks share a card.
var ErrDuplicateCard = errors.New("equity: hero and board cards overlap")

// Result bundles the raw outcome counts from a simulation run.
type Result struct {
	Wins           uint64
	Ties           uint64
	Losses         uint64
	IterationsRun  uint64
	HeroCategory   poker.HoleCardCategory
	workerOutcomes []float64 // per-iteration hero equity contribution, for confidence intervals
}

// Equity returns (wins + ties/2) / iterations_run.
func (r Result) Equity() float64 {
	if r.IterationsRun == 0 {
		return 0
	}
	return (float64(r.Wins) + float64(r.Ties)/2) / float64(r.IterationsRun)
}

// Outcomes returns, for callers that need it (e.g. a confidence interval),
// the per-iteration hero equity contribution (1, 0.5, or 0).
func (r Result) Outcomes() []float64 {
	return r.workerOutcomes
}

// Request describes one equity query.
type Request struct {
	Hero        poker.Hand
	Board       poker.Hand
	Opponents   int
	Iterations  int
	BaseSeed    uint64
	WorkerCount int // 0 selects runtime.NumCPU()
}

// Calculate runs Request.Iterations Monte Carlo rollouts split evenly
// across parallel workers, each with its own FastRNG seeded from
// BaseSeed+workerIndex, and sums the results.
func Calculate(req Request) (Result, error) {
	boardCount := req.Board.CountCards()
	if req.Hero.CountCards() != 2 {
		return Result{}, ErrWrongHoleCardCount
	}
	if req.Hero&req.Board != 0 {
		return Result{}, ErrDuplicateCard
	}
	if req.Opponents < 1 {
		req.Opponents = 1
	}
	dead := req.Hero | req.Board
	need := (5 - boardCount) + 2*req.Opponents
	if 52-dead.CountCards() < need {
		return Result{}, ErrInvalidDeckState
	}
	heroCategory := poker.CategorizeHand(req.Hero)
	if req.Iterations <= 0 {
		return Result{IterationsRun: 0, HeroCategory: heroCategory}, nil
	}

	workers := req.WorkerCount
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > req.Iterations {
		workers = req.Iterations
	}

	per := req.Iterations / workers
	remainder := req.Iterations % workers

	results := make([]Result, workers)
	g := new(errgroup.Group)

	for w := 0; w < workers; w++ {
		w := w
		n := per
		if w < remainder {
			n++
		}
		if n == 0 {
			continue
		}
		g.Go(func() error {
			rng := fastrng.New(req.BaseSeed + uint64(w))
			results[w] = simulate(req.Hero, req.Board, req.Opponents, boardCount, n, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, r := range results {
		total.Wins += r.Wins
		total.Ties += r.Ties
		total.Losses += r.Losses
		total.IterationsRun += r.IterationsRun
		total.workerOutcomes = append(total.workerOutcomes, r.workerOutcomes...)
	}
	total.HeroCategory = heroCategory
	return total, nil
}

func simulate(hero, board poker.Hand, opponents, boardCount, iterations int, rng *fastrng.RNG) Result {
	deck := poker.NewDeckExcluding(rng, hero|board)

	boardSlots := 5 - boardCount
	need := boardSlots + 2*opponents
	outcomes := make([]float64, 0, iterations)
	var wins, ties, losses uint64

	for i := 0; i < iterations; i++ {
		deck.Shuffle()
		drawn := deck.Deal(need)

		idx := 0
		finalBoard := board
		for s := 0; s < boardSlots; s++ {
			finalBoard.AddCard(drawn[idx])
			idx++
		}

		heroHand := hero | finalBoard
		heroScore := poker.Evaluate7Cards(heroHand)

		heroBeatsAll := true
		tied := false
		for o := 0; o < opponents; o++ {
			oppHand := poker.NewHand(drawn[idx], drawn[idx+1]) | finalBoard
			idx += 2
			oppScore := poker.Evaluate7Cards(oppHand)
			switch poker.CompareHands(heroScore, oppScore) {
			case -1:
				heroBeatsAll = false
			case 0:
				tied = true
			}
		}

		switch {
		case !heroBeatsAll:
			losses++
			outcomes = append(outcomes, 0)
		case tied:
			ties++
			outcomes = append(outcomes, 0.5)
		default:
			wins++
			outcomes = append(outcomes, 1)
		}
	}

	return Result{Wins: wins, Ties: ties, Losses: losses, IterationsRun: uint64(iterations), workerOutcomes: outcomes}
}
