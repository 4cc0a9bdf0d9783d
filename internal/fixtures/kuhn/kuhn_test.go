package kuhn

import (
	"context"
	"math"
	"testing"

	"github.com/lox/pokersolver/cfr"
)

func TestCFRConvergesToKuhnEquilibrium(t *testing.T) {
	game := New()
	trainer := cfr.NewTrainer(game, 2)

	if err := trainer.Run(context.Background(), 20000, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	exploit := trainer.Table().ExploitabilityEstimate()
	if exploit > 0.05 {
		t.Fatalf("expected exploitability to shrink toward zero, got %f", exploit)
	}
}

func TestPayoffZeroSum(t *testing.T) {
	game := New()
	game.ApplyChance([2]Card{King, Jack})
	game.ApplyAction(cfr.Action(Bet))
	game.ApplyAction(cfr.Action(Bet))

	p0 := game.Payoff(0)
	p1 := game.Payoff(1)
	if math.Abs(p0+p1) > 1e-9 {
		t.Fatalf("expected zero-sum payoffs, got %f and %f", p0, p1)
	}
	if p0 <= 0 {
		t.Fatalf("king should beat jack at showdown, got payoff %f", p0)
	}
}

func TestFoldForfeitsPot(t *testing.T) {
	game := New()
	game.ApplyChance([2]Card{Jack, King})
	game.ApplyAction(cfr.Action(Bet))
	game.ApplyAction(cfr.Action(Pass))

	if !game.IsTerminal() {
		t.Fatal("bet-fold should be terminal")
	}
	if got := game.Payoff(0); got != 1 {
		t.Fatalf("folded opponent should forfeit their ante, got %f", got)
	}
}
