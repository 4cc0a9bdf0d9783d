package mcts

import (
	"testing"

	"github.com/lox/pokersolver/internal/fastrng"
	"github.com/lox/pokersolver/internal/fixtures/kuhn"
)

func TestSearchProducesVisitedRoot(t *testing.T) {
	game := kuhn.New()
	search := New(game, fastrng.New(1))
	search.Run(2000)

	stats := search.Stats()
	if stats.TotalSimulations != 2000 {
		t.Fatalf("expected 2000 simulations recorded at root, got %d", stats.TotalSimulations)
	}
	if stats.NodeCount < 2 {
		t.Fatalf("expected search to expand beyond the root, got %d nodes", stats.NodeCount)
	}

	if _, ok := search.BestAction(); !ok {
		t.Fatal("expected a best action at the root")
	}
}

func TestPolicyDistributionSumsToOne(t *testing.T) {
	game := kuhn.New()
	search := New(game, fastrng.New(2))
	search.Run(1000)

	dist := search.PolicyDistribution()
	total := 0.0
	for _, p := range dist {
		total += p
	}
	if total < 0.99 || total > 1.01 {
		t.Fatalf("expected policy distribution to sum to ~1, got %f", total)
	}
}

func TestSearchLeavesGameRulesUnmodified(t *testing.T) {
	game := kuhn.New()
	search := New(game, fastrng.New(3))
	before := game.InfoSetKey()

	search.Run(500)

	if after := game.InfoSetKey(); after != before {
		t.Fatalf("search should leave the underlying game state unchanged, got %q want %q", after, before)
	}
}
