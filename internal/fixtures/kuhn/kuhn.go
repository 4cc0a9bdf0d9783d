// Package kuhn implements three-card Kuhn poker as a concrete
// cfr.GameRules, used to exercise the solver against a game small enough
// that its Nash equilibrium is known in closed form.
package kuhn

import "github.com/lox/pokersolver/cfr"

// Card ranks the three Kuhn cards, Jack low through King high.
type Card int

const (
	Jack Card = iota
	Queen
	King
)

// Action is either Pass (check/fold) or Bet (bet/call).
type Action int

const (
	Pass Action = iota
	Bet
)

// Game is a single hand of Kuhn poker between two players. Apply/Revert
// mutate the hand in place, matching the cfr.GameRules contract.
type Game struct {
	hands   [2]Card
	history []Action
	dealt   bool
}

// New returns a fresh, undealt Kuhn hand. Deal the hole cards via the
// chance-node machinery before traversing it.
func New() *Game {
	return &Game{}
}

func (g *Game) IsChanceNode() bool {
	return !g.dealt
}

// ChanceOutcomes enumerates all 6 ordered deals of 2 cards from the 3-card
// deck, each equally likely.
func (g *Game) ChanceOutcomes() []cfr.ChanceOutcome {
	outcomes := make([]cfr.ChanceOutcome, 0, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			outcomes = append(outcomes, cfr.ChanceOutcome{
				Outcome:     [2]Card{Card(i), Card(j)},
				Probability: 1.0 / 6.0,
			})
		}
	}
	return outcomes
}

func (g *Game) ApplyChance(outcome any) {
	g.hands = outcome.([2]Card)
	g.dealt = true
}

func (g *Game) RevertChance(outcome any) {
	g.dealt = false
	g.hands = [2]Card{}
}

func (g *Game) IsTerminal() bool {
	if !g.dealt {
		return false
	}
	switch len(g.history) {
	case 0, 1:
		return false
	case 2:
		// "bp" and "bb" are terminal; "pb" continues to a third action.
		return g.history[0] == Bet || g.history[1] == Pass
	default:
		return true
	}
}

func (g *Game) foldedBy() (folded bool, seat int) {
	h := g.history
	if len(h) == 0 || h[len(h)-1] != Pass {
		return false, -1
	}
	for i := 0; i < len(h)-1; i++ {
		if h[i] == Bet {
			return true, (len(h) - 1) % 2
		}
	}
	return false, -1
}

func (g *Game) CurrentPlayer() int {
	return len(g.history) % 2
}

func (g *Game) LegalActions() []cfr.Action {
	return []cfr.Action{cfr.Action(Pass), cfr.Action(Bet)}
}

func (g *Game) InfoSetKey() string {
	player := g.CurrentPlayer()
	key := []byte{byte('A' + g.hands[player])}
	for _, a := range g.history {
		if a == Pass {
			key = append(key, 'p')
		} else {
			key = append(key, 'b')
		}
	}
	return string(key)
}

func (g *Game) ApplyAction(a cfr.Action) {
	g.history = append(g.history, a.(Action))
}

func (g *Game) RevertAction(a cfr.Action) {
	g.history = g.history[:len(g.history)-1]
}

// Payoff returns the net chip result for player at a terminal node. Both
// players ante 1 chip; a bet costs 1 more.
func (g *Game) Payoff(player int) float64 {
	bets := [2]float64{1, 1}
	for i, a := range g.history {
		if a == Bet {
			bets[i%2]++
		}
	}

	if folded, seat := g.foldedBy(); folded {
		winner := 1 - seat
		if winner == player {
			return bets[1-player]
		}
		return -bets[player]
	}

	winner := 0
	if g.hands[1] > g.hands[0] {
		winner = 1
	}
	if winner == player {
		return bets[1-player]
	}
	return -bets[player]
}
