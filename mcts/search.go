// Package mcts implements Monte Carlo Tree Search with UCB1 selection over
// a cfr.GameRules game tree, storing nodes in an index-addressed arena
// rather than as pointer-linked heap objects.
package mcts

import (
	"math"

	"github.com/lox/pokersolver/cfr"
	"github.com/lox/pokersolver/internal/fastrng"
)

const explorationConstant = math.Sqrt2
const maxPlayoutDepth = 100

// Stats summarizes a search tree's shape for diagnostics.
type Stats struct {
	TotalSimulations    int
	MaxDepth            int
	NodeCount           int
	BestChildAvgValue   float64
}

// applied records one step taken against GameRules during selection,
// expansion, or simulation so it can be unwound in LIFO order once that
// phase of the iteration is done.
type applied struct {
	action         cfr.Action
	hasAction      bool
	chanceOutcomes []any
}

// Search owns a GameRules instance for its entire lifetime and mutates it
// in place during each iteration, always restoring it to its starting
// state before returning from Run.
type Search struct {
	rules    cfr.GameRules
	rng      *fastrng.RNG
	nodes    []node
	maxDepth int
}

// New roots a search at the current state of rules. Any leading chance
// node (e.g. an undealt hand) is resolved immediately so every node in the
// arena represents a genuine decision point.
func New(rules cfr.GameRules, rng *fastrng.RNG) *Search {
	s := &Search{rules: rules, rng: rng}
	settleChance(s.rules, s.rng)

	root := node{parent: -1, terminal: rules.IsTerminal()}
	if !root.terminal {
		root.untried = append([]cfr.Action(nil), rules.LegalActions()...)
	}
	s.nodes = append(s.nodes, root)
	return s
}

// Run executes n MCTS iterations.
func (s *Search) Run(n int) {
	for i := 0; i < n; i++ {
		s.iterate()
	}
}

func (s *Search) iterate() {
	path := []int{0}
	var trail []applied

	cur := 0
	depth := 0
	for !s.nodes[cur].isLeaf() {
		next := s.selectUCB1(cur)
		action := s.nodes[next].action
		s.rules.ApplyAction(action)
		outcomes := settleChance(s.rules, s.rng)
		trail = append(trail, applied{action: action, hasAction: true, chanceOutcomes: outcomes})
		cur = next
		path = append(path, cur)
		depth++
	}

	if !s.nodes[cur].terminal && len(s.nodes[cur].untried) > 0 {
		untried := s.nodes[cur].untried
		idx := s.rng.Intn(len(untried))
		action := untried[idx]
		s.nodes[cur].untried = append(append([]cfr.Action(nil), untried[:idx]...), untried[idx+1:]...)

		s.rules.ApplyAction(action)
		outcomes := settleChance(s.rules, s.rng)
		trail = append(trail, applied{action: action, hasAction: true, chanceOutcomes: outcomes})

		child := node{parent: cur, action: action, hasAction: true, terminal: s.rules.IsTerminal()}
		if !child.terminal {
			child.untried = append([]cfr.Action(nil), s.rules.LegalActions()...)
		}
		childIdx := len(s.nodes)
		s.nodes = append(s.nodes, child)
		s.nodes[cur].children = append(s.nodes[cur].children, childIdx)
		cur = childIdx
		path = append(path, cur)
		depth++
	}

	if depth > s.maxDepth {
		s.maxDepth = depth
	}

	anchor := s.rules.CurrentPlayer()
	var value float64
	if s.nodes[cur].terminal {
		value = s.rules.Payoff(anchor)
	} else {
		value = s.rollout(anchor)
	}

	for i := len(trail) - 1; i >= 0; i-- {
		t := trail[i]
		for j := len(t.chanceOutcomes) - 1; j >= 0; j-- {
			s.rules.RevertChance(t.chanceOutcomes[j])
		}
		if t.hasAction {
			s.rules.RevertAction(t.action)
		}
	}

	v := value
	for i := len(path) - 1; i >= 0; i-- {
		idx := path[i]
		s.nodes[idx].visits++
		s.nodes[idx].totalValue += v
		v = -v
	}
}

func (s *Search) selectUCB1(parentIdx int) int {
	parent := &s.nodes[parentIdx]
	best := parent.children[0]
	bestScore := math.Inf(-1)
	logParent := math.Log(float64(parent.visits))

	for _, c := range parent.children {
		child := &s.nodes[c]
		if child.visits == 0 {
			return c
		}
		score := child.totalValue/float64(child.visits) + explorationConstant*math.Sqrt(logParent/float64(child.visits))
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// rollout performs a uniform random playout bounded by maxPlayoutDepth,
// reverting every step before returning so GameRules ends in the state it
// started in, and returns the terminal evaluation for anchor.
func (s *Search) rollout(anchor int) float64 {
	var trail []applied
	depth := 0

	for depth < maxPlayoutDepth && !s.rules.IsTerminal() {
		outcomes := settleChance(s.rules, s.rng)
		if len(outcomes) > 0 {
			trail = append(trail, applied{chanceOutcomes: outcomes})
		}
		if s.rules.IsTerminal() {
			break
		}
		actions := s.rules.LegalActions()
		if len(actions) == 0 {
			break
		}
		action := actions[s.rng.Intn(len(actions))]
		s.rules.ApplyAction(action)
		trail = append(trail, applied{action: action, hasAction: true})
		depth++
	}

	value := s.rules.Payoff(anchor)

	for i := len(trail) - 1; i >= 0; i-- {
		t := trail[i]
		for j := len(t.chanceOutcomes) - 1; j >= 0; j-- {
			s.rules.RevertChance(t.chanceOutcomes[j])
		}
		if t.hasAction {
			s.rules.RevertAction(t.action)
		}
	}

	return value
}

// settleChance resolves every consecutive chance node at the current
// GameRules state, sampling outcomes by their probability weight, and
// returns them in application order for the caller to revert later.
func settleChance(rules cfr.GameRules, rng *fastrng.RNG) []any {
	var outcomes []any
	for rules.IsChanceNode() {
		options := rules.ChanceOutcomes()
		if len(options) == 0 {
			break
		}
		r := rng.Float64()
		acc := 0.0
		chosen := options[len(options)-1].Outcome
		for _, o := range options {
			acc += o.Probability
			if r <= acc {
				chosen = o.Outcome
				break
			}
		}
		rules.ApplyChance(chosen)
		outcomes = append(outcomes, chosen)
	}
	return outcomes
}

// BestAction returns the root child with the highest visit count, ties
// broken by first-encountered.
func (s *Search) BestAction() (cfr.Action, bool) {
	root := &s.nodes[0]
	if len(root.children) == 0 {
		return nil, false
	}
	best := root.children[0]
	for _, c := range root.children[1:] {
		if s.nodes[c].visits > s.nodes[best].visits {
			best = c
		}
	}
	return s.nodes[best].action, true
}

// PolicyDistribution returns, for each root child action, its visit share.
func (s *Search) PolicyDistribution() map[any]float64 {
	root := &s.nodes[0]
	dist := make(map[any]float64, len(root.children))
	if root.visits == 0 {
		return dist
	}
	for _, c := range root.children {
		child := &s.nodes[c]
		dist[child.action] = float64(child.visits) / float64(root.visits)
	}
	return dist
}

// Stats reports the current tree's shape and the strongest root child's
// average value (0 when no root child has been visited yet).
func (s *Search) Stats() Stats {
	root := &s.nodes[0]
	best := 0.0
	found := false
	for _, c := range root.children {
		child := &s.nodes[c]
		if child.visits == 0 {
			continue
		}
		avg := child.totalValue / float64(child.visits)
		if !found || avg > best {
			best = avg
			found = true
		}
	}
	return Stats{
		TotalSimulations:  root.visits,
		MaxDepth:          s.maxDepth,
		NodeCount:         len(s.nodes),
		BestChildAvgValue: best,
	}
}
