package mcts

import "github.com/lox/pokersolver/cfr"

// node is stored by value in Search.nodes; children and parent are arena
// indices rather than pointers so the whole tree lives in one contiguous
// slice and never needs per-node heap allocation beyond growing that slice.
type node struct {
	parent    int
	children  []int
	action    cfr.Action
	hasAction bool
	visits    int
	totalValue float64
	untried   []cfr.Action
	terminal  bool
}

func (n *node) isLeaf() bool {
	return len(n.untried) > 0 || len(n.children) == 0
}
