package rpcshim

import (
	"fmt"

	"github.com/lox/pokersolver/cfr"
	"github.com/lox/pokersolver/internal/fixtures/kuhn"
)

// gameFactories maps the "game" field of a cfr_new/mcts_new request to a
// constructor for a concrete GameRules. The abstract GameRules interface
// cannot itself cross a JSON boundary, so the shim only exposes the fixed
// set of fixtures it knows how to name.
var gameFactories = map[string]func() cfr.GameRules{
	"kuhn": func() cfr.GameRules { return kuhn.New() },
}

func newGameRules(name string) (cfr.GameRules, error) {
	factory, ok := gameFactories[name]
	if !ok {
		return nil, fmt.Errorf("rpcshim: unknown game %q", name)
	}
	return factory(), nil
}
