// Package rpcshim is a thin JSON request/response boundary over the core
// engine packages (poker, equity, cfr, mcts, eqr). It exists to give a host
// process a stable, language-neutral surface without requiring it to link
// against Go types directly. Every request that carries parameters is
// validated against an embedded JSON schema before it reaches engine code;
// the handle-only operations (cfr_exploitability, cfr_destroy,
// mcts_best_action, mcts_policy, mcts_stats, mcts_destroy) decode their
// handle field directly without a schema.
package rpcshim

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lox/pokersolver/cfr"
	"github.com/lox/pokersolver/eqr"
	"github.com/lox/pokersolver/equity"
	"github.com/lox/pokersolver/internal/fastrng"
	"github.com/lox/pokersolver/internal/handle"
	"github.com/lox/pokersolver/mcts"
	"github.com/lox/pokersolver/poker"
)

// Shim holds the handle registries and compiled schemas for a process. The
// zero value is not usable; construct with New.
type Shim struct {
	v     *validator
	cfrs  *handle.Registry[*cfr.Trainer]
	mctss *handle.Registry[*mcts.Search]
}

// New compiles the embedded schemas and returns a ready Shim.
func New() (*Shim, error) {
	v, err := newValidator()
	if err != nil {
		return nil, err
	}
	return &Shim{
		v:     v,
		cfrs:  handle.New[*cfr.Trainer](),
		mctss: handle.New[*mcts.Search](),
	}, nil
}

func parseCards(raw []string) (poker.Hand, error) {
	hand := poker.NewHand()
	for _, s := range raw {
		card, err := poker.ParseCard(s)
		if err != nil {
			return poker.Hand(0), fmt.Errorf("rpcshim: invalid card %q: %w", s, err)
		}
		if hand.HasCard(card) {
			return poker.Hand(0), fmt.Errorf("rpcshim: duplicate card %q", s)
		}
		hand.AddCard(card)
	}
	return hand, nil
}

func asStrings(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("rpcshim: expected an array of strings")
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("rpcshim: expected a string at index %d", i)
		}
		out[i] = s
	}
	return out, nil
}

// EvaluateHand implements evaluate_hand: a 7-card set maps to its packed
// HandScore.
func (s *Shim) EvaluateHand(req []byte) ([]byte, error) {
	obj, err := s.v.validate("evaluate_hand", req)
	if err != nil {
		return nil, err
	}
	cards, err := asStrings(obj["cards"])
	if err != nil {
		return nil, err
	}
	hand, err := parseCards(cards)
	if err != nil {
		return nil, err
	}
	score := poker.Evaluate7Cards(hand)
	return json.Marshal(map[string]any{
		"score":    uint32(score),
		"category": int(score.Category()),
	})
}

// Equity implements equity: a Monte Carlo estimate of hero's win/tie/loss
// rate against the requested number of random opponents.
func (s *Shim) Equity(req []byte) ([]byte, error) {
	obj, err := s.v.validate("equity", req)
	if err != nil {
		return nil, err
	}

	heroCards, err := asStrings(obj["hero"])
	if err != nil {
		return nil, err
	}
	hero, err := parseCards(heroCards)
	if err != nil {
		return nil, err
	}

	board := poker.NewHand()
	if raw, ok := obj["board"]; ok {
		boardCards, err := asStrings(raw)
		if err != nil {
			return nil, err
		}
		board, err = parseCards(boardCards)
		if err != nil {
			return nil, err
		}
	}

	opponents := int(obj["opponents"].(float64))
	iterations := int(obj["iterations"].(float64))
	var seed uint64
	if raw, ok := obj["seed"]; ok {
		seed = uint64(raw.(float64))
	}

	result, err := equity.Calculate(equity.Request{
		Hero:       hero,
		Board:      board,
		Opponents:  opponents,
		Iterations: iterations,
		BaseSeed:   seed,
	})
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[string]any{
		"equity":     result.Equity(),
		"wins":       result.Wins,
		"ties":       result.Ties,
		"losses":     result.Losses,
		"iterations": result.IterationsRun,
	})
}

// CFRNew implements cfr_new: it instantiates the named game fixture,
// wraps it in a Trainer, and returns an opaque handle.
func (s *Shim) CFRNew(req []byte) ([]byte, error) {
	obj, err := s.v.validate("cfr_new", req)
	if err != nil {
		return nil, err
	}
	rules, err := newGameRules(obj["game"].(string))
	if err != nil {
		return nil, err
	}
	players := 2
	if raw, ok := obj["players"]; ok {
		players = int(raw.(float64))
	}

	trainer := cfr.NewTrainer(rules, players)
	id := s.cfrs.Issue(trainer)
	return json.Marshal(map[string]any{"handle": id})
}

// CFRTrain implements cfr_train: it runs the trainer forward the requested
// number of iterations.
func (s *Shim) CFRTrain(req []byte) ([]byte, error) {
	obj, err := s.v.validate("cfr_train", req)
	if err != nil {
		return nil, err
	}
	trainer, err := s.cfrs.Lookup(obj["handle"].(string))
	if err != nil {
		return nil, err
	}
	iterations := int(obj["iterations"].(float64))
	if err := trainer.Run(context.Background(), iterations, nil); err != nil {
		return nil, err
	}
	return json.Marshal(map[string]any{"iteration": trainer.Iteration()})
}

// CFRExploitability implements cfr_exploitability.
func (s *Shim) CFRExploitability(req []byte) ([]byte, error) {
	var body struct {
		Handle string `json:"handle"`
	}
	if err := json.Unmarshal(req, &body); err != nil {
		return nil, fmt.Errorf("rpcshim: invalid JSON: %w", err)
	}
	trainer, err := s.cfrs.Lookup(body.Handle)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]any{
		"exploitability": trainer.Table().ExploitabilityEstimate(),
	})
}

// CFRStrategy implements cfr_strategy: the average strategy for one
// information set, keyed by the caller-supplied legal action list.
func (s *Shim) CFRStrategy(req []byte) ([]byte, error) {
	obj, err := s.v.validate("cfr_strategy", req)
	if err != nil {
		return nil, err
	}
	trainer, err := s.cfrs.Lookup(obj["handle"].(string))
	if err != nil {
		return nil, err
	}
	actions, ok := obj["legal_actions"].([]any)
	if !ok || len(actions) == 0 {
		return nil, fmt.Errorf("rpcshim: legal_actions must be a non-empty array")
	}
	key := obj["info_key"].(string)

	entry := trainer.Table().Get(key, len(actions))
	strategy := entry.AverageStrategy()

	probs := make(map[string]float64, len(actions))
	for i, a := range actions {
		probs[fmt.Sprint(a)] = strategy[i]
	}
	return json.Marshal(map[string]any{"strategy": probs})
}

// CFRDestroy implements cfr_destroy.
func (s *Shim) CFRDestroy(req []byte) error {
	var body struct {
		Handle string `json:"handle"`
	}
	if err := json.Unmarshal(req, &body); err != nil {
		return fmt.Errorf("rpcshim: invalid JSON: %w", err)
	}
	s.cfrs.Destroy(body.Handle)
	return nil
}

// MCTSNew implements mcts_new.
func (s *Shim) MCTSNew(req []byte) ([]byte, error) {
	obj, err := s.v.validate("mcts_new", req)
	if err != nil {
		return nil, err
	}
	rules, err := newGameRules(obj["game"].(string))
	if err != nil {
		return nil, err
	}
	var seed uint64
	if raw, ok := obj["seed"]; ok {
		seed = uint64(raw.(float64))
	}

	search := mcts.New(rules, fastrng.New(seed))
	id := s.mctss.Issue(search)
	return json.Marshal(map[string]any{"handle": id})
}

// MCTSSearch implements mcts_search.
func (s *Shim) MCTSSearch(req []byte) ([]byte, error) {
	obj, err := s.v.validate("mcts_search", req)
	if err != nil {
		return nil, err
	}
	search, err := s.mctss.Lookup(obj["handle"].(string))
	if err != nil {
		return nil, err
	}
	search.Run(int(obj["iterations"].(float64)))
	return json.Marshal(map[string]any{"ok": true})
}

// MCTSBestAction implements mcts_best_action.
func (s *Shim) MCTSBestAction(req []byte) ([]byte, error) {
	var body struct {
		Handle string `json:"handle"`
	}
	if err := json.Unmarshal(req, &body); err != nil {
		return nil, fmt.Errorf("rpcshim: invalid JSON: %w", err)
	}
	search, err := s.mctss.Lookup(body.Handle)
	if err != nil {
		return nil, err
	}
	action, ok := search.BestAction()
	if !ok {
		return nil, fmt.Errorf("rpcshim: mcts_best_action called before any search")
	}
	return json.Marshal(map[string]any{"action": action})
}

// MCTSPolicy implements mcts_policy.
func (s *Shim) MCTSPolicy(req []byte) ([]byte, error) {
	var body struct {
		Handle string `json:"handle"`
	}
	if err := json.Unmarshal(req, &body); err != nil {
		return nil, fmt.Errorf("rpcshim: invalid JSON: %w", err)
	}
	search, err := s.mctss.Lookup(body.Handle)
	if err != nil {
		return nil, err
	}
	dist := search.PolicyDistribution()
	probs := make(map[string]float64, len(dist))
	for action, p := range dist {
		probs[fmt.Sprint(action)] = p
	}
	return json.Marshal(map[string]any{"policy": probs})
}

// MCTSStats implements mcts_stats.
func (s *Shim) MCTSStats(req []byte) ([]byte, error) {
	var body struct {
		Handle string `json:"handle"`
	}
	if err := json.Unmarshal(req, &body); err != nil {
		return nil, fmt.Errorf("rpcshim: invalid JSON: %w", err)
	}
	search, err := s.mctss.Lookup(body.Handle)
	if err != nil {
		return nil, err
	}
	stats := search.Stats()
	return json.Marshal(map[string]any{
		"sims":       stats.TotalSimulations,
		"depth":      stats.MaxDepth,
		"nodes":      stats.NodeCount,
		"best_value": stats.BestChildAvgValue,
	})
}

// MCTSDestroy implements mcts_destroy.
func (s *Shim) MCTSDestroy(req []byte) error {
	var body struct {
		Handle string `json:"handle"`
	}
	if err := json.Unmarshal(req, &body); err != nil {
		return fmt.Errorf("rpcshim: invalid JSON: %w", err)
	}
	s.mctss.Destroy(body.Handle)
	return nil
}

// EQR implements eqr: the context-adjusted equity for a raw Monte Carlo
// estimate.
func (s *Shim) EQR(req []byte) ([]byte, error) {
	obj, err := s.v.validate("eqr", req)
	if err != nil {
		return nil, err
	}

	ctx := eqr.Context{
		Position:      eqr.Position(int(obj["position"].(float64))),
		Stack:         obj["stack"].(float64),
		Pot:           obj["pot"].(float64),
		Texture:       eqr.Texture(int(obj["texture"].(float64))),
		Opponents:     int(obj["opponents"].(float64)),
		InPosition:    obj["in_position"].(bool),
		OpponentSkill: obj["skill"].(float64),
	}
	if raw, ok := obj["street"]; ok {
		st := eqr.Street(int(raw.(float64)))
		ctx.Street = &st
	}

	result := eqr.Adjust(obj["raw"].(float64), ctx)
	return json.Marshal(result)
}
