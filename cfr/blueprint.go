package cfr

// Blueprint is an in-memory snapshot of a trainer's average strategy, keyed
// by information set. It is never written to disk: the solver produces
// strategies for the lifetime of one process, not to persist or resume
// training runs.
type Blueprint struct {
	Iterations int
	strategies map[string][]float64
}

// NewBlueprint snapshots the average strategy for every information set
// currently tracked by table.
func NewBlueprint(table *RegretTable, iterations int) *Blueprint {
	bp := &Blueprint{
		Iterations: iterations,
		strategies: make(map[string][]float64),
	}
	for i := range table.shards {
		table.shards[i].mu.RLock()
		for key, entry := range table.shards[i].entries {
			bp.strategies[key] = entry.AverageStrategy()
		}
		table.shards[i].mu.RUnlock()
	}
	return bp
}

// AverageStrategy returns the blueprint's strategy for key, or a uniform
// distribution over actionCount actions if the key was never visited
// during training.
func (bp *Blueprint) AverageStrategy(key string, actionCount int) []float64 {
	if strat, ok := bp.strategies[key]; ok {
		return strat
	}
	strat := make([]float64, actionCount)
	if actionCount == 0 {
		return strat
	}
	v := 1.0 / float64(actionCount)
	for i := range strat {
		strat[i] = v
	}
	return strat
}

// InfoSetCount returns the number of information sets in the blueprint.
func (bp *Blueprint) InfoSetCount() int {
	return len(bp.strategies)
}
