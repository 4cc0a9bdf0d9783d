package cfr

import "sync"

// RegretEntry accumulates regrets and strategy sums for one information
// set. Values are kept in slices indexed by action position to avoid map
// churn during traversal.
type RegretEntry struct {
	RegretSum   []float64
	StrategySum []float64
	mutex       sync.Mutex
}

// RegretUpdateOptions configures how an Update call folds new regret and
// strategy mass into the entry.
type RegretUpdateOptions struct {
	ClampNegativeRegrets bool // CFR+
	LinearAveraging      bool // weight = iteration
	Iteration            int
}

func (e *RegretEntry) ensureSize(n int) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if len(e.RegretSum) >= n {
		return
	}
	missing := n - len(e.RegretSum)
	e.RegretSum = append(e.RegretSum, make([]float64, missing)...)
	e.StrategySum = append(e.StrategySum, make([]float64, missing)...)
}

// Strategy returns the current regret-matching distribution: each action's
// probability is proportional to its positive regret, or uniform when all
// regrets are non-positive.
func (e *RegretEntry) Strategy() []float64 {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	strat := make([]float64, len(e.RegretSum))
	total := 0.0
	for i, r := range e.RegretSum {
		if r > 0 {
			strat[i] = r
			total += r
		}
	}
	if total <= 0 {
		v := 1.0 / float64(len(strat))
		for i := range strat {
			strat[i] = v
		}
		return strat
	}
	for i := range strat {
		strat[i] /= total
	}
	return strat
}

// Update folds a new regret vector and the strategy that produced it into
// the entry's running sums. The strategy sum accumulates strategy[a] *
// t/(t+1) under linear averaging, with no reach-probability factor: reach
// weighting only ever applies to regrets, never to the strategy sum.
func (e *RegretEntry) Update(regret, strategy []float64, opts RegretUpdateOptions) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	weight := 1.0
	if opts.LinearAveraging {
		iter := opts.Iteration
		if iter <= 0 {
			iter = 1
		}
		t := float64(iter)
		weight = t / (t + 1)
	}

	for i := range regret {
		e.RegretSum[i] += regret[i]
		if opts.ClampNegativeRegrets && e.RegretSum[i] < 0 {
			e.RegretSum[i] = 0
		}
		e.StrategySum[i] += weight * strategy[i]
	}
}

// AverageStrategy returns the normalised average strategy accumulated over
// every visit, or uniform when the entry has never accumulated any mass.
func (e *RegretEntry) AverageStrategy() []float64 {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	strat := make([]float64, len(e.StrategySum))
	total := 0.0
	for _, s := range e.StrategySum {
		total += s
	}
	if total <= 0 {
		v := 1.0 / float64(len(strat))
		for i := range strat {
			strat[i] = v
		}
		return strat
	}
	for i := range strat {
		strat[i] = e.StrategySum[i] / total
	}
	return strat
}

func (e *RegretEntry) discount(alphaInv, betaInv float64) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	for i := range e.RegretSum {
		e.RegretSum[i] *= alphaInv
	}
	for i := range e.StrategySum {
		e.StrategySum[i] *= betaInv
	}
}

const regretTableShardCount = 64
const regretTableShardMask = regretTableShardCount - 1

type regretShard struct {
	mu      sync.RWMutex
	entries map[string]*RegretEntry
}

// RegretTable maintains the information set regret entries for a solver
// run, sharded to keep lock contention low if a caller chooses to run
// multiple self-play tables against one shared table.
type RegretTable struct {
	shards [regretTableShardCount]regretShard
}

// NewRegretTable returns an empty table ready for use.
func NewRegretTable() *RegretTable {
	t := &RegretTable{}
	for i := range t.shards {
		t.shards[i].entries = make(map[string]*RegretEntry)
	}
	return t
}

// Get returns the entry for key, creating it sized for actionCount actions
// if it does not already exist.
func (t *RegretTable) Get(key string, actionCount int) *RegretEntry {
	shard := t.shardFor(key)

	shard.mu.RLock()
	entry, ok := shard.entries[key]
	shard.mu.RUnlock()
	if ok {
		entry.ensureSize(actionCount)
		return entry
	}

	shard.mu.Lock()
	defer shard.mu.Unlock()
	if entry, ok = shard.entries[key]; ok {
		entry.ensureSize(actionCount)
		return entry
	}
	entry = &RegretEntry{}
	entry.ensureSize(actionCount)
	shard.entries[key] = entry
	return entry
}

// Lookup returns the entry for key without creating it.
func (t *RegretTable) Lookup(key string) (*RegretEntry, bool) {
	shard := t.shardFor(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	entry, ok := shard.entries[key]
	return entry, ok
}

// Size returns the number of information sets tracked.
func (t *RegretTable) Size() int {
	total := 0
	for i := range t.shards {
		t.shards[i].mu.RLock()
		total += len(t.shards[i].entries)
		t.shards[i].mu.RUnlock()
	}
	return total
}

// Discount scales every regret sum by alphaInv and every strategy sum by
// betaInv in place, applied every 100 iterations per the CFR+ schedule.
func (t *RegretTable) Discount(alphaInv, betaInv float64) {
	for i := range t.shards {
		t.shards[i].mu.RLock()
		for _, e := range t.shards[i].entries {
			e.discount(alphaInv, betaInv)
		}
		t.shards[i].mu.RUnlock()
	}
}

// ExploitabilityEstimate returns the mean positive regret across every
// tracked information set, an ordinal convergence proxy rather than a true
// best-response exploitability measure.
func (t *RegretTable) ExploitabilityEstimate() float64 {
	var sum float64
	var keys int
	for i := range t.shards {
		t.shards[i].mu.RLock()
		for _, e := range t.shards[i].entries {
			e.mutex.Lock()
			for _, r := range e.RegretSum {
				if r > 0 {
					sum += r
				}
			}
			e.mutex.Unlock()
			keys++
		}
		t.shards[i].mu.RUnlock()
	}
	if keys == 0 {
		return 0
	}
	return sum / float64(keys)
}

func (t *RegretTable) shardFor(key string) *regretShard {
	return &t.shards[hashKey(key)&regretTableShardMask]
}

func hashKey(key string) uint32 {
	const offset32 = 2166136261
	const prime32 = 16777619
	var hash uint32 = offset32
	for i := 0; i < len(key); i++ {
		hash ^= uint32(key[i])
		hash *= prime32
	}
	return hash
}
