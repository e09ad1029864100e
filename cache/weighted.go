// Package cache implements the executor's materialised-table cache: a
// byte-budgeted store keyed by plan fingerprint whose eviction order is
// driven by an importance score that only ever grows, not by recency
// alone (spec §4.5, testable property 6, scenario S6).
package cache

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/colqhq/colq/columnar"
)

// Weighted is a byte-bounded cache of materialised plan results. Every
// put on an existing key bumps that key's importance; a new key is only
// admitted, possibly by evicting residents, if its importance exceeds
// the importance of the least important resident entry. Importance
// never decreases, so a table that was expensive or popular to compute
// stays resident under memory pressure longer than one that was cheap
// and touched once.
type Weighted struct {
	mu         sync.Mutex
	budget     int64
	used       int64
	importance map[string]float64
	tables     map[string]columnar.Table
	// order records admission order so leastImportant breaks importance
	// ties deterministically (earliest-admitted first) instead of
	// depending on Go's randomised map iteration.
	order  []string
	logger *logrus.Logger
}

// NewWeighted builds a cache bounded to budgetBytes. logger may be nil,
// in which case eviction events are not logged.
func NewWeighted(budgetBytes int64, logger *logrus.Logger) *Weighted {
	return &Weighted{
		budget:     budgetBytes,
		importance: make(map[string]float64),
		tables:     make(map[string]columnar.Table),
		logger:     logger,
	}
}

// Get returns the cached table for key. A hit does not alter importance
// — only Put accumulates it.
func (w *Weighted) Get(key string) (columnar.Table, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	t, ok := w.tables[key]
	return t, ok
}

// Put accumulates weight into key's importance regardless of whether
// admission ultimately succeeds — a table repeatedly requested but too
// large to fit should still be seen as important if it later does fit
// (e.g. after evictions free space). weight is typically the build's
// elapsed time or another cost-of-recomputation measure (scenario S6:
// weights 0.5 then 1.0 accumulate to 1.5). If key is already resident,
// Put only bumps importance and returns without touching the table.
func (w *Weighted) Put(key string, table columnar.Table, weight float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.importance[key] += weight

	if _, resident := w.tables[key]; resident {
		return
	}

	size := table.NumBytes()
	if size > w.budget {
		return
	}
	for w.used+size > w.budget && len(w.tables) > 0 {
		evictKey, evictImportance, ok := w.leastImportant()
		if !ok || w.importance[key] <= evictImportance {
			return
		}
		w.evict(evictKey)
	}
	w.tables[key] = table
	w.order = append(w.order, key)
	w.used += size
}

func (w *Weighted) leastImportant() (string, float64, bool) {
	var (
		minKey   string
		minScore float64
		found    bool
	)
	for _, k := range w.order {
		score := w.importance[k]
		if !found || score < minScore {
			minKey, minScore, found = k, score, true
		}
	}
	return minKey, minScore, found
}

func (w *Weighted) evict(key string) {
	size := w.tables[key].NumBytes()
	delete(w.tables, key)
	for i, k := range w.order {
		if k == key {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	w.used -= size
	if w.logger != nil {
		w.logger.WithFields(logrus.Fields{
			"evicted":        key,
			"resident_bytes": w.used,
		}).Info("cache eviction")
	}
}

// Keys returns every currently resident key, for Explain/debugging.
func (w *Weighted) Keys() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.tables))
	for k := range w.tables {
		out = append(out, k)
	}
	return out
}

// UsedBytes reports current resident byte usage.
func (w *Weighted) UsedBytes() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.used
}
