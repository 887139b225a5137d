package partition

import (
	"sync"

	"github.com/cnf/structhash"

	"github.com/stateforge/stateforge/automaton"
	"github.com/stateforge/stateforge/charset"
)

// cacheEntry remembers the content hash a Partition was built from, so a
// second call for the same (immutable) Automaton can be served without
// recomputation — the gate SPEC_FULL.md §4.3 calls for, even though a
// frozen Automaton in practice only ever needs computing once.
type cacheEntry struct {
	hash string
	p    *Partition
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[*automaton.Automaton]*cacheEntry)
)

// keyHash fingerprints the ordered list of explicit transition keys used
// anywhere in a, the way lr/earley fingerprints item sets for dedup: via
// structhash over a plain slice-of-slices of the sorted code points in
// each key. There's no reason Hash should ever fail for these inputs, but
// the API demands the error be handled.
func keyHash(keys []charset.Set) string {
	rows := make([][]int32, len(keys))
	for i, k := range keys {
		sorted := k.Sorted()
		row := make([]int32, len(sorted))
		for j, p := range sorted {
			row[j] = int32(p)
		}
		rows[i] = row
	}
	h, err := structhash.Hash(rows, 1)
	if err != nil {
		panic(err)
	}
	return h
}

// ForAutomaton returns the (possibly cached) Partition of every explicit
// transition key used anywhere in a.
func ForAutomaton(a *automaton.Automaton) *Partition {
	var keys []charset.Set
	for _, ek := range a.ExplicitKeys() {
		keys = append(keys, ek.Key)
	}
	h := keyHash(keys)

	cacheMu.RLock()
	entry, ok := cache[a]
	cacheMu.RUnlock()
	if ok && entry.hash == h {
		return entry.p
	}

	p := Build(keys)

	cacheMu.Lock()
	cache[a] = &cacheEntry{hash: h, p: p}
	cacheMu.Unlock()
	return p
}

// Invalidate drops any cached Partition for a. Builder mutation happens
// only before Freeze, at which point no Partition can yet exist for a, so
// this exists purely to make the cache-invalidation contract of
// SPEC_FULL.md §4.3 explicit and testable rather than to handle real
// invalidation traffic.
func Invalidate(a *automaton.Automaton) {
	cacheMu.Lock()
	delete(cache, a)
	cacheMu.Unlock()
}
