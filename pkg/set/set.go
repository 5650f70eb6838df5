package set

import (
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
)

// implement more methods exposed by hashset.Set if required
type ThreadSafeSet struct {
	set     *hashset.Set
	rwMutex sync.RWMutex
}

// NewStringSet builds a set from string items.
func NewStringSet(items ...string) *ThreadSafeSet {
	values := make([]interface{}, 0, len(items))
	for _, item := range items {
		values = append(values, item)
	}
	return &ThreadSafeSet{set: hashset.New(values...)}
}

func (t *ThreadSafeSet) Contains(items ...interface{}) bool {
	// multiple goroutine reads allowed
	t.rwMutex.RLock()
	defer t.rwMutex.RUnlock()
	return t.set.Contains(items...)
}
