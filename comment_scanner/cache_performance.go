package comment_scanner

import (
	"sync/atomic"

	"github.com/meysamhadeli/cmtscan/comment_scanner/models"
)

// lookupCounter counts cache lookups since the manager was opened or cleared
type lookupCounter struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (lc *lookupCounter) record(hit bool) {
	if hit {
		lc.hits.Add(1)
		return
	}
	lc.misses.Add(1)
}

func (lc *lookupCounter) snapshot() models.CachePerformance {
	return models.CachePerformance{
		Hits:   lc.hits.Load(),
		Misses: lc.misses.Load(),
	}
}

func (lc *lookupCounter) reset() {
	lc.hits.Store(0)
	lc.misses.Store(0)
}

// Performance reports how many lookups of this run were served from the cache.
func (cm *CacheManager) Performance() models.CachePerformance {
	return cm.lookups.snapshot()
}
