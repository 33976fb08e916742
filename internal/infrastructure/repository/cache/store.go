package cache

import (
	"time"

	basecache "github.com/riskibarqy/champions-tracker/internal/platform/cache"
)

// Options configures the stores behind the cached repositories.
type Options struct {
	TTL time.Duration
	// Observe receives the cache name and whether a lookup was a hit.
	Observe func(name string, hit bool)
}

func newStore[V any](name string, opts Options) *basecache.Store[V] {
	store := basecache.NewStore[V](opts.TTL)
	if opts.Observe != nil {
		store.Observe(func(hit bool) { opts.Observe(name, hit) })
	}
	return store
}
