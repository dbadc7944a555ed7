// Package asynchook wraps a Hooks implementation so its callbacks run on a
// worker pool instead of the calling goroutine, dropping events on
// backpressure rather than blocking the caller.
//
// usage:
//
//	raw := loghooks.New(slog.Default(), loghooks.Options{SelfHealEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	dc, _ := watsonspec.NewDocumentCache(watsonspec.CacheOptions{
//	    Provider: provider,
//	    Hooks:    hooks,
//	})
package asynchook

import (
	"sync"

	watsonspec "github.com/ibd1279/watsonspec"
)

type Hooks struct {
	inner watsonspec.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ watsonspec.Hooks = (*Hooks)(nil)

// New starts workers goroutines draining a queue of length qlen. workers<=0
// becomes 1; qlen<=0 becomes 1024.
func New(inner watsonspec.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting new events and waits for queued ones to drain.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SelfHeal(key, reason string) { h.try(func() { h.inner.SelfHeal(key, reason) }) }
func (h *Hooks) StoreRejected(key string)     { h.try(func() { h.inner.StoreRejected(key) }) }
func (h *Hooks) DecodeFallback(kind, want string) {
	h.try(func() { h.inner.DecodeFallback(kind, want) })
}
