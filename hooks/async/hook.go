// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/fetchcache"
//	"github.com/unkn0wn-root/fetchcache/codec"
//	"github.com/unkn0wn-root/fetchcache/hooks/async"
//	"github.com/unkn0wn-root/fetchcache/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    HitEvery:  100, // sample logs: ~every 100th hit
//	    MissEvery: 10,  // ~every 10th miss
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	gw, _ := fetchcache.New[Car](fetchcache.Options[Car]{
//	    Provider: provider,
//	    Codec:    codec.JSON[Car]{},
//	    Hooks:    hooks, // or `raw` if you don’t want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/fetchcache"
)

type Hooks struct {
	inner fetchcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ fetchcache.Hooks = (*Hooks)(nil)

func New(inner fetchcache.Hooks, workers, qlen int) *Hooks {
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

func (h *Hooks) Hit(k string)    { h.try(func() { h.inner.Hit(k) }) }
func (h *Hooks) Miss(k string)   { h.try(func() { h.inner.Miss(k) }) }
func (h *Hooks) Bypass(k string) { h.try(func() { h.inner.Bypass(k) }) }
func (h *Hooks) StoreReadError(k string, err error) {
	h.try(func() { h.inner.StoreReadError(k, err) })
}
func (h *Hooks) StoreWriteError(k string, err error) {
	h.try(func() { h.inner.StoreWriteError(k, err) })
}
func (h *Hooks) EntryDecodeError(k string, err error) {
	h.try(func() { h.inner.EntryDecodeError(k, err) })
}
