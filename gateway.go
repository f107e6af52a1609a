package fetchcache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/fetchcache/codec"
	pr "github.com/unkn0wn-root/fetchcache/provider"

	"github.com/unkn0wn-root/fetchcache/internal/util"
)

const defaultEntryTTL = time.Hour

type gateway[V any] struct {
	provider       pr.Provider
	codec          c.Codec[V]
	log            Logger
	hooks          Hooks
	enabled        bool
	defaultTTL     time.Duration
	keyPrefix      string
	computeSetCost SetCostFunc
}

func newGateway[V any](opts Options[V]) (*gateway[V], error) {
	// A gateway that silently never hits would be a behavioral surprise, so
	// missing collaborators are fatal unless bypass was asked for explicitly.
	if !opts.Disabled {
		if opts.Provider == nil {
			return nil, ErrNoProvider
		}
		if opts.Codec == nil {
			return nil, ErrNoCodec
		}
	}

	g := &gateway[V]{
		provider:  opts.Provider,
		codec:     opts.Codec,
		enabled:   !opts.Disabled,
		keyPrefix: opts.KeyPrefix,
	}

	// defaults
	g.log = coalesce[Logger](opts.Logger, NopLogger{})
	g.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	g.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, defaultEntryTTL)

	if opts.ComputeSetCost != nil {
		g.computeSetCost = opts.ComputeSetCost
	} else {
		g.computeSetCost = func(_ string, _ []byte) int64 { return 1 }
	}

	return g, nil
}

func (g *gateway[V]) Enabled() bool { return g.enabled }

func (g *gateway[V]) Close(ctx context.Context) error {
	if g.provider != nil {
		return g.provider.Close(ctx)
	}
	return nil
}

func (g *gateway[V]) Retrieve(ctx context.Context, key string, ttl time.Duration, fallback Fallback[V]) (Result[V], error) {
	if !g.enabled || key == "" {
		g.hooks.Bypass(key)
		return fallback(ctx)
	}
	if ttl <= 0 {
		ttl = g.defaultTTL
	}

	k := util.StorageKey(g.keyPrefix, key)
	if v, ok := g.lookup(ctx, k); ok {
		g.hooks.Hit(k)
		return materialized[V]{v: v}, nil
	}
	g.hooks.Miss(k)

	res, err := fallback(ctx)
	if err != nil {
		return nil, err
	}
	v, err := res.Materialize(ctx)
	if err != nil {
		return nil, err
	}

	g.store(ctx, k, v, ttl)

	// Return the snapshot that was stored, not the live wrapper, so the miss
	// path and later hits materialize to the identical shape.
	return materialized[V]{v: v}, nil
}

func (g *gateway[V]) RetrieveOptions(ctx context.Context, opts map[string]any, fallback OptionsFallback[V]) (Result[V], error) {
	call, residual := Normalize(opts)
	return g.Retrieve(ctx, call.Key, call.TTL, func(ctx context.Context) (Result[V], error) {
		return fallback(ctx, residual)
	})
}

// lookup reads and decodes one entry. Store read errors and corrupt entries
// both degrade to a miss; they never surface to the caller.
func (g *gateway[V]) lookup(ctx context.Context, storageKey string) (V, bool) {
	var zero V
	raw, ok, err := g.provider.Get(ctx, storageKey)
	if err != nil {
		serr := &StoreError{Op: "get", Key: storageKey, Err: err}
		g.hooks.StoreReadError(storageKey, serr)
		g.log.Warn("store read failed; treating as miss", Fields{"key": storageKey, "err": err})
		return zero, false
	}
	if !ok {
		return zero, false
	}
	v, err := g.codec.Decode(raw)
	if err != nil {
		_ = g.provider.Del(ctx, storageKey) // self-heal corrupt
		g.hooks.EntryDecodeError(storageKey, err)
		g.log.Warn("corrupt cache entry dropped; recomputing", Fields{"key": storageKey, "err": err})
		return zero, false
	}
	return v, true
}

// store writes one entry best-effort. Encode and write failures are reported
// and swallowed; the freshly computed value is returned to the caller anyway.
func (g *gateway[V]) store(ctx context.Context, storageKey string, v V, ttl time.Duration) {
	raw, err := g.codec.Encode(v)
	if err != nil {
		serr := &StoreError{Op: "encode", Key: storageKey, Err: err}
		g.hooks.StoreWriteError(storageKey, serr)
		g.log.Warn("entry encode failed; result not cached", Fields{"key": storageKey, "err": err})
		return
	}
	ok, err := g.provider.Set(ctx, storageKey, raw, g.computeSetCost(storageKey, raw), ttl)
	if err != nil {
		serr := &StoreError{Op: "set", Key: storageKey, Err: err}
		g.hooks.StoreWriteError(storageKey, serr)
		g.log.Warn("store write failed; result not cached", Fields{"key": storageKey, "err": err})
		return
	}
	if !ok {
		g.log.Debug("store write rejected by provider (pressure)", Fields{"key": storageKey})
	}
}
