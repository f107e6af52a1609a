package fetchcache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/fetchcache/codec"
	pr "github.com/unkn0wn-root/fetchcache/provider"
)

// SetCostFunc computes the storage cost passed to the provider on writes.
// Only cost-aware providers (Ristretto) consume it.
type SetCostFunc func(key string, raw []byte) int64

// Fallback computes the live result for a cache miss.
type Fallback[V any] func(ctx context.Context) (Result[V], error)

// OptionsFallback is a Fallback that additionally receives the residual
// per-call options, with the reserved cache-control fields already stripped.
type OptionsFallback[V any] func(ctx context.Context, opts map[string]any) (Result[V], error)

// Gateway is the read-through cache API. V is the caller's value type;
// serialization is handled by a pluggable Codec[V].
type Gateway[V any] interface {
	Enabled() bool
	Close(context.Context) error

	// Retrieve returns the cached value for key, or runs fallback on a miss
	// and stores its materialized result under key with the given TTL.
	// An empty key (or a disabled gateway) bypasses the store entirely.
	// ttl <= 0 selects the gateway's default TTL.
	Retrieve(ctx context.Context, key string, ttl time.Duration, fallback Fallback[V]) (Result[V], error)

	// RetrieveOptions extracts the cache key and TTL from a per-call options
	// bag (see Normalize) and forwards the remaining options to fallback.
	RetrieveOptions(ctx context.Context, opts map[string]any, fallback OptionsFallback[V]) (Result[V], error)
}

// Options tune the gateway. Provider and Codec are required unless the
// gateway is explicitly Disabled; everything else has defaults.
type Options[V any] struct {
	// Required (unless Disabled)
	Provider pr.Provider
	Codec    c.Codec[V]

	Logger         Logger        // if nil, NopLogger is used
	Hooks          Hooks         // if nil, NopHooks is used
	DefaultTTL     time.Duration // 0 => 1h
	Disabled       bool          // true => every call bypasses the store
	KeyPrefix      string        // optional namespace; "" stores keys verbatim
	ComputeSetCost SetCostFunc   // default 1
}

func New[V any](opts Options[V]) (Gateway[V], error) {
	return newGateway[V](opts)
}
