// Package fetchcache implements a read-through cache gateway placed in front
// of a data-access fetch. The caller supplies a cache key, a TTL and a
// fallback computation; the gateway consults a byte store first and only runs
// the fallback on a miss, then populates the store with a time-bounded entry.
//
// Components:
//   - Provider: byte store with TTL (e.g. Redis, Ristretto, BigCache).
//   - Codec[V]: (de)serializes V <-> []byte.
//   - Result[V]: one-method capability satisfied by live fetch results and by
//     reconstructed cache hits, so callers cannot tell a hit from a miss.
//
// Caching is best-effort by design: store read failures and corrupt entries
// degrade to a recompute, store write failures are reported but never fail
// the call. Only fallback errors reach the caller.
//
// There is no single-flight guarantee: two concurrent misses on the same key
// each run the fallback and each write the entry (last writer wins). Hosts
// that need deduplication must layer it on top.
//
// Read-through pattern:
//
//	res, err := gw.Retrieve(ctx, "car_fetch", 0, func(ctx context.Context) (fetchcache.Result[Car], error) {
//	    return fetchcache.ResultFunc[Car](func(ctx context.Context) (Car, error) {
//	        return loadCarFromDB(ctx)
//	    }), nil
//	})
package fetchcache
