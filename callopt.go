package fetchcache

import (
	"strings"
	"time"
)

// Reserved per-call option names. They control caching only and are stripped
// before the residual options reach the fallback.
const (
	OptionSerial  = "serial"  // cache key (string)
	OptionExpired = "expired" // TTL in seconds
	OptionTTL     = "ttl"     // TTL in seconds; "expired" wins when both are set
)

// Call is the cache-control portion of a per-call options bag.
// A zero Key means caching is bypassed for the call.
type Call struct {
	Key string
	TTL time.Duration
}

// Normalize splits an options bag into cache controls and residual
// pass-through options. The input map is never mutated; the residual is a
// derived copy with the reserved fields removed.
//
// A missing, blank, or non-string "serial" is a valid bypass state, not an
// error. A missing or non-positive TTL falls back to the 1h default.
func Normalize(opts map[string]any) (Call, map[string]any) {
	call := Call{TTL: defaultEntryTTL}
	residual := make(map[string]any, len(opts))
	for name, v := range opts {
		switch name {
		case OptionSerial:
			if s, ok := v.(string); ok {
				call.Key = strings.TrimSpace(s)
			}
		case OptionExpired, OptionTTL:
			// resolved below so "expired" precedence holds regardless of map order
		default:
			residual[name] = v
		}
	}
	if ttl, ok := ttlOption(opts[OptionExpired]); ok {
		call.TTL = ttl
	} else if ttl, ok := ttlOption(opts[OptionTTL]); ok {
		call.TTL = ttl
	}
	return call, residual
}

// ttlOption coerces the loosely typed TTL option into a duration.
// Integer kinds and float64 (JSON numbers) are seconds; a time.Duration is
// taken as-is. Non-positive and unknown kinds are rejected.
func ttlOption(v any) (time.Duration, bool) {
	var d time.Duration
	switch n := v.(type) {
	case nil:
		return 0, false
	case time.Duration:
		d = n
	case int:
		d = time.Duration(n) * time.Second
	case int32:
		d = time.Duration(n) * time.Second
	case int64:
		d = time.Duration(n) * time.Second
	case uint:
		d = time.Duration(n) * time.Second
	case uint32:
		d = time.Duration(n) * time.Second
	case uint64:
		d = time.Duration(n) * time.Second
	case float64:
		d = time.Duration(n * float64(time.Second))
	case float32:
		d = time.Duration(float64(n) * float64(time.Second))
	default:
		return 0, false
	}
	if d <= 0 {
		return 0, false
	}
	return d, true
}
