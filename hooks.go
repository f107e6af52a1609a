package fetchcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The gateway calls them on hot paths.
type Hooks interface {
	// A lookup was satisfied from the store.
	Hit(storageKey string)

	// A lookup fell through to the fallback computation.
	Miss(storageKey string)

	// The store was skipped entirely: no key, or gateway disabled.
	// key is the caller-supplied key and may be empty.
	Bypass(key string)

	// Store read failed; the call degraded to a miss. err is a *StoreError.
	StoreReadError(storageKey string, err error)

	// Store write (or entry encode) failed; the fresh result was still
	// returned. err is a *StoreError.
	StoreWriteError(storageKey string, err error)

	// A stored entry failed to decode and was dropped before recomputing.
	EntryDecodeError(storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Hit(string)                     {}
func (NopHooks) Miss(string)                    {}
func (NopHooks) Bypass(string)                  {}
func (NopHooks) StoreReadError(string, error)   {}
func (NopHooks) StoreWriteError(string, error)  {}
func (NopHooks) EntryDecodeError(string, error) {}
