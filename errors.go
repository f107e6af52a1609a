package fetchcache

import (
	"errors"
	"fmt"
)

// Configuration errors. New fails with these when a required collaborator is
// missing while the gateway is not explicitly disabled.
var (
	ErrNoProvider = errors.New("fetchcache: provider is required")
	ErrNoCodec    = errors.New("fetchcache: codec is required")
)

// StoreError describes a degraded store interaction. It never reaches the
// caller of Retrieve; it is delivered through Hooks so hosts can count and
// inspect cache-layer malfunctions.
type StoreError struct {
	Op  string // "get", "set" or "encode"
	Key string // storage key (prefix applied)
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("fetchcache: store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
