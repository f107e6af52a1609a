package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/fetchcache"
)

type Options struct {
	// Sampling to avoid floods on hot paths; 0/1 = log all.
	HitEvery  uint64
	MissEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	hitCtr  atomic.Uint64
	missCtr atomic.Uint64
}

var _ fetchcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Hit(storageKey string) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("fetchcache.hit", "key", h.redact(storageKey))
}

func (h *Hooks) Miss(storageKey string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("fetchcache.miss", "key", h.redact(storageKey))
}

func (h *Hooks) Bypass(key string) {
	if h.l == nil {
		return
	}
	h.l.Debug("fetchcache.bypass", "key", h.redact(key))
}

func (h *Hooks) StoreReadError(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("fetchcache.store_read_error",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) StoreWriteError(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("fetchcache.store_write_error",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) EntryDecodeError(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("fetchcache.entry_decode_error",
		"key", h.redact(storageKey),
		"err", err)
}
