package fetchcache

import (
	"reflect"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		opts     map[string]any
		wantKey  string
		wantTTL  time.Duration
		wantRest map[string]any
	}{
		{
			name:     "nil_bag",
			opts:     nil,
			wantKey:  "",
			wantTTL:  defaultEntryTTL,
			wantRest: map[string]any{},
		},
		{
			name:     "key_and_ttl_seconds",
			opts:     map[string]any{"serial": "car_fetch", "ttl": 120, "withRelated": true},
			wantKey:  "car_fetch",
			wantTTL:  120 * time.Second,
			wantRest: map[string]any{"withRelated": true},
		},
		{
			name:     "expired_wins_over_ttl",
			opts:     map[string]any{"serial": "k", "expired": 60, "ttl": 120},
			wantKey:  "k",
			wantTTL:  60 * time.Second,
			wantRest: map[string]any{},
		},
		{
			name:     "blank_key_bypasses",
			opts:     map[string]any{"serial": "   ", "ttl": 60},
			wantKey:  "",
			wantTTL:  60 * time.Second,
			wantRest: map[string]any{},
		},
		{
			name:     "non_string_key_bypasses",
			opts:     map[string]any{"serial": 42},
			wantKey:  "",
			wantTTL:  defaultEntryTTL,
			wantRest: map[string]any{},
		},
		{
			name:     "zero_ttl_defaulted",
			opts:     map[string]any{"serial": "k", "ttl": 0},
			wantKey:  "k",
			wantTTL:  defaultEntryTTL,
			wantRest: map[string]any{},
		},
		{
			name:     "negative_ttl_defaulted",
			opts:     map[string]any{"serial": "k", "expired": -10},
			wantKey:  "k",
			wantTTL:  defaultEntryTTL,
			wantRest: map[string]any{},
		},
		{
			name:     "json_number_ttl",
			opts:     map[string]any{"serial": "k", "ttl": float64(90)},
			wantKey:  "k",
			wantTTL:  90 * time.Second,
			wantRest: map[string]any{},
		},
		{
			name:     "duration_ttl",
			opts:     map[string]any{"serial": "k", "ttl": 45 * time.Second},
			wantKey:  "k",
			wantTTL:  45 * time.Second,
			wantRest: map[string]any{},
		},
		{
			name:    "passthrough_preserved",
			opts:    map[string]any{"serial": "k", "page": 2, "filter": "active"},
			wantKey: "k",
			wantTTL: defaultEntryTTL,
			wantRest: map[string]any{
				"page":   2,
				"filter": "active",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, rest := Normalize(tt.opts)
			if call.Key != tt.wantKey {
				t.Fatalf("Key = %q, want %q", call.Key, tt.wantKey)
			}
			if call.TTL != tt.wantTTL {
				t.Fatalf("TTL = %v, want %v", call.TTL, tt.wantTTL)
			}
			if !reflect.DeepEqual(rest, tt.wantRest) {
				t.Fatalf("residual = %v, want %v", rest, tt.wantRest)
			}
		})
	}
}

// The caller's bag is never mutated, even when reserved fields are present.
func TestNormalizeDoesNotMutate(t *testing.T) {
	opts := map[string]any{"serial": "k", "expired": 30, "q": "x"}
	_, rest := Normalize(opts)

	if len(opts) != 3 || opts["serial"] != "k" || opts["expired"] != 30 || opts["q"] != "x" {
		t.Fatalf("input bag mutated: %v", opts)
	}

	// Residual is a copy; writing to it must not leak back.
	rest["q"] = "changed"
	if opts["q"] != "x" {
		t.Fatalf("residual aliases the input bag")
	}
}
