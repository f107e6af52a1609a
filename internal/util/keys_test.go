package util

import "testing"

func TestStorageKey(t *testing.T) {
	if got := StorageKey("", "car_fetch"); got != "car_fetch" {
		t.Fatalf("empty prefix: got %q", got)
	}
	if got := StorageKey("shop", "car_fetch"); got != "shop:car_fetch" {
		t.Fatalf("prefixed: got %q", got)
	}
}
