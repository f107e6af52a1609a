package util

// StorageKey joins an optional namespace prefix with a caller-supplied key.
// An empty prefix stores keys verbatim; callers own key uniqueness.
func StorageKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + ":" + key
}
