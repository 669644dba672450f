package cache

// ScopedKeyer wraps a Keyer with a prefix so that independent contexts
// (per-project caches, test fixtures) can share one backend without key
// collisions.
//
// Example usage:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "project:atlas:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// FrameKey generates a prefixed key for frame caching.
func (k *ScopedKeyer) FrameKey(designHash, dataHash string, opts FrameKeyOpts) string {
	return k.prefix + k.inner.FrameKey(designHash, dataHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(frameHash, format string) string {
	return k.prefix + k.inner.ArtifactKey(frameHash, format)
}
