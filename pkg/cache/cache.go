// Package cache provides caching for rendered figures.
//
// # Overview
//
// Rendering a figure is deterministic: the same design, data, and render
// options always produce the same frame, and the same frame always encodes
// to the same artifact bytes. That makes both stages cacheable by content
// hash. The [Cache] interface abstracts the storage backend ([FileCache]
// for the CLI, [NullCache] when caching is disabled), and the [Keyer]
// interface turns stage inputs into stable cache keys.
//
// # Usage
//
//	c, err := cache.NewFileCache(dir)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.FrameKey(designHash, dataHash, cache.FrameKeyOpts{
//		Theme: "dark",
//		Width: 800, Height: 600,
//	})
//	if data, hit, _ := c.Get(ctx, key); hit {
//		// reuse cached frame
//	}
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached stage. Frames depend only on hashed inputs, so
// expiry exists to bound disk usage rather than to invalidate.
const (
	// TTLFrame is the lifetime of cached frame primitive streams.
	TTLFrame = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached encoded artifacts.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage backend for rendered results.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A zero or negative ttl
	// stores the value without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// FrameKeyOpts captures the render options that affect frame output.
// Two runs with equal design and data hashes but different options must
// produce different keys.
type FrameKeyOpts struct {
	Theme    string  `json:"theme"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Measurer string  `json:"measurer"`
}

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// FrameKey generates a key for a rendered frame from the design hash,
	// the data hash, and the render options.
	FrameKey(designHash, dataHash string, opts FrameKeyOpts) string

	// ArtifactKey generates a key for an encoded artifact from the frame
	// hash and the output format.
	ArtifactKey(frameHash, format string) string
}

// DefaultKeyer generates versioned content-hash keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// Key prefixes carry a version so that incompatible format changes
// invalidate old entries instead of decoding them.
const (
	frameKeyPrefix    = "frame:v1"
	artifactKeyPrefix = "artifact:v1"
)

// FrameKey generates a key for a rendered frame.
func (k *DefaultKeyer) FrameKey(designHash, dataHash string, opts FrameKeyOpts) string {
	return hashKey(frameKeyPrefix, designHash, dataHash, opts)
}

// ArtifactKey generates a key for an encoded artifact.
func (k *DefaultKeyer) ArtifactKey(frameHash, format string) string {
	return hashKey(artifactKeyPrefix, frameHash, format)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
