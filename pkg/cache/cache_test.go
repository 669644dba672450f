package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "frame:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected miss before Set")
	}

	// Round trip
	if err := c.Set(ctx, "frame:abc", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "frame:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "payload" {
		t.Errorf("Get = %q, want %q", data, "payload")
	}

	// Zero TTL means no expiry
	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "forever"); !hit {
		t.Error("zero-TTL entry should not expire")
	}

	// Expired entries are misses
	if err := c.Set(ctx, "stale", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "stale"); hit {
		t.Error("expired entry should be a miss")
	}

	// Delete removes, deleting again is fine
	if err := c.Delete(ctx, "frame:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "frame:abc"); hit {
		t.Error("expected miss after Delete")
	}
	if err := c.Delete(ctx, "frame:abc"); err != nil {
		t.Errorf("Delete of absent key: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// FrameKey should be deterministic
	opts := FrameKeyOpts{Theme: "dark", Width: 800, Height: 600}
	if k.FrameKey("d1", "x1", opts) != k.FrameKey("d1", "x1", opts) {
		t.Error("FrameKey should be deterministic")
	}

	// FrameKey should include options in hash
	fk1 := k.FrameKey("d1", "x1", FrameKeyOpts{Theme: "dark", Width: 800})
	fk2 := k.FrameKey("d1", "x1", FrameKeyOpts{Theme: "light", Width: 800})
	if fk1 == fk2 {
		t.Error("Different FrameKeyOpts should produce different keys")
	}

	// Different inputs produce different keys
	if k.FrameKey("d1", "x1", opts) == k.FrameKey("d1", "x2", opts) {
		t.Error("Different data hashes should produce different keys")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("hash123", "json")
	ak2 := k.ArtifactKey("hash123", "svg")
	if ak1 == ak2 {
		t.Error("Different formats should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "project:atlas:")

	// All keys should be prefixed
	fk := scoped.FrameKey("d1", "x1", FrameKeyOpts{})
	if len(fk) < 14 || fk[:14] != "project:atlas:" {
		t.Errorf("ScopedKeyer FrameKey should be prefixed: %s", fk)
	}
	if fk[14:] != inner.FrameKey("d1", "x1", FrameKeyOpts{}) {
		t.Error("ScopedKeyer should delegate to the inner keyer")
	}

	ak := scoped.ArtifactKey("hash123", "json")
	if len(ak) < 14 || ak[:14] != "project:atlas:" {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", ak)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ArtifactKey("h", "json")
	want := "prefix:" + NewDefaultKeyer().ArtifactKey("h", "json")
	if key != want {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}
