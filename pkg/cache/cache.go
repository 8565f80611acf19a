// Package cache provides caching for computed layouts and loaded templates.
//
// Determinism makes the compute path an ideal cache target: the same
// template content and the same dials always produce the same result, so a
// cache entry never goes stale on its own. Entries are keyed by a SHA-256
// hash of the template content plus every dial that affects the output.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind. Compute results are pure functions of their
// key, so the TTL only bounds disk growth, not staleness.
const (
	TTLTemplate = 24 * time.Hour
	TTLCompute  = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by the file, Redis, and null
// backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ComputeKeyOpts are the dials that affect a compute result and therefore
// participate in its cache key.
type ComputeKeyOpts struct {
	Ratio        int
	Transparency int
	Seed         int64
	Strict       bool
}

// Keyer generates cache keys for the compute pipeline.
type Keyer interface {
	// TemplateKey identifies a loaded template by name and content hash.
	TemplateKey(name, contentHash string) string

	// ComputeKey identifies one compute result: the template content hash
	// plus every dial that steers the geometry.
	ComputeKey(templateHash string, opts ComputeKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TemplateKey generates a key for template caching.
func (k *DefaultKeyer) TemplateKey(name, contentHash string) string {
	return hashKey("template", name, contentHash)
}

// ComputeKey generates a key for compute-result caching.
func (k *DefaultKeyer) ComputeKey(templateHash string, opts ComputeKeyOpts) string {
	return hashKey("compute", templateHash, opts.Ratio, opts.Transparency, opts.Seed, opts.Strict)
}
