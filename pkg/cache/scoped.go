package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The API
// server uses this so concurrent clients with private template directories
// never share cache entries.
//
// Example usage:
//
//	// Client-specific keys for private templates
//	clientKeyer := NewScopedKeyer(NewDefaultKeyer(), "client:abc123:")
//
//	// Global keys for the built-in templates
//	globalKeyer := NewDefaultKeyer()
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

// TemplateKey generates a prefixed key for template caching.
func (k *ScopedKeyer) TemplateKey(name, contentHash string) string {
	return k.prefix + k.inner.TemplateKey(name, contentHash)
}

// ComputeKey generates a prefixed key for compute-result caching.
func (k *ScopedKeyer) ComputeKey(templateHash string, opts ComputeKeyOpts) string {
	return k.prefix + k.inner.ComputeKey(templateHash, opts)
}
