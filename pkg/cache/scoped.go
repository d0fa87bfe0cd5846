package cache

// ScopedKeyer wraps a Keyer with a prefix. Shared backends such as Redis
// use it to keep waypoint entries apart from other applications.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "waypoint:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer means [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(worldHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(worldHash, opts)
}
