package cache

// ScopedKeyer wraps a Keyer with a prefix so that separate configurations
// do not share entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "work:")
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

// AnnotationKey generates a prefixed annotation key.
func (k *ScopedKeyer) AnnotationKey(text string, opts AnnotationKeyOpts) string {
	return k.prefix + k.inner.AnnotationKey(text, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, opts)
}
