package cache

// ScopedKeyer prefixes every key of an inner Keyer. Deployments that share a
// Redis or Mongo instance between environments use it to keep their entries
// apart:
//
//	keyer := cache.NewScopedKeyer(nil, "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or a DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

func (k *ScopedKeyer) ProfileKey(username string) string {
	return k.prefix + k.inner.ProfileKey(username)
}

func (k *ScopedKeyer) CardKey(fingerprint string) string {
	return k.prefix + k.inner.CardKey(fingerprint)
}
