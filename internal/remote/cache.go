package remote

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedTranslator remembers successful translations for a while so that
// repeating a phrase does not cost another call. Failures are not cached.
type CachedTranslator struct {
	next  Translator
	cache *gocache.Cache
}

// NewCachedTranslator wraps next; a non-positive ttl returns next unchanged.
func NewCachedTranslator(next Translator, ttl time.Duration) Translator {
	if ttl <= 0 {
		return next
	}
	return &CachedTranslator{next: next, cache: gocache.New(ttl, 2*ttl)}
}

func (c *CachedTranslator) Translate(ctx context.Context, text, to string) (string, error) {
	if to == "" {
		to = DefaultTargetLanguage
	}
	key := to + "\x00" + text
	if v, ok := c.cache.Get(key); ok {
		return v.(string), nil
	}

	out, err := c.next.Translate(ctx, text, to)
	if err != nil {
		return "", err
	}
	c.cache.SetDefault(key, out)
	return out, nil
}
