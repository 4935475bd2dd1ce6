package morph

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"entitynorm/lexicon"
)

// DefaultCacheSize bounds the parse cache; name tokens in payment
// traffic repeat heavily so a modest cache carries most of the load.
const DefaultCacheSize = 4096

type cacheKey struct {
	token string
	lang  lexicon.Language
}

// CachedAnalyzer wraps an Analyzer with an LRU parse cache. Errors are
// never cached so a transient backend failure does not poison entries.
type CachedAnalyzer struct {
	inner Analyzer
	cache *lru.Cache[cacheKey, []Parse]
}

// NewCachedAnalyzer wraps inner with a cache of the given size.
// Size <= 0 falls back to DefaultCacheSize.
func NewCachedAnalyzer(inner Analyzer, size int) (*CachedAnalyzer, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, []Parse](size)
	if err != nil {
		return nil, fmt.Errorf("morph: create parse cache: %w", err)
	}
	return &CachedAnalyzer{inner: inner, cache: cache}, nil
}

// Analyze returns the cached parses for the token or delegates to the
// wrapped analyzer on a miss.
func (c *CachedAnalyzer) Analyze(token string, lang lexicon.Language) ([]Parse, error) {
	key := cacheKey{token: token, lang: lang}
	if parses, ok := c.cache.Get(key); ok {
		return parses, nil
	}
	parses, err := c.inner.Analyze(token, lang)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, parses)
	return parses, nil
}

// Len reports the number of cached entries, used by metrics hooks and
// tests.
func (c *CachedAnalyzer) Len() int {
	return c.cache.Len()
}
