package rates

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// CachedStore is a read-through cache in front of another Store. Rate
// changes are infrequent and versioned by effective date upstream, so
// staleness within the TTL is tolerated; Invalidate is called when the
// configuration is updated, not on a schedule.
type CachedStore struct {
	next Store
	ttl  time.Duration

	mu          sync.RWMutex
	ptkp        map[string]cachedPTKP
	categories  map[string]cachedCategory
	taxBrackets *cachedBrackets
	terBrackets map[TERCategory]cachedTER
}

type cachedPTKP struct {
	amount  decimal.Decimal
	err     error
	expires time.Time
}

type cachedCategory struct {
	category TERCategory
	err      error
	expires  time.Time
}

type cachedBrackets struct {
	brackets []TaxBracket
	expires  time.Time
}

type cachedTER struct {
	brackets []TERBracket
	expires  time.Time
}

// NewCachedStore wraps next with a per-key TTL cache.
func NewCachedStore(next Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next:        next,
		ttl:         ttl,
		ptkp:        make(map[string]cachedPTKP),
		categories:  make(map[string]cachedCategory),
		terBrackets: make(map[TERCategory]cachedTER),
	}
}

// Invalidate drops every cached entry. Call it after the underlying
// configuration changes.
func (c *CachedStore) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ptkp = make(map[string]cachedPTKP)
	c.categories = make(map[string]cachedCategory)
	c.taxBrackets = nil
	c.terBrackets = make(map[TERCategory]cachedTER)
}

func (c *CachedStore) PTKPAmount(taxStatus string) (decimal.Decimal, error) {
	key := strings.ToUpper(taxStatus)

	c.mu.RLock()
	entry, ok := c.ptkp[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.amount, entry.err
	}

	amount, err := c.next.PTKPAmount(taxStatus)
	c.mu.Lock()
	c.ptkp[key] = cachedPTKP{amount: amount, err: err, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return amount, err
}

func (c *CachedStore) TERCategoryFor(taxStatus string) (TERCategory, error) {
	key := strings.ToUpper(taxStatus)

	c.mu.RLock()
	entry, ok := c.categories[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.category, entry.err
	}

	category, err := c.next.TERCategoryFor(taxStatus)
	c.mu.Lock()
	c.categories[key] = cachedCategory{category: category, err: err, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return category, err
}

// Cached slices are copied on the way out so a caller mutating its result
// cannot poison the cache for everyone else.
func copyTaxBrackets(in []TaxBracket) []TaxBracket {
	out := make([]TaxBracket, len(in))
	copy(out, in)
	return out
}

func copyTERBrackets(in []TERBracket) []TERBracket {
	out := make([]TERBracket, len(in))
	copy(out, in)
	return out
}

func (c *CachedStore) TaxBrackets() []TaxBracket {
	c.mu.RLock()
	entry := c.taxBrackets
	c.mu.RUnlock()
	if entry != nil && time.Now().Before(entry.expires) {
		return copyTaxBrackets(entry.brackets)
	}

	brackets := c.next.TaxBrackets()
	c.mu.Lock()
	c.taxBrackets = &cachedBrackets{brackets: brackets, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return copyTaxBrackets(brackets)
}

func (c *CachedStore) TERBrackets(category TERCategory) []TERBracket {
	c.mu.RLock()
	entry, ok := c.terBrackets[category]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return copyTERBrackets(entry.brackets)
	}

	brackets := c.next.TERBrackets(category)
	c.mu.Lock()
	c.terBrackets[category] = cachedTER{brackets: brackets, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return copyTERBrackets(brackets)
}
