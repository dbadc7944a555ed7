package watsonspec

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ibd1279/watsonspec/internal/util"
	"github.com/ibd1279/watsonspec/store"
	"github.com/ibd1279/watsonspec/wire"
)

// SetCostFunc estimates the eviction cost of storing raw bytes under key,
// passed through to the backing Provider's Set.
type SetCostFunc func(key string, raw []byte) int64

const defaultTTL = 10 * time.Minute

// CacheOptions configures a DocumentCache. Only Provider is required.
type CacheOptions struct {
	Provider       store.Provider
	Logger         Logger // if nil, NopLogger is used
	Hooks          Hooks  // if nil, NopHooks is used
	DefaultTTL     time.Duration
	ComputeSetCost SetCostFunc
	Disabled       bool
}

// DocumentCache parses top-level documents into *Recipe and caches the
// parse, keyed by the content hash of the record's raw bytes: "doc:" plus
// the hex SHA-256 of those bytes. Because the key is derived from the
// content itself there is no staleness to track — a cached parse is always
// valid for the bytes it was produced from.
//
// Two layers back a Get: an in-process map of already-parsed *Recipe
// values (so a repeated Get for bytes this process has already seen
// doesn't decode twice), and the backing Provider, which persists the raw
// bytes (so they survive process restarts and can be shared by multiple
// processes using a Provider like store/redis). A Provider hit is parsed
// once and then served from the in-process map.
type DocumentCache struct {
	provider store.Provider
	log      Logger
	hooks    Hooks
	enabled  bool
	ttl      time.Duration
	cost     SetCostFunc

	mu     sync.RWMutex
	parsed map[string]*Recipe
}

// NewDocumentCache builds a DocumentCache from opts.
func NewDocumentCache(opts CacheOptions) (*DocumentCache, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("watsonspec: provider is required")
	}
	dc := &DocumentCache{
		provider: opts.Provider,
		enabled:  !opts.Disabled,
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:    coalesce[Hooks](opts.Hooks, NopHooks{}),
		ttl:      coalesce[time.Duration](opts.DefaultTTL, defaultTTL),
		parsed:   make(map[string]*Recipe),
	}
	if opts.ComputeSetCost != nil {
		dc.cost = opts.ComputeSetCost
	} else {
		dc.cost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return dc, nil
}

// Enabled reports whether the cache is serving traffic.
func (c *DocumentCache) Enabled() bool { return c.enabled }

// Close releases the backing Provider's resources.
func (c *DocumentCache) Close(ctx context.Context) error {
	return c.provider.Close(ctx)
}

// Key returns the content-addressed store key for an Ingredient's current
// byte image, without storing or parsing anything.
func Key(i Ingredient) string {
	return util.ContentKey("doc", i.Bytes())
}

func (c *DocumentCache) lookupParsed(key string) (*Recipe, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.parsed[key]
	return rec, ok
}

func (c *DocumentCache) rememberParsed(key string, rec *Recipe) {
	c.mu.Lock()
	c.parsed[key] = rec
	c.mu.Unlock()
}

func (c *DocumentCache) forgetParsed(key string) {
	c.mu.Lock()
	delete(c.parsed, key)
	c.mu.Unlock()
}

// parseRecipe validates raw as one complete record and decodes it into a
// Recipe. A malformed record is a structural decode failure, not a miss.
func parseRecipe(raw []byte) (*Recipe, error) {
	sz, err := wire.ReadSize(raw)
	if err != nil {
		return nil, decodeErr(wire.KindUnknown, 0, err)
	}
	if int(sz) != len(raw) {
		return nil, decodeErr(wire.KindOf(raw[0]), 0, ErrStructuralMismatch)
	}
	rec, err := NewRecipe(Adopt(raw))
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Get parses raw into a *Recipe. A prior Get or Put for identical bytes in
// this process is served from the in-process map without re-parsing; on a
// Provider hit the stored bytes are parsed once and remembered. A stored
// entry found under the content key that fails to parse is treated as
// corruption: it is evicted, SelfHeal fires, and raw is parsed directly
// instead. It returns a structural decode failure in raw itself, or an
// error from the Provider's Get or Set.
func (c *DocumentCache) Get(ctx context.Context, raw []byte) (*Recipe, error) {
	if !c.enabled {
		return parseRecipe(raw)
	}

	key := util.ContentKey("doc", raw)
	if rec, ok := c.lookupParsed(key); ok {
		return rec, nil
	}

	if stored, ok, err := c.provider.Get(ctx, key); err != nil {
		return nil, err
	} else if ok {
		if rec, perr := parseRecipe(stored); perr == nil {
			c.rememberParsed(key, rec)
			return rec, nil
		}
		c.hooks.SelfHeal(key, "malformed record")
		_ = c.provider.Del(ctx, key)
		c.log.Warn("document cache self-heal", Fields{"key": key})
	}

	rec, err := parseRecipe(raw)
	if err != nil {
		return nil, err
	}

	ok, err := c.provider.Set(ctx, key, raw, c.cost(key, raw), c.ttl)
	if err != nil {
		return nil, err
	}
	if !ok {
		c.hooks.StoreRejected(key)
		c.log.Debug("document cache set rejected by provider", Fields{"key": key})
	}

	c.rememberParsed(key, rec)
	return rec, nil
}

// Put stores i under its content-addressed key and primes the in-process
// parse cache, so a subsequent Get for the same bytes is served without
// touching the Provider. It returns the key.
func (c *DocumentCache) Put(ctx context.Context, i Ingredient) (string, error) {
	raw := i.Bytes()
	key := util.ContentKey("doc", raw)
	if !c.enabled {
		return key, nil
	}

	ok, err := c.provider.Set(ctx, key, raw, c.cost(key, raw), c.ttl)
	if err != nil {
		return "", err
	}
	if !ok {
		c.hooks.StoreRejected(key)
		c.log.Debug("document cache set rejected by provider", Fields{"key": key})
	}

	if rec, perr := parseRecipe(raw); perr == nil {
		c.rememberParsed(key, rec)
	}
	return key, nil
}

// Invalidate removes key from the backing Provider and the in-process
// parse cache. Because keys are content-addressed, invalidating one key
// never affects any other.
func (c *DocumentCache) Invalidate(ctx context.Context, key string) error {
	c.forgetParsed(key)
	if !c.enabled {
		return nil
	}
	return c.provider.Del(ctx, key)
}
