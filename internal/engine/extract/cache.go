package extract

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine"
)

// textCache is a 2-tier cache for extracted resume text, keyed by source URL.
// L1 is in-memory and lost on restart; L2 (Redis) is optional and survives.
// Only extracted text is cached — computed match scores never are.
type textCache struct {
	l1              sync.Map      // key → *cacheEntry
	rdb             *redis.Client // nil if Redis unavailable
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
}

type cacheEntry struct {
	text      string
	expiresAt time.Time
}

func newTextCache(redisURL string, ttl time.Duration, maxEntries int, cleanupInterval time.Duration) *textCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	c := &textCache{ttl: ttl, maxEntries: maxEntries, cleanupInterval: cleanupInterval}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("extract cache: invalid redis URL, L2 disabled", slog.Any("error", err))
		} else {
			rdb := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("extract cache: redis unreachable, L2 disabled", slog.Any("error", err))
			} else {
				c.rdb = rdb
				slog.Info("extract cache: L2 redis connected", slog.String("addr", opts.Addr))
			}
		}
	}

	go c.cleanupLoop()
	return c
}

// cacheKey hashes the URL so arbitrary-length URLs make stable short keys.
func cacheKey(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return fmt.Sprintf("hh:resume:%x", hash[:12])
}

// get tries L1, then L2. On L2 hit, populates L1.
func (c *textCache) get(ctx context.Context, rawURL string) (string, bool) {
	key := cacheKey(rawURL)

	if val, ok := c.l1.Load(key); ok {
		entry := val.(*cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			engine.IncrCacheHits()
			return entry.text, true
		}
		c.l1.Delete(key)
	}

	if c.rdb != nil {
		text, err := c.rdb.Get(ctx, key).Result()
		if err == nil {
			engine.IncrCacheHits()
			c.l1.Store(key, &cacheEntry{text: text, expiresAt: time.Now().Add(c.ttl)})
			return text, true
		}
	}

	engine.IncrCacheMisses()
	return "", false
}

// set stores text in both tiers.
func (c *textCache) set(ctx context.Context, rawURL, text string) {
	key := cacheKey(rawURL)

	c.evictIfNeeded()
	c.l1.Store(key, &cacheEntry{text: text, expiresAt: time.Now().Add(c.ttl)})

	if c.rdb != nil {
		if err := c.rdb.Set(ctx, key, text, c.ttl).Err(); err != nil {
			slog.Debug("extract cache: L2 set failed", slog.Any("error", err))
		}
	}
}

// evictIfNeeded removes entries when L1 exceeds maxEntries:
// expired entries first, then oldest by expiry until under the limit.
func (c *textCache) evictIfNeeded() {
	count := 0
	c.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count < c.maxEntries {
		return
	}

	now := time.Now()
	c.l1.Range(func(key, val any) bool {
		if entry, ok := val.(*cacheEntry); ok && now.After(entry.expiresAt) {
			c.l1.Delete(key)
			count--
		}
		return count >= c.maxEntries
	})
	if count < c.maxEntries {
		return
	}

	for count >= c.maxEntries {
		var oldestKey any
		oldestAt := now.Add(time.Hour) // far future
		c.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*cacheEntry); ok && entry.expiresAt.Before(oldestAt) {
				oldestKey = key
				oldestAt = entry.expiresAt
			}
			return true
		})
		if oldestKey == nil {
			break
		}
		c.l1.Delete(oldestKey)
		count--
	}
}

func (c *textCache) cleanupLoop() {
	interval := c.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*cacheEntry); ok && now.After(entry.expiresAt) {
				c.l1.Delete(key)
			}
			return true
		})
	}
}
