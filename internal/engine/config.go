// Package engine holds cross-cutting service infrastructure: configuration,
// metrics counters, retry helpers, and text utilities.
package engine

import "time"

// Config holds all service configuration, injected from main.
type Config struct {
	Port                  string
	DatabaseURL           string // empty = SQLite backend
	SQLitePath            string
	RedisURL              string // empty = extract cache L2 disabled
	FetchTimeout          time.Duration
	FetchRequestsPerSec   float64
	MaxContentChars       int
	CacheTTL              time.Duration
	CacheMaxEntries       int
	CacheCleanupInterval  time.Duration
	DefaultStrategy       string // "vector-space" | "keyword-overlap"
	InternalServiceSecret string // empty = auth gate disabled
}

var cfg Config

// Cfg exposes the configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
