// HiringHub matching service.
//
// A job board's routed reads/writes (postings, candidate profiles,
// applications) plus the resume-to-job match scoring core, exposed as MCP
// tools. Runs as an HTTP MCP server or over stdio.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/board"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/extract"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/hubserver"
)

var version = "dev"

func main() {
	stdio := flag.Bool("stdio", false, "serve MCP over stdio instead of HTTP")
	flag.Parse()

	_ = godotenv.Load()

	c := engine.Config{
		Port:                  envStr("MCP_PORT", "8892"),
		DatabaseURL:           envStr("DATABASE_URL", ""),
		SQLitePath:            envStr("HUB_DB_PATH", defaultDBPath()),
		RedisURL:              envStr("REDIS_URL", ""),
		FetchTimeout:          envDuration("FETCH_TIMEOUT", 15*time.Second),
		FetchRequestsPerSec:   envFloat("FETCH_RATE", 2),
		MaxContentChars:       envInt("MAX_CONTENT_CHARS", 20000),
		CacheTTL:              envDuration("CACHE_TTL", 15*time.Minute),
		CacheMaxEntries:       envInt("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval:  envDuration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		DefaultStrategy:       envStr("MATCH_STRATEGY", "vector-space"),
		InternalServiceSecret: envStr("INTERNAL_SERVICE_SECRET", ""),
	}
	engine.Init(c)

	slog.Info("starting hiringhub",
		slog.String("version", version),
		slog.String("port", c.Port),
		slog.String("strategy", c.DefaultStrategy),
	)

	ctx := context.Background()

	// Postgres dials can race the database container at startup; retry
	// transient connect errors before giving up.
	store, err := engine.RetryDo(ctx, engine.DefaultRetryConfig, func() (board.Store, error) {
		return board.Open(ctx, c.DatabaseURL, c.SQLitePath)
	})
	if err != nil {
		slog.Error("board store init failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.Close()

	fetcher := extract.NewFetcher(extract.Config{
		Timeout:         c.FetchTimeout,
		MaxContentChars: c.MaxContentChars,
		RequestsPerSec:  c.FetchRequestsPerSec,
		CacheTTL:        c.CacheTTL,
		CacheMaxEntries: c.CacheMaxEntries,
		CacheCleanup:    c.CacheCleanupInterval,
		RedisURL:        c.RedisURL,
	})

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "hiringhub",
		Version: version,
	}, nil)

	hubserver.RegisterTools(server, hubserver.Deps{Store: store, Fetcher: fetcher})
	slog.Info("tools registered", slog.Int("count", 11))

	if *stdio {
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			slog.Error("stdio server failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	if err := serveHTTP(server, c); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// serveHTTP mounts the MCP handler behind the internal-service auth gate,
// plus plain-text metrics and health endpoints.
func serveHTTP(server *mcp.Server, c engine.Config) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", authGate(c.InternalServiceSecret, handler))
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, engine.FormatMetrics())
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	srv := &http.Server{
		Addr:         ":" + c.Port,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
	slog.Info("http server listening", slog.String("addr", srv.Addr))
	return srv.ListenAndServe()
}

// authGate rejects MCP requests missing the shared service secret.
// An empty secret disables the gate (local development).
func authGate(secret string, next http.Handler) http.Handler {
	if secret == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Internal-Service") != secret {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hiringhub.db"
	}
	return home + "/.hiringhub/board.db"
}

// Typed env readers; malformed values fall back to the default.

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
