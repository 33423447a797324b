package hubserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/board"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/extract"
	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine/match"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	store, err := board.OpenSQLite(filepath.Join(t.TempDir(), "board.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	fetcher := extract.NewFetcher(extract.Config{
		Timeout:         5 * time.Second,
		MaxContentChars: 1000,
		RequestsPerSec:  1000,
		CacheTTL:        time.Minute,
	})
	return Deps{Store: store, Fetcher: fetcher}
}

func TestResolveResumeText_InlineWins(t *testing.T) {
	d := testDeps(t)
	got := resolveResumeText(context.Background(), d, "inline text", "some-profile", "http://x/resume")
	assert.Equal(t, "inline text", got)
}

func TestResolveResumeText_FromProfile(t *testing.T) {
	d := testDeps(t)
	ctx := context.Background()

	p := &board.Profile{Name: "Ada", Email: "ada@example.com", ResumeText: "stored resume"}
	require.NoError(t, d.Store.SaveProfile(ctx, p))

	assert.Equal(t, "stored resume", resolveResumeText(ctx, d, "", p.ID, ""))
	// Email lookup works too.
	assert.Equal(t, "stored resume", resolveResumeText(ctx, d, "", "ada@example.com", ""))
}

func TestResolveResumeText_ProfileURLFallback(t *testing.T) {
	d := testDeps(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("resume fetched from url"))
	}))
	defer srv.Close()

	// Profile stores only a URL; resolution fetches it.
	p := &board.Profile{Name: "Ada", Email: "ada@example.com", ResumeURL: srv.URL}
	require.NoError(t, d.Store.SaveProfile(ctx, p))

	assert.Equal(t, "resume fetched from url", resolveResumeText(ctx, d, "", p.ID, ""))
}

func TestResolveResumeText_FailsSoftToEmpty(t *testing.T) {
	d := testDeps(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	// Unknown profile, dead URL, nothing at all: always "", never a panic.
	assert.Equal(t, "", resolveResumeText(ctx, d, "", "no-such-profile", ""))
	assert.Equal(t, "", resolveResumeText(ctx, d, "", "", srv.URL))
	assert.Equal(t, "", resolveResumeText(ctx, d, "", "", ""))
}

func TestJobRecord(t *testing.T) {
	rec := jobRecord(&board.Job{
		Title:       "Backend Engineer",
		Description: "distributed systems",
		Skills:      []string{"postgres", "kafka"},
	})
	assert.Equal(t, "Backend Engineer", rec.Title)
	require.Len(t, rec.Skills, 2)
	assert.Equal(t, "postgres", rec.Skills[0].Name)
}

func TestPickStrategy(t *testing.T) {
	engine.Init(engine.Config{DefaultStrategy: "keyword-overlap"})
	assert.Equal(t, match.StrategyKeywordOverlap, pickStrategy(""))
	assert.Equal(t, match.StrategyVectorSpace, pickStrategy("vector-space"))

	engine.Init(engine.Config{DefaultStrategy: ""})
	assert.Equal(t, match.StrategyVectorSpace, pickStrategy(""))
}
