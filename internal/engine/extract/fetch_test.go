package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testFetcher() *Fetcher {
	return NewFetcher(Config{
		Timeout:         5 * time.Second,
		MaxContentChars: 1000,
		RequestsPerSec:  1000, // don't slow tests down
		CacheTTL:        time.Minute,
	})
}

func TestExtractText_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Experienced backend engineer.\nDistributed systems."))
	}))
	defer srv.Close()

	text, err := testFetcher().ExtractText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ExtractText error: %v", err)
	}
	if !strings.Contains(text, "backend engineer") {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestExtractText_HTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><script>nope()</script></head>
			<body><h1>Resume</h1><p>Go developer with kafka experience</p></body></html>`))
	}))
	defer srv.Close()

	text, err := testFetcher().ExtractText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ExtractText error: %v", err)
	}
	if !strings.Contains(text, "kafka experience") {
		t.Errorf("body text missing: %q", text)
	}
	if strings.Contains(text, "nope()") {
		t.Errorf("script content leaked: %q", text)
	}
}

func TestExtractText_RetriesTransientStatus(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("finally here"))
	}))
	defer srv.Close()

	text, err := testFetcher().ExtractText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ExtractText error: %v", err)
	}
	if text != "finally here" {
		t.Errorf("got %q", text)
	}
	if hits.Load() != 2 {
		t.Errorf("expected 2 attempts, got %d", hits.Load())
	}
}

func TestExtractText_PermanentStatusFails(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := testFetcher().ExtractText(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
	if hits.Load() != 1 {
		t.Errorf("404 should not be retried, got %d attempts", hits.Load())
	}
}

func TestExtractText_UnsupportedContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	if _, err := testFetcher().ExtractText(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for binary content type")
	}
}

func TestExtractText_InvalidURL(t *testing.T) {
	f := testFetcher()
	for _, u := range []string{"", "not-a-url", "ftp://example.com/resume.txt"} {
		if _, err := f.ExtractText(context.Background(), u); err == nil {
			t.Errorf("expected error for %q", u)
		}
	}
}

func TestExtractText_CachesByURL(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("cached body"))
	}))
	defer srv.Close()

	f := testFetcher()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		text, err := f.ExtractText(ctx, srv.URL)
		if err != nil {
			t.Fatalf("ExtractText error: %v", err)
		}
		if text != "cached body" {
			t.Errorf("got %q", text)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("expected 1 origin hit, got %d", hits.Load())
	}
}

func TestExtractText_TruncatesLongBodies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(strings.Repeat("x", 5000)))
	}))
	defer srv.Close()

	text, err := testFetcher().ExtractText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ExtractText error: %v", err)
	}
	if len(text) != 1000 {
		t.Errorf("expected 1000 chars, got %d", len(text))
	}
}

func TestHTMLToText(t *testing.T) {
	got := htmlToText([]byte(`<div><style>.x{}</style><p>alpha</p><p>beta</p></div>`))
	if got != "alpha beta" {
		t.Errorf("got %q", got)
	}
}
