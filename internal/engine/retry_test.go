package engine

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

var testRetryConfig = RetryConfig{
	MaxRetries:  2,
	InitialWait: time.Millisecond,
	MaxWait:     5 * time.Millisecond,
	Multiplier:  2.0,
}

func TestRetryDo_SuccessFirstTry(t *testing.T) {
	calls := 0
	got, err := RetryDo(context.Background(), testRetryConfig, func() (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil || got != "ok" {
		t.Fatalf("got %q, %v", got, err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryDo_RetriesTransientErrors(t *testing.T) {
	calls := 0
	got, err := RetryDo(context.Background(), testRetryConfig, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, &net.OpError{Op: "dial", Err: errors.New("connection refused")}
		}
		return 42, nil
	})
	if err != nil || got != 42 {
		t.Fatalf("got %d, %v", got, err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryDo_NonRetryableFailsFast(t *testing.T) {
	calls := 0
	boom := errors.New("bad config")
	_, err := RetryDo(context.Background(), testRetryConfig, func() (int, error) {
		calls++
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected bad config error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RetryDo(ctx, testRetryConfig, func() (int, error) {
		return 0, &net.OpError{Op: "dial", Err: errors.New("refused")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
