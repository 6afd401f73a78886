package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"io"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for deterministic TTL expiry.
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) Now() time.Time         { return f.current }
func (f *fakeClock) Advance(d time.Duration) { f.current = f.current.Add(d) }

func TestCacheSetGet(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("key", "value")

	v, ok := c.Get("key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if v.(string) != "value" {
		t.Errorf("expected value, got %v", v)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected cache miss for unknown key")
	}
}

func TestCacheExpiry(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := NewCacheWithClock(time.Hour, clock.Now)

	c.Set("key", 42)
	if _, ok := c.Get("key"); !ok {
		t.Fatal("expected hit before expiry")
	}

	// Just inside the TTL.
	clock.Advance(59 * time.Minute)
	if _, ok := c.Get("key"); !ok {
		t.Error("expected hit just inside TTL")
	}

	// Past the TTL: an expired entry must never be returned.
	clock.Advance(2 * time.Minute)
	if _, ok := c.Get("key"); ok {
		t.Error("expected miss after TTL expiry")
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := NewCacheWithClock(time.Hour, clock.Now)

	c.SetWithTTL("short", "v", time.Minute)
	clock.Advance(2 * time.Minute)
	if _, ok := c.Get("short"); ok {
		t.Error("expected custom TTL to expire entry")
	}
}

func TestCacheInvalidateAndFlush(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after Invalidate")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected b to survive Invalidate(a)")
	}

	c.Flush()
	if _, ok := c.Get("b"); ok {
		t.Error("expected miss after Flush")
	}
}

func TestCacheCleanup(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := NewCacheWithClock(time.Minute, clock.Now)

	c.Set("old", 1)
	clock.Advance(2 * time.Minute)
	c.Set("fresh", 2)
	c.Cleanup()

	c.mu.RLock()
	_, oldThere := c.entries["old"]
	_, freshThere := c.entries["fresh"]
	c.mu.RUnlock()

	if oldThere {
		t.Error("expected expired entry removed by Cleanup")
	}
	if !freshThere {
		t.Error("expected fresh entry kept by Cleanup")
	}
}

func TestDoGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test") != "yes" {
			t.Error("expected X-Test header to be forwarded")
		}
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	body, status, err := DoGet(context.Background(), srv.URL, map[string]string{"X-Test": "yes"})
	if err != nil {
		t.Fatalf("DoGet failed: %v", err)
	}
	defer body.Close()

	if status != http.StatusOK {
		t.Errorf("expected 200, got %d", status)
	}
	data, _ := io.ReadAll(body)
	if string(data) != "hello" {
		t.Errorf("expected hello, got %q", data)
	}
}

func TestDoGetNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, status, err := DoGet(context.Background(), srv.URL, nil)
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if status != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", status)
	}
}
