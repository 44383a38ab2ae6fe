package ratelimit

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, Limiter) {
	t.Helper()
	mr := miniredis.RunT(t)
	rl, err := NewRedis(mr.Addr(), "", 0, nil)
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	t.Cleanup(rl.Close)
	return mr, rl
}

func TestRedisLimiterWindow(t *testing.T) {
	mr, rl := newTestRedis(t)

	for i := 1; i <= 3; i++ {
		d := rl.Allow("contact:10.0.0.1", 3, time.Minute)
		if !d.Allowed || d.Count != i {
			t.Fatalf("call %d: %+v", i, d)
		}
	}
	d := rl.Allow("contact:10.0.0.1", 3, time.Minute)
	if d.Allowed {
		t.Error("fourth call inside the window should be rejected")
	}
	if until := time.Until(d.WindowEnd); until <= 0 || until > time.Minute {
		t.Errorf("WindowEnd in %v, want within a minute", until)
	}
	if d := rl.Allow("contact:10.0.0.2", 3, time.Minute); !d.Allowed {
		t.Error("other keys have their own window")
	}

	mr.FastForward(time.Minute + time.Second)
	if d := rl.Allow("contact:10.0.0.1", 3, time.Minute); !d.Allowed || d.Count != 1 {
		t.Errorf("expired window should reset count: %+v", d)
	}
}

func TestRedisLimiterRestoresMissingExpiry(t *testing.T) {
	mr, rl := newTestRedis(t)

	key := "natnails:ratelimit:contact:10.0.0.1"
	if err := mr.Set(key, "7"); err != nil {
		t.Fatal(err)
	}

	if d := rl.Allow("contact:10.0.0.1", 3, time.Minute); d.Allowed {
		t.Errorf("over-limit key should be rejected: %+v", d)
	}
	if ttl := mr.TTL(key); ttl != time.Minute {
		t.Fatalf("ttl = %v, want %v", ttl, time.Minute)
	}

	mr.FastForward(time.Minute + time.Second)
	if d := rl.Allow("contact:10.0.0.1", 3, time.Minute); !d.Allowed || d.Count != 1 {
		t.Errorf("client should recover once the window ends: %+v", d)
	}
}

func TestRedisLimiterDisabled(t *testing.T) {
	mr, rl := newTestRedis(t)
	for i := 0; i < 10; i++ {
		if !rl.Allow("k", 0, time.Minute).Allowed {
			t.Fatal("limit 0 should disable limiting")
		}
	}
	if len(mr.Keys()) != 0 {
		t.Errorf("disabled limiter wrote keys: %v", mr.Keys())
	}
}

func TestRedisLimiterFailsOpen(t *testing.T) {
	mr, rl := newTestRedis(t)
	rl.Allow("contact:10.0.0.1", 1, time.Minute)
	mr.Close()

	for i := 0; i < 3; i++ {
		if d := rl.Allow("contact:10.0.0.1", 1, time.Minute); !d.Allowed {
			t.Fatalf("call %d with redis down should be allowed: %+v", i, d)
		}
	}
}

func TestNewRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedis(addr, "", 0, nil); err == nil {
		t.Error("expected ping error")
	}
}
