package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sagarmatha/storefront/pkg/kvslot"
)

var _ kvslot.Slot = (*Client)(nil)

func TestSlotLifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	if _, err := client.Get(ctx, "sagarmatha-wishlist"); !errors.Is(err, kvslot.ErrNotFound) {
		t.Fatalf("expected kvslot.ErrNotFound, got %v", err)
	}

	if err := client.Set(ctx, "sagarmatha-wishlist", `{"ids":[1]}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, ok := mock.data["sf:slot:sagarmatha-wishlist"]; !ok {
		t.Fatalf("expected namespaced key, have %v", mock.data)
	}

	value, err := client.Get(ctx, "sagarmatha-wishlist")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != `{"ids":[1]}` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := client.Delete(ctx, "sagarmatha-wishlist"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := client.Get(ctx, "sagarmatha-wishlist"); !errors.Is(err, kvslot.ErrNotFound) {
		t.Fatalf("expected kvslot.ErrNotFound after delete, got %v", err)
	}
}

func TestSlotKeyBuilder(t *testing.T) {
	client := &Client{}
	if got := client.SlotKey("wishlist"); got != "sf:slot:wishlist" {
		t.Fatalf("unexpected slot key %s", got)
	}
	if got := client.SlotKey(""); got != "sf:slot" {
		t.Fatalf("empty key should skip empty parts, got %s", got)
	}
}

func TestUninitializedClientErrors(t *testing.T) {
	ctx := context.Background()
	client := &Client{}
	if _, err := client.Get(ctx, "k"); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
	if err := client.Set(ctx, "k", "v"); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
	if err := client.Ping(ctx); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
}

type mockCmdable struct {
	data map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: make(map[string]string)}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
