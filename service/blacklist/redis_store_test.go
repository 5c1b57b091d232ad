package blacklist

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T) (Store, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client)

	return store, func() {
		_ = client.Close()
		mr.Close()
	}
}

func TestRedisStoreAddContains(t *testing.T) {
	store, cleanup := newTestRedisStore(t)
	defer cleanup()

	if err := store.Add("tok-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	found, err := store.Contains("tok-1")
	if err != nil || !found {
		t.Fatalf("Contains = %v, %v; want true, nil", found, err)
	}
}

func TestRedisStoreRemove(t *testing.T) {
	store, cleanup := newTestRedisStore(t)
	defer cleanup()

	_ = store.Add("tok-1", time.Now().Add(time.Hour))
	if err := store.Remove("tok-1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	found, err := store.Contains("tok-1")
	if err != nil || found {
		t.Fatalf("Contains after Remove = %v, %v; want false, nil", found, err)
	}
}

func TestRedisStoreSkipsAlreadyExpired(t *testing.T) {
	store, cleanup := newTestRedisStore(t)
	defer cleanup()

	if err := store.Add("tok-1", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	found, err := store.Contains("tok-1")
	if err != nil || found {
		t.Fatalf("Contains(already expired) = %v, %v; want false, nil", found, err)
	}
}
