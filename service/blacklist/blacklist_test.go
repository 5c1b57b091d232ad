package blacklist

import (
	"testing"
	"time"
)

func TestMemoryStoreAddContains(t *testing.T) {
	store := NewMemoryStore(1000)
	defer store.Close()

	if err := store.Add("tok-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	found, err := store.Contains("tok-1")
	if err != nil || !found {
		t.Fatalf("Contains = %v, %v; want true, nil", found, err)
	}
	found, err = store.Contains("tok-2")
	if err != nil || found {
		t.Fatalf("Contains(missing) = %v, %v; want false, nil", found, err)
	}
}

func TestMemoryStoreExpiredEntryNotFound(t *testing.T) {
	store := NewMemoryStore(1000)
	defer store.Close()

	if err := store.Add("tok-1", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	found, err := store.Contains("tok-1")
	if err != nil || found {
		t.Fatalf("Contains(expired) = %v, %v; want false, nil", found, err)
	}
}

func TestMemoryStoreCleanupRemovesExpired(t *testing.T) {
	store := NewMemoryStore(1000)
	defer store.Close()

	_ = store.Add("expired", time.Now().Add(-time.Minute))
	_ = store.Add("live", time.Now().Add(time.Hour))

	n, err := store.Cleanup()
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if n != 1 {
		t.Fatalf("Cleanup removed %d, want 1", n)
	}
	size, _ := store.Size()
	if size != 1 {
		t.Fatalf("Size = %d, want 1", size)
	}
}

func TestMemoryStoreEvictsAtCapacity(t *testing.T) {
	store := NewMemoryStore(10)
	defer store.Close()

	for i := 0; i < 15; i++ {
		id := string(rune('a' + i))
		if err := store.Add(id, time.Now().Add(time.Duration(i+1)*time.Minute)); err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
	}
	size, _ := store.Size()
	if size > 10 {
		t.Fatalf("Size = %d, want <= 10 after eviction", size)
	}
}

func TestMemoryStoreRejectsAfterClose(t *testing.T) {
	store := NewMemoryStore(10)
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := store.Add("tok", time.Now().Add(time.Hour)); err == nil {
		t.Fatal("Add after Close: expected error")
	}
}

func TestManagerRevokeAndCheck(t *testing.T) {
	m := NewManager(NewMemoryStore(1000), Config{})
	defer m.Close()

	if err := m.Revoke("tok-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	revoked, err := m.IsRevoked("tok-1")
	if err != nil || !revoked {
		t.Fatalf("IsRevoked = %v, %v; want true, nil", revoked, err)
	}
}

func TestManagerRejectsEmptyTokenID(t *testing.T) {
	m := NewManager(NewMemoryStore(1000), Config{})
	defer m.Close()

	if err := m.Revoke("", time.Now().Add(time.Hour)); err == nil {
		t.Fatal("Revoke(\"\"): expected error")
	}
}

func TestManagerRejectsAfterClose(t *testing.T) {
	m := NewManager(NewMemoryStore(1000), Config{})
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := m.Revoke("tok", time.Now().Add(time.Hour)); err == nil {
		t.Fatal("Revoke after Close: expected error")
	}
}

func TestManagerAutoCleanup(t *testing.T) {
	store := NewMemoryStore(1000)
	m := NewManager(store, Config{
		CleanupInterval:   10 * time.Millisecond,
		EnableAutoCleanup: true,
	})
	defer m.Close()

	if err := m.Revoke("tok-1", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	size, err := store.Size()
	if err != nil || size != 0 {
		t.Fatalf("Size after auto cleanup = %d, %v; want 0, nil", size, err)
	}

	revoked, err := m.IsRevoked("tok-1")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if revoked {
		t.Fatal("expected expired entry to be treated as not revoked")
	}
}
