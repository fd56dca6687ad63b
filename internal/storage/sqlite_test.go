package storage_test

import (
	"path/filepath"
	"testing"

	"dentalflow/internal/storage"
)

func open(t *testing.T, path string) *storage.Store {
	t.Helper()
	s, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetGetDelete(t *testing.T) {
	s := open(t, filepath.Join(t.TempDir(), "kv.db"))

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok, _ := s.Get("k"); !ok || v != "v1" {
		t.Fatalf("get: ok=%v v=%q", ok, v)
	}

	// overwrite
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _, _ := s.Get("k"); v != "v2" {
		t.Fatalf("after overwrite: %q", v)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("key survived delete")
	}

	// deleting an absent key is not an error
	if err := s.Delete("k"); err != nil {
		t.Fatalf("re-delete: %v", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	s, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set("sticky", `{"json":"blob"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2 := open(t, path)
	if v, ok, _ := s2.Get("sticky"); !ok || v != `{"json":"blob"}` {
		t.Fatalf("after reopen: ok=%v v=%q", ok, v)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := storage.Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestMemoryMatchesContract(t *testing.T) {
	var kv storage.KV = storage.NewMemory()

	if _, ok, _ := kv.Get("x"); ok {
		t.Fatal("expected absent")
	}
	kv.Set("x", "1")
	if v, ok, _ := kv.Get("x"); !ok || v != "1" {
		t.Fatalf("get: ok=%v v=%q", ok, v)
	}
	kv.Delete("x")
	if _, ok, _ := kv.Get("x"); ok {
		t.Fatal("expected deleted")
	}
}
