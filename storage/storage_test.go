package storage_test

import (
	"testing"

	"github.com/tverdon/minegrid/storage"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, ok := store.Get("scores"); ok {
		t.Fatal("missing key reported as present")
	}

	store.Set("scores", `{"9x9-10":[]}`)
	value, ok := store.Get("scores")
	if !ok || value != `{"9x9-10":[]}` {
		t.Fatalf("Get = %q, %v", value, ok)
	}

	store.Set("scores", "{}")
	if value, _ := store.Get("scores"); value != "{}" {
		t.Fatalf("overwrite left %q", value)
	}
}

func TestMemStore(t *testing.T) {
	store := storage.MemStore{}
	if _, ok := store.Get("settings"); ok {
		t.Fatal("missing key reported as present")
	}

	store.Set("settings", "{}")
	if value, ok := store.Get("settings"); !ok || value != "{}" {
		t.Fatalf("Get = %q, %v", value, ok)
	}
}
