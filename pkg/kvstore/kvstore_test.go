package kvstore

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/midnightshuttle/storefront-core/pkg/logger"
)

type snapshot struct {
	Notes string   `json:"notes"`
	Items []string `json:"items"`
}

func newTestStore(t *testing.T, backend Backend) *Store {
	t.Helper()
	store, err := New(backend, logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, NewMemoryBackend())
	ctx := context.Background()

	in := snapshot{Notes: "sin cebolla", Items: []string{"a", "b"}}
	store.Set(ctx, "cart", in)

	var out snapshot
	if !store.Get(ctx, "cart", &out) {
		t.Fatal("expected value to be found")
	}
	if out.Notes != in.Notes || len(out.Items) != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestStoreGetMissReturnsFalse(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, NewMemoryBackend())

	out := snapshot{Notes: "untouched"}
	if store.Get(context.Background(), "absent", &out) {
		t.Fatal("expected miss")
	}
	if out.Notes != "untouched" {
		t.Fatal("dest must be left untouched on miss")
	}
}

func TestStoreRemoveAndClear(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, NewMemoryBackend())
	ctx := context.Background()

	store.Set(ctx, "a", snapshot{})
	store.Set(ctx, "b", snapshot{})

	store.Remove(ctx, "a")
	var out snapshot
	if store.Get(ctx, "a", &out) {
		t.Fatal("expected key a removed")
	}
	if !store.Get(ctx, "b", &out) {
		t.Fatal("expected key b to survive")
	}

	store.Clear(ctx)
	if store.Get(ctx, "b", &out) {
		t.Fatal("expected clear to drop key b")
	}
}

type failingBackend struct {
	err error
}

func (f *failingBackend) Get(ctx context.Context, key string) ([]byte, error) { return nil, f.err }
func (f *failingBackend) Set(ctx context.Context, key string, value []byte) error {
	return f.err
}
func (f *failingBackend) Remove(ctx context.Context, key string) error { return f.err }
func (f *failingBackend) Clear(ctx context.Context) error              { return f.err }
func (f *failingBackend) Close() error                                 { return nil }

func TestStoreSwallowsBackendFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	store, err := New(&failingBackend{err: errors.New("disk full")}, logger.New(logger.Options{ServiceName: "test", Output: buf}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	store.Set(ctx, "cart", snapshot{})
	store.Remove(ctx, "cart")
	store.Clear(ctx)
	var out snapshot
	if store.Get(ctx, "cart", &out) {
		t.Fatal("expected read failure to report a miss")
	}

	if !bytes.Contains(buf.Bytes(), []byte("disk full")) {
		t.Fatalf("expected failures to be logged; got %s", buf.String())
	}
}

func TestStoreCorruptValueReportsMiss(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend()
	ctx := context.Background()
	if err := backend.Set(ctx, "cart", []byte("{not json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := newTestStore(t, backend)
	var out snapshot
	if store.Get(ctx, "cart", &out) {
		t.Fatal("expected corrupt value to report a miss")
	}
}
