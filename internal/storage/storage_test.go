package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestMemoryStoreReadWrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Read(ctx, DocIncome)
	if err != nil {
		t.Fatalf("read empty store: %v", err)
	}
	if ok {
		t.Fatal("absent key must report ok=false")
	}

	doc := []byte(`[{"id":"1"}]`)
	if err := store.Write(ctx, DocIncome, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, ok, err := store.Read(ctx, DocIncome)
	if err != nil || !ok {
		t.Fatalf("read back: ok=%v err=%v", ok, err)
	}
	if string(got) != string(doc) {
		t.Fatalf("expected %s, got %s", doc, got)
	}

	// Overwrite replaces the whole document.
	if err := store.Write(ctx, DocIncome, []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = store.Read(ctx, DocIncome)
	if string(got) != `[]` {
		t.Fatalf("expected replacement, got %s", got)
	}
}

func TestMemoryStoreFailWrites(t *testing.T) {
	store := NewMemoryStore()
	wantErr := errors.New("quota exceeded")
	store.FailWrites = wantErr

	if err := store.Write(context.Background(), DocExpenses, []byte(`[]`)); !errors.Is(err, wantErr) {
		t.Fatalf("expected injected error, got %v", err)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	_, ok, err := store.Read(ctx, DocCategories)
	if err != nil {
		t.Fatalf("read fresh db: %v", err)
	}
	if ok {
		t.Fatal("fresh db must have no documents")
	}

	doc := []byte(`[{"id":"1","name":"Gas","isDefault":true}]`)
	if err := store.Write(ctx, DocCategories, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, ok, err := store.Read(ctx, DocCategories)
	if err != nil || !ok {
		t.Fatalf("read back: ok=%v err=%v", ok, err)
	}
	if string(got) != string(doc) {
		t.Fatalf("expected %s, got %s", doc, got)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Write(ctx, DocMileage, []byte(`[{"id":"7"}]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Read(ctx, DocMileage)
	if err != nil || !ok {
		t.Fatalf("read after reopen: ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":"7"}]` {
		t.Fatalf("document changed across reopen: %s", got)
	}
}
