// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/kemu-chem/bibcite/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleEntry() types.Entry {
	return types.Entry{
		"ENTRYTYPE": "article",
		"ID":        "dmitrienko1990",
		"author":    "Dmitrienko, Gary I. and Nielsen, Kurt E.",
		"title":     "N-cyanoindoles",
		"journal":   "Tetrahedron Letters",
		"year":      "1990",
	}
}

func TestSaveAndGet(t *testing.T) {
	store := openTestStore(t)

	key, err := store.Save(sampleEntry())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key != "dmitrienko1990" {
		t.Errorf("key = %q, want %q", key, "dmitrienko1990")
	}

	got, err := store.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Field("title") != "N-cyanoindoles" {
		t.Errorf("title = %q, want %q", got.Field("title"), "N-cyanoindoles")
	}
	if got.Citekey() != key {
		t.Errorf("citekey = %q, want %q", got.Citekey(), key)
	}
}

func TestSaveUpserts(t *testing.T) {
	store := openTestStore(t)

	e := sampleEntry()
	if _, err := store.Save(e); err != nil {
		t.Fatalf("Save: %v", err)
	}

	e["title"] = "Revised Title"
	if _, err := store.Save(e); err != nil {
		t.Fatalf("Save (update): %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1 after upsert", len(entries))
	}
	if entries[0].Field("title") != "Revised Title" {
		t.Errorf("title = %q, want the updated value", entries[0].Field("title"))
	}
}

func TestSaveDerivesKey(t *testing.T) {
	store := openTestStore(t)

	e := sampleEntry()
	delete(e, "ID")

	key, err := store.Save(e)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key != "Dmitrienko1990" {
		t.Errorf("key = %q, want %q", key, "Dmitrienko1990")
	}

	// A second keyless entry by the same author and year gets a suffix.
	e2 := sampleEntry()
	delete(e2, "ID")
	e2["title"] = "Another Paper"

	key2, err := store.Save(e2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key2 != "Dmitrienko1990-2" {
		t.Errorf("key2 = %q, want %q", key2, "Dmitrienko1990-2")
	}
}

func TestSaveDerivesKeyWithoutAuthor(t *testing.T) {
	store := openTestStore(t)

	key, err := store.Save(types.Entry{"title": "Anonymous", "year": "1950"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key != "ref1950" {
		t.Errorf("key = %q, want %q", key, "ref1950")
	}
}

func TestListOrdersByCitekey(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"zeta2001", "alpha1990", "mid1995"} {
		e := sampleEntry()
		e["ID"] = id
		if _, err := store.Save(e); err != nil {
			t.Fatalf("Save(%s): %v", id, err)
		}
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"alpha1990", "mid1995", "zeta2001"}
	if len(entries) != len(want) {
		t.Fatalf("len(entries) = %d, want %d", len(entries), len(want))
	}
	for i, key := range want {
		if entries[i].Citekey() != key {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Citekey(), key)
		}
	}
}

func TestGetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	key, err := store.Save(sampleEntry())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(key); !errors.Is(err, ErrNotFound) {
		t.Errorf("entry should be gone, got %v", err)
	}
	if err := store.Delete(key); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should report ErrNotFound, got %v", err)
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "library.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.Close()
}
