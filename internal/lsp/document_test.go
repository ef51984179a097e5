package lsp

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func TestDocumentStore_OpenChangeClose(t *testing.T) {
	store := NewDocumentStore()

	if err := store.Open("file:///a.js", "let x = 1"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	doc, ok := store.Get("file:///a.js")
	if !ok {
		t.Fatal("expected document to be open")
	}
	if doc.Version != 1 {
		t.Errorf("expected version 1, got %d", doc.Version)
	}
	if doc.Content != "let x = 1" {
		t.Errorf("unexpected content %q", doc.Content)
	}

	if err := store.Change("file:///a.js", "let x = 2"); err != nil {
		t.Fatalf("Change failed: %v", err)
	}
	doc, _ = store.Get("file:///a.js")
	if doc.Version != 2 {
		t.Errorf("expected version 2, got %d", doc.Version)
	}
	if doc.Content != "let x = 2" {
		t.Errorf("unexpected content %q", doc.Content)
	}

	if err := store.Close("file:///a.js"); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if store.IsOpen("file:///a.js") {
		t.Error("expected document to be closed")
	}
}

func TestDocumentStore_VersionMonotonic(t *testing.T) {
	store := NewDocumentStore()
	store.Open("file:///a.js", "")

	last := 1
	for i := 0; i < 5; i++ {
		store.Change("file:///a.js", "v")
		doc, _ := store.Get("file:///a.js")
		if doc.Version <= last {
			t.Fatalf("expected version to increase past %d, got %d", last, doc.Version)
		}
		last = doc.Version
	}
}

func TestDocumentStore_DuplicateOpen(t *testing.T) {
	store := NewDocumentStore()
	store.Open("file:///a.js", "first")

	err := store.Open("file:///a.js", "second")
	if !errors.Is(err, ErrDocumentAlreadyOpen) {
		t.Errorf("expected ErrDocumentAlreadyOpen, got %v", err)
	}
}

func TestDocumentStore_NotOpen(t *testing.T) {
	store := NewDocumentStore()

	if err := store.Change("file:///a.js", ""); !errors.Is(err, ErrDocumentNotOpen) {
		t.Errorf("expected ErrDocumentNotOpen from Change, got %v", err)
	}
	if err := store.Close("file:///a.js"); !errors.Is(err, ErrDocumentNotOpen) {
		t.Errorf("expected ErrDocumentNotOpen from Close, got %v", err)
	}
}

func TestDocumentStore_Timestamps(t *testing.T) {
	mock := clock.NewMock()
	store := NewDocumentStoreWithClock(mock)

	store.Open("file:///a.js", "")
	opened := mock.Now()

	mock.Add(5 * time.Second)
	store.Change("file:///a.js", "x")

	doc, _ := store.Get("file:///a.js")
	if !doc.OpenedAt.Equal(opened) {
		t.Errorf("expected OpenedAt %v, got %v", opened, doc.OpenedAt)
	}
	if got := doc.ModifiedAt.Sub(doc.OpenedAt); got != 5*time.Second {
		t.Errorf("expected ModifiedAt 5s after open, got %v", got)
	}
}

func TestDocumentStore_URIs(t *testing.T) {
	store := NewDocumentStore()
	store.Open("file:///b.js", "")
	store.Open("file:///a.js", "")

	uris := store.URIs()
	if len(uris) != 2 || uris[0] != "file:///a.js" || uris[1] != "file:///b.js" {
		t.Errorf("expected sorted URIs, got %v", uris)
	}
}

func TestDocumentStore_RemoveAll(t *testing.T) {
	store := NewDocumentStore()
	store.Open("file:///a.js", "")
	store.Open("file:///b.js", "")

	store.RemoveAll()

	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d documents", store.Len())
	}
}
