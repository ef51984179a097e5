package lsp

import (
	"sort"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/samber/lo"
)

// Document is an in-memory snapshot of an open text buffer.
type Document struct {
	URI     DocumentURI
	Content string
	Version int

	OpenedAt   time.Time
	ModifiedAt time.Time
}

// DocumentStore holds the open documents of a language session. It is
// owned exclusively by its Session and is not safe for concurrent use.
type DocumentStore struct {
	docs  map[DocumentURI]*Document
	clock clock.Clock
}

// NewDocumentStore creates an empty store using the wall clock.
func NewDocumentStore() *DocumentStore {
	return NewDocumentStoreWithClock(clock.New())
}

// NewDocumentStoreWithClock creates an empty store with an injected clock,
// used by tests to control timestamps.
func NewDocumentStoreWithClock(clk clock.Clock) *DocumentStore {
	return &DocumentStore{
		docs:  make(map[DocumentURI]*Document),
		clock: clk,
	}
}

// Open records a new document at version 1.
func (s *DocumentStore) Open(uri DocumentURI, content string) error {
	if _, exists := s.docs[uri]; exists {
		return ErrDocumentAlreadyOpen
	}

	now := s.clock.Now()
	s.docs[uri] = &Document{
		URI:        uri,
		Content:    content,
		Version:    1,
		OpenedAt:   now,
		ModifiedAt: now,
	}
	return nil
}

// Change replaces a document's content and increments its version.
func (s *DocumentStore) Change(uri DocumentURI, content string) error {
	doc, exists := s.docs[uri]
	if !exists {
		return ErrDocumentNotOpen
	}

	doc.Content = content
	doc.Version++
	doc.ModifiedAt = s.clock.Now()
	return nil
}

// Close removes a document.
func (s *DocumentStore) Close(uri DocumentURI) error {
	if _, exists := s.docs[uri]; !exists {
		return ErrDocumentNotOpen
	}
	delete(s.docs, uri)
	return nil
}

// Get returns a copy of a document.
func (s *DocumentStore) Get(uri DocumentURI) (Document, bool) {
	doc, exists := s.docs[uri]
	if !exists {
		return Document{}, false
	}
	return *doc, true
}

// IsOpen reports whether a document is open.
func (s *DocumentStore) IsOpen(uri DocumentURI) bool {
	_, exists := s.docs[uri]
	return exists
}

// Len returns the number of open documents.
func (s *DocumentStore) Len() int {
	return len(s.docs)
}

// URIs returns the open document URIs, sorted.
func (s *DocumentStore) URIs() []DocumentURI {
	uris := lo.Keys(s.docs)
	sort.Slice(uris, func(i, j int) bool { return uris[i] < uris[j] })
	return uris
}

// RemoveAll closes every document.
func (s *DocumentStore) RemoveAll() {
	s.docs = make(map[DocumentURI]*Document)
}
