// Package lsp implements the simulated language-intelligence session for
// the Smart IDE.
//
// The session reuses Language Server Protocol method names
// (textDocument/completion, textDocument/hover, ...) but is not networked
// and runs no language analysis: completion, hover, definition, and
// diagnostics responses are deterministic mock data generated per request.
// The same request always yields the same response, which is a tested
// property, so the generators must stay pure.
//
// # Lifecycle
//
// initialize marks the session ready and returns a capability descriptor;
// shutdown clears the flags and all open documents. Requests are still
// served while uninitialized since the mock generators are stateless, but
// IsServerConnected reports false until initialize has run.
//
// # Documents
//
// Open documents live in the session's DocumentStore: an in-memory snapshot
// per URI with a version counter that increments monotonically on change.
// The store is owned exclusively by its Session.
//
// A Session is NOT safe for concurrent use; callers go through
// session.Coordinator, which serializes access.
package lsp
