package lsp

import (
	"fmt"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/tuilauncher/smartide/internal/validate"
)

// Method is an LSP method name the session understands.
type Method string

// The closed set of methods served by the session.
const (
	MethodInitialize  Method = "initialize"
	MethodShutdown    Method = "shutdown"
	MethodCompletion  Method = "textDocument/completion"
	MethodDefinition  Method = "textDocument/definition"
	MethodHover       Method = "textDocument/hover"
	MethodDiagnostics Method = "textDocument/diagnostics"
)

// Response is the structured outcome of an LSP request. Exactly one of
// Result and Error is set.
type Response struct {
	ID     string    `json:"id"`
	Result any       `json:"result,omitempty"`
	Error  *RPCError `json:"error,omitempty"`
}

// serverName and serverVersion identify the engine in initialize results.
const (
	serverName    = "smartide-language-session"
	serverVersion = "1.0.0"
)

// Session is the simulated language-intelligence engine. It tracks the
// initialize/shutdown lifecycle and exclusively owns its DocumentStore.
//
// Session is NOT safe for concurrent use.
type Session struct {
	initialized bool
	connected   bool
	store       *DocumentStore

	logger *zap.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithDocumentStore replaces the default document store, used by tests to
// inject a mock clock.
func WithDocumentStore(store *DocumentStore) SessionOption {
	return func(s *Session) {
		s.store = store
	}
}

// NewSession creates an uninitialized session with an empty document store.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		store:  NewDocumentStore(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IsInitialized reports whether initialize has run since the last shutdown.
func (s *Session) IsInitialized() bool { return s.initialized }

// IsServerConnected reports whether the session presents itself as
// connected to the editor host.
func (s *Session) IsServerConnected() bool { return s.connected }

// Documents returns the session's document store.
func (s *Session) Documents() *DocumentStore { return s.store }

// HandleRequest routes a validated request by method name. Unrecognized
// methods yield a structured "method not supported" error response and
// leave session state untouched.
func (s *Session) HandleRequest(req validate.ValidatedRequest) Response {
	switch Method(req.Method()) {
	case MethodInitialize:
		return s.Initialize(req.ID())
	case MethodShutdown:
		return s.Shutdown(req.ID())
	case MethodCompletion:
		return s.Completion(req.ID(), req.Params())
	case MethodDefinition:
		return s.Definition(req.ID(), req.Params())
	case MethodHover:
		return s.Hover(req.ID(), req.Params())
	case MethodDiagnostics:
		return s.Diagnostics(req.ID(), req.Params())
	default:
		s.logger.Warn("unsupported lsp method", zap.String("method", req.Method()))
		return errorResponse(req.ID(), CodeInvalidParams,
			fmt.Sprintf("method not supported: %s", req.Method()))
	}
}

// Initialize marks the session ready and returns the capability descriptor.
func (s *Session) Initialize(requestID string) Response {
	s.initialized = true
	s.connected = true

	s.logger.Debug("language session initialized", zap.String("id", requestID))

	return Response{
		ID: requestID,
		Result: InitializeResult{
			Capabilities: ServerCapabilities{
				CompletionProvider: &CompletionOptions{
					SnippetSupport:      true,
					CommitCharacters:    []string{".", "("},
					DocumentationFormat: []MarkupKind{MarkupKindMarkdown},
				},
				HoverProvider: &HoverOptions{
					ContentFormat: []MarkupKind{MarkupKindMarkdown, MarkupKindPlainText},
				},
				DefinitionProvider: true,
				DiagnosticProvider: true,
			},
			ServerInfo: &ServerInfo{Name: serverName, Version: serverVersion},
		},
	}
}

// Shutdown clears the lifecycle flags and all open documents.
func (s *Session) Shutdown(requestID string) Response {
	s.initialized = false
	s.connected = false
	s.store.RemoveAll()

	s.logger.Debug("language session shut down", zap.String("id", requestID))

	return Response{ID: requestID, Result: nil}
}

// Completion returns the fixed completion list for a position. The list
// content and order are deterministic: identical params always produce an
// identical response.
func (s *Session) Completion(requestID, params string) Response {
	if _, _, resp, ok := s.positionParams(requestID, params); !ok {
		return resp
	}

	return Response{
		ID: requestID,
		Result: CompletionList{
			IsIncomplete: false,
			Items:        completionItems(),
		},
	}
}

// Definition returns the fixed-offset mock definition location.
func (s *Session) Definition(requestID, params string) Response {
	uri, pos, resp, ok := s.positionParams(requestID, params)
	if !ok {
		return resp
	}

	return Response{ID: requestID, Result: definitionLocation(uri, pos)}
}

// Hover returns the markdown hover for a position.
func (s *Session) Hover(requestID, params string) Response {
	_, pos, resp, ok := s.positionParams(requestID, params)
	if !ok {
		return resp
	}

	return Response{ID: requestID, Result: hoverContent(pos)}
}

// Diagnostics returns the fixed synthetic diagnostics for a document,
// independent of its content.
func (s *Session) Diagnostics(requestID, params string) Response {
	uri := gjson.Get(params, "textDocument.uri")
	if !uri.Exists() {
		return errorResponse(requestID, CodeInvalidParams, "missing textDocument.uri")
	}

	version := 0
	if doc, ok := s.store.Get(DocumentURI(uri.String())); ok {
		version = doc.Version
	}

	return Response{
		ID: requestID,
		Result: PublishDiagnosticsParams{
			URI:         DocumentURI(uri.String()),
			Version:     version,
			Diagnostics: diagnosticsList(),
		},
	}
}

// positionParams extracts the document identifier and position from params.
// On missing fields it returns ok=false and the error response to send.
func (s *Session) positionParams(requestID, params string) (DocumentURI, Position, Response, bool) {
	uri := gjson.Get(params, "textDocument.uri")
	line := gjson.Get(params, "position.line")
	character := gjson.Get(params, "position.character")

	if !uri.Exists() {
		return "", Position{}, errorResponse(requestID, CodeInvalidParams, "missing textDocument.uri"), false
	}
	if !line.Exists() || !character.Exists() {
		return "", Position{}, errorResponse(requestID, CodeInvalidParams, "missing position"), false
	}

	pos := Position{Line: int(line.Int()), Character: int(character.Int())}
	return DocumentURI(uri.String()), pos, Response{}, true
}

// DocumentOpened records a newly opened document. Re-opening an already
// open document replaces its snapshot.
func (s *Session) DocumentOpened(uri DocumentURI, content string) {
	if err := s.store.Open(uri, content); err != nil {
		s.logger.Warn("document reopened, replacing snapshot", zap.String("uri", string(uri)))
		_ = s.store.Close(uri)
		_ = s.store.Open(uri, content)
		return
	}
	s.logger.Debug("document opened", zap.String("uri", string(uri)))
}

// DocumentChanged replaces a document's content, bumping its version.
// A change for an unopened document is logged and dropped.
func (s *Session) DocumentChanged(uri DocumentURI, content string) {
	if err := s.store.Change(uri, content); err != nil {
		s.logger.Warn("change for unopened document", zap.String("uri", string(uri)))
	}
}

// DocumentClosed removes a document. Closing an unopened document is a
// logged no-op.
func (s *Session) DocumentClosed(uri DocumentURI) {
	if err := s.store.Close(uri); err != nil {
		s.logger.Warn("close for unopened document", zap.String("uri", string(uri)))
	}
}

// errorResponse builds an error response carrying the original request id.
func errorResponse(requestID string, code int, message string) Response {
	return Response{
		ID:    requestID,
		Error: &RPCError{Code: code, Message: message},
	}
}
