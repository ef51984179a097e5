package session

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/tuilauncher/smartide/internal/debug"
	"github.com/tuilauncher/smartide/internal/lsp"
	"github.com/tuilauncher/smartide/internal/validate"
)

// Event names used when emitting to the sink.
const (
	EventDebug      = "debug"
	EventLSP        = "lsp"
	EventBreakpoint = "breakpoint"
)

// Coordinator owns one debug session and one language session per editor
// instance and routes every command through the validator before either
// session sees it. All dispatch methods are safe for concurrent use; a
// single mutex serializes them, so commands apply FIFO per session.
type Coordinator struct {
	mu sync.Mutex

	validator *validate.Validator
	debugSess *debug.Session
	langSess  *lsp.Session

	sink   Sink
	logger *zap.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithValidator replaces the default validator.
func WithValidator(v *validate.Validator) Option {
	return func(c *Coordinator) {
		c.validator = v
	}
}

// WithSink sets the sink results are emitted to.
func WithSink(sink Sink) Option {
	return func(c *Coordinator) {
		c.sink = sink
	}
}

// WithLogger sets the coordinator logger, shared with both sessions.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// New creates a Coordinator with fresh debug and language sessions.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		validator: validate.New(),
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sink == nil {
		c.sink = &LogSink{Logger: c.logger}
	}

	c.debugSess = debug.NewSession(debug.WithLogger(c.logger))
	c.langSess = lsp.NewSession(lsp.WithLogger(c.logger))

	return c
}

// Debug returns the owned debug session. Callers must not mutate it
// outside a dispatch; the accessor exists for state inspection.
func (c *Coordinator) Debug() *debug.Session { return c.debugSess }

// Language returns the owned language session, for state inspection.
func (c *Coordinator) Language() *lsp.Session { return c.langSess }

// NewRequestID generates an alphanumeric request id that passes
// validation.
func (c *Coordinator) NewRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// DispatchDebug validates and executes a debug command, returning the
// serialized result. Rejections come back as error results, never panics.
func (c *Coordinator) DispatchDebug(command, params string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if validate.ContainsDangerousContent(params) {
		c.logger.Warn("debug command rejected: dangerous content",
			zap.String("command", command))
		return c.emitDebug(debug.Result{Error: "validation: dangerous content in params"})
	}

	cmd, err := c.validator.ValidateDebugCommand(command, params)
	if err != nil {
		c.logger.Warn("debug command rejected",
			zap.String("command", command),
			zap.Error(err))
		return c.emitDebug(debug.Result{Error: "validation: " + err.Error()})
	}

	return c.emitDebug(c.debugSess.HandleCommand(cmd))
}

// emitDebug serializes a debug result and pushes it to the sink.
func (c *Coordinator) emitDebug(res debug.Result) string {
	payload := marshal(res)
	c.sink.Emit(EventDebug, payload)
	return payload
}

// DispatchLSP validates and executes an LSP request, returning the
// serialized response. Rejections come back as JSON-RPC error responses
// carrying the original request id.
func (c *Coordinator) DispatchLSP(requestID, method, params string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if validate.ContainsDangerousContent(params) {
		c.logger.Warn("lsp request rejected: dangerous content",
			zap.String("id", requestID),
			zap.String("method", method))
		return c.emitLSP(lsp.Response{
			ID:    requestID,
			Error: &lsp.RPCError{Code: lsp.CodeInvalidRequest, Message: "dangerous content in params"},
		})
	}

	req, err := c.validator.ValidateLSPRequest(requestID, method, params)
	if err != nil {
		c.logger.Warn("lsp request rejected",
			zap.String("id", requestID),
			zap.String("method", method),
			zap.Error(err))
		return c.emitLSP(lsp.Response{
			ID:    requestID,
			Error: &lsp.RPCError{Code: lsp.CodeInvalidRequest, Message: err.Error()},
		})
	}

	return c.emitLSP(c.langSess.HandleRequest(req))
}

// emitLSP serializes an LSP response and pushes it to the sink.
func (c *Coordinator) emitLSP(resp lsp.Response) string {
	payload := marshal(resp)
	c.sink.Emit(EventLSP, payload)
	return payload
}

// DispatchBreakpointToggle validates the file path and forwards the
// toggle. A rejected path is dropped silently apart from a warning log.
func (c *Coordinator) DispatchBreakpointToggle(filePath string, line int, enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sanitized, err := c.validator.ValidateFilePath(filePath)
	if err != nil {
		c.logger.Warn("breakpoint toggle rejected",
			zap.String("filePath", filePath),
			zap.Error(err))
		return
	}

	c.debugSess.ToggleBreakpoint(sanitized, line, enabled)
	c.sink.Emit(EventBreakpoint, marshal(breakpointEvent{
		FilePath: sanitized,
		Line:     line,
		Enabled:  enabled,
	}))
}

// HandleBreakpointToggle parses the breakpoint toggle wire shape
// ({"filePath":..., "lineNumber":..., "enabled":...}) and dispatches it.
func (c *Coordinator) HandleBreakpointToggle(payload string) {
	filePath := gjson.Get(payload, "filePath")
	line := gjson.Get(payload, "lineNumber")
	if !filePath.Exists() || !line.Exists() {
		c.logger.Warn("breakpoint toggle missing fields")
		return
	}

	enabled := gjson.Get(payload, "enabled").Bool()
	c.DispatchBreakpointToggle(filePath.String(), int(line.Int()), enabled)
}

// HandleDebugCommand parses the debug wire shape ({"command":..., ...})
// and dispatches it, passing the full payload through as command args.
func (c *Coordinator) HandleDebugCommand(payload string) string {
	command := gjson.Get(payload, "command")
	if !command.Exists() {
		return c.emitDebugLocked(debug.Result{Error: "validation: missing command"})
	}
	return c.DispatchDebug(command.String(), payload)
}

// emitDebugLocked is emitDebug with its own locking, for paths that have
// not taken the mutex.
func (c *Coordinator) emitDebugLocked(res debug.Result) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.emitDebug(res)
}

// HandleLSPRequest parses the LSP wire shape
// ({"id":..., "method":..., "params":{...}}) and dispatches it.
func (c *Coordinator) HandleLSPRequest(payload string) string {
	id := gjson.Get(payload, "id").String()
	method := gjson.Get(payload, "method").String()
	params := gjson.Get(payload, "params")

	raw := ""
	if params.Exists() {
		raw = params.Raw
	}
	return c.DispatchLSP(id, method, raw)
}

// OpenDocument forwards a document-open notification under the dispatch
// lock.
func (c *Coordinator) OpenDocument(uri lsp.DocumentURI, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.langSess.DocumentOpened(uri, content)
}

// ChangeDocument forwards a document-change notification under the
// dispatch lock.
func (c *Coordinator) ChangeDocument(uri lsp.DocumentURI, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.langSess.DocumentChanged(uri, content)
}

// CloseDocument forwards a document-close notification under the dispatch
// lock.
func (c *Coordinator) CloseDocument(uri lsp.DocumentURI) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.langSess.DocumentClosed(uri)
}

// Cleanup tears down both sessions: the debug session loses breakpoints
// and watches, the language session is shut down and its documents closed.
func (c *Coordinator) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.debugSess.Cleanup()
	c.langSess.Shutdown("cleanup")
	c.logger.Debug("coordinator cleaned up")
}

// breakpointEvent is the sink payload for a breakpoint change.
type breakpointEvent struct {
	FilePath string `json:"filePath"`
	Line     int    `json:"lineNumber"`
	Enabled  bool   `json:"enabled"`
}

// marshal serializes to JSON. Results and responses are plain data
// structs; a marshal failure is reported as an error payload so the
// function stays total.
func marshal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return `{"error":"internal: failed to serialize result"}`
	}
	return string(data)
}
