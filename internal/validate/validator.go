package validate

import (
	"errors"
	"regexp"
	"strings"
)

// Standard errors returned when validation rejects an input.
var (
	// ErrEmptyPath indicates an empty file path.
	ErrEmptyPath = errors.New("file path is empty")

	// ErrPathTooLong indicates the path exceeds the configured maximum length.
	ErrPathTooLong = errors.New("file path exceeds maximum length")

	// ErrPathTraversal indicates the path contains a traversal sequence.
	ErrPathTraversal = errors.New("file path contains traversal sequence")

	// ErrPathOutsideRoots indicates an absolute path outside the allowed roots.
	ErrPathOutsideRoots = errors.New("absolute path outside allowed roots")

	// ErrPathCharset indicates the path contains disallowed characters.
	ErrPathCharset = errors.New("file path contains disallowed characters")

	// ErrEmptyRequestID indicates a missing request identifier.
	ErrEmptyRequestID = errors.New("request id is empty")

	// ErrInvalidRequestID indicates a non-alphanumeric request identifier.
	ErrInvalidRequestID = errors.New("request id must be alphanumeric")

	// ErrInvalidMethod indicates a malformed method name.
	ErrInvalidMethod = errors.New("invalid method name")

	// ErrInvalidParams indicates params that are not JSON object/array shaped.
	ErrInvalidParams = errors.New("params must be a JSON object or array")

	// ErrUnknownCommand indicates a command outside the debug allow-list.
	ErrUnknownCommand = errors.New("unknown debug command")

	// ErrDangerousContent indicates the input matched an injection pattern.
	ErrDangerousContent = errors.New("input contains dangerous content")
)

// DebugCommand is a debug command name accepted by the validator.
type DebugCommand string

// The closed set of debug commands the session engine understands.
const (
	CommandStart            DebugCommand = "start"
	CommandStop             DebugCommand = "stop"
	CommandContinue         DebugCommand = "continue"
	CommandStepOver         DebugCommand = "stepOver"
	CommandStepInto         DebugCommand = "stepInto"
	CommandStepOut          DebugCommand = "stepOut"
	CommandToggleBreakpoint DebugCommand = "toggleBreakpoint"
	CommandAddWatch         DebugCommand = "addWatch"
	CommandRemoveWatch      DebugCommand = "removeWatch"
	CommandEvaluate         DebugCommand = "evaluate"
)

// allowedCommands is the debug command allow-list.
var allowedCommands = map[DebugCommand]struct{}{
	CommandStart:            {},
	CommandStop:             {},
	CommandContinue:         {},
	CommandStepOver:         {},
	CommandStepInto:         {},
	CommandStepOut:          {},
	CommandToggleBreakpoint: {},
	CommandAddWatch:         {},
	CommandRemoveWatch:      {},
	CommandEvaluate:         {},
}

// ValidatedRequest is an LSP request that passed validation.
// Values can only be produced by Validator.ValidateLSPRequest.
type ValidatedRequest struct {
	id     string
	method string
	params string
}

// ID returns the request identifier.
func (r ValidatedRequest) ID() string { return r.id }

// Method returns the request method name.
func (r ValidatedRequest) Method() string { return r.method }

// Params returns the raw JSON params, possibly empty.
func (r ValidatedRequest) Params() string { return r.params }

// ValidatedDebugCommand is a debug command that passed validation.
// Values can only be produced by Validator.ValidateDebugCommand.
type ValidatedDebugCommand struct {
	command DebugCommand
	args    string
}

// Command returns the validated command name.
func (c ValidatedDebugCommand) Command() DebugCommand { return c.command }

// Args returns the raw JSON arguments, possibly empty.
func (c ValidatedDebugCommand) Args() string { return c.args }

// DefaultMaxPathLength is the maximum accepted file path length.
const DefaultMaxPathLength = 500

// defaultAllowedRoots are the absolute path prefixes accepted by default:
// asset, resource, app-data, and external storage roots.
var defaultAllowedRoots = []string{
	"/android_asset/",
	"/android_res/",
	"/data/data/",
	"/storage/",
}

var (
	pathCharsetRe = regexp.MustCompile(`^[A-Za-z0-9._/\-]+$`)
	requestIDRe   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	methodRe      = regexp.MustCompile(`^[A-Za-z0-9/]+$`)
)

// Validator checks identifiers, method names, JSON shape, and argument
// ranges before they reach the session engine. All methods are pure and
// total: malformed input yields a rejection error, never a panic.
type Validator struct {
	maxPathLength int
	allowedRoots  []string
}

// Option configures a Validator.
type Option func(*Validator)

// WithMaxPathLength overrides the maximum accepted path length.
func WithMaxPathLength(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.maxPathLength = n
		}
	}
}

// WithAllowedRoots overrides the allow-list of absolute path prefixes.
func WithAllowedRoots(roots ...string) Option {
	return func(v *Validator) {
		if len(roots) > 0 {
			v.allowedRoots = append([]string{}, roots...)
		}
	}
}

// New creates a Validator with the default limits.
func New(opts ...Option) *Validator {
	v := &Validator{
		maxPathLength: DefaultMaxPathLength,
		allowedRoots:  defaultAllowedRoots,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// ValidateFilePath checks a file path and returns it unchanged on success.
// Rejects empty input, over-long input, traversal sequences, absolute paths
// outside the allowed roots, and disallowed characters.
func (v *Validator) ValidateFilePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	if len(path) > v.maxPathLength {
		return "", ErrPathTooLong
	}

	if strings.Contains(path, "..") || strings.Contains(path, "./") || strings.Contains(path, "/.") {
		return "", ErrPathTraversal
	}

	if strings.HasPrefix(path, "/") && !v.hasAllowedRoot(path) {
		return "", ErrPathOutsideRoots
	}

	if !pathCharsetRe.MatchString(path) {
		return "", ErrPathCharset
	}

	return path, nil
}

// hasAllowedRoot reports whether an absolute path starts with an allowed root.
func (v *Validator) hasAllowedRoot(path string) bool {
	for _, root := range v.allowedRoots {
		if strings.HasPrefix(path, root) {
			return true
		}
	}
	return false
}

// ValidateLSPRequest checks an LSP request envelope. The request id must be
// non-empty alphanumeric, the method must contain only letters, digits, and
// slashes, and params (if non-empty) must be JSON object/array shaped.
// Deep parsing happens at the point of use, not here.
func (v *Validator) ValidateLSPRequest(requestID, method, params string) (ValidatedRequest, error) {
	if requestID == "" {
		return ValidatedRequest{}, ErrEmptyRequestID
	}
	if !requestIDRe.MatchString(requestID) {
		return ValidatedRequest{}, ErrInvalidRequestID
	}
	if method == "" || !methodRe.MatchString(method) {
		return ValidatedRequest{}, ErrInvalidMethod
	}
	if err := checkJSONShape(params); err != nil {
		return ValidatedRequest{}, err
	}

	return ValidatedRequest{id: requestID, method: method, params: params}, nil
}

// ValidateDebugCommand checks a debug command name against the allow-list
// and verifies that args (if present) are JSON shaped.
func (v *Validator) ValidateDebugCommand(command, args string) (ValidatedDebugCommand, error) {
	cmd := DebugCommand(command)
	if _, ok := allowedCommands[cmd]; !ok {
		return ValidatedDebugCommand{}, ErrUnknownCommand
	}
	if err := checkJSONShape(args); err != nil {
		return ValidatedDebugCommand{}, err
	}

	return ValidatedDebugCommand{command: cmd, args: args}, nil
}

// checkJSONShape verifies that text, if non-empty, begins with a JSON
// object or array opener.
func checkJSONShape(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return ErrInvalidParams
	}
	return nil
}

// dangerousPatterns match script injection, SQL injection, and shell
// command content.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[^>]*>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
	regexp.MustCompile(`(?i)<(iframe|object|embed)\b`),
	regexp.MustCompile(`(?i)('|--|\b(union|select|insert|update|delete|drop|exec)\b)`),
	regexp.MustCompile("[|&;`$]"),
	regexp.MustCompile(`(?i)\b(rm|cp|mv|wget|curl|chmod|chown)\b`),
}

// ContainsDangerousContent reports whether text matches any known
// injection pattern: script tags, javascript: URIs, inline event handlers,
// embedded frames/objects, SQL meta-characters and keywords, or shell
// metacharacters and commands.
func ContainsDangerousContent(text string) bool {
	for _, re := range dangerousPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
