package debug

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/tuilauncher/smartide/internal/validate"
)

// State is the run state of a debug session.
type State int

const (
	// StateStopped is the initial and terminal state.
	StateStopped State = iota
	// StateRunning is after start or continue.
	StateRunning
	// StateStepping is after any step command.
	StateStepping
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateStepping:
		return "stepping"
	default:
		return "unknown"
	}
}

// startLine is the line the simulated program counter is reset to on start.
const startLine = 1

// framePushInterval drives the step-into simulation: entering a line that
// is a multiple of this pushes a synthetic frame, substituting for real
// call-depth detection.
const framePushInterval = 5

// Session is the simulated debugger state machine. It tracks run state,
// the current line and file, and exclusively owns its breakpoint table,
// call stack, and watch table.
//
// Session is NOT safe for concurrent use.
type Session struct {
	state       State
	currentLine int
	currentFile string

	breakpoints *BreakpointTable
	stack       *CallStack
	watches     map[string]*WatchedVariable

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

// NewSession creates a stopped session with empty tables.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		state:       StateStopped,
		breakpoints: NewBreakpointTable(),
		stack:       NewCallStack(),
		watches:     make(map[string]*WatchedVariable),
		logger:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the current run state.
func (s *Session) State() State { return s.state }

// IsDebugging reports whether the session is in a non-stopped state.
func (s *Session) IsDebugging() bool { return s.state != StateStopped }

// CurrentLine returns the simulated program counter.
func (s *Session) CurrentLine() int { return s.currentLine }

// CurrentFile returns the file the session considers current.
func (s *Session) CurrentFile() string { return s.currentFile }

// SetCurrentFile records the file the editor is debugging.
func (s *Session) SetCurrentFile(path string) { s.currentFile = path }

// Breakpoints returns the session's breakpoint table.
func (s *Session) Breakpoints() *BreakpointTable { return s.breakpoints }

// Stack returns the session's call stack.
func (s *Session) Stack() *CallStack { return s.stack }

// Start transitions to running, resets the current line, and seeds the
// call stack with the synthetic main frame. Calling Start while already
// running re-seeds; the effect is the same.
func (s *Session) Start() {
	s.state = StateRunning
	s.currentLine = startLine

	s.stack.Reset()
	s.stack.Push(Frame{Function: "main", Line: startLine, Scope: "global scope"})

	s.logger.Debug("debug session started", zap.Int("line", s.currentLine))
}

// Stop transitions to stopped and clears the current line, current file,
// and call stack. Breakpoints and watches survive a stop.
func (s *Session) Stop() {
	s.state = StateStopped
	s.currentLine = 0
	s.currentFile = ""
	s.stack.Reset()

	s.logger.Debug("debug session stopped")
}

// ContinueExecution simulates resuming until the next breakpoint: the
// current line jumps to the lowest marked line past it across all files
// with breakpoints. With no such line the current line is unchanged.
// A no-op while stopped.
func (s *Session) ContinueExecution() {
	if s.state == StateStopped {
		return
	}
	s.state = StateRunning

	if line, ok := s.breakpoints.NextLineAfter(s.currentLine); ok {
		s.currentLine = line
		s.stack.SetTopLine(line)
		s.logger.Debug("breakpoint hit", zap.Int("line", line))
	}
}

// StepOver advances one line without changing stack depth.
func (s *Session) StepOver() {
	s.state = StateStepping
	s.currentLine++
	s.stack.SetTopLine(s.currentLine)
}

// StepInto advances one line; landing on a multiple of the frame-push
// interval pushes a synthetic function frame.
func (s *Session) StepInto() {
	s.state = StateStepping
	s.currentLine++

	if s.currentLine%framePushInterval == 0 {
		s.stack.Push(Frame{
			Function: fmt.Sprintf("function_%d", s.currentLine),
			Line:     s.currentLine,
			Scope:    "function scope",
		})
	}
	s.stack.SetTopLine(s.currentLine)
}

// StepOut pops the current frame when more than one is on the stack,
// then advances one line. The stack never drops below one frame.
func (s *Session) StepOut() {
	s.state = StateStepping
	s.stack.Pop()
	s.currentLine++
	s.stack.SetTopLine(s.currentLine)
}

// ToggleBreakpoint adds or removes a breakpoint mark. It mutates the table
// regardless of run state; each update is a single add-or-noop or
// remove-or-noop.
func (s *Session) ToggleBreakpoint(path string, line int, enabled bool) {
	if enabled {
		s.breakpoints.Set(path, line)
	} else {
		s.breakpoints.Clear(path, line)
	}
}

// IsBreakpointSet reports whether a breakpoint mark is present.
func (s *Session) IsBreakpointSet(path string, line int) bool {
	return s.breakpoints.IsSet(path, line)
}

// ActiveBreakpointCount returns the total number of marks.
func (s *Session) ActiveBreakpointCount() int {
	return s.breakpoints.Count()
}

// AddWatch evaluates an expression with the mock evaluator and tracks it
// under the given name, overwriting any previous watch with that name.
func (s *Session) AddWatch(name, expression string) *WatchedVariable {
	value, typ := EvaluateExpression(expression)
	w := &WatchedVariable{
		Name:       name,
		Expression: expression,
		Value:      value,
		Type:       typ,
	}
	s.watches[name] = w
	return w
}

// RemoveWatch drops a watch by name. Removing an absent watch is a no-op.
func (s *Session) RemoveWatch(name string) {
	delete(s.watches, name)
}

// Watch returns a watch by name.
func (s *Session) Watch(name string) (*WatchedVariable, bool) {
	w, ok := s.watches[name]
	return w, ok
}

// Watches returns all watches ordered by name.
func (s *Session) Watches() []*WatchedVariable {
	names := lo.Keys(s.watches)
	sort.Strings(names)

	out := make([]*WatchedVariable, 0, len(names))
	for _, name := range names {
		out = append(out, s.watches[name])
	}
	return out
}

// WatchCount returns the number of tracked watches.
func (s *Session) WatchCount() int {
	return len(s.watches)
}

// Cleanup is the full teardown: forces the stopped state and clears
// breakpoints, watches, and the call stack.
func (s *Session) Cleanup() {
	s.Stop()
	s.breakpoints.RemoveAll()
	s.watches = make(map[string]*WatchedVariable)
}

// Result is the structured outcome of a debug command, serialized to the
// UI sink by the coordinator.
type Result struct {
	Status string `json:"status,omitempty"`
	Action string `json:"action,omitempty"`
	Value  string `json:"value,omitempty"`
	Type   string `json:"type,omitempty"`
	Error  string `json:"error,omitempty"`
}

// HandleCommand dispatches a validated debug command. Missing argument
// fields yield an error Result; unknown commands are logged and reported,
// never raised. No command panics for out-of-range input.
func (s *Session) HandleCommand(cmd validate.ValidatedDebugCommand) Result {
	switch cmd.Command() {
	case validate.CommandStart:
		s.Start()
		return Result{Status: StateRunning.String()}

	case validate.CommandStop:
		s.Stop()
		return Result{Status: StateStopped.String()}

	case validate.CommandContinue:
		s.ContinueExecution()
		return Result{Status: s.state.String()}

	case validate.CommandStepOver:
		s.StepOver()
		return Result{Action: "stepOver"}

	case validate.CommandStepInto:
		s.StepInto()
		return Result{Action: "stepInto"}

	case validate.CommandStepOut:
		s.StepOut()
		return Result{Action: "stepOut"}

	case validate.CommandToggleBreakpoint:
		return s.handleToggleBreakpoint(cmd.Args())

	case validate.CommandAddWatch:
		return s.handleAddWatch(cmd.Args())

	case validate.CommandRemoveWatch:
		return s.handleRemoveWatch(cmd.Args())

	case validate.CommandEvaluate:
		return s.handleEvaluate(cmd.Args())

	default:
		s.logger.Warn("unknown debug command", zap.String("command", string(cmd.Command())))
		return Result{Error: fmt.Sprintf("unknown command: %s", cmd.Command())}
	}
}

func (s *Session) handleToggleBreakpoint(args string) Result {
	filePath := gjson.Get(args, "filePath")
	line := gjson.Get(args, "lineNumber")
	if !filePath.Exists() || !line.Exists() {
		return Result{Error: "toggleBreakpoint: missing filePath or lineNumber"}
	}

	enabled := gjson.Get(args, "enabled").Bool()
	s.ToggleBreakpoint(filePath.String(), int(line.Int()), enabled)
	return Result{Status: s.state.String()}
}

func (s *Session) handleAddWatch(args string) Result {
	name := gjson.Get(args, "name")
	expression := gjson.Get(args, "expression")
	if !name.Exists() || !expression.Exists() {
		return Result{Error: "addWatch: missing name or expression"}
	}

	w := s.AddWatch(name.String(), expression.String())
	return Result{Value: w.Value, Type: string(w.Type)}
}

func (s *Session) handleRemoveWatch(args string) Result {
	name := gjson.Get(args, "name")
	if !name.Exists() {
		return Result{Error: "removeWatch: missing name"}
	}

	s.RemoveWatch(name.String())
	return Result{Status: s.state.String()}
}

func (s *Session) handleEvaluate(args string) Result {
	expression := gjson.Get(args, "expression")
	if !expression.Exists() {
		return Result{Error: "evaluate: missing expression"}
	}

	value, typ := EvaluateExpression(expression.String())
	return Result{Value: value, Type: string(typ)}
}
