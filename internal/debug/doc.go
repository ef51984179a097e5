// Package debug implements the simulated debugger session for the Smart IDE.
//
// The session is a state machine over three run states (stopped, running,
// stepping) with a breakpoint table, a call stack, and a watched-variable
// table. It is a deliberate simulation: stepping advances a line counter,
// "hitting" a breakpoint means jumping to the lowest marked line past the
// current one, and watch expressions are evaluated by a fake pattern-matching
// evaluator that never executes code. None of this attaches to a real
// runtime, and it must not be upgraded to.
//
// # Ownership
//
// The breakpoint table, call stack, and watch table are owned exclusively
// by their Session. A Session is NOT safe for concurrent use; callers go
// through session.Coordinator, which serializes access.
//
// # Lifecycle
//
// Start seeds the call stack and enters the running state. Stop resets the
// run state and call stack but keeps breakpoints and watches, so a
// stop/start cycle preserves configuration. Cleanup is the full teardown:
// it also clears breakpoints and watches.
package debug
