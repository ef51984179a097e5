// Package session wires the validation gate, the debug session, and the
// language session behind a single coordinator.
//
// The coordinator is the only entry point a console command or UI callback
// may use. Every dispatch validates its input first, then forwards to the
// owned debug or language session under a per-coordinator mutex, so
// commands apply in the order they were validated even when callers race.
// Results are serialized to JSON and pushed to a Sink for the UI layer to
// render.
package session
