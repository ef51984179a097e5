// Package validate is the input gate for the Smart IDE session core.
//
// Every file path, LSP request, and debug command coming from the editor
// host or the console front end passes through a Validator before it can
// reach session state. Validation never panics and never mutates anything:
// each check returns either a sanitized value or a typed rejection error.
//
// Accepted requests are wrapped in ValidatedRequest / ValidatedDebugCommand
// values whose fields are unexported, so downstream components can only
// obtain them from this package. That makes the validation boundary
// impossible to bypass by construction.
package validate
