package debug

import "strings"

// WatchType is the mock-inferred type of a watched expression's value.
type WatchType string

const (
	WatchTypeNumber    WatchType = "number"
	WatchTypeString    WatchType = "string"
	WatchTypeObject    WatchType = "object"
	WatchTypeArray     WatchType = "array"
	WatchTypeBoolean   WatchType = "boolean"
	WatchTypeUndefined WatchType = "undefined"
)

// WatchedVariable is a named expression whose mock value is tracked
// during a debug session. Keyed uniquely by Name; re-adding overwrites.
type WatchedVariable struct {
	Name       string    `json:"name"`
	Expression string    `json:"expression"`
	Value      string    `json:"value"`
	Type       WatchType `json:"type"`
}

// EvaluateExpression is the mock expression evaluator. It inspects the
// expression text for known substrings and returns a canned value and
// type. It never parses or executes the expression; this fake behavior
// is intentional and must stay deterministic.
func EvaluateExpression(expression string) (string, WatchType) {
	switch {
	case strings.Contains(expression, "x"), strings.Contains(expression, "variable"):
		return "42", WatchTypeNumber
	case strings.Contains(expression, "name"), strings.Contains(expression, "string"):
		return `"mock value"`, WatchTypeString
	case strings.Contains(expression, "count"), strings.Contains(expression, "number"):
		return "123", WatchTypeNumber
	case strings.Contains(expression, "obj"), strings.Contains(expression, "object"):
		return "{...}", WatchTypeObject
	case strings.Contains(expression, "arr"), strings.Contains(expression, "array"):
		return "[1, 2, 3]", WatchTypeArray
	case strings.Contains(expression, "bool"), strings.Contains(expression, "flag"):
		return "true", WatchTypeBoolean
	default:
		return "undefined", WatchTypeUndefined
	}
}
