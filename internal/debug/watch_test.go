package debug

import "testing"

func TestEvaluateExpression(t *testing.T) {
	tests := []struct {
		expression string
		wantValue  string
		wantType   WatchType
	}{
		{"x", "42", WatchTypeNumber},
		{"variable2", "42", WatchTypeNumber},
		{"name", `"mock value"`, WatchTypeString},
		{"string_val", `"mock value"`, WatchTypeString},
		{"count_value", "123", WatchTypeNumber},
		{"number1", "123", WatchTypeNumber},
		{"obj.field", "{...}", WatchTypeObject},
		{"arr[0]", "[1, 2, 3]", WatchTypeArray},
		{"boolDone", "true", WatchTypeBoolean},
		{"flag", "true", WatchTypeBoolean},
		{"something", "undefined", WatchTypeUndefined},
	}

	for _, tt := range tests {
		value, typ := EvaluateExpression(tt.expression)
		if value != tt.wantValue || typ != tt.wantType {
			t.Errorf("EvaluateExpression(%q) = (%q, %q), want (%q, %q)",
				tt.expression, value, typ, tt.wantValue, tt.wantType)
		}
	}
}

func TestEvaluateExpression_Deterministic(t *testing.T) {
	v1, t1 := EvaluateExpression("count_value")
	v2, t2 := EvaluateExpression("count_value")
	if v1 != v2 || t1 != t2 {
		t.Error("expected identical results for identical expressions")
	}
}
