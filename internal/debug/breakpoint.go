package debug

import (
	"sort"

	"github.com/samber/lo"
)

// BreakpointTable maps file paths to sets of marked line numbers.
// A (file, line) pair is either present (enabled) or absent; there is no
// disabled-but-tracked state. Mutated only through its owning Session.
type BreakpointTable struct {
	byPath map[string]map[int]struct{}
}

// NewBreakpointTable creates an empty table.
func NewBreakpointTable() *BreakpointTable {
	return &BreakpointTable{
		byPath: make(map[string]map[int]struct{}),
	}
}

// Set marks a line in a file. Setting an already-marked line is a no-op,
// as is a negative line number, which can never be present.
func (t *BreakpointTable) Set(path string, line int) {
	if line < 0 {
		return
	}
	lines, ok := t.byPath[path]
	if !ok {
		lines = make(map[int]struct{})
		t.byPath[path] = lines
	}
	lines[line] = struct{}{}
}

// Clear removes a mark. Clearing an absent mark is a no-op.
func (t *BreakpointTable) Clear(path string, line int) {
	lines, ok := t.byPath[path]
	if !ok {
		return
	}
	delete(lines, line)
	if len(lines) == 0 {
		delete(t.byPath, path)
	}
}

// IsSet reports whether a line is marked in a file.
func (t *BreakpointTable) IsSet(path string, line int) bool {
	_, ok := t.byPath[path][line]
	return ok
}

// Lines returns the marked lines for a file in ascending order.
func (t *BreakpointTable) Lines(path string) []int {
	lines := lo.Keys(t.byPath[path])
	sort.Ints(lines)
	return lines
}

// Paths returns all files with marks, sorted.
func (t *BreakpointTable) Paths() []string {
	paths := lo.Keys(t.byPath)
	sort.Strings(paths)
	return paths
}

// Count returns the total number of marks across all files.
func (t *BreakpointTable) Count() int {
	total := 0
	for _, lines := range t.byPath {
		total += len(lines)
	}
	return total
}

// NextLineAfter returns the lowest marked line strictly greater than the
// given line, scanning across ALL files. The current file is deliberately
// not taken into account; this mirrors the simulated breakpoint-hit rule.
func (t *BreakpointTable) NextLineAfter(line int) (int, bool) {
	next := -1
	for _, lines := range t.byPath {
		for l := range lines {
			if l > line && (next == -1 || l < next) {
				next = l
			}
		}
	}
	if next == -1 {
		return 0, false
	}
	return next, true
}

// RemoveAll clears the table.
func (t *BreakpointTable) RemoveAll() {
	t.byPath = make(map[string]map[int]struct{})
}
