package debug

import "fmt"

// Frame is one simulated stack frame. The scope is a display string
// ("global scope", "function scope"), not a variable container.
type Frame struct {
	Function string `json:"functionName"`
	Line     int    `json:"line"`
	Scope    string `json:"scope"`
}

// FormatLocation returns a display string like "main:12".
func (f Frame) FormatLocation() string {
	return fmt.Sprintf("%s:%d", f.Function, f.Line)
}

// CallStack is the ordered sequence of simulated frames. The last frame
// is the currently executing one.
type CallStack struct {
	frames []Frame
}

// NewCallStack creates an empty call stack.
func NewCallStack() *CallStack {
	return &CallStack{}
}

// Push appends a frame, making it current.
func (c *CallStack) Push(f Frame) {
	c.frames = append(c.frames, f)
}

// Pop removes and returns the current frame. While more than one frame is
// on the stack the pop succeeds; a stack of one frame or fewer is left
// untouched and Pop reports false.
func (c *CallStack) Pop() (Frame, bool) {
	if len(c.frames) <= 1 {
		return Frame{}, false
	}
	top := c.frames[len(c.frames)-1]
	c.frames = c.frames[:len(c.frames)-1]
	return top, true
}

// Top returns a pointer to the current frame, or nil if the stack is empty.
func (c *CallStack) Top() *Frame {
	if len(c.frames) == 0 {
		return nil
	}
	return &c.frames[len(c.frames)-1]
}

// SetTopLine updates the current frame's line. No-op on an empty stack.
func (c *CallStack) SetTopLine(line int) {
	if top := c.Top(); top != nil {
		top.Line = line
	}
}

// Depth returns the number of frames.
func (c *CallStack) Depth() int {
	return len(c.frames)
}

// Frames returns a copy of the frames, bottom first.
func (c *CallStack) Frames() []Frame {
	return append([]Frame{}, c.frames...)
}

// Reset removes all frames.
func (c *CallStack) Reset() {
	c.frames = nil
}
