package session

import (
	"fmt"
	"io"

	"github.com/tidwall/sjson"
	"go.uber.org/zap"
)

// Sink receives serialized results and events for the UI layer.
// Payloads are JSON documents; event names group them (debug, lsp,
// breakpoint).
type Sink interface {
	Emit(event, payload string)
}

// LogSink writes events to a zap logger at debug level.
type LogSink struct {
	Logger *zap.Logger
}

// Emit implements Sink.
func (s *LogSink) Emit(event, payload string) {
	s.Logger.Debug("session event",
		zap.String("event", event),
		zap.String("payload", payload),
	)
}

// WriterSink writes one JSON line per event to an io.Writer, tagging each
// payload with its event name. Used by the console front end.
type WriterSink struct {
	W io.Writer
}

// Emit implements Sink.
func (s *WriterSink) Emit(event, payload string) {
	line, err := sjson.Set(payload, "event", event)
	if err != nil {
		line = payload
	}
	fmt.Fprintln(s.W, line)
}

// RecorderSink records events in order, for tests.
type RecorderSink struct {
	Events   []string
	Payloads []string
}

// Emit implements Sink.
func (s *RecorderSink) Emit(event, payload string) {
	s.Events = append(s.Events, event)
	s.Payloads = append(s.Payloads, payload)
}
