package profile

import (
	"calltrace/internal/event"
	"calltrace/internal/region"
)

// std is the process default profiler. Interpreters register exactly one
// global trace callback, so the embedding layer usually works through this
// instance rather than constructing its own.
var std = New(nil)

// Default returns the process default profiler.
func Default() *Profiler { return std }

// Initialize starts a session on the default profiler.
func Initialize() { std.Initialize() }

// Finalize stops the session on the default profiler.
func Finalize() { std.Finalize() }

// SetSink replaces the default profiler's sink.
func SetSink(s region.Sink) { std.SetSink(s) }

// HandleEvent dispatches one event on the default profiler.
func HandleEvent(ev event.Event) error { return std.Handle(ev) }
