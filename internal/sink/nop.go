package sink

// nop is a no-op implementation for zero overhead when instrumentation is
// disabled.
type nop struct{}

// BeginRegion does nothing.
func (nop) BeginRegion(string) {}

// EndRegion does nothing.
func (nop) EndRegion(string) {}

// Flush does nothing.
func (nop) Flush() error { return nil }

// Close does nothing.
func (nop) Close() error { return nil }

// Nop is the package-level singleton nop sink.
var Nop Sink = nop{}
