package sink

// Multi fans out region operations to multiple sinks.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a new Multi that forwards to all provided sinks.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// BeginRegion forwards to all underlying sinks.
func (m *Multi) BeginRegion(label string) {
	for _, s := range m.sinks {
		s.BeginRegion(label)
	}
}

// EndRegion forwards to all underlying sinks.
func (m *Multi) EndRegion(label string) {
	for _, s := range m.sinks {
		s.EndRegion(label)
	}
}

// Flush flushes all underlying sinks.
func (m *Multi) Flush() error {
	var firstErr error
	for _, s := range m.sinks {
		if err := s.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes all underlying sinks.
func (m *Multi) Close() error {
	var firstErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
