package sink

import (
	"io"
	"sync"
	"time"
)

// Stream writes region operations immediately to an io.Writer.
type Stream struct {
	mu     sync.Mutex
	w      io.Writer
	format Format
}

// NewStream creates a new Stream sink.
func NewStream(w io.Writer, format Format) *Stream {
	return &Stream{w: w, format: format}
}

// BeginRegion writes a begin operation.
func (s *Stream) BeginRegion(label string) {
	s.emit(Op{Time: time.Now(), Seq: NextSeq(), Kind: OpBegin, Label: label})
}

// EndRegion writes an end operation.
func (s *Stream) EndRegion(label string) {
	s.emit(Op{Time: time.Now(), Seq: NextSeq(), Kind: OpEnd, Label: label})
}

func (s *Stream) emit(op Op) {
	data := FormatOp(op, s.format)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Best-effort write: sink errors must never disturb the traced program.
	if _, err := s.w.Write(data); err != nil {
		_ = err
	}
}

// Flush ensures all buffered data is written.
func (s *Stream) Flush() error {
	if flusher, ok := s.w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// Close flushes and closes the writer if it implements io.Closer.
func (s *Stream) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	if closer, ok := s.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
