package sink

import (
	"io"
	"sync"
	"time"
)

// Ring keeps the last N region operations in memory (circular buffer).
// Useful for post-mortem dumps when streaming everything is too costly.
type Ring struct {
	mu       sync.RWMutex
	ops      []Op
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
}

// NewRing creates a new Ring sink with the specified capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 4096
	}

	return &Ring{
		ops:      make([]Op, capacity),
		capacity: capacity,
	}
}

// BeginRegion records a begin operation.
func (r *Ring) BeginRegion(label string) {
	r.record(Op{Time: time.Now(), Seq: NextSeq(), Kind: OpBegin, Label: label})
}

// EndRegion records an end operation.
func (r *Ring) EndRegion(label string) {
	r.record(Op{Time: time.Now(), Seq: NextSeq(), Kind: OpEnd, Label: label})
}

func (r *Ring) record(op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ops[r.head] = op
	r.head = (r.head + 1) % r.capacity

	if r.head == 0 {
		r.full = true
	}
}

// Snapshot returns a copy of all stored operations in chronological order.
func (r *Ring) Snapshot() []Op {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.full {
		result := make([]Op, r.head)
		copy(result, r.ops[:r.head])
		return result
	}

	result := make([]Op, r.capacity)
	copy(result, r.ops[r.head:])
	copy(result[r.capacity-r.head:], r.ops[:r.head])
	return result
}

// Dump writes all stored operations to the provided writer.
func (r *Ring) Dump(w io.Writer, format Format) error {
	for _, op := range r.Snapshot() {
		if _, err := w.Write(FormatOp(op, format)); err != nil {
			return err
		}
	}
	return nil
}

// RingOf returns the Ring inside s, unwrapping a Multi fan-out. It
// returns nil when s keeps no ring buffer.
func RingOf(s Sink) *Ring {
	switch v := s.(type) {
	case *Ring:
		return v
	case *Multi:
		for _, inner := range v.sinks {
			if r := RingOf(inner); r != nil {
				return r
			}
		}
	}
	return nil
}

// Flush is a no-op for Ring since everything is in memory.
func (r *Ring) Flush() error {
	return nil
}

// Close is a no-op for Ring.
func (r *Ring) Close() error {
	return nil
}
