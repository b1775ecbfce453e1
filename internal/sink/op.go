package sink

import (
	"sync/atomic"
	"time"
)

var globalSeq uint64

// NextSeq returns a monotonically increasing sequence number shared by all
// sinks, so interleaved begin/end operations from different threads keep a
// total order.
func NextSeq() uint64 {
	return atomic.AddUint64(&globalSeq, 1)
}

// OpKind distinguishes begin and end operations.
type OpKind uint8

const (
	OpBegin OpKind = iota + 1
	OpEnd
)

// String returns the string representation of OpKind.
func (k OpKind) String() string {
	switch k {
	case OpBegin:
		return "begin"
	case OpEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Op is one recorded region operation.
type Op struct {
	Time  time.Time
	Seq   uint64
	Kind  OpKind
	Label string
}
