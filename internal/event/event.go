package event

import (
	"errors"
	"fmt"
)

// Kind classifies a traced interpreter event.
type Kind uint8

const (
	// KindCall marks entry into an interpreted function.
	KindCall Kind = iota + 1
	// KindNativeCall marks entry into a native (non-interpreted) function.
	KindNativeCall
	// KindReturn marks exit from an interpreted function.
	KindReturn
	// KindNativeReturn marks exit from a native function.
	KindNativeReturn
)

// String returns the event source's wire name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCall:
		return "call"
	case KindNativeCall:
		return "c_call"
	case KindReturn:
		return "return"
	case KindNativeReturn:
		return "c_return"
	default:
		return "unknown"
	}
}

// ParseKind converts an event source's kind string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "call":
		return KindCall, nil
	case "c_call":
		return KindNativeCall, nil
	case "return":
		return KindReturn, nil
	case "c_return":
		return KindNativeReturn, nil
	default:
		return 0, fmt.Errorf("unsupported event kind: %q (expected: call|c_call|return|c_return)", s)
	}
}

// IsCall reports whether the kind opens a region.
func (k Kind) IsCall() bool {
	return k == KindCall || k == KindNativeCall
}

// IsReturn reports whether the kind closes a region.
func (k Kind) IsReturn() bool {
	return k == KindReturn || k == KindNativeReturn
}

// IsNative reports whether the kind describes a native call or return.
func (k Kind) IsNative() bool {
	return k == KindNativeCall || k == KindNativeReturn
}

// ErrArgsUnsupported is returned by Frame.FormatArgs when the frame type has
// no argument introspection. It is the only introspection failure the
// dispatcher tolerates; anything else propagates to the embedding layer.
var ErrArgsUnsupported = errors.New("argument introspection unsupported for frame")

// Frame is the dispatcher's view of an event source call frame.
//
// FormatArgs returns the formatted bound arguments of the frame, e.g.
// "(x=1, y=2)". Implementations without argument access return
// ErrArgsUnsupported.
type Frame interface {
	Function() string
	File() string
	Line() int
	FormatArgs() (string, error)
}

// Event is a single call/return notification from the event source.
// Arg is the source's extra payload; the dispatcher ignores it.
type Event struct {
	What  string
	Frame Frame
	Arg   any
}
