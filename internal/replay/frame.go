package replay

import "calltrace/internal/event"

// Frame adapts a recorded record to the dispatcher's frame contract.
type Frame struct {
	rec Record
}

// NewFrame wraps a record.
func NewFrame(rec Record) Frame {
	return Frame{rec: rec}
}

// Function returns the recorded function name.
func (f Frame) Function() string { return f.rec.Func }

// File returns the recorded file path.
func (f Frame) File() string { return f.rec.File }

// Line returns the recorded line number.
func (f Frame) Line() int { return int(f.rec.Line) }

// FormatArgs returns the recorded argument string, or
// event.ErrArgsUnsupported when the original frame had no introspection.
func (f Frame) FormatArgs() (string, error) {
	if !f.rec.HasArgs {
		return "", event.ErrArgsUnsupported
	}
	return f.rec.Args, nil
}
