// Package replay reads and writes recorded interpreter event streams and
// feeds them back through the dispatcher.
//
// A stream is a msgpack sequence: one Header followed by Records until
// EOF. Records carry the raw event source data (thread, kind string,
// function, file, line, optional formatted arguments), so a replay
// exercises the exact same dispatch path as live tracing.
package replay

import (
	"errors"
	"fmt"
	"io"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the stream format changes.
const streamSchemaVersion uint16 = 1

// ErrSchemaMismatch indicates a stream written by an incompatible version.
var ErrSchemaMismatch = errors.New("recorded stream schema mismatch")

// Header opens every recorded stream.
type Header struct {
	Schema    uint16
	Program   string
	CreatedAt time.Time
}

// Record is one recorded call/return event.
type Record struct {
	Thread  uint64 // recorded thread identity
	What    string // event kind string: call|c_call|return|c_return
	Func    string
	File    string
	Line    int32
	Args    string
	HasArgs bool // false when the frame had no argument introspection
}

// Writer serializes a recorded stream.
type Writer struct {
	enc *msgpack.Encoder
}

// NewWriter writes the stream header and returns a Writer.
func NewWriter(w io.Writer, program string) (*Writer, error) {
	enc := msgpack.NewEncoder(w)
	hdr := Header{
		Schema:    streamSchemaVersion,
		Program:   program,
		CreatedAt: time.Now().UTC(),
	}
	if err := enc.Encode(&hdr); err != nil {
		return nil, fmt.Errorf("failed to write stream header: %w", err)
	}
	return &Writer{enc: enc}, nil
}

// Append writes one record.
func (w *Writer) Append(rec Record) error {
	return w.enc.Encode(&rec)
}

// AppendEvent builds and writes a record from raw event source values.
// A nil args means the frame had no argument introspection.
func (w *Writer) AppendEvent(thread uint64, what, fn, file string, line int, args *string) error {
	l, err := safecast.Conv[int32](line)
	if err != nil {
		return fmt.Errorf("line number out of range: %w", err)
	}
	rec := Record{
		Thread: thread,
		What:   what,
		Func:   fn,
		File:   file,
		Line:   l,
	}
	if args != nil {
		rec.Args = *args
		rec.HasArgs = true
	}
	return w.Append(rec)
}

// Reader deserializes a recorded stream.
type Reader struct {
	dec    *msgpack.Decoder
	header Header
}

// NewReader validates the stream header and returns a Reader.
func NewReader(r io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(r)
	var hdr Header
	if err := dec.Decode(&hdr); err != nil {
		return nil, fmt.Errorf("failed to read stream header: %w", err)
	}
	if hdr.Schema != streamSchemaVersion {
		return nil, fmt.Errorf("%w: stream has v%d, reader expects v%d",
			ErrSchemaMismatch, hdr.Schema, streamSchemaVersion)
	}
	return &Reader{dec: dec, header: hdr}, nil
}

// Header returns the stream header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next record, or io.EOF at end of stream.
func (r *Reader) Next() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec, nil
}

// ReadAll drains the stream.
func ReadAll(r *Reader) ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}
