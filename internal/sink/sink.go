// Package sink provides instrumentation backends consuming begin/end
// region signals from the dispatcher.
//
// Implementations:
//
//   - Nop: zero-overhead discard when instrumentation is disabled
//   - Stream: immediate write to an io.Writer (file/stderr)
//   - Ring: circular buffer of the last N region operations
//   - Multi: fan-out to several sinks
package sink

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Sink is a region backend with lifecycle management. BeginRegion and
// EndRegion satisfy the dispatcher's region.Sink contract and must be
// goroutine-safe: traced threads call them concurrently.
type Sink interface {
	BeginRegion(label string)
	EndRegion(label string)
	Flush() error
	Close() error
}

// Mode determines how region operations are stored.
type Mode uint8

const (
	ModeStream Mode = iota + 1 // immediate write
	ModeRing                   // circular buffer
	ModeBoth                   // stream + ring
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeRing:
		return "ring"
	case ModeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "stream":
		return ModeStream, nil
	case "ring":
		return ModeRing, nil
	case "both":
		return ModeBoth, nil
	default:
		return ModeRing, fmt.Errorf("invalid sink mode: %q (expected: stream|ring|both)", s)
	}
}

// Config holds sink configuration.
type Config struct {
	Mode       Mode
	Format     Format    // FormatAuto derives from OutputPath
	Output     io.Writer // for stream mode (if nil, use OutputPath)
	OutputPath string    // alternative: file path ("-" for stderr)
	RingSize   int       // for ring mode (default 4096)
}

// New creates a Sink based on Config.
func New(cfg Config) (Sink, error) {
	if cfg.RingSize <= 0 {
		cfg.RingSize = 4096
	}

	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(cfg.OutputPath, ".ndjson") {
			format = FormatNDJSON
		}
	}

	switch cfg.Mode {
	case ModeStream:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		return NewStream(w, format), nil

	case ModeRing:
		return NewRing(cfg.RingSize), nil

	case ModeBoth:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		return NewMulti(NewStream(w, format), NewRing(cfg.RingSize)), nil

	default:
		return nil, fmt.Errorf("unknown sink mode: %v", cfg.Mode)
	}
}

// openOutput opens the output writer from config.
func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}

	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return os.Stderr, nil
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sink output: %w", err)
	}

	return f, nil
}
