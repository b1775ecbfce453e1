package profile

import (
	"calltrace/internal/filter"
	"calltrace/internal/label"
)

// Config is the tracer configuration. The profiler keeps one process-wide
// instance; every traced goroutine receives a private snapshot of it the
// first time that goroutine is observed (see threadState). Pattern sets are
// immutable, so a snapshot may share them with the process-wide instance.
type Config struct {
	// Running reports whether a tracing session is active.
	Running bool
	// TraceNative enables tracing of native (c_call/c_return) events.
	TraceNative bool
	// IncludeInternal disables self-exclusion of the tracer's own modules.
	IncludeInternal bool
	// IncludeArgs appends formatted bound arguments to labels.
	IncludeArgs bool
	// IncludeLine appends line numbers to labels.
	IncludeLine bool
	// IncludeFilename appends source files to labels.
	IncludeFilename bool
	// FullFilepath uses the full path instead of the file basename.
	FullFilepath bool

	// IgnoreStackDepth is reserved and currently unread.
	IgnoreStackDepth int32
	// BaseStackDepth is the session reset marker (-1 outside a baseline).
	BaseStackDepth int32

	// BaseModulePath is the tracer's own install location; events whose
	// file path starts with it are dropped unless IncludeInternal is set.
	// Empty disables self-exclusion.
	BaseModulePath string

	// OnlyFunctions, when non-empty, restricts tracing to matching
	// function names. SkipFunctions drops matching names; skip wins over
	// only. OnlyFilenames and SkipFilenames do the same for file paths.
	OnlyFunctions *filter.Set
	OnlyFilenames *filter.Set
	SkipFunctions *filter.Set
	SkipFilenames *filter.Set

	// Verbose gates diagnostic output at increasing thresholds.
	Verbose int
}

// DefaultConfig returns the stock configuration: tracing stopped, bare
// labels, and the default skip sets excluding interpreter noise.
func DefaultConfig() Config {
	return Config{
		BaseStackDepth: -1,
		OnlyFunctions:  filter.NewSet(),
		OnlyFilenames:  filter.NewSet(),
		SkipFunctions:  filter.DefaultSkipFunctions(),
		SkipFilenames:  filter.DefaultSkipFilenames(),
	}
}

// labelOptions derives the label builder options from the configuration.
func (c *Config) labelOptions() label.Options {
	return label.Options{
		IncludeArgs:     c.IncludeArgs,
		IncludeFilename: c.IncludeFilename,
		IncludeLine:     c.IncludeLine,
		FullFilepath:    c.FullFilepath,
	}
}
