package profile

import (
	"io"
	"os"
	"sync"

	"calltrace/internal/filter"
	"calltrace/internal/region"
	"calltrace/internal/sink"
)

// Profiler owns the process-wide configuration, the sink, and the lazily
// materialized per-goroutine tracing contexts.
//
// Configuration mutation is expected to happen before tracing starts or
// from a single controlling goroutine; the mutex serializes the control
// surface against snapshot creation, not against concurrent mutation
// during active tracing.
type Profiler struct {
	mu      sync.Mutex
	cfg     Config
	sink    region.Sink
	diag    io.Writer
	threads sync.Map // goroutine id (uint64) -> *threadState
}

// New returns a Profiler with the default configuration, reporting regions
// to s. A nil sink discards all regions.
func New(s region.Sink) *Profiler {
	if s == nil {
		s = sink.Nop
	}
	return &Profiler{
		cfg:  DefaultConfig(),
		sink: s,
		diag: os.Stderr,
	}
}

// Initialize starts a tracing session. Idempotent: a no-op while running.
// Starting drops every per-goroutine context, which abandons any open
// regions and resets all depth counters to zero.
func (p *Profiler) Initialize() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cfg.Running {
		return
	}
	p.threads.Clear()
	p.cfg.BaseStackDepth = -1
	p.cfg.Running = true
}

// Finalize stops the tracing session. Idempotent: a no-op while stopped.
// Open regions are abandoned without matching end calls; the sink is not
// notified.
func (p *Profiler) Finalize() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.cfg.Running {
		return
	}
	p.cfg.Running = false
	p.cfg.BaseStackDepth = -1
	p.threads.Clear()
}

// Running reports whether a session is active.
func (p *Profiler) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.Running
}

// SetSink replaces the region sink. Goroutines already observed keep the
// previous sink; set it before tracing starts.
func (p *Profiler) SetSink(s region.Sink) {
	if s == nil {
		s = sink.Nop
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sink = s
}

// SetDiagOutput redirects diagnostic output (default os.Stderr).
func (p *Profiler) SetDiagOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	p.diag = w
}

// Config returns a snapshot of the process-wide configuration.
func (p *Profiler) Config() Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg
}

// TraceNative reports whether native call tracing is enabled.
func (p *Profiler) TraceNative() bool { return p.Config().TraceNative }

// SetTraceNative enables tracing of c_call/c_return events.
func (p *Profiler) SetTraceNative(v bool) { p.update(func(c *Config) { c.TraceNative = v }) }

// IncludeInternal reports whether self-exclusion is disabled.
func (p *Profiler) IncludeInternal() bool { return p.Config().IncludeInternal }

// SetIncludeInternal disables or re-enables self-exclusion.
func (p *Profiler) SetIncludeInternal(v bool) { p.update(func(c *Config) { c.IncludeInternal = v }) }

// IncludeArgs reports whether labels carry formatted arguments.
func (p *Profiler) IncludeArgs() bool { return p.Config().IncludeArgs }

// SetIncludeArgs toggles argument encoding in labels.
func (p *Profiler) SetIncludeArgs(v bool) { p.update(func(c *Config) { c.IncludeArgs = v }) }

// IncludeLine reports whether labels carry line numbers.
func (p *Profiler) IncludeLine() bool { return p.Config().IncludeLine }

// SetIncludeLine toggles line numbers in labels.
func (p *Profiler) SetIncludeLine(v bool) { p.update(func(c *Config) { c.IncludeLine = v }) }

// IncludeFilename reports whether labels carry source files.
func (p *Profiler) IncludeFilename() bool { return p.Config().IncludeFilename }

// SetIncludeFilename toggles source files in labels.
func (p *Profiler) SetIncludeFilename(v bool) { p.update(func(c *Config) { c.IncludeFilename = v }) }

// FullFilepath reports whether labels use full paths.
func (p *Profiler) FullFilepath() bool { return p.Config().FullFilepath }

// SetFullFilepath selects full paths over basenames in labels.
func (p *Profiler) SetFullFilepath(v bool) { p.update(func(c *Config) { c.FullFilepath = v }) }

// Verbose returns the diagnostic verbosity level.
func (p *Profiler) Verbose() int { return p.Config().Verbose }

// SetVerbose sets the diagnostic verbosity level.
func (p *Profiler) SetVerbose(v int) { p.update(func(c *Config) { c.Verbose = v }) }

// BaseModulePath returns the tracer's configured install location.
func (p *Profiler) BaseModulePath() string { return p.Config().BaseModulePath }

// SetBaseModulePath sets the self-exclusion path prefix. Empty disables
// self-exclusion.
func (p *Profiler) SetBaseModulePath(path string) {
	p.update(func(c *Config) { c.BaseModulePath = path })
}

// IgnoreStackDepth returns the reserved ignore-stack-depth field.
func (p *Profiler) IgnoreStackDepth() int32 { return p.Config().IgnoreStackDepth }

// SetIgnoreStackDepth sets the reserved ignore-stack-depth field.
func (p *Profiler) SetIgnoreStackDepth(v int32) {
	p.update(func(c *Config) { c.IgnoreStackDepth = v })
}

// BaseStackDepth returns the session reset marker.
func (p *Profiler) BaseStackDepth() int32 { return p.Config().BaseStackDepth }

// OnlyFunctions returns the patterns of the only-functions set.
func (p *Profiler) OnlyFunctions() []string { return p.Config().OnlyFunctions.Patterns() }

// SetOnlyFunctions replaces the only-functions set wholesale.
func (p *Profiler) SetOnlyFunctions(patterns []string) {
	p.update(func(c *Config) { c.OnlyFunctions = filter.NewSet(patterns...) })
}

// OnlyFilenames returns the patterns of the only-filenames set.
func (p *Profiler) OnlyFilenames() []string { return p.Config().OnlyFilenames.Patterns() }

// SetOnlyFilenames replaces the only-filenames set wholesale.
func (p *Profiler) SetOnlyFilenames(patterns []string) {
	p.update(func(c *Config) { c.OnlyFilenames = filter.NewSet(patterns...) })
}

// SkipFunctions returns the patterns of the skip-functions set.
func (p *Profiler) SkipFunctions() []string { return p.Config().SkipFunctions.Patterns() }

// SetSkipFunctions replaces the skip-functions set wholesale.
func (p *Profiler) SetSkipFunctions(patterns []string) {
	p.update(func(c *Config) { c.SkipFunctions = filter.NewSet(patterns...) })
}

// SkipFilenames returns the patterns of the skip-filenames set.
func (p *Profiler) SkipFilenames() []string { return p.Config().SkipFilenames.Patterns() }

// SetSkipFilenames replaces the skip-filenames set wholesale.
func (p *Profiler) SetSkipFilenames(patterns []string) {
	p.update(func(c *Config) { c.SkipFilenames = filter.NewSet(patterns...) })
}

func (p *Profiler) update(f func(*Config)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	f(&p.cfg)
}
