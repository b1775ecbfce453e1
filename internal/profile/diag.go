package profile

import "fmt"

// diagf emits a diagnostic line when the thread's verbosity exceeds min.
// Diagnostics describe filtering decisions; they are not errors and never
// reach the sink.
func (p *Profiler) diagf(ts *threadState, min int, format string, args ...any) {
	if ts.cfg.Verbose <= min {
		return
	}
	p.mu.Lock()
	w := p.diag
	p.mu.Unlock()
	fmt.Fprintf(w, "[calltrace] "+format+"\n", args...)
}
