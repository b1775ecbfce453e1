package profile

import (
	"calltrace/internal/event"
	"calltrace/internal/label"
	"calltrace/internal/region"
)

// threadState is the per-goroutine tracing context: a private configuration
// snapshot, the depth counter, the label registry and the region ledger.
// It is created lazily on the goroutine's first event and only ever touched
// by that goroutine, so none of it is locked.
//
// Configuration changes made on the process-wide instance after a state has
// materialized do not reach it. That is a deliberate trade-off: thread
// safety without locks on the hot path, at the cost of late configuration
// changes not affecting goroutines observed earlier.
type threadState struct {
	cfg         Config
	sink        region.Sink
	depth       int32
	labels      *label.Registry
	ledger      *region.Ledger
	dispatching bool // re-entrancy guard
}

// state returns the calling goroutine's tracing context, materializing it
// from a snapshot of the process-wide configuration on first use.
func (p *Profiler) state() *threadState {
	gid := goroutineID()
	if v, ok := p.threads.Load(gid); ok {
		return v.(*threadState)
	}

	p.mu.Lock()
	ts := &threadState{
		cfg:    p.cfg,
		sink:   p.sink,
		labels: label.NewRegistry(),
		ledger: region.NewLedger(),
	}
	p.mu.Unlock()

	actual, _ := p.threads.LoadOrStore(gid, ts)
	return actual.(*threadState)
}

// nextDepth advances the depth counter and returns this event's depth.
// Calls return the counter value before incrementing; returns decrement
// first and report the new value. A call at depth d is therefore always
// unwound by the matching return reading depth d, which keeps the ledger
// consistent without consulting the (recursion-inflated) frame chain.
func (t *threadState) nextDepth(kind event.Kind) int32 {
	d := t.depth
	switch {
	case kind.IsCall():
		t.depth++
	case kind.IsReturn():
		t.depth--
		d = t.depth
	}
	return d
}
