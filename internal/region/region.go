// Package region tracks open instrumentation regions per tracing thread.
//
// A region is a named interval of execution reported to a Sink via matched
// BeginRegion/EndRegion calls. The Ledger keys open regions by nesting
// depth and label so that a return event closes exactly the region its
// call event opened, even when tracing attaches mid-call-stack.
package region

// Sink consumes begin/end region signals. Both calls are fire-and-forget;
// the dispatcher guarantees balanced calls except for regions abandoned at
// session stop.
type Sink interface {
	BeginRegion(label string)
	EndRegion(label string)
}

// Handle is one open region. The label is an interned reference owned by
// the thread's label registry, not a private copy.
type Handle struct {
	Label string
}

// Ledger is the per-thread map from depth to label to the stack of open
// region handles. It is owned by a single goroutine and never locked.
type Ledger struct {
	entries map[int32]map[string][]Handle
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[int32]map[string][]Handle)}
}

// Push opens a region at (depth, label) and immediately reports it to the
// sink.
func (l *Ledger) Push(depth int32, lbl string, sink Sink) {
	byLabel, ok := l.entries[depth]
	if !ok {
		byLabel = make(map[string][]Handle)
		l.entries[depth] = byLabel
	}
	byLabel[lbl] = append(byLabel[lbl], Handle{Label: lbl})
	sink.BeginRegion(lbl)
}

// Pop closes the most recent region at (depth, label) and reports it to
// the sink. A miss means tracing started mid-call; it is a silent no-op
// and Pop reports false.
func (l *Ledger) Pop(depth int32, lbl string, sink Sink) bool {
	byLabel, ok := l.entries[depth]
	if !ok {
		return false
	}
	stack, ok := byLabel[lbl]
	if !ok || len(stack) == 0 {
		return false
	}
	top := stack[len(stack)-1]
	byLabel[lbl] = stack[:len(stack)-1]
	sink.EndRegion(top.Label)
	return true
}

// Open returns the number of open handles at (depth, label).
func (l *Ledger) Open(depth int32, lbl string) int {
	byLabel, ok := l.entries[depth]
	if !ok {
		return 0
	}
	return len(byLabel[lbl])
}

// Clear abandons every open region without notifying the sink. Used when a
// session stops: under-counted regions are preferred over unbalanced ends.
func (l *Ledger) Clear() {
	l.entries = make(map[int32]map[string][]Handle)
}

// Empty reports whether no region is open at any depth.
func (l *Ledger) Empty() bool {
	for _, byLabel := range l.entries {
		for _, stack := range byLabel {
			if len(stack) > 0 {
				return false
			}
		}
	}
	return true
}
