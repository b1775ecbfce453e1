package label

// Registry interns label strings for one tracing thread. Region handles
// hold the interned string, so the registry is append-only for the life of
// the thread's session: an interned label is never removed while tracing.
//
// A Registry is owned by a single goroutine and needs no locking.
type Registry struct {
	labels map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{labels: make(map[string]string)}
}

// Intern returns the canonical copy of s, storing it on first sight.
// Idempotent: repeated calls with equal strings return the same entry.
func (r *Registry) Intern(s string) string {
	if canon, ok := r.labels[s]; ok {
		return canon
	}
	r.labels[s] = s
	return s
}

// Len returns the number of distinct labels interned so far.
func (r *Registry) Len() int {
	return len(r.labels)
}
