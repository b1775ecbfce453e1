// Package profile implements the call-tracer core: the process-wide
// configuration store, the per-goroutine tracing contexts, and the event
// dispatcher that turns interpreter call/return events into balanced
// begin/end region signals.
//
// # Data flow
//
//	event source → Handle → filters → label builder → ledger → sink
//
// Each traced goroutine owns a private configuration snapshot, depth
// counter, label registry and region ledger, materialized on its first
// event. Nothing per-goroutine is shared or locked; the process-wide
// configuration is mutated only through the Profiler's control surface,
// assumed to run before tracing starts or from a single controlling
// goroutine.
//
// # Sessions
//
// Initialize and Finalize are idempotent. Stopping a session abandons any
// open regions without matching end calls; tracing that attaches
// mid-call-stack under-counts rather than crashes.
package profile
