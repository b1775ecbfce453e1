package replay

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"calltrace/internal/event"
	"calltrace/internal/profile"
)

// Status describes one replayed thread's state.
type Status uint8

const (
	StatusQueued Status = iota
	StatusReplaying
	StatusDone
	StatusError
)

// String returns the string representation of Status.
func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusReplaying:
		return "replaying"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Progress reports replay advancement for one recorded thread.
type Progress struct {
	Thread uint64
	Done   int
	Total  int
	Status Status
}

// SplitByThread groups records per recorded thread, preserving each
// thread's event order. Thread IDs come back sorted for deterministic
// scheduling.
func SplitByThread(records []Record) (map[uint64][]Record, []uint64) {
	byThread := make(map[uint64][]Record)
	for _, rec := range records {
		byThread[rec.Thread] = append(byThread[rec.Thread], rec)
	}
	threads := make([]uint64, 0, len(byThread))
	for id := range byThread {
		threads = append(threads, id)
	}
	sort.Slice(threads, func(i, j int) bool { return threads[i] < threads[j] })
	return byThread, threads
}

// progressStride bounds how often a replaying goroutine reports progress.
const progressStride = 256

// Run replays records through p, one goroutine per recorded thread, so
// each recorded thread gets its own tracing context exactly as it would
// under live tracing. jobs bounds concurrently replaying threads
// (0 = no limit). progress may be nil; Run does not close it.
func Run(ctx context.Context, records []Record, p *profile.Profiler, jobs int, progress chan<- Progress) error {
	byThread, threads := SplitByThread(records)

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(min(jobs, len(threads)))
	}

	for _, id := range threads {
		recs := byThread[id]
		g.Go(func() error {
			report := func(done int, st Status) {
				if progress == nil {
					return
				}
				select {
				case progress <- Progress{Thread: id, Done: done, Total: len(recs), Status: st}:
				case <-gctx.Done():
				}
			}

			report(0, StatusReplaying)
			for i, rec := range recs {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				frame := NewFrame(rec)
				if err := p.Handle(event.Event{What: rec.What, Frame: frame}); err != nil {
					report(i, StatusError)
					return err
				}
				if (i+1)%progressStride == 0 {
					report(i+1, StatusReplaying)
				}
			}
			report(len(recs), StatusDone)
			return nil
		})
	}

	return g.Wait()
}
