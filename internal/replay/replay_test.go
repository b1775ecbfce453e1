package replay

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"calltrace/internal/event"
	"calltrace/internal/profile"
)

func TestStreamRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewWriter(&buf, "app.py")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	args := "(x=1)"
	if err := w.AppendEvent(1, "call", "foo", "/src/app.py", 10, &args); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}
	if err := w.AppendEvent(1, "return", "foo", "/src/app.py", 10, nil); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Header().Program != "app.py" {
		t.Fatalf("program = %q", r.Header().Program)
	}

	recs, err := ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].What != "call" || recs[0].Func != "foo" || recs[0].Line != 10 {
		t.Fatalf("first record mangled: %+v", recs[0])
	}
	if !recs[0].HasArgs || recs[0].Args != "(x=1)" {
		t.Fatalf("args not preserved: %+v", recs[0])
	}
	if recs[1].HasArgs {
		t.Fatalf("second record should have no args")
	}
}

func TestReaderRejectsMissingHeader(t *testing.T) {
	if _, err := NewReader(bytes.NewReader(nil)); err == nil {
		t.Fatalf("empty stream must fail")
	}
}

func TestFrameArgs(t *testing.T) {
	f := NewFrame(Record{Func: "foo", File: "/src/app.py", Line: 3, Args: "(a=1)", HasArgs: true})
	got, err := f.FormatArgs()
	if err != nil || got != "(a=1)" {
		t.Fatalf("FormatArgs = %q, %v", got, err)
	}

	f = NewFrame(Record{Func: "foo"})
	if _, err := f.FormatArgs(); !errors.Is(err, event.ErrArgsUnsupported) {
		t.Fatalf("recorded frame without args must report ErrArgsUnsupported, got %v", err)
	}
}

func TestSplitByThread(t *testing.T) {
	records := []Record{
		{Thread: 2, Func: "a"},
		{Thread: 1, Func: "b"},
		{Thread: 2, Func: "c"},
	}

	byThread, threads := SplitByThread(records)
	if len(threads) != 2 || threads[0] != 1 || threads[1] != 2 {
		t.Fatalf("thread ids should come back sorted: %v", threads)
	}
	if len(byThread[2]) != 2 || byThread[2][0].Func != "a" || byThread[2][1].Func != "c" {
		t.Fatalf("per-thread order must be preserved: %+v", byThread[2])
	}
}

// countingSink tallies begin/end calls per label, goroutine-safe.
type countingSink struct {
	mu     sync.Mutex
	begins map[string]int
	ends   map[string]int
}

func newCountingSink() *countingSink {
	return &countingSink{begins: make(map[string]int), ends: make(map[string]int)}
}

func (c *countingSink) BeginRegion(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.begins[label]++
}

func (c *countingSink) EndRegion(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ends[label]++
}

func TestRunReplaysEachThreadIsolated(t *testing.T) {
	// Two recorded threads, each with a balanced call/return pair at the
	// same label. Replay runs each on its own goroutine, so each gets a
	// private depth counter and ledger.
	records := []Record{
		{Thread: 1, What: "call", Func: "foo", File: "/src/app.py", Line: 10},
		{Thread: 2, What: "call", Func: "foo", File: "/src/app.py", Line: 10},
		{Thread: 1, What: "return", Func: "foo", File: "/src/app.py", Line: 10},
		{Thread: 2, What: "return", Func: "foo", File: "/src/app.py", Line: 10},
	}

	cs := newCountingSink()
	p := profile.New(cs)
	p.Initialize()

	if err := Run(context.Background(), records, p, 0, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if cs.begins["foo"] != 2 || cs.ends["foo"] != 2 {
		t.Fatalf("expected 2 balanced pairs, got begins=%d ends=%d",
			cs.begins["foo"], cs.ends["foo"])
	}
}

func TestRunReportsProgress(t *testing.T) {
	records := []Record{
		{Thread: 7, What: "call", Func: "foo", File: "/src/app.py", Line: 1},
		{Thread: 7, What: "return", Func: "foo", File: "/src/app.py", Line: 1},
	}

	p := profile.New(nil)
	p.Initialize()

	progress := make(chan Progress, 16)
	if err := Run(context.Background(), records, p, 1, progress); err != nil {
		t.Fatalf("Run: %v", err)
	}
	close(progress)

	var last Progress
	seen := 0
	for pr := range progress {
		last = pr
		seen++
	}
	if seen == 0 {
		t.Fatalf("expected progress reports")
	}
	if last.Status != StatusDone || last.Done != 2 || last.Thread != 7 {
		t.Fatalf("final progress should mark the thread done: %+v", last)
	}
}

func TestRunPropagatesDispatchErrors(t *testing.T) {
	records := []Record{
		{Thread: 1, What: "call", Func: "foo", File: "/src/app.py", Line: 1},
	}

	p := profile.New(nil)
	p.SetSkipFunctions([]string{"(("}) // malformed on purpose
	p.Initialize()

	if err := Run(context.Background(), records, p, 0, nil); err == nil {
		t.Fatalf("malformed filter pattern must fail the replay")
	}
}

func TestStatusString(t *testing.T) {
	if StatusQueued.String() != "queued" || StatusDone.String() != "done" {
		t.Fatalf("status strings broken")
	}
	if !strings.Contains(StatusReplaying.String(), "replaying") {
		t.Fatalf("unexpected: %q", StatusReplaying.String())
	}
}
