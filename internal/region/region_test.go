package region

import "testing"

// recordingSink captures begin/end calls in order.
type recordingSink struct {
	calls []string
}

func (r *recordingSink) BeginRegion(label string) { r.calls = append(r.calls, "begin "+label) }
func (r *recordingSink) EndRegion(label string)   { r.calls = append(r.calls, "end "+label) }

func TestPushPopBalanced(t *testing.T) {
	l := NewLedger()
	s := &recordingSink{}

	l.Push(0, "foo", s)
	if !l.Pop(0, "foo", s) {
		t.Fatalf("pop should find the pushed handle")
	}

	want := []string{"begin foo", "end foo"}
	if len(s.calls) != len(want) {
		t.Fatalf("got %d sink calls, want %d", len(s.calls), len(want))
	}
	for i := range want {
		if s.calls[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q", i, s.calls[i], want[i])
		}
	}
}

func TestPopMissIsNoOp(t *testing.T) {
	l := NewLedger()
	s := &recordingSink{}

	if l.Pop(0, "foo", s) {
		t.Fatalf("pop on empty ledger must be a no-op")
	}
	l.Push(1, "foo", s)
	if l.Pop(0, "foo", s) {
		t.Fatalf("pop at wrong depth must be a no-op")
	}
	if l.Pop(1, "bar", s) {
		t.Fatalf("pop with wrong label must be a no-op")
	}
	if len(s.calls) != 1 {
		t.Fatalf("misses must not call the sink: %v", s.calls)
	}
}

func TestPopUnwindsLIFO(t *testing.T) {
	l := NewLedger()
	s := &recordingSink{}

	l.Push(2, "recurse", s)
	l.Push(2, "recurse", s)
	if l.Open(2, "recurse") != 2 {
		t.Fatalf("expected two open handles")
	}
	l.Pop(2, "recurse", s)
	if l.Open(2, "recurse") != 1 {
		t.Fatalf("expected one open handle after pop")
	}
}

func TestClearAbandonsSilently(t *testing.T) {
	l := NewLedger()
	s := &recordingSink{}

	l.Push(0, "foo", s)
	l.Push(1, "bar", s)
	l.Clear()

	if !l.Empty() {
		t.Fatalf("ledger should be empty after Clear")
	}
	if l.Pop(0, "foo", s) || l.Pop(1, "bar", s) {
		t.Fatalf("cleared regions must not be poppable")
	}
	for _, c := range s.calls {
		if c == "end foo" || c == "end bar" {
			t.Fatalf("Clear must not emit end calls: %v", s.calls)
		}
	}
}
