package filter

import "testing"

func TestMatchesSubstringSearch(t *testing.T) {
	s := NewSet("foo")
	ok, err := s.Matches("prefix_foo_suffix")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("pattern should match as substring search")
	}
}

func TestMatchesAnchoredPattern(t *testing.T) {
	s := NewSet("^foo$")
	if ok, _ := s.Matches("foo"); !ok {
		t.Fatalf("anchored pattern should match exact name")
	}
	if ok, _ := s.Matches("prefix_foo"); ok {
		t.Fatalf("anchored pattern must not match with prefix")
	}
}

func TestMatchesCaseSensitive(t *testing.T) {
	s := NewSet("Foo")
	if ok, _ := s.Matches("foo"); ok {
		t.Fatalf("matching must be case-sensitive")
	}
}

func TestMatchesFirstPatternShortCircuits(t *testing.T) {
	// The malformed second pattern must never be reached.
	s := NewSet("foo", "((")
	ok, err := s.Matches("foo")
	if err != nil {
		t.Fatalf("first match should short-circuit before the bad pattern: %v", err)
	}
	if !ok {
		t.Fatalf("expected match")
	}
}

func TestMatchesMalformedPattern(t *testing.T) {
	s := NewSet("((")
	if _, err := s.Matches("anything"); err == nil {
		t.Fatalf("malformed pattern must surface an error at point of use")
	}
}

func TestEmptySet(t *testing.T) {
	if !NewSet().Empty() {
		t.Fatalf("set without patterns should be empty")
	}
	var nilSet *Set
	if !nilSet.Empty() {
		t.Fatalf("nil set should be empty")
	}
	if ok, err := nilSet.Matches("x"); ok || err != nil {
		t.Fatalf("nil set must match nothing")
	}
}

func TestPatternsReturnsCopy(t *testing.T) {
	s := NewSet("a", "b")
	got := s.Patterns()
	got[0] = "mutated"
	if s.Patterns()[0] != "a" {
		t.Fatalf("Patterns must return a copy")
	}
}

func TestDefaultSkipFunctions(t *testing.T) {
	s := DefaultSkipFunctions()
	cases := []struct {
		name string
		want bool
	}{
		{"FILE", true},
		{"get_fcode", true},
		{"_handle_fromlist", true},
		{"isfunction", true},
		{"isclass", true},
		{"basename", true},
		{"<listcomp>", true},
		{"my_function", false},
		{"file_reader", false},
	}
	for _, tc := range cases {
		ok, err := s.Matches(tc.name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if ok != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, ok, tc.want)
		}
	}
}

func TestDefaultSkipFilenames(t *testing.T) {
	s := DefaultSkipFilenames()
	cases := []struct {
		path string
		want bool
	}{
		{"/usr/lib/python3.10/threading.py", true},
		{"/pkg/__init__.py", true},
		{"<string>", true},
		{"/home/user/app.py", false},
	}
	for _, tc := range cases {
		ok, err := s.Matches(tc.path)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.path, err)
		}
		if ok != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.path, ok, tc.want)
		}
	}
}
