package label

import "testing"

func TestBuildPlainName(t *testing.T) {
	got := Build(Options{}, "foo", "bar.py", "/src/bar.py", 10, "")
	if got != "foo" {
		t.Fatalf("got %q, want %q", got, "foo")
	}
}

func TestBuildLineOnly(t *testing.T) {
	got := Build(Options{IncludeLine: true}, "foo", "bar.py", "/src/bar.py", 10, "")
	if got != "foo:10" {
		t.Fatalf("got %q, want %q", got, "foo:10")
	}
}

func TestBuildFilenameAndLine(t *testing.T) {
	opts := Options{IncludeFilename: true, IncludeLine: true}
	got := Build(opts, "foo", "bar.py", "/src/bar.py", 10, "")
	if got != "[foo][bar.py:10]" {
		t.Fatalf("got %q, want %q", got, "[foo][bar.py:10]")
	}
}

func TestBuildFilenameWithoutLine(t *testing.T) {
	opts := Options{IncludeFilename: true}
	got := Build(opts, "foo", "bar.py", "/src/bar.py", 10, "")
	if got != "[foo][bar.py]" {
		t.Fatalf("got %q, want %q", got, "[foo][bar.py]")
	}
}

func TestBuildFullPath(t *testing.T) {
	opts := Options{IncludeFilename: true, IncludeLine: true, FullFilepath: true}
	got := Build(opts, "foo", "bar.py", "/src/bar.py", 10, "")
	if got != "[foo][/src/bar.py:10]" {
		t.Fatalf("got %q, want %q", got, "[foo][/src/bar.py:10]")
	}
}

func TestBuildArgsInsideBracket(t *testing.T) {
	// The bracket must enclose name+args together when both args and
	// filename are requested.
	opts := Options{IncludeArgs: true, IncludeFilename: true, IncludeLine: true}
	got := Build(opts, "foo", "bar.py", "/src/bar.py", 10, "(x=1)")
	if got != "[foo(x=1)][bar.py:10]" {
		t.Fatalf("got %q, want %q", got, "[foo(x=1)][bar.py:10]")
	}
}

func TestBuildArgsWithoutFilename(t *testing.T) {
	opts := Options{IncludeArgs: true}
	got := Build(opts, "foo", "bar.py", "/src/bar.py", 10, "(x=1)")
	if got != "foo(x=1)" {
		t.Fatalf("got %q, want %q", got, "foo(x=1)")
	}
}

func TestBuildEmptyFunctionName(t *testing.T) {
	opts := Options{IncludeFilename: true, IncludeLine: true}
	if got := Build(opts, "", "bar.py", "/src/bar.py", 10, ""); got != "" {
		t.Fatalf("empty function name must yield empty label, got %q", got)
	}
}

func TestBasename(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/src/pkg/bar.py", "bar.py"},
		{"bar.py", "bar.py"},
		{"<string>", "<string>"},
		{"/trailing/", ""},
	}
	for _, tc := range cases {
		if got := Basename(tc.path); got != tc.want {
			t.Fatalf("Basename(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestRegistryInternIdempotent(t *testing.T) {
	r := NewRegistry()
	a := r.Intern("label")
	b := r.Intern("lab" + "el")
	if a != b {
		t.Fatalf("interning equal strings must return the same entry")
	}
	if r.Len() != 1 {
		t.Fatalf("registry should hold one entry, has %d", r.Len())
	}
}
