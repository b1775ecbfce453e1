package event

import "testing"

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"call", KindCall},
		{"c_call", KindNativeCall},
		{"return", KindReturn},
		{"c_return", KindNativeReturn},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.in)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseKind(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Fatalf("Kind.String() = %q, want %q", got.String(), tc.in)
		}
	}
}

func TestParseKindUnrecognized(t *testing.T) {
	for _, in := range []string{"", "exception", "line", "opcode"} {
		if _, err := ParseKind(in); err == nil {
			t.Fatalf("ParseKind(%q) should fail", in)
		}
	}
}

func TestKindClassification(t *testing.T) {
	if !KindCall.IsCall() || !KindNativeCall.IsCall() {
		t.Fatalf("call kinds misclassified")
	}
	if !KindReturn.IsReturn() || !KindNativeReturn.IsReturn() {
		t.Fatalf("return kinds misclassified")
	}
	if KindCall.IsNative() || KindReturn.IsNative() {
		t.Fatalf("interpreted kinds must not be native")
	}
	if !KindNativeCall.IsNative() || !KindNativeReturn.IsNative() {
		t.Fatalf("native kinds misclassified")
	}
}
