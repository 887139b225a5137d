package charset

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/stateforge/stateforge"
)

func setupTest(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

func TestDecodeUTF8ASCII(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	cp, n, err := Decode([]byte("A"), UTF8)
	if err != nil {
		t.Fatal(err)
	}
	if cp != stateforge.CodePoint('A') || n != 1 {
		t.Errorf("got (%v,%d), want ('A',1)", cp, n)
	}
}

func TestDecodeUTF8MultiByte(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	cp, n, err := Decode([]byte("é"), UTF8) // é, 2 bytes
	if err != nil {
		t.Fatal(err)
	}
	if cp != stateforge.CodePoint('é') || n != 2 {
		t.Errorf("got (%v,%d), want (é,2)", cp, n)
	}
}

func TestDecodeUTF8InvalidContinuation(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	// 0xc3 expects one continuation byte; 0x28 '(' is not one.
	_, _, err := Decode([]byte{0xc3, 0x28}, UTF8)
	if err == nil {
		t.Error("expected InvalidEncoding error, got nil")
	}
}

func TestDecodeNarrow(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	cp, n, err := Decode([]byte{0xff}, Narrow)
	if err != nil {
		t.Fatal(err)
	}
	if cp != 0xff || n != 1 {
		t.Errorf("got (%v,%d), want (255,1)", cp, n)
	}
}

func TestPrettyEmpty(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	if got := Pretty(NewSet()); got != `""` {
		t.Errorf(`Pretty(empty) = %s, want ""`, got)
	}
}

func TestPrettySingle(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	if got := Pretty(NewSet('x')); got != `"x"` {
		t.Errorf(`Pretty({x}) = %s, want "x"`, got)
	}
}

func TestPrettyRunCompression(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	s := NewRange('a', 'z')
	if got := Pretty(s); got != `"a-z"` {
		t.Errorf(`Pretty(a..z) = %s, want "a-z"`, got)
	}
}

func TestPrettyRunOfTwo(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	s := NewSet('a', 'b')
	if got := Pretty(s); got != `"ab"` {
		t.Errorf(`Pretty({a,b}) = %s, want "ab"`, got)
	}
}

func TestPrettyMixedPrintableAndNonASCII(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	s := NewSet('a', 'b', 'c', 945, 946)
	got := Pretty(s)
	want := `"a-c"+945,946`
	if got != want {
		t.Errorf("Pretty(mixed) = %s, want %s", got, want)
	}
}

func TestPrettyDashStrippedAndReappended(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	s := NewSet('a', 'b', 'c', 'd', '-')
	got := Pretty(s)
	want := `"a-d-"`
	if got != want {
		t.Errorf("Pretty(with dash) = %s, want %s", got, want)
	}
}

func TestExpandRangeStringRoundtrip(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	s := NewRange('0', '9').Union(NewRange('a', 'f'))
	pretty := Pretty(s)
	// strip the surrounding quotes before re-expanding
	inner := pretty[1 : len(pretty)-1]
	back, err := ExpandRangeString(inner)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(s) {
		t.Errorf("roundtrip mismatch: got %v, want %v", back.Sorted(), s.Sorted())
	}
}

func TestExpandRangeStringTrailingDash(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	s, err := ExpandRangeString("a-d-")
	if err != nil {
		t.Fatal(err)
	}
	want := NewRange('a', 'd').Add('-')
	if !s.Equal(want) {
		t.Errorf("got %v, want %v", s.Sorted(), want.Sorted())
	}
}

func TestSetAlgebra(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	a := NewRange('a', 'f')
	b := NewRange('d', 'k')
	inter := a.Intersect(b)
	if !inter.Equal(NewRange('d', 'f')) {
		t.Errorf("intersect = %v, want d..f", inter.Sorted())
	}
	diff := a.Difference(b)
	if !diff.Equal(NewRange('a', 'c')) {
		t.Errorf("difference = %v, want a..c", diff.Sorted())
	}
	union := a.Union(b)
	if !union.Equal(NewRange('a', 'k')) {
		t.Errorf("union = %v, want a..k", union.Sorted())
	}
}
