package partition

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/stateforge/stateforge"
	"github.com/stateforge/stateforge/automaton"
	"github.com/stateforge/stateforge/charset"
)

func setupTest(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

func TestSignRecognizerPartitioning(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	// spec.md §8 scenario 1: "+-" then "0-9", in declaration order.
	keys := []charset.Set{
		mustRange(t, "+-"),
		mustRange(t, "0-9"),
	}
	p := Build(keys)
	classes := p.Classes()
	if len(classes) != 2 {
		t.Fatalf("got %d classes, want 2", len(classes))
	}
	if !classes[0].Equal(mustRange(t, "+-")) {
		t.Errorf("cc_0 = %v, want {+,-}", classes[0].Sorted())
	}
	if !classes[1].Equal(charset.NewRange('0', '9')) {
		t.Errorf("cc_1 = %v, want 0..9", classes[1].Sorted())
	}
}

func TestSplitPartitioning(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	// spec.md §8 scenario 3: {0..9} then {5..14}.
	keys := []charset.Set{
		charset.NewRange(0, 9),
		charset.NewRange(5, 14),
	}
	p := Build(keys)
	classes := p.Classes()
	if len(classes) != 3 {
		t.Fatalf("got %d classes, want 3: %v", len(classes), classesStrings(classes))
	}
	want := []charset.Set{
		charset.NewRange(0, 4),
		charset.NewRange(5, 9),
		charset.NewRange(10, 14),
	}
	for i, w := range want {
		if !classes[i].Equal(w) {
			t.Errorf("cc_%d = %v, want %v", i, classes[i].Sorted(), w.Sorted())
		}
	}
}

func TestPartitionCoversKeysExactly(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	keys := []charset.Set{
		charset.NewRange(0, 9),
		charset.NewRange(5, 14),
		charset.NewSet(3, 20),
	}
	p := Build(keys)
	classes := p.Classes()
	for _, k := range keys {
		// every code point in k must be classified, and to the same class
		// as every other member of k (i.e. k is a union of classes).
		classIdx := make(map[int]bool)
		for _, r := range k.Sorted() {
			found := false
			for i, c := range classes {
				if c.Contains(r) {
					classIdx[i] = true
					found = true
					break
				}
			}
			if !found {
				t.Errorf("code point %v in key %v not covered by any class", r, k.Sorted())
			}
		}
		// reconstruct union of the classes touched and compare to k
		var union charset.Set
		for i := range classIdx {
			if union.Empty() {
				union = classes[i].Clone()
			} else {
				union = union.Union(classes[i])
			}
		}
		if !union.Equal(k) {
			t.Errorf("union of classes touched by key %v = %v, want exactly %v", k.Sorted(), union.Sorted(), k.Sorted())
		}
	}
}

func TestClassifyOther(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	p := Build([]charset.Set{charset.NewRange('a', 'z')})
	if _, ok := p.Classify('5'); ok {
		t.Error("expected cc_other for '5', got a class")
	}
	if idx, ok := p.Classify('m'); !ok || idx != 0 {
		t.Errorf("Classify('m') = (%d,%v), want (0,true)", idx, ok)
	}
}

func TestForAutomatonCaches(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	b := automaton.NewBuilder(stateforge.Narrow)
	s := b.DeclareState("s", true)
	s.AddTransition("a-z", "s", nil)
	a, err := b.Freeze()
	if err != nil {
		t.Fatal(err)
	}
	p1 := ForAutomaton(a)
	p2 := ForAutomaton(a)
	if p1 != p2 {
		t.Error("expected cached Partition to be reused (same pointer)")
	}
}

func mustRange(t *testing.T, spec string) charset.Set {
	t.Helper()
	s, err := charset.ExpandRangeString(spec)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func classesStrings(classes []charset.Set) []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = charset.Pretty(c)
	}
	return out
}
