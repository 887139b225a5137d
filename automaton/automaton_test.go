package automaton

import (
	"errors"
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

// buildSignRecognizer builds the end-to-end scenario of spec.md §8.1: a
// signed-integer recognizer with actions set_sign/accumulate and states
// start/digits.
func buildSignRecognizer(t *testing.T) *Automaton {
	t.Helper()
	b := NewBuilder(stateforge.Narrow)
	b.DeclareAction("set_sign", map[string]string{OptionChar: "ch"}, nil)
	b.DeclareAction("accumulate", map[string]string{OptionChar: "ch"}, nil)

	start := b.DeclareState("start", false)
	start.AddTransition("+-", "start", []string{"set_sign"})
	start.AddTransition("0-9", "digits", []string{"accumulate"})

	digits := b.DeclareState("digits", true)
	digits.AddTransition("0-9", "digits", []string{"accumulate"})

	a, err := b.Freeze()
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	return a
}

func TestSignRecognizerShape(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	a := buildSignRecognizer(t)

	if a.StartState() != "start" {
		t.Errorf("start state = %q, want start", a.StartState())
	}
	if len(a.Actions()) != 2 {
		t.Fatalf("got %d actions, want 2", len(a.Actions()))
	}
	if a.Actions()[0].Name != "set_sign" || a.Actions()[0].OrderKey != 0 {
		t.Errorf("action[0] = %v", a.Actions()[0])
	}
	if a.Actions()[1].Name != "accumulate" || a.Actions()[1].OrderKey != 1 {
		t.Errorf("action[1] = %v", a.Actions()[1])
	}
	final := a.FinalStates()
	if len(final) != 1 || final[0].Name != "digits" {
		t.Errorf("final states = %v, want [digits]", final)
	}
	// error state auto-inserted, non-final, not user-declared
	errSt, ok := a.State(stateforge.ErrorState)
	if !ok || errSt.Final {
		t.Errorf("expected auto-inserted non-final error state")
	}
}

func TestDuplicateAction(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	b := NewBuilder(stateforge.Narrow)
	b.DeclareAction("a", nil, nil)
	b.DeclareAction("a", nil, nil)
	_, err := b.Freeze()
	var dup *DuplicateActionError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateActionError, got %v", err)
	}
}

func TestLateAction(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	b := NewBuilder(stateforge.Narrow)
	b.DeclareAction("a", nil, nil)
	b.DeclareState("s", false)
	b.DeclareAction("b", nil, nil)
	_, err := b.Freeze()
	var late *LateActionError
	if !errors.As(err, &late) {
		t.Fatalf("expected LateActionError, got %v", err)
	}
}

func TestOverlapDiagnostic(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	b := NewBuilder(stateforge.Narrow)
	s := b.DeclareState("s", false)
	b.DeclareState("t1", false)
	b.DeclareState("t2", false)
	s.AddTransition("a-f", "t1", nil)
	s.AddTransition("d-k", "t2", nil)
	_, err := b.Freeze()
	var overlap *OverlappingTransitionError
	if !errors.As(err, &overlap) {
		t.Fatalf("expected OverlappingTransitionError, got %v", err)
	}
	want := "d-f"
	got := overlap.Overlapping.Sorted()
	if len(got) != 3 || got[0] != 'd' || got[2] != 'f' {
		t.Errorf("overlap = %v, want %s", got, want)
	}
}

func TestActionOutOfOrder(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	b := NewBuilder(stateforge.Narrow)
	b.DeclareAction("a", nil, nil)
	b.DeclareAction("b", nil, nil)
	b.DeclareAction("c", nil, nil)
	s := b.DeclareState("s", false)
	s.AddTransition("x", "s", []string{"c", "a"})
	_, err := b.Freeze()
	var oo *ActionOutOfOrderError
	if !errors.As(err, &oo) {
		t.Fatalf("expected ActionOutOfOrderError, got %v", err)
	}
}

func TestDuplicateDefault(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	b := NewBuilder(stateforge.Narrow)
	s := b.DeclareState("s", false)
	s.AddDefaultTransition("s", nil)
	s.AddDefaultTransition("s", nil)
	_, err := b.Freeze()
	var dd *DuplicateDefaultError
	if !errors.As(err, &dd) {
		t.Fatalf("expected DuplicateDefaultError, got %v", err)
	}
}

func TestFrozenRejectsMutation(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	b := NewBuilder(stateforge.Narrow)
	b.DeclareState("s", false)
	if _, err := b.Freeze(); err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	b.DeclareState("t", false)
	_, err := b.Freeze()
	if !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
}

func TestSanitizationInjective(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()
	err := CheckSanitizationInjective([]string{"a-b", "a_b"})
	var nc *NameCollisionError
	if !errors.As(err, &nc) {
		t.Fatalf("expected NameCollisionError, got %v", err)
	}
}
