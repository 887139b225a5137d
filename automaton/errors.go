package automaton

import (
	"errors"
	"fmt"

	"github.com/stateforge/stateforge/charset"
)

// ErrFrozen is returned by any builder mutation attempted after Freeze.
// It carries no extra context, so a sentinel suffices (checked with
// errors.Is), unlike the structured errors below.
var ErrFrozen = errors.New("automaton: frozen, no further mutation allowed")

// DuplicateActionError is returned by DeclareAction when name is already
// registered.
type DuplicateActionError struct{ Name string }

func (e *DuplicateActionError) Error() string {
	return fmt.Sprintf("automaton: duplicate action %q", e.Name)
}

// DuplicateStateError is returned by DeclareState when name is already
// registered.
type DuplicateStateError struct{ Name string }

func (e *DuplicateStateError) Error() string {
	return fmt.Sprintf("automaton: duplicate state %q", e.Name)
}

// LateActionError is returned by DeclareAction when at least one state
// has already been declared.
type LateActionError struct{ Name string }

func (e *LateActionError) Error() string {
	return fmt.Sprintf("automaton: action %q declared after states, actions must precede states", e.Name)
}

// DuplicateDefaultError is returned when a state's default transition is
// registered twice.
type DuplicateDefaultError struct{ State string }

func (e *DuplicateDefaultError) Error() string {
	return fmt.Sprintf("automaton: state %q already has a default transition", e.State)
}

// DuplicateMachineDefaultError is returned when the machine-wide default
// transition is registered twice.
type DuplicateMachineDefaultError struct{}

func (e *DuplicateMachineDefaultError) Error() string {
	return "automaton: machine-wide default transition already set"
}

// OverlappingTransitionError is returned when a new explicit key
// intersects one already registered on the same state.
type OverlappingTransitionError struct {
	State       string
	Overlapping charset.Set
}

func (e *OverlappingTransitionError) Error() string {
	return fmt.Sprintf("automaton: state %q has overlapping transition keys on %s",
		e.State, charset.Pretty(e.Overlapping))
}

// ActionOutOfOrderError is returned when a transition's action list is not
// strictly increasing in order_key.
type ActionOutOfOrderError struct {
	State  string
	Action string
}

func (e *ActionOutOfOrderError) Error() string {
	return fmt.Sprintf("automaton: state %q: action %q is out of order (order_key must strictly increase)",
		e.State, e.Action)
}

// UndefinedActionError is returned when a transition names an action that
// was never declared.
type UndefinedActionError struct{ Name string }

func (e *UndefinedActionError) Error() string {
	return fmt.Sprintf("automaton: undefined action %q", e.Name)
}

// InvalidKeyError is returned when a transition key cannot be interpreted
// as a character set.
type InvalidKeyError struct{ Key interface{} }

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("automaton: invalid transition key %v (want charset.Set, string range, or [2]int)", e.Key)
}

// ValidationErrors aggregates every definition-time violation Freeze could
// detect without having to stop at the first one, so a user sees the
// whole list of problems in a machine definition at once.
type ValidationErrors struct {
	errs []error
}

// Append records another violation.
func (v *ValidationErrors) Append(err error) {
	if err != nil {
		v.errs = append(v.errs, err)
	}
}

// Empty reports whether no violations were recorded.
func (v *ValidationErrors) Empty() bool {
	return len(v.errs) == 0
}

// AsError returns nil if no violations were recorded, else an error whose
// message lists every violation.
func (v *ValidationErrors) AsError() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *ValidationErrors) Error() string {
	msg := fmt.Sprintf("automaton: %d definition error(s):", len(v.errs))
	for _, e := range v.errs {
		msg += "\n  - " + e.Error()
	}
	return msg
}

// Unwrap exposes the individual violations for errors.Is/errors.As.
func (v *ValidationErrors) Unwrap() []error {
	return v.errs
}
