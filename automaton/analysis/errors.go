package analysis

import "fmt"

// UnknownStateError is returned when a transition's EndState names a state
// that was never declared on the Automaton. Builder.AddTransition and
// friends accept forward references to states not yet declared (spec.md
// §4.2), so this can only be caught once every state has been registered —
// at analysis time, not at definition time.
type UnknownStateError struct {
	From string // the state or "machine default" the dangling reference was found on
	To   string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("analysis: %s references undeclared state %q", e.From, e.To)
}
