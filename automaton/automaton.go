package automaton

import (
	"github.com/stateforge/stateforge"
	"github.com/stateforge/stateforge/charset"
)

// Automaton is the frozen, immutable record of a machine definition: its
// ordered action registry, its ordered state registry, the start state,
// and an optional machine-wide default transition. Construct one through
// Builder.Freeze.
//
// Once frozen, an *Automaton is safe for unsynchronized concurrent reads
// (SPEC_FULL.md §5): nothing here is mutated after Freeze returns.
type Automaton struct {
	actions        *actionRegistry
	states         *stateRegistry
	startState     string
	machineDefault *Transition
	encoding       stateforge.Encoding
}

// Actions returns the action registry in declaration order.
func (a *Automaton) Actions() []*Action {
	out := make([]*Action, len(a.actions.order))
	copy(out, a.actions.order)
	return out
}

// Action resolves an action by name.
func (a *Automaton) Action(name string) (*Action, bool) {
	return a.actions.resolve(name)
}

// States returns the state registry in declaration order.
func (a *Automaton) States() []*State {
	out := make([]*State, len(a.states.order))
	copy(out, a.states.order)
	return out
}

// State resolves a state by name.
func (a *Automaton) State(name string) (*State, bool) {
	return a.states.resolve(name)
}

// StartState returns the name of the first state registered.
func (a *Automaton) StartState() string {
	return a.startState
}

// MachineDefault returns the machine-wide default transition, if any.
func (a *Automaton) MachineDefault() *Transition {
	return a.machineDefault
}

// Encoding returns the character encoding this automaton was built with.
func (a *Automaton) Encoding() stateforge.Encoding {
	return a.encoding
}

// FinalStates returns the subset of states with Final == true, in
// declaration order.
func (a *Automaton) FinalStates() []*State {
	var out []*State
	for _, s := range a.states.order {
		if s.Final {
			out = append(out, s)
		}
	}
	return out
}

// ExplicitKeys returns every explicit transition key used anywhere in the
// machine, in the order states and then transitions were declared. This
// is the input the Partitioner refines (spec.md §4.3).
func (a *Automaton) ExplicitKeys() []ExplicitKeyOf {
	var out []ExplicitKeyOf
	for _, s := range a.states.order {
		for _, e := range s.explicit {
			out = append(out, ExplicitKeyOf{State: s.Name, Key: e.key})
		}
	}
	return out
}

// ExplicitKeyOf names which state an explicit key belongs to, useful for
// diagnostics while the Partitioner walks ExplicitKeys().
type ExplicitKeyOf struct {
	State string
	Key   charset.Set
}
