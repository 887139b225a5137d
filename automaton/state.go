package automaton

import (
	"fmt"

	"github.com/stateforge/stateforge"
	"github.com/stateforge/stateforge/charset"
)

// Transition is the (ordered action list, destination state) part of a
// transition; its character-set key, if any, is held by the owning State.
// It is immutable once built; EndState may be a forward reference
// to a state not yet declared, resolved at analysis time.
type Transition struct {
	EndState string
	Actions  []string // ordered action names, strictly increasing order_key
}

func (t *Transition) String() string {
	return fmt.Sprintf("-> %s %v", t.EndState, t.Actions)
}

// explicitEntry is one (key, transition) pair recorded on a state, kept in
// registration order alongside the State.explicit slice so that
// downstream consumers (the Partitioner, the dot emitter) see keys in the
// order the user declared them.
type explicitEntry struct {
	key        charset.Set
	transition *Transition
}

// State is a named node of the automaton. Its explicit transitions are
// pairwise disjoint by construction (Builder enforces this); an optional
// default transition fires on any code point none of them cover.
type State struct {
	Name     string
	Final    bool
	explicit []explicitEntry
	Default  *Transition
}

// ExplicitKeys returns the state's explicit transition keys, in
// registration order.
func (s *State) ExplicitKeys() []charset.Set {
	keys := make([]charset.Set, len(s.explicit))
	for i, e := range s.explicit {
		keys[i] = e.key
	}
	return keys
}

// ExplicitTransition pairs a character-set key with the transition it
// triggers.
type ExplicitTransition struct {
	Key        charset.Set
	Transition *Transition
}

// ExplicitTransitions returns the state's (key, transition) pairs, in
// registration order.
func (s *State) ExplicitTransitions() []ExplicitTransition {
	out := make([]ExplicitTransition, len(s.explicit))
	for i, e := range s.explicit {
		out[i] = ExplicitTransition{Key: e.key, Transition: e.transition}
	}
	return out
}

// TransitionFor looks among the state's explicit transitions for a key
// that contains r, per the resolution rule of spec.md §4.4 step 1.
func (s *State) TransitionFor(r stateforge.CodePoint) (*Transition, bool) {
	for _, e := range s.explicit {
		if e.key.Contains(r) {
			return e.transition, true
		}
	}
	return nil, false
}

func (s *State) String() string {
	return fmt.Sprintf("State(%s, final=%v)", s.Name, s.Final)
}
