package automaton

import (
	"github.com/stateforge/stateforge"
	"github.com/stateforge/stateforge/charset"
)

// Builder incrementally constructs an Automaton. Actions must all be
// declared before the first state; once Freeze is called, the Builder
// (and any StateBuilder handles it issued) reject further mutation with
// ErrFrozen.
type Builder struct {
	actions        *actionRegistry
	states         *stateRegistry
	startState     string
	machineDefault *Transition
	encoding       stateforge.Encoding
	frozen         bool
	verr           ValidationErrors
}

// NewBuilder creates a Builder for a machine using the given character
// encoding (SPEC_FULL.md §9: encoding is an explicit parameter, not a
// process-global switch).
func NewBuilder(encoding stateforge.Encoding) *Builder {
	return &Builder{
		actions:  newActionRegistry(),
		states:   newStateRegistry(),
		encoding: encoding,
	}
}

// DeclareAction registers a named action. order_key is assigned as the
// current action count. Fails (recorded, not returned) with
// DuplicateAction if name already exists, or LateAction if any state has
// already been declared.
func (b *Builder) DeclareAction(name string, options map[string]string, fragment CodeFragmentFunc) *Builder {
	if b.frozen {
		b.verr.Append(ErrFrozen)
		return b
	}
	if b.states.size() > 0 {
		b.verr.Append(&LateActionError{Name: name})
		return b
	}
	a := &Action{
		Name:         name,
		OrderKey:     b.actions.size(),
		Options:      options,
		CodeFragment: fragment,
	}
	if !b.actions.define(a) {
		b.verr.Append(&DuplicateActionError{Name: name})
	}
	return b
}

// DeclareState registers a state and returns a handle for adding
// transitions to it. The first state declared becomes the start state.
// Fails (recorded) with DuplicateState if name already exists.
func (b *Builder) DeclareState(name string, final bool) *StateBuilder {
	sb := &StateBuilder{b: b}
	if b.frozen {
		b.verr.Append(ErrFrozen)
		return sb
	}
	s := &State{Name: name, Final: final}
	if !b.states.define(s) {
		b.verr.Append(&DuplicateStateError{Name: name})
		return sb
	}
	if b.states.size() == 1 {
		b.startState = name
	}
	sb.state = s
	return sb
}

// SetMachineDefault registers the machine-wide default transition, fired
// when a state has neither an explicit nor a state-local default match.
// Fails (recorded) with DuplicateMachineDefault if already set.
func (b *Builder) SetMachineDefault(endState string, actions []string) *Builder {
	if b.frozen {
		b.verr.Append(ErrFrozen)
		return b
	}
	if b.machineDefault != nil {
		b.verr.Append(&DuplicateMachineDefaultError{})
		return b
	}
	if err := b.checkActionOrder("", actions); err != nil {
		b.verr.Append(err)
		return b
	}
	b.machineDefault = &Transition{EndState: endState, Actions: actions}
	return b
}

// checkActionOrder validates spec.md §3's Transition invariant: order_key
// strictly increases across the action list, and every named action must
// already be declared.
func (b *Builder) checkActionOrder(state string, actions []string) error {
	last := -1
	for _, name := range actions {
		act, ok := b.actions.resolve(name)
		if !ok {
			return &UndefinedActionError{Name: name}
		}
		if act.OrderKey <= last {
			return &ActionOutOfOrderError{State: state, Action: name}
		}
		last = act.OrderKey
	}
	return nil
}

// Freeze validates every recorded definition and every cross-reference
// (except forward-referenced end states, resolved later by
// automaton/analysis per spec.md §4.4) and returns an immutable
// *Automaton. After Freeze, further Builder/StateBuilder mutation fails
// with ErrFrozen.
func (b *Builder) Freeze() (*Automaton, error) {
	if b.frozen {
		return nil, ErrFrozen
	}
	b.frozen = true
	if err := b.verr.AsError(); err != nil {
		return nil, err
	}
	// Open Question (spec.md §9): a user-declared "error" state is
	// authoritative; we auto-insert a non-final one only if the user
	// never declared it themselves.
	if _, ok := b.states.resolve(stateforge.ErrorState); !ok {
		b.states.define(&State{Name: stateforge.ErrorState, Final: false})
	}
	return &Automaton{
		actions:        b.actions,
		states:         b.states,
		startState:     b.startState,
		machineDefault: b.machineDefault,
		encoding:       b.encoding,
	}, nil
}

// StateBuilder is the handle returned by DeclareState for registering
// that state's transitions.
type StateBuilder struct {
	b     *Builder
	state *State // nil if DeclareState itself already failed
}

// AddTransition registers an explicit transition on key → endState,
// invoking actions in the given order. key may be a charset.Set, a range
// string like "a-z0-9" (SPEC_FULL.md §4.2 convenience surface), or a
// [2]int inclusive integer range. Fails (recorded) with
// OverlappingTransition if key intersects a previously registered key on
// this state, or ActionOutOfOrder/UndefinedAction for a malformed action
// list.
func (sb *StateBuilder) AddTransition(key interface{}, endState string, actions []string) *StateBuilder {
	if sb.b.frozen {
		sb.b.verr.Append(ErrFrozen)
		return sb
	}
	if sb.state == nil {
		return sb
	}
	set, err := resolveKey(key)
	if err != nil {
		sb.b.verr.Append(err)
		return sb
	}
	if err := sb.b.checkActionOrder(sb.state.Name, actions); err != nil {
		sb.b.verr.Append(err)
		return sb
	}
	for _, e := range sb.state.explicit {
		if overlap := set.Intersect(e.key); !overlap.Empty() {
			sb.b.verr.Append(&OverlappingTransitionError{State: sb.state.Name, Overlapping: overlap})
			return sb
		}
	}
	sb.state.explicit = append(sb.state.explicit, explicitEntry{
		key:        set,
		transition: &Transition{EndState: endState, Actions: actions},
	})
	return sb
}

// AddDefaultTransition registers this state's default transition, fired
// on any code point none of its explicit keys cover. Fails (recorded)
// with DuplicateDefault if already set on this state.
func (sb *StateBuilder) AddDefaultTransition(endState string, actions []string) *StateBuilder {
	if sb.b.frozen {
		sb.b.verr.Append(ErrFrozen)
		return sb
	}
	if sb.state == nil {
		return sb
	}
	if sb.state.Default != nil {
		sb.b.verr.Append(&DuplicateDefaultError{State: sb.state.Name})
		return sb
	}
	if err := sb.b.checkActionOrder(sb.state.Name, actions); err != nil {
		sb.b.verr.Append(err)
		return sb
	}
	sb.state.Default = &Transition{EndState: endState, Actions: actions}
	return sb
}

// resolveKey normalizes the builder's accepted key shapes into a
// charset.Set, expanding range syntax before any disjointness check runs
// (SPEC_FULL.md §4.2).
func resolveKey(key interface{}) (charset.Set, error) {
	switch k := key.(type) {
	case charset.Set:
		return k, nil
	case string:
		set, err := charset.ExpandRangeString(k)
		if err != nil {
			return charset.Set{}, &InvalidKeyError{Key: key}
		}
		return set, nil
	case [2]int:
		return charset.ExpandIntRange(k[0], k[1]), nil
	default:
		return charset.Set{}, &InvalidKeyError{Key: key}
	}
}
