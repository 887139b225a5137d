package analysis

import (
	"github.com/stateforge/stateforge"
	"github.com/stateforge/stateforge/automaton"
	"github.com/stateforge/stateforge/automaton/partition"
	"github.com/stateforge/stateforge/charset"
)

// TableEntry is one cell of the dense transition table: the state a
// (state, class) pair transitions to, and the bitmask of actions that fire
// en route. An empty Actions mask with EndState == "error" is the sink
// case: no explicit transition, no default, no machine default.
type TableEntry struct {
	EndState string
	Actions  uint64 // bit (1 << order_key) set for every firing action
}

// Result is the read-only, fully resolved view of an Automaton that every
// code generator consumes: ordered states and actions, the final-state
// set, the character-class partition, and the dense transition table
// addressed by (state index, class index), where class index == Size()
// (one past the last real class) denotes the synthetic cc_other column.
type Result struct {
	automaton *automaton.Automaton
	states    []*automaton.State
	actions   []*automaton.Action
	partition *partition.Partition
	table     [][]TableEntry // [stateIndex][classIndex], classIndex in [0, Size()]

	// Unreachable lists states (other than the start state) that no
	// transition anywhere in the machine leads to — a definition smell
	// the builder cannot see, since state declaration order carries no
	// ownership information about who points at whom.
	Unreachable []string
}

// States returns the automaton's states in declaration order, including
// the error state (whether user-declared or auto-inserted).
func (r *Result) States() []*automaton.State { return r.states }

// Actions returns the automaton's actions in declaration order.
func (r *Result) Actions() []*automaton.Action { return r.actions }

// Partition returns the character-class partition the table is addressed
// by.
func (r *Result) Partition() *partition.Partition { return r.partition }

// OtherClassIndex returns the column index reserved for cc_other.
func (r *Result) OtherClassIndex() int { return r.partition.Size() }

// StateIndex returns the row index of the named state, and true, or
// (0, false) if no such state exists.
func (r *Result) StateIndex(name string) (int, bool) {
	for i, s := range r.states {
		if s.Name == name {
			return i, true
		}
	}
	return 0, false
}

// FinalStates reports which states are accepting.
func (r *Result) FinalStates() map[string]bool {
	out := make(map[string]bool)
	for _, s := range r.states {
		if s.Final {
			out[s.Name] = true
		}
	}
	return out
}

// TransitionAt returns the resolved transition for (stateIndex, classIndex),
// where classIndex == OtherClassIndex() addresses cc_other.
func (r *Result) TransitionAt(stateIndex, classIndex int) TableEntry {
	return r.table[stateIndex][classIndex]
}

// Analyze resolves a frozen Automaton into a Result: it computes the
// character-class partition, builds the dense (state × class) transition
// table per the resolution rule of SPEC_FULL.md §4.4 — explicit key match,
// else state default, else machine-wide default, else the error sink — and
// validates that every EndState named anywhere actually exists, since
// forward references are legal at definition time (spec.md §4.2) and can
// only be checked once every state is known.
func Analyze(a *automaton.Automaton) (*Result, error) {
	states := a.States()
	actions := a.Actions()
	p := partition.ForAutomaton(a)
	classes := p.Classes()
	n := len(classes)

	known := make(map[string]bool, len(states))
	for _, s := range states {
		known[s.Name] = true
	}
	if err := checkKnownStates(a, states, known); err != nil {
		return nil, err
	}

	table := make([][]TableEntry, len(states))
	for i, s := range states {
		row := make([]TableEntry, n+1)
		for c := 0; c <= n; c++ {
			row[c] = resolveCell(a, s, c, classes)
		}
		table[i] = row
	}

	return &Result{
		automaton:   a,
		states:      states,
		actions:     actions,
		partition:   p,
		table:       table,
		Unreachable: unreachable(a, states),
	}, nil
}

// resolveCell implements the resolution chain for one (state, classIndex)
// cell. classIndex == len(classes) is the cc_other column: by the
// Partitioner's covering invariant no explicit key can ever match a point
// outside every class, so that column always skips straight to the
// default chain.
func resolveCell(a *automaton.Automaton, s *automaton.State, classIndex int, classes []charset.Set) TableEntry {
	if classIndex < len(classes) {
		rep := classes[classIndex].Sorted()[0]
		if tr, ok := s.TransitionFor(rep); ok {
			return entryFor(a, tr)
		}
	}
	if s.Default != nil {
		return entryFor(a, s.Default)
	}
	if md := a.MachineDefault(); md != nil {
		return entryFor(a, md)
	}
	return TableEntry{EndState: stateforge.ErrorState}
}

// entryFor converts a Transition's action names into the bitmask the
// generated dispatch switches key off of. Action names are guaranteed
// valid by Builder.checkActionOrder at definition time, so no lookup here
// can fail.
func entryFor(a *automaton.Automaton, tr *automaton.Transition) TableEntry {
	var mask uint64
	for _, name := range tr.Actions {
		act, _ := a.Action(name)
		mask |= 1 << uint(act.OrderKey)
	}
	return TableEntry{EndState: tr.EndState, Actions: mask}
}

// checkKnownStates validates every EndState named by any explicit
// transition, state default, or the machine-wide default against the set
// of declared states.
func checkKnownStates(a *automaton.Automaton, states []*automaton.State, known map[string]bool) error {
	check := func(from, to string) error {
		if to == "" || known[to] {
			return nil
		}
		return &UnknownStateError{From: from, To: to}
	}
	for _, s := range states {
		for _, et := range s.ExplicitTransitions() {
			if err := check(s.Name, et.Transition.EndState); err != nil {
				return err
			}
		}
		if s.Default != nil {
			if err := check(s.Name, s.Default.EndState); err != nil {
				return err
			}
		}
	}
	if md := a.MachineDefault(); md != nil {
		if err := check("machine default", md.EndState); err != nil {
			return err
		}
	}
	return nil
}

// unreachable finds states (besides the start state) that nothing in the
// machine transitions into: not named by any explicit transition, any
// state default, or the machine-wide default. It is a supplemented
// diagnostic (SPEC_FULL.md "Supplemented Features"), not an error — a
// state kept around for, say, future wiring is not a defect.
func unreachable(a *automaton.Automaton, states []*automaton.State) []string {
	reached := make(map[string]bool)
	reached[a.StartState()] = true
	for _, s := range states {
		for _, et := range s.ExplicitTransitions() {
			reached[et.Transition.EndState] = true
		}
		if s.Default != nil {
			reached[s.Default.EndState] = true
		}
	}
	if md := a.MachineDefault(); md != nil {
		reached[md.EndState] = true
	}
	var out []string
	for _, s := range states {
		if !reached[s.Name] {
			out = append(out, s.Name)
		}
	}
	return out
}
