/*
Package automaton is the typed record of actions, states and transitions
that make up a deterministic finite-state machine definition.

Clients construct a machine through a Builder: declare actions (in the
order they should be invoked when several fire on the same transition),
declare states, and register transitions on each state, keyed by a
character set or by "default". Builder.Freeze validates every invariant —
action ordering, key disjointness, uniqueness of names — and returns an
immutable *Automaton, safe for unsynchronized concurrent reads.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 stateforge contributors

*/
package automaton

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stateforge.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("stateforge.automaton")
}
