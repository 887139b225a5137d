/*
Package partition computes the coarsest disjoint partition of code points
such that every explicit transition key used anywhere in a machine is a
union of partition members — the character classes a table-driven parser
dispatches on.

The algorithm is incremental set refinement (SPEC_FULL.md §4.3): classes
are folded in one key at a time, in the order keys are first encountered
across the automaton's states, and the resulting insertion order becomes
the stable cc_0, cc_1, … numbering downstream emitters rely on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 stateforge contributors

*/
package partition

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stateforge.partition'.
func tracer() tracing.Trace {
	return tracing.Select("stateforge.partition")
}
