/*
Package analysis turns a frozen automaton.Automaton into the read-only
views a code generator needs: ordered state and action lists, the set of
final states, the character-class partition, and a dense transition table
addressed by (state index, class index) — the last column of which is the
synthetic cc_other class.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 stateforge contributors

*/
package analysis

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stateforge.analysis'.
func tracer() tracing.Trace {
	return tracing.Select("stateforge.analysis")
}
