/*
Package dot renders an automaton as a Graphviz "dot" digraph: one node per
state, one edge per declared transition, attributes configurable through a
Config. Rendering is pure string assembly against an io.Writer, the way
gorgo's lr.CFSM2GraphViz builds its digraph text; actually invoking the
"dot" binary to rasterize the description is a separate, explicit
boundary operation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 stateforge contributors

*/
package dot

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stateforge.dot'.
func tracer() tracing.Trace {
	return tracing.Select("stateforge.dot")
}
