package dot

import "github.com/stateforge/stateforge/automaton"

// Config controls the Graphviz attributes Render emits. Every map is
// merged over a small built-in default; a zero Config renders with those
// defaults alone.
type Config struct {
	// GraphAttrs, NodeAttrs, EdgeAttrs override the digraph/node/edge
	// default attribute blocks, e.g. {"rankdir": "LR"}.
	GraphAttrs map[string]string
	NodeAttrs  map[string]string
	EdgeAttrs  map[string]string

	// StateAttrs, given a state, returns extra per-node attributes, e.g.
	// to fill final states a different color. May be nil.
	StateAttrs func(s *automaton.State) map[string]string

	// Prolog is raw dot source inserted verbatim right after the graph's
	// opening brace and default attribute blocks — a hook for subgraph
	// clustering or legends the Config fields don't cover.
	Prolog string
}

var defaultGraphAttrs = map[string]string{
	"rankdir":  "LR",
	"splines":  "true",
	"fontname": "Helvetica",
	"fontsize": "10",
}

var defaultNodeAttrs = map[string]string{
	"shape":    "circle",
	"fontname": "Helvetica",
	"fontsize": "10",
}

var defaultEdgeAttrs = map[string]string{
	"fontname": "Helvetica",
	"fontsize": "10",
}

func merged(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
