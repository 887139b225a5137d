package dot

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/stateforge/stateforge/automaton"
	"github.com/stateforge/stateforge/charset"
)

// startNodeID names the invisible node spec.md §4.6 requires: "a single
// invisible start node with an arrow to start_state".
const startNodeID = "__start__"

// Render writes a digraph describing a's states and transitions to w, in
// the style of gorgo's lr.CFSM2GraphViz: a direct, hand-assembled dot
// description rather than a templated one. Unlike the generated parser,
// the diagram reflects the automaton's declaration — one edge per
// explicit transition, a dashed edge for a state's default labeled
// "other", and a dashed edge from a synthetic "*" node for the
// machine-wide default — rather than the fully resolved dispatch table.
func Render(w io.Writer, a *automaton.Automaton, cfg Config) error {
	fmt.Fprintln(w, "digraph {")
	fmt.Fprintf(w, "graph %s;\n", attrBlock(merged(defaultGraphAttrs, cfg.GraphAttrs)))
	fmt.Fprintf(w, "node %s;\n", attrBlock(merged(defaultNodeAttrs, cfg.NodeAttrs)))
	fmt.Fprintf(w, "edge %s;\n", attrBlock(merged(defaultEdgeAttrs, cfg.EdgeAttrs)))
	if cfg.Prolog != "" {
		fmt.Fprintln(w, cfg.Prolog)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s [shape=point, style=invis];\n", quote(startNodeID))
	fmt.Fprintf(w, "%s -> %s;\n", quote(startNodeID), quote(a.StartState()))
	fmt.Fprintln(w)

	states := a.States()
	for _, s := range states {
		if err := renderNode(w, s, a.StartState(), cfg); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)

	for _, s := range states {
		for _, et := range s.ExplicitTransitions() {
			label := edgeLabel(charset.PrettyBare(et.Key), et.Transition.Actions)
			fmt.Fprintf(w, "%s -> %s [label=%q];\n", quote(s.Name), quote(et.Transition.EndState), label)
		}
		if s.Default != nil {
			label := edgeLabel("other", s.Default.Actions)
			fmt.Fprintf(w, "%s -> %s [label=%q, style=dashed];\n", quote(s.Name), quote(s.Default.EndState), label)
		}
	}
	if md := a.MachineDefault(); md != nil {
		fmt.Fprintln(w, `"*" [shape=point];`)
		label := edgeLabel("machine default", md.Actions)
		fmt.Fprintf(w, "%s -> %s [label=%q, style=dashed];\n", quote("*"), quote(md.EndState), label)
	}

	fmt.Fprintln(w, "}")
	return nil
}

func renderNode(w io.Writer, s *automaton.State, start string, cfg Config) error {
	attrs := map[string]string{}
	if s.Final {
		attrs["shape"] = "doublecircle"
	}
	if s.Name == start {
		attrs["style"] = "filled"
		attrs["fillcolor"] = "lightgray"
	}
	if cfg.StateAttrs != nil {
		for k, v := range cfg.StateAttrs(s) {
			attrs[k] = v
		}
	}
	if len(attrs) == 0 {
		_, err := fmt.Fprintf(w, "%s;\n", quote(s.Name))
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s;\n", quote(s.Name), attrBlock(attrs))
	return err
}

// edgeLabel renders spec.md §4.6's required edge label: the key's
// pretty-print, a newline, then a comma-separated action list (empty if
// the transition fires no actions).
func edgeLabel(key string, actions []string) string {
	return key + "\n" + strings.Join(actions, ",")
}

func attrBlock(attrs map[string]string) string {
	if len(attrs) == 0 {
		return "[]"
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic output, easier to diff/test
	s := "["
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%q", k, attrs[k])
	}
	return s + "]"
}

func quote(name string) string {
	return fmt.Sprintf("%q", name)
}
