/*
Package stateforge is a finite-automaton definition-and-code-generation
toolkit.

A user describes a deterministic finite state machine declaratively —
naming actions, states, and character-triggered transitions — and the
module produces (a) a C++ source implementation of a streaming
character-by-character parser for that automaton, and (b) a Graphviz `dot`
description of the state diagram. Package structure is as follows:

■ charset: decodes/encodes individual code points and pretty-prints
character sets as compact ranges.

■ automaton: the typed model of actions, states and transitions, together
with the builder API that constructs and freezes it.

■ automaton/partition: the incremental character-class partitioning
algorithm.

■ automaton/analysis: read-only views over a frozen automaton — ordered
state/action lists, the transition table, final states.

■ codegen/cpp: emits a C++ header/implementation pair for the analyzed
automaton.

■ codegen/dot: emits a Graphviz `dot` description of the automaton, and
optionally pipes it through an external `dot` process.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 stateforge contributors

*/
package stateforge
