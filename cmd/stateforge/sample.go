package main

import (
	"github.com/stateforge/stateforge"
	"github.com/stateforge/stateforge/automaton"
)

// sampleSignRecognizer builds the signed-integer recognizer used
// throughout the module's own tests: two actions (set_sign, accumulate)
// and two user states (start, digits), in Narrow encoding. It exists so
// "generate" and "repl" have something concrete to run against without
// requiring a machine-definition file format this module doesn't define.
func sampleSignRecognizer() (*automaton.Automaton, error) {
	b := automaton.NewBuilder(stateforge.Narrow)
	b.DeclareAction("set_sign", map[string]string{automaton.OptionChar: "ch"},
		automaton.StaticFragment("sign_ = (ch == '-') ? -1 : 1;"))
	b.DeclareAction("accumulate", map[string]string{automaton.OptionChar: "ch"},
		automaton.StaticFragment("value_ = value_ * 10 + (ch - '0');"))

	start := b.DeclareState("start", false)
	start.AddTransition("+-", "start", []string{"set_sign"})
	start.AddTransition("0-9", "digits", []string{"accumulate"})

	digits := b.DeclareState("digits", true)
	digits.AddTransition("0-9", "digits", []string{"accumulate"})

	return b.Freeze()
}
