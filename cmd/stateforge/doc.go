/*
Command stateforge is a small CLI wrapping the stateforge packages: a
"generate" subcommand that emits C++ parser source and a dot diagram for a
bundled sample automaton, and a "repl" subcommand for interactively trying
characters against a machine definition, the way gorgo's T.REPL offers an
interactive sandbox for grammar experiments.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 stateforge contributors

*/
package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stateforge.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("stateforge.cmd")
}
