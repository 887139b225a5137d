/*
Package cpp emits a streaming, character-at-a-time C++ parser from a
resolved automaton.analysis.Result: a header/implementation pair built
around static transition and action tables, a classification switch, and
a processChar method that drives one step of the machine per call. Source
is assembled with text/template, the way aretext's text/segment code
generator builds its tables — there is no third-party templating engine
anywhere in the corpus, so the standard library's is the only one to
reach for.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 stateforge contributors

*/
package cpp

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stateforge.cpp'.
func tracer() tracing.Trace {
	return tracing.Select("stateforge.cpp")
}
