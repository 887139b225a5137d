/*
Package charset decodes and encodes individual code points and renders
character sets as compact, human-readable listings.

It underlies the automaton package's character-set keys: every transition
key is a charset.Set, and every diagnostic involving a set of characters
routes through charset.Pretty.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 stateforge contributors

*/
package charset
