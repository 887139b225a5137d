package main

import (
	"fmt"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/stateforge/stateforge"
	"github.com/stateforge/stateforge/automaton/analysis"
)

// runREPL drives the sample machine one character at a time, echoing the
// resolved state and fired actions after every character — a trial-run
// sandbox, not a full interpreter (SPEC_FULL.md explicitly excludes
// runtime interpretation as a library feature; this is a developer tool).
func runREPL(args []string) error {
	a, err := sampleSignRecognizer()
	if err != nil {
		return err
	}
	r, err := analysis.Analyze(a)
	if err != nil {
		return err
	}

	rl, err := readline.New("stateforge> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Welcome to the stateforge REPL")
	pterm.Info.Println("Type characters to feed the sample sign-recognizer; \":reset\" to restart; Ctrl-D to quit.")

	current, _ := r.StateIndex(a.StartState())
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D
			break
		}
		if line == ":reset" {
			current, _ = r.StateIndex(a.StartState())
			pterm.Info.Println("reset to start state")
			continue
		}
		for i := 0; i < len(line); i++ {
			b := line[i]
			classIdx, ok := r.Partition().Classify(stateforge.CodePoint(b))
			if !ok {
				classIdx = r.OtherClassIndex()
			}
			entry := r.TransitionAt(current, classIdx)
			printStep(r, b, current, entry)
			next, ok := r.StateIndex(entry.EndState)
			if !ok {
				next = current
			}
			current = next
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func printStep(r *analysis.Result, b byte, from int, entry analysis.TableEntry) {
	fromName := r.States()[from].Name
	if entry.EndState == stateforge.ErrorState {
		pterm.Error.Printfln("%q: %s -> error", b, fromName)
		return
	}
	msg := fmt.Sprintf("%q: %s -> %s", b, fromName, entry.EndState)
	if entry.Actions != 0 {
		msg += fmt.Sprintf(" (actions=%b)", entry.Actions)
	}
	pterm.Info.Println(msg)
}
