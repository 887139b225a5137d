package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/stateforge/stateforge/codegen/cpp"
	"github.com/stateforge/stateforge/codegen/dot"
)

// runGenerate emits Recognizer.h, Recognizer.cpp, and signparser.dot (and,
// with --svg, signparser.svg rendered through the "dot" binary) for the
// sample signed-integer recognizer into --out.
func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	out := fs.String("out", ".", "output directory")
	svg := fs.Bool("svg", false, "also rasterize the dot diagram to SVG via the \"dot\" binary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := sampleSignRecognizer()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}

	base := filepath.Join(*out, "Recognizer")
	if err := cpp.EmitFiles(a, cpp.Config{
		ClassName: "Recognizer",
		Ch:        "char",
		Message:   "signed-integer recognizer sample",
	}, base); err != nil {
		return err
	}
	pterm.Info.Printfln("wrote %s", base+".h")
	pterm.Info.Printfln("wrote %s", base+".cpp")

	dotPath := filepath.Join(*out, "signparser.dot")
	f, err := os.Create(dotPath)
	if err != nil {
		return err
	}
	renderErr := dot.Render(f, a, dot.Config{})
	f.Close()
	if renderErr != nil {
		return renderErr
	}
	pterm.Info.Printfln("wrote %s", dotPath)

	if *svg {
		svgBytes, err := dot.Run(context.Background(), a, dot.Config{}, "svg", "")
		if err != nil {
			pterm.Error.Printfln("could not rasterize (is \"dot\" installed?): %v", err)
			return nil
		}
		svgPath := filepath.Join(*out, "signparser.svg")
		if err := os.WriteFile(svgPath, svgBytes, 0o644); err != nil {
			return err
		}
		pterm.Info.Printfln("wrote %s", svgPath)
	}
	return nil
}
