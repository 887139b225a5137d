package cpp

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/stateforge/stateforge/automaton"
)

// ErrNoDestination is returned by Emit when cfg names none of the three
// destination modes.
var ErrNoDestination = errors.New("cpp: no destination configured (FileBase, To, or ToHeader+ToImpl)")

// Generate renders a frozen Automaton into a C++ header and matching
// implementation file. Both are returned as strings; callers decide
// where (or whether) to write them. Emit and EmitFiles below wire
// spec.md §6's three `generate` destination modes over this rendering.
func Generate(a *automaton.Automaton, cfg Config) (header, impl string, err error) {
	m, err := buildModel(a, cfg)
	if err != nil {
		return "", "", err
	}
	tracer().Infof("cpp: emitting %q for %d states, %d actions, %d classes",
		m.ClassName, len(m.States), len(m.Actions), len(m.Classes))

	var hbuf, ibuf strings.Builder
	if err := headerTemplate.Execute(&hbuf, m); err != nil {
		return "", "", err
	}
	if err := implTemplate.Execute(&ibuf, m); err != nil {
		return "", "", err
	}
	return hbuf.String(), ibuf.String(), nil
}

// EmitFiles wires spec.md §6's {file_base: path} destination mode: it
// writes base+".h" and base+".cpp", with the implementation's #include
// naming the header by base's own basename.
func EmitFiles(a *automaton.Automaton, cfg Config, base string) error {
	cfg.FileBase = base
	header, impl, err := Generate(a, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(base+".h", []byte(header), 0o644); err != nil {
		return err
	}
	return os.WriteFile(base+".cpp", []byte(impl), 0o644)
}

// Emit dispatches to whichever of spec.md §6's three destination modes
// cfg names: FileBase first, then the ToHeader/ToImpl pair, then the
// single To sink. Exactly one should be set; FileBase takes precedence
// if more than one is.
func Emit(a *automaton.Automaton, cfg Config) error {
	switch {
	case cfg.FileBase != "":
		return EmitFiles(a, cfg, cfg.FileBase)
	case cfg.ToHeader != nil && cfg.ToImpl != nil:
		header, impl, err := Generate(a, cfg)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(cfg.ToHeader, header); err != nil {
			return err
		}
		_, err = io.WriteString(cfg.ToImpl, impl)
		return err
	case cfg.To != nil:
		header, impl, err := Generate(a, cfg)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(cfg.To, header); err != nil {
			return err
		}
		_, err = io.WriteString(cfg.To, impl)
		return err
	default:
		return ErrNoDestination
	}
}
