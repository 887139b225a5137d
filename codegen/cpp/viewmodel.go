package cpp

import (
	"path/filepath"

	"github.com/stateforge/stateforge"
	"github.com/stateforge/stateforge/automaton"
	"github.com/stateforge/stateforge/automaton/analysis"
	"github.com/stateforge/stateforge/charset"
)

type stateView struct {
	Name      string
	Sanitized string
	Index     int
	Final     bool
}

type actionView struct {
	Name           string
	Sanitized      string
	OrderKey       int
	WantsChar      bool
	CharIdentifier string
	Fragment       string
}

type classView struct {
	Index      int
	Label      string  // a C-string-literal-safe description, for the trailing comment on each CharacterClass enumerator
	CodePoints []int32 // every code point in this class, for the classify() switch's case labels
}

type cellView struct {
	EndStateIndex int
	EndState      string
	ActionMask    uint64
}

type rowView struct {
	State stateView
	Cells []cellView // len == len(Classes)+1, last is cc_other
}

// model is the complete data a template needs; it holds nothing template
// engines can't address directly (no methods), so both the header and
// implementation templates can share it.
type model struct {
	Config
	Guard       string
	IncludeName string // the basename used in the impl's #include "<IncludeName>.h"
	StartIndex  int
	ErrorIndex  int
	States      []stateView
	Actions     []actionView
	Classes     []classView
	OtherIndex  int
	Rows        []rowView
}

// buildModel resolves a into an analysis.Result and flattens it into the
// template-ready shape, sanitizing every C++-facing identifier and
// rejecting the definition if sanitization is not injective (spec.md
// §4.5's "no two declared names may collide once sanitized" rule).
func buildModel(a *automaton.Automaton, cfg Config) (*model, error) {
	cfg = cfg.withDefaults()
	r, err := analysis.Analyze(a)
	if err != nil {
		return nil, err
	}

	stateNames := make([]string, len(r.States()))
	for i, s := range r.States() {
		stateNames[i] = s.Name
	}
	if err := automaton.CheckSanitizationInjective(stateNames); err != nil {
		return nil, err
	}
	actionNames := make([]string, len(r.Actions()))
	for i, act := range r.Actions() {
		actionNames[i] = act.Name
	}
	if err := automaton.CheckSanitizationInjective(actionNames); err != nil {
		return nil, err
	}

	states := make([]stateView, len(r.States()))
	for i, s := range r.States() {
		states[i] = stateView{
			Name:      s.Name,
			Sanitized: automaton.SanitizeIdentifier(s.Name),
			Index:     i,
			Final:     s.Final,
		}
	}

	genCtx := automaton.GeneratorContext{Ch: cfg.Ch, ClassName: cfg.ClassName, Sanitize: automaton.SanitizeIdentifier}
	actions := make([]actionView, len(r.Actions()))
	for i, act := range r.Actions() {
		fragment := "/* no-op */"
		if act.CodeFragment != nil {
			fragment = act.CodeFragment(genCtx)
		}
		actions[i] = actionView{
			Name:           act.Name,
			Sanitized:      automaton.SanitizeIdentifier(act.Name),
			OrderKey:       act.OrderKey,
			WantsChar:      act.WantsChar(),
			CharIdentifier: act.CharIdentifier(),
			Fragment:       fragment,
		}
	}

	classes := make([]classView, r.Partition().Size())
	for i, c := range r.Partition().Classes() {
		sorted := c.Sorted()
		points := make([]int32, len(sorted))
		for j, p := range sorted {
			points[j] = int32(p)
		}
		classes[i] = classView{Index: i, Label: charset.Pretty(c), CodePoints: points}
	}

	startIdx, _ := r.StateIndex(a.StartState())
	errIdx, _ := r.StateIndex(stateforge.ErrorState)

	rows := make([]rowView, len(states))
	for i, sv := range states {
		cells := make([]cellView, len(classes)+1)
		for c := range cells {
			e := r.TransitionAt(i, c)
			endIdx, _ := r.StateIndex(e.EndState)
			cells[c] = cellView{EndStateIndex: endIdx, EndState: e.EndState, ActionMask: e.Actions}
		}
		rows[i] = rowView{State: sv, Cells: cells}
	}

	includeName := cfg.ClassName
	if cfg.FileBase != "" {
		includeName = filepath.Base(cfg.FileBase)
	}

	return &model{
		Config:      cfg,
		Guard:       automaton.SanitizeIdentifier(cfg.ClassName) + "_H_INCLUDED",
		IncludeName: includeName,
		StartIndex:  startIdx,
		ErrorIndex:  errIdx,
		States:      states,
		Actions:     actions,
		Classes:     classes,
		OtherIndex:  r.Partition().Size(),
		Rows:        rows,
	}, nil
}
