package checker

import (
	"github.com/funvibe/lyra/internal/ast"
	"github.com/funvibe/lyra/internal/typesystem"
)

// References counts how often each qualified name was used during one check.
// Downstream passes drive dead-code and unused-import diagnostics off these
// counts.
type References map[ast.QualifiedName]int

func (r References) bump(name ast.QualifiedName) {
	if _, ok := r[name]; ok {
		r[name]++
	} else {
		r[name] = 1
	}
}

// State is the mutable bundle threaded through one inference run: the
// growing substitution, the variable supply, usage counters and accumulated
// warnings.
//
// A State is owned exclusively by its run. It is created fresh by the driver
// (seeded with the carried-over supply), mutated through the recursion, and
// consumed at the end: the substitution is applied once to the result tree
// and the counters and warnings are handed back to the caller.
type State struct {
	Substitution          typesystem.Subst
	Supply                Supply
	ValueReferences       References
	ConstructorReferences References
	Warnings              []Warning
}

// NewState builds a run-scoped state seeded with the given supply.
func NewState(supply Supply) *State {
	return &State{
		Substitution:          make(typesystem.Subst),
		Supply:                supply,
		ValueReferences:       make(References),
		ConstructorReferences: make(References),
	}
}

func (s *State) warn(w Warning) {
	s.Warnings = append(s.Warnings, w)
}
