package checker

import (
	"sort"

	"github.com/funvibe/lyra/internal/ast"
	"github.com/funvibe/lyra/internal/token"
)

// EnvValue is what an in-scope value name resolves to: its declaration site,
// its (possibly polymorphic) scheme, and the identity later passes use to
// refer back to the declaration.
type EnvValue struct {
	Span   token.Span
	Scheme Scheme
	Name   ast.QualifiedName
}

// ToExpression materializes a reference to this value at the given call
// site, instantiating the scheme with fresh variables. This is the only
// place polymorphic copies are introduced.
func (v EnvValue) ToExpression(span token.Span, supply *Supply) Expression {
	return &Variable{
		Span: span,
		Type: v.Scheme.Instantiate(supply),
		Name: v.Name,
	}
}

// EnvConstructor is the constructor-namespace analogue of EnvValue.
type EnvConstructor struct {
	Span   token.Span
	Scheme Scheme
	Name   ast.QualifiedName
}

func (c EnvConstructor) ToExpression(span token.Span, supply *Supply) Expression {
	return &Constructor{
		Span: span,
		Type: c.Scheme.Instantiate(supply),
		Name: c.Name,
	}
}

// Env maps in-scope names to their signatures. Values and constructors live
// in separate namespaces.
//
// Envs have snapshot semantics: entering a nested scope derives a new Env
// with a cloned values map, so sibling and outer scopes never observe the
// nested bindings.
type Env struct {
	Values       map[ast.QualifiedName]EnvValue
	Constructors map[ast.QualifiedName]EnvConstructor
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{
		Values:       make(map[ast.QualifiedName]EnvValue),
		Constructors: make(map[ast.QualifiedName]EnvConstructor),
	}
}

// withValues derives a child environment for a nested scope. The
// constructors map is shared because nested scopes never bind constructors.
func (e *Env) withValues(values map[ast.QualifiedName]EnvValue) *Env {
	return &Env{Values: values, Constructors: e.Constructors}
}

// cloneValues copies the values map for extension by a nested scope.
func (e *Env) cloneValues() map[ast.QualifiedName]EnvValue {
	values := make(map[ast.QualifiedName]EnvValue, len(e.Values))
	for name, value := range e.Values {
		values[name] = value
	}
	return values
}

// valueNames returns every value name in scope, sorted, for diagnostics.
func (e *Env) valueNames() []ast.QualifiedName {
	names := make([]ast.QualifiedName, 0, len(e.Values))
	for name := range e.Values {
		names = append(names, name)
	}
	sortNames(names)
	return names
}

// constructorNames returns every constructor name in scope, sorted.
func (e *Env) constructorNames() []ast.QualifiedName {
	names := make([]ast.QualifiedName, 0, len(e.Constructors))
	for name := range e.Constructors {
		names = append(names, name)
	}
	sortNames(names)
	return names
}

func sortNames(names []ast.QualifiedName) {
	sort.Slice(names, func(i, j int) bool {
		if names[i].Module != names[j].Module {
			return names[i].Module < names[j].Module
		}
		return names[i].Name < names[j].Name
	})
}
