package checker

import (
	"github.com/funvibe/lyra/internal/token"
	"github.com/funvibe/lyra/internal/typesystem"
)

// constraint is the transient expected/actual pair handed to the unifier.
// Constraints are never stored; the substitution is the only record of what
// unification decided.
type constraint struct {
	expected typesystem.Type
	actual   typesystem.Type
}

func (c constraint) apply(s typesystem.Subst) constraint {
	return constraint{
		expected: s.Apply(c.expected),
		actual:   s.Apply(c.actual),
	}
}

func unify(state *State, span token.Span, c constraint) error {
	return unifyElse(state, span, c, nil)
}

// unifyElse resolves a constraint into substitution updates or an error.
// When outer is non-nil a failing leaf surfaces outer instead of its own
// mismatch: composite cases pre-build an error from the whole expected/actual
// pair so messages show the mismatched composites rather than an inner
// fragment.
func unifyElse(state *State, span token.Span, c constraint, outer error) error {
	// Comparisons must always see the latest resolution.
	c = c.apply(state.Substitution)

	if expected, ok := c.expected.(typesystem.TVar); ok {
		if actual, ok := c.actual.(typesystem.TVar); ok {
			// A source-named variable is rigid: it only equals itself.
			// `five : a = 5` must not typecheck.
			if expected.SourceName != "" && expected.SourceName == actual.SourceName {
				return nil
			}
		}
		if expected.SourceName == "" {
			return bind(state, span, expected.ID, c.actual)
		}
	}
	if actual, ok := c.actual.(typesystem.TVar); ok && actual.SourceName == "" {
		return bind(state, span, actual.ID, c.expected)
	}

	switch expected := c.expected.(type) {
	case typesystem.TPrim:
		if actual, ok := c.actual.(typesystem.TPrim); ok && expected == actual {
			return nil
		}

	case typesystem.TCon:
		if actual, ok := c.actual.(typesystem.TCon); ok && expected.Canonical == actual.Canonical {
			return nil
		}

	case typesystem.TApp:
		if actual, ok := c.actual.(typesystem.TApp); ok {
			wrapped := &TypesNotEqualError{Span: span, Expected: expected, Actual: actual}
			if err := unifyElse(state, span, constraint{
				expected: expected.Constructor,
				actual:   actual.Constructor,
			}, wrapped); err != nil {
				return err
			}
			// Surplus arguments on either side are ignored; only the
			// matched prefix is compared.
			n := min(len(expected.Args), len(actual.Args))
			for i := 0; i < n; i++ {
				if err := unifyElse(state, span, constraint{
					expected: expected.Args[i],
					actual:   actual.Args[i],
				}, wrapped); err != nil {
					return err
				}
			}
			return nil
		}

	case typesystem.TFunc:
		if actual, ok := c.actual.(typesystem.TFunc); ok {
			wrapped := &TypesNotEqualError{Span: span, Expected: expected, Actual: actual}
			n := min(len(expected.Params), len(actual.Params))
			for i := 0; i < n; i++ {
				if err := unifyElse(state, span, constraint{
					expected: expected.Params[i],
					actual:   actual.Params[i],
				}, wrapped); err != nil {
					return err
				}
			}
			return unifyElse(state, span, constraint{
				expected: expected.Return,
				actual:   actual.Return,
			}, wrapped)
		}
	}

	if outer != nil {
		return outer
	}
	return &TypesNotEqualError{Span: span, Expected: c.expected, Actual: c.actual}
}

// bind records var := t in the substitution, guarded by the occurs check.
// Binding a variable to itself is a no-op.
func bind(state *State, span token.Span, id int, t typesystem.Type) error {
	if tv, ok := t.(typesystem.TVar); ok && tv.ID == id {
		return nil
	}
	if err := occursCheck(span, id, t); err != nil {
		return err
	}
	state.Substitution.Insert(id, t)
	return nil
}

func occursCheck(span token.Span, id int, t typesystem.Type) error {
	if typesystem.Occurs(id, t) {
		return &InfiniteTypeError{Span: span, Var: id, InfiniteType: t}
	}
	return nil
}
