package checker

import "github.com/funvibe/lyra/internal/typesystem"

// Scheme is a possibly-polymorphic signature: a type plus the set of
// variable ids that are universally quantified in it.
type Scheme struct {
	Forall    map[int]struct{}
	Signature typesystem.Type
}

// Mono wraps a type as a monomorphic scheme (empty forall), as used for
// function binders.
func Mono(t typesystem.Type) Scheme {
	return Scheme{Signature: t}
}

// Poly quantifies the given variable ids over t.
func Poly(t typesystem.Type, vars ...int) Scheme {
	forall := make(map[int]struct{}, len(vars))
	for _, v := range vars {
		forall[v] = struct{}{}
	}
	return Scheme{Forall: forall, Signature: t}
}

// Instantiate produces a monomorphic copy of the scheme, replacing every
// quantified variable with a brand-new fresh variable from the supply.
// Each call site therefore gets independently unifiable variables
// (let-polymorphism).
func (s Scheme) Instantiate(supply *Supply) typesystem.Type {
	if len(s.Forall) == 0 {
		return s.Signature
	}
	subst := make(typesystem.Subst, len(s.Forall))
	for id := range s.Forall {
		subst[id] = supply.Fresh()
	}
	return subst.Apply(s.Signature)
}
