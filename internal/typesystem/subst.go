package typesystem

// Subst maps type variable ids to the types they resolved to.
//
// A substitution is owned by a single inference run and only grows: bindings
// are inserted after the occurs check passes and are never removed or
// overwritten. Applying it is a fixpoint: the result contains no variable
// that is also a key.
type Subst map[int]Type

// Apply rewrites every bound variable occurrence in t, fully resolving
// chains. Applying the result again yields the same type.
func (s Subst) Apply(t Type) Type {
	return t.Apply(s)
}

// Insert records a binding. The caller is responsible for the occurs check;
// binding a variable to a type containing itself would make Apply cycle.
func (s Subst) Insert(id int, t Type) {
	s[id] = t
}

// Lookup returns the direct binding for id, without resolving chains.
func (s Subst) Lookup(id int) (Type, bool) {
	t, ok := s[id]
	return t, ok
}
