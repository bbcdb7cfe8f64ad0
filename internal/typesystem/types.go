package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface for all types in our system.
type Type interface {
	String() string
	Apply(Subst) Type
	FreeTypeVariables() []int
}

// TVar represents a type variable.
//
// Variables created by the inference supply are anonymous (SourceName == "").
// Variables the programmer wrote in a signature (e.g. `a`) carry their source
// name and are rigid: they only unify with themselves or an anonymous
// variable.
type TVar struct {
	ID         int
	SourceName string
}

func (t TVar) String() string {
	if t.SourceName != "" {
		return t.SourceName
	}
	return fmt.Sprintf("t%d", t.ID)
}

func (t TVar) Apply(s Subst) Type {
	if replacement, ok := s[t.ID]; ok {
		// Chains are resolved to a fixpoint. The occurs check guards every
		// insertion, so this cannot cycle.
		return replacement.Apply(s)
	}
	return t
}

func (t TVar) FreeTypeVariables() []int {
	return []int{t.ID}
}

// TPrim is a primitive type constructor.
type TPrim int

const (
	Bool TPrim = iota
	Int
	Float
	String
	Unit
	// Array is the built-in array constructor. It has arity 1 and only
	// appears as the head of a TApp.
	Array
)

var primNames = [...]string{"Bool", "Int", "Float", "String", "Unit", "Array"}

func (t TPrim) String() string {
	if int(t) < len(primNames) {
		return primNames[t]
	}
	return fmt.Sprintf("TPrim(%d)", int(t))
}

func (t TPrim) Apply(Subst) Type {
	return t
}

func (t TPrim) FreeTypeVariables() []int {
	return nil
}

// ArrayOf builds the type of an array with the given element type.
func ArrayOf(element Type) Type {
	return TApp{Constructor: Array, Args: []Type{element}}
}

// TCon represents a named (nominal) type constructor, e.g. `Maybe`.
// Two TCons are the same type exactly when their canonical names match;
// Name is what the programmer wrote and is only used for display.
type TCon struct {
	Name      string
	Canonical string
}

func (t TCon) String() string {
	return t.Name
}

func (t TCon) Apply(Subst) Type {
	return t
}

func (t TCon) FreeTypeVariables() []int {
	return nil
}

// TApp represents a type-level call, e.g. `Maybe(Int)`.
type TApp struct {
	Constructor Type
	Args        []Type
}

func (t TApp) String() string {
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", t.Constructor, strings.Join(args, ", "))
}

func (t TApp) Apply(s Subst) Type {
	args := make([]Type, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.Apply(s)
	}
	return TApp{Constructor: t.Constructor.Apply(s), Args: args}
}

func (t TApp) FreeTypeVariables() []int {
	vars := t.Constructor.FreeTypeVariables()
	for _, arg := range t.Args {
		vars = append(vars, arg.FreeTypeVariables()...)
	}
	return vars
}

// TFunc represents a function type with an ordered parameter list.
type TFunc struct {
	Params []Type
	Return Type
}

func (t TFunc) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(params, ", "), t.Return)
}

func (t TFunc) Apply(s Subst) Type {
	params := make([]Type, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.Apply(s)
	}
	return TFunc{Params: params, Return: t.Return.Apply(s)}
}

func (t TFunc) FreeTypeVariables() []int {
	var vars []int
	for _, p := range t.Params {
		vars = append(vars, p.FreeTypeVariables()...)
	}
	return append(vars, t.Return.FreeTypeVariables()...)
}

// Occurs reports whether the variable id appears free anywhere in t.
func Occurs(id int, t Type) bool {
	for _, v := range t.FreeTypeVariables() {
		if v == id {
			return true
		}
	}
	return false
}
