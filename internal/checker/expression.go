package checker

import (
	"github.com/funvibe/lyra/internal/ast"
	"github.com/funvibe/lyra/internal/token"
	"github.com/funvibe/lyra/internal/typesystem"
)

// Expression is a fully typed expression node: the checker's output tree.
// Every node can report its type and its source span.
type Expression interface {
	GetType() typesystem.Type
	GetSpan() token.Span
	typedNode()
}

type Bool struct {
	Span  token.Span
	Value bool
}

type Unit struct {
	Span token.Span
}

type String struct {
	Span  token.Span
	Value string
}

type Int struct {
	Span  token.Span
	Value int64
}

type Float struct {
	Span  token.Span
	Value float64
}

// Array carries its element type explicitly so the empty array stays
// polymorphic until the final substitution pins it down.
type Array struct {
	Span        token.Span
	ElementType typesystem.Type
	Elements    []Expression
}

type Variable struct {
	Span token.Span
	Type typesystem.Type
	Name ast.QualifiedName
}

type Constructor struct {
	Span token.Span
	Type typesystem.Type
	Name ast.QualifiedName
}

// If records the unified branch type as OutputType; the true branch is
// authoritative.
type If struct {
	Span       token.Span
	OutputType typesystem.Type
	Condition  Expression
	Then       Expression
	Else       Expression
}

// Call records the return type of the call as CallType.
type Call struct {
	Span      token.Span
	CallType  typesystem.Type
	Function  Expression
	Arguments []Expression
}

// FunctionBinder is a parameter of a typed function literal.
type FunctionBinder struct {
	Span token.Span
	Name string
	Type typesystem.Type
}

type Function struct {
	Span    token.Span
	Binders []FunctionBinder
	Body    Expression
}

func (e *Bool) GetType() typesystem.Type   { return typesystem.Bool }
func (e *Unit) GetType() typesystem.Type   { return typesystem.Unit }
func (e *String) GetType() typesystem.Type { return typesystem.String }
func (e *Int) GetType() typesystem.Type    { return typesystem.Int }
func (e *Float) GetType() typesystem.Type  { return typesystem.Float }

func (e *Array) GetType() typesystem.Type {
	return typesystem.ArrayOf(e.ElementType)
}

func (e *Variable) GetType() typesystem.Type    { return e.Type }
func (e *Constructor) GetType() typesystem.Type { return e.Type }
func (e *If) GetType() typesystem.Type          { return e.OutputType }
func (e *Call) GetType() typesystem.Type        { return e.CallType }

func (e *Function) GetType() typesystem.Type {
	params := make([]typesystem.Type, len(e.Binders))
	for i, binder := range e.Binders {
		params[i] = binder.Type
	}
	return typesystem.TFunc{Params: params, Return: e.Body.GetType()}
}

func (e *Bool) GetSpan() token.Span        { return e.Span }
func (e *Unit) GetSpan() token.Span        { return e.Span }
func (e *String) GetSpan() token.Span      { return e.Span }
func (e *Int) GetSpan() token.Span         { return e.Span }
func (e *Float) GetSpan() token.Span       { return e.Span }
func (e *Array) GetSpan() token.Span       { return e.Span }
func (e *Variable) GetSpan() token.Span    { return e.Span }
func (e *Constructor) GetSpan() token.Span { return e.Span }
func (e *If) GetSpan() token.Span          { return e.Span }
func (e *Call) GetSpan() token.Span        { return e.Span }
func (e *Function) GetSpan() token.Span    { return e.Span }

func (e *Bool) typedNode()        {}
func (e *Unit) typedNode()        {}
func (e *String) typedNode()      {}
func (e *Int) typedNode()         {}
func (e *Float) typedNode()       {}
func (e *Array) typedNode()       {}
func (e *Variable) typedNode()    {}
func (e *Constructor) typedNode() {}
func (e *If) typedNode()          {}
func (e *Call) typedNode()        {}
func (e *Function) typedNode()    {}

// ApplyExpression rewrites every type in the tree with the substitution.
//
// During inference output nodes keep their raw types; the driver applies the
// final substitution exactly once here. Applying it again is a no-op
// (substitution application is a fixpoint).
func ApplyExpression(s typesystem.Subst, expr Expression) Expression {
	switch e := expr.(type) {
	case *Bool, *Unit, *String, *Int, *Float:
		return expr
	case *Array:
		elements := make([]Expression, len(e.Elements))
		for i, element := range e.Elements {
			elements[i] = ApplyExpression(s, element)
		}
		return &Array{
			Span:        e.Span,
			ElementType: s.Apply(e.ElementType),
			Elements:    elements,
		}
	case *Variable:
		return &Variable{Span: e.Span, Type: s.Apply(e.Type), Name: e.Name}
	case *Constructor:
		return &Constructor{Span: e.Span, Type: s.Apply(e.Type), Name: e.Name}
	case *If:
		return &If{
			Span:       e.Span,
			OutputType: s.Apply(e.OutputType),
			Condition:  ApplyExpression(s, e.Condition),
			Then:       ApplyExpression(s, e.Then),
			Else:       ApplyExpression(s, e.Else),
		}
	case *Call:
		arguments := make([]Expression, len(e.Arguments))
		for i, argument := range e.Arguments {
			arguments[i] = ApplyExpression(s, argument)
		}
		return &Call{
			Span:      e.Span,
			CallType:  s.Apply(e.CallType),
			Function:  ApplyExpression(s, e.Function),
			Arguments: arguments,
		}
	case *Function:
		binders := make([]FunctionBinder, len(e.Binders))
		for i, binder := range e.Binders {
			binders[i] = FunctionBinder{
				Span: binder.Span,
				Name: binder.Name,
				Type: s.Apply(binder.Type),
			}
		}
		return &Function{
			Span:    e.Span,
			Binders: binders,
			Body:    ApplyExpression(s, e.Body),
		}
	default:
		return expr
	}
}
