package ast

import (
	"github.com/funvibe/lyra/internal/token"
	"github.com/funvibe/lyra/internal/typesystem"
)

// This package holds the pre-AST: the expression tree the kind checker hands
// to the typechecker. Names are resolved, type annotations are already
// elaborated to typesystem.Type values, and every node carries a span.

// QualifiedName identifies a value, constructor or type, optionally scoped to
// the module it was imported from. It is comparable and used directly as a
// map key for environments and reference counts.
type QualifiedName struct {
	Module string
	Name   string
}

// Unqualified builds a QualifiedName with no module component, as used for
// local binders.
func Unqualified(name string) QualifiedName {
	return QualifiedName{Name: name}
}

func (q QualifiedName) String() string {
	if q.Module == "" {
		return q.Name
	}
	return q.Module + "." + q.Name
}

// Expr is the base interface for all pre-AST expression nodes.
type Expr interface {
	GetSpan() token.Span
	exprNode()
}

// BoolLiteral represents `true` or `false`.
type BoolLiteral struct {
	Span  token.Span
	Value bool
}

// UnitLiteral represents `unit`.
type UnitLiteral struct {
	Span token.Span
}

// StringLiteral represents a string literal.
type StringLiteral struct {
	Span  token.Span
	Value string
}

// IntLiteral represents an integer literal.
type IntLiteral struct {
	Span  token.Span
	Value int64
}

// FloatLiteral represents a floating point literal.
type FloatLiteral struct {
	Span  token.Span
	Value float64
}

// ArrayLiteral represents `[e0, e1, ...]`.
type ArrayLiteral struct {
	Span     token.Span
	Elements []Expr
}

// Variable is a reference to a value in scope.
type Variable struct {
	Span token.Span
	Name QualifiedName
}

// Constructor is a reference to a data constructor in scope.
type Constructor struct {
	Span token.Span
	Name QualifiedName
}

// If represents `if condition then ... else ...`.
type If struct {
	Span      token.Span
	Condition Expr
	Then      Expr
	Else      Expr
}

// Call represents `function(arg0, arg1, ...)`.
type Call struct {
	Span      token.Span
	Function  Expr
	Arguments []Expr
}

// Binder is a single function parameter. Annotation is nil when the
// programmer didn't write one.
type Binder struct {
	Span       token.Span
	Name       string
	Annotation typesystem.Type
}

// Function represents `(binders) -> body`, with an optional return type
// annotation.
type Function struct {
	Span             token.Span
	Binders          []Binder
	ReturnAnnotation typesystem.Type
	Body             Expr
}

func (e *BoolLiteral) GetSpan() token.Span   { return e.Span }
func (e *UnitLiteral) GetSpan() token.Span   { return e.Span }
func (e *StringLiteral) GetSpan() token.Span { return e.Span }
func (e *IntLiteral) GetSpan() token.Span    { return e.Span }
func (e *FloatLiteral) GetSpan() token.Span  { return e.Span }
func (e *ArrayLiteral) GetSpan() token.Span  { return e.Span }
func (e *Variable) GetSpan() token.Span      { return e.Span }
func (e *Constructor) GetSpan() token.Span   { return e.Span }
func (e *If) GetSpan() token.Span            { return e.Span }
func (e *Call) GetSpan() token.Span          { return e.Span }
func (e *Function) GetSpan() token.Span      { return e.Span }

func (e *BoolLiteral) exprNode()   {}
func (e *UnitLiteral) exprNode()   {}
func (e *StringLiteral) exprNode() {}
func (e *IntLiteral) exprNode()    {}
func (e *FloatLiteral) exprNode()  {}
func (e *ArrayLiteral) exprNode()  {}
func (e *Variable) exprNode()      {}
func (e *Constructor) exprNode()   {}
func (e *If) exprNode()            {}
func (e *Call) exprNode()          {}
func (e *Function) exprNode()      {}
