package checker

import (
	"fmt"

	"github.com/funvibe/lyra/internal/ast"
	"github.com/funvibe/lyra/internal/diagnostics"
	"github.com/funvibe/lyra/internal/token"
	"github.com/funvibe/lyra/internal/typesystem"
)

// TypeError is implemented by every error the checker can produce. All of
// them are terminal for the current check: nothing is recovered or
// synthesized past an error site.
type TypeError interface {
	error
	Diagnostic() diagnostics.Diagnostic
}

// UnknownVariableError reports a reference to a value name that isn't in
// scope. NamesInScope carries everything that was visible, for tooling and
// did-you-mean hints.
type UnknownVariableError struct {
	Span         token.Span
	Name         ast.QualifiedName
	NamesInScope []ast.QualifiedName
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("[checker] error [%s]: unknown variable '%s'", diagnostics.ErrT001, e.Name)
}

func (e *UnknownVariableError) Diagnostic() diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Code:     diagnostics.ErrT001,
		Severity: diagnostics.SeverityError,
		Span:     e.Span,
		Message:  fmt.Sprintf("unknown variable '%s'", e.Name),
		Hints:    nameHints(e.Name, e.NamesInScope),
	}
}

// UnknownConstructorError is the constructor-namespace analogue of
// UnknownVariableError.
type UnknownConstructorError struct {
	Span         token.Span
	Name         ast.QualifiedName
	CtorsInScope []ast.QualifiedName
}

func (e *UnknownConstructorError) Error() string {
	return fmt.Sprintf("[checker] error [%s]: unknown constructor '%s'", diagnostics.ErrT002, e.Name)
}

func (e *UnknownConstructorError) Diagnostic() diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Code:     diagnostics.ErrT002,
		Severity: diagnostics.SeverityError,
		Span:     e.Span,
		Message:  fmt.Sprintf("unknown constructor '%s'", e.Name),
		Hints:    nameHints(e.Name, e.CtorsInScope),
	}
}

// TypesNotEqualError is the generic unification failure. For composite types
// the checker reports the outermost mismatched pair, not the inner fragment
// the recursion actually failed on.
type TypesNotEqualError struct {
	Span     token.Span
	Expected typesystem.Type
	Actual   typesystem.Type
}

func (e *TypesNotEqualError) Error() string {
	return fmt.Sprintf("[checker] error [%s]: expected %s but got %s",
		diagnostics.ErrT003, e.Expected, e.Actual)
}

func (e *TypesNotEqualError) Diagnostic() diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Code:     diagnostics.ErrT003,
		Severity: diagnostics.SeverityError,
		Span:     e.Span,
		Message:  fmt.Sprintf("expected %s but got %s", e.Expected, e.Actual),
	}
}

// ArgumentLengthMismatchError reports a call whose argument count doesn't
// match the function's arity.
type ArgumentLengthMismatchError struct {
	FunctionSpan token.Span
	Wanted       int
	Got          int
}

func (e *ArgumentLengthMismatchError) Error() string {
	return fmt.Sprintf("[checker] error [%s]: function wants %d argument(s) but got %d",
		diagnostics.ErrT004, e.Wanted, e.Got)
}

func (e *ArgumentLengthMismatchError) Diagnostic() diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Code:     diagnostics.ErrT004,
		Severity: diagnostics.SeverityError,
		Span:     e.FunctionSpan,
		Message:  fmt.Sprintf("function wants %d argument(s) but got %d", e.Wanted, e.Got),
	}
}

// NotAFunctionError reports a call whose target resolved to a concrete
// non-function type.
type NotAFunctionError struct {
	Span       token.Span
	ActualType typesystem.Type
}

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("[checker] error [%s]: %s is not a function", diagnostics.ErrT005, e.ActualType)
}

func (e *NotAFunctionError) Diagnostic() diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Code:     diagnostics.ErrT005,
		Severity: diagnostics.SeverityError,
		Span:     e.Span,
		Message:  fmt.Sprintf("%s is not a function", e.ActualType),
	}
}

// DuplicateFunctionBinderError reports two parameters sharing a name in one
// parameter list. The first occurrence wins as "previous".
type DuplicateFunctionBinderError struct {
	PreviousBinder  token.Span
	DuplicateBinder token.Span
	Name            string
}

func (e *DuplicateFunctionBinderError) Error() string {
	return fmt.Sprintf("[checker] error [%s]: duplicate function binder '%s'", diagnostics.ErrT006, e.Name)
}

func (e *DuplicateFunctionBinderError) Diagnostic() diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Code:     diagnostics.ErrT006,
		Severity: diagnostics.SeverityError,
		Span:     e.DuplicateBinder,
		Message:  fmt.Sprintf("duplicate function binder '%s'", e.Name),
		Hints:    []string{fmt.Sprintf("first bound at %s", e.PreviousBinder)},
	}
}

// InfiniteTypeError reports an occurs-check failure: binding the variable
// would produce a type containing itself.
type InfiniteTypeError struct {
	Span         token.Span
	Var          int
	InfiniteType typesystem.Type
}

func (e *InfiniteTypeError) Error() string {
	return fmt.Sprintf("[checker] error [%s]: infinite type: t%d occurs in %s",
		diagnostics.ErrT007, e.Var, e.InfiniteType)
}

func (e *InfiniteTypeError) Diagnostic() diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Code:     diagnostics.ErrT007,
		Severity: diagnostics.SeverityError,
		Span:     e.Span,
		Message:  fmt.Sprintf("infinite type: t%d occurs in %s", e.Var, e.InfiniteType),
	}
}

func nameHints(name ast.QualifiedName, inScope []ast.QualifiedName) []string {
	candidates := make([]string, len(inScope))
	for i, n := range inScope {
		candidates[i] = n.String()
	}
	if hint := diagnostics.DidYouMean(name.String(), candidates); hint != "" {
		return []string{hint}
	}
	return nil
}
