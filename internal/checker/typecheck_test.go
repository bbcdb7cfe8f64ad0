package checker

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/funvibe/lyra/internal/ast"
	"github.com/funvibe/lyra/internal/typesystem"
)

func TestTypecheckInfersTopLevel(t *testing.T) {
	result, err := Typecheck(testEnv(), NewSupply(0), nil, nil, &ast.Call{
		Span:      sp(1, 1),
		Function:  &ast.Variable{Span: sp(1, 1), Name: ast.Unqualified("id")},
		Arguments: []ast.Expr{&ast.IntLiteral{Span: sp(1, 4), Value: 5}},
	})
	if err != nil {
		t.Fatalf("Typecheck() failed: %v", err)
	}
	// The substitution is already applied; no raw variable may survive.
	if got := result.Expression.GetType(); got != typesystem.Int {
		t.Errorf("type = %s, want Int", got)
	}
	if got := result.ValueReferences[ast.Unqualified("id")]; got != 1 {
		t.Errorf("references[id] = %d, want 1", got)
	}
}

func TestTypecheckAgainstAnnotation(t *testing.T) {
	// five : Int = 5
	result, err := Typecheck(NewEnv(), NewSupply(0), typesystem.Int, nil, &ast.IntLiteral{Span: sp(1, 1), Value: 5})
	if err != nil {
		t.Fatalf("Typecheck() failed: %v", err)
	}
	if got := result.Expression.GetType(); got != typesystem.Int {
		t.Errorf("type = %s, want Int", got)
	}
}

func TestTypecheckAnnotationMismatch(t *testing.T) {
	// five : a = 5 must not typecheck: `a` belongs to the caller.
	_, err := Typecheck(NewEnv(), NewSupply(1), typesystem.TVar{ID: 0, SourceName: "a"}, nil, &ast.IntLiteral{Span: sp(1, 1), Value: 5})
	var mismatch *TypesNotEqualError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v (%T), want *TypesNotEqualError", err, err)
	}
}

func TestTypecheckUnusedBinderWarning(t *testing.T) {
	result, err := Typecheck(NewEnv(), NewSupply(0), nil, nil, &ast.Function{
		Span:    sp(1, 1),
		Binders: []ast.Binder{{Span: sp(1, 2), Name: "x"}},
		Body:    &ast.IntLiteral{Span: sp(1, 8), Value: 5},
	})
	if err != nil {
		t.Fatalf("Typecheck() failed: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(result.Warnings))
	}
	unused, ok := result.Warnings[0].(*UnusedFunctionBinder)
	if !ok {
		t.Fatalf("warning = %T, want *UnusedFunctionBinder", result.Warnings[0])
	}
	if unused.Name != "x" || unused.Span != sp(1, 2) {
		t.Errorf("warning = %q at %s, want 'x' at %s", unused.Name, unused.Span, sp(1, 2))
	}
	// Binder entries never leak into the returned counts.
	if _, ok := result.ValueReferences[ast.Unqualified("x")]; ok {
		t.Errorf("references = %v, want no entry for the binder", result.ValueReferences)
	}
}

func TestTypecheckUnusedBinderWarningsDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.WarnUnusedBinders = false
	result, err := TypecheckWith(opts, NewEnv(), NewSupply(0), nil, nil, &ast.Function{
		Span:    sp(1, 1),
		Binders: []ast.Binder{{Span: sp(1, 2), Name: "x"}},
		Body:    &ast.IntLiteral{Span: sp(1, 8), Value: 5},
	})
	if err != nil {
		t.Fatalf("TypecheckWith() failed: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", result.Warnings)
	}
}

func TestTypecheckThreadsSupply(t *testing.T) {
	// Two declarations checked in sequence must not reuse variable ids.
	first, err := Typecheck(NewEnv(), NewSupply(0), nil, nil, &ast.Function{
		Span:    sp(1, 1),
		Binders: []ast.Binder{{Span: sp(1, 2), Name: "x"}},
		Body:    &ast.Variable{Span: sp(1, 8), Name: ast.Unqualified("x")},
	})
	if err != nil {
		t.Fatalf("Typecheck() failed: %v", err)
	}
	if first.Supply.Counter() == 0 {
		t.Fatal("first check consumed no fresh variables, expected at least one")
	}

	second, err := Typecheck(NewEnv(), first.Supply, nil, nil, &ast.ArrayLiteral{Span: sp(2, 1)})
	if err != nil {
		t.Fatalf("Typecheck() failed: %v", err)
	}
	element := second.Expression.(*Array).ElementType.(typesystem.TVar)
	if element.ID < first.Supply.Counter() {
		t.Errorf("second check reused id t%d, counter was already %d", element.ID, first.Supply.Counter())
	}
}

func TestTypecheckPassesThroughTypeReferences(t *testing.T) {
	typeRefs := References{ast.Unqualified("Maybe"): 2}
	result, err := Typecheck(NewEnv(), NewSupply(0), nil, typeRefs, &ast.UnitLiteral{Span: sp(1, 1)})
	if err != nil {
		t.Fatalf("Typecheck() failed: %v", err)
	}
	if result.TypeReferences[ast.Unqualified("Maybe")] != 2 {
		t.Errorf("type references = %v, want passthrough of %v", result.TypeReferences, typeRefs)
	}
}

func TestTypecheckDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := TypecheckWith(opts, NewEnv(), NewSupply(0), nil, nil, &ast.BoolLiteral{Span: sp(1, 1), Value: true})
	if err != nil {
		t.Fatalf("TypecheckWith() failed: %v", err)
	}
	logged := buf.String()
	if !strings.Contains(logged, "typecheck start") || !strings.Contains(logged, "typecheck done") {
		t.Errorf("log output missing trace events:\n%s", logged)
	}
	if !strings.Contains(logged, "type=Bool") {
		t.Errorf("log output missing resolved type:\n%s", logged)
	}
}
