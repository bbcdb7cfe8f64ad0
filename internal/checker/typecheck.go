package checker

import (
	"io"
	"log/slog"

	"github.com/funvibe/lyra/internal/ast"
	"github.com/funvibe/lyra/internal/typesystem"
	"github.com/google/uuid"
)

// Options tune a single top-level check.
type Options struct {
	// WarnUnusedBinders controls whether unused-binder warnings are
	// reported. The analysis always runs (reference counts are needed
	// downstream regardless); this only filters the warnings.
	WarnUnusedBinders bool
	// Logger receives debug trace events. Nil means silent.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by Typecheck.
func DefaultOptions() Options {
	return Options{WarnUnusedBinders: true}
}

// Result is everything one top-level check produces, so downstream passes
// can be driven without redoing the walk.
type Result struct {
	// Expression is the fully typed tree with the final substitution
	// already applied (exactly once).
	Expression Expression
	// ValueReferences and ConstructorReferences count uses per qualified
	// name, feeding dead-code and unused-import diagnostics.
	ValueReferences       References
	ConstructorReferences References
	// TypeReferences is produced by the kind checker upstream and passed
	// through untouched.
	TypeReferences References
	Warnings       []Warning
	// Supply is the final counter state; thread it into the next
	// declaration's check to keep variable ids globally unique.
	Supply Supply
}

// Typecheck runs one top-level check with default options.
//
// expected is the declaration's type annotation, already elaborated by the
// kind checker; nil means infer. typeReferences comes from the kind checker
// and is returned unchanged.
func Typecheck(env *Env, supply Supply, expected typesystem.Type, typeReferences References, expr ast.Expr) (*Result, error) {
	return TypecheckWith(DefaultOptions(), env, supply, expected, typeReferences, expr)
}

// TypecheckWith is Typecheck with explicit options.
func TypecheckWith(opts Options, env *Env, supply Supply, expected typesystem.Type, typeReferences References, expr ast.Expr) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	runID := uuid.NewString()
	logger.Debug("typecheck start",
		"run", runID,
		"annotated", expected != nil,
		"supply", supply.Counter(),
	)

	state := NewState(supply)

	var expression Expression
	var err error
	if expected != nil {
		expression, err = Check(env, state, expected, expr)
	} else {
		expression, err = Infer(env, state, expr)
	}
	if err != nil {
		logger.Debug("typecheck failed", "run", runID, "err", err)
		return nil, err
	}

	expression = ApplyExpression(state.Substitution, expression)

	warnings := state.Warnings
	if !opts.WarnUnusedBinders {
		warnings = filterUnusedBinderWarnings(warnings)
	}

	logger.Debug("typecheck done",
		"run", runID,
		"type", expression.GetType().String(),
		"warnings", len(warnings),
		"supply", state.Supply.Counter(),
	)
	return &Result{
		Expression:            expression,
		ValueReferences:       state.ValueReferences,
		ConstructorReferences: state.ConstructorReferences,
		TypeReferences:        typeReferences,
		Warnings:              warnings,
		Supply:                state.Supply,
	}, nil
}

func filterUnusedBinderWarnings(warnings []Warning) []Warning {
	kept := warnings[:0]
	for _, w := range warnings {
		if _, ok := w.(*UnusedFunctionBinder); ok {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}
