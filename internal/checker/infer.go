package checker

import (
	"github.com/funvibe/lyra/internal/ast"
	"github.com/funvibe/lyra/internal/typesystem"
)

// Infer synthesizes a type for expr bottom-up, producing a typed node.
//
// Output nodes keep the raw types discovered during inference; the driver
// applies the final substitution once at the end. Whenever inference itself
// needs to inspect a type (if-branches, call targets) it must apply the
// current substitution explicitly first.
func Infer(env *Env, state *State, expr ast.Expr) (Expression, error) {
	switch e := expr.(type) {
	case *ast.BoolLiteral:
		return &Bool{Span: e.Span, Value: e.Value}, nil
	case *ast.UnitLiteral:
		return &Unit{Span: e.Span}, nil
	case *ast.StringLiteral:
		return &String{Span: e.Span, Value: e.Value}, nil
	case *ast.IntLiteral:
		return &Int{Span: e.Span, Value: e.Value}, nil
	case *ast.FloatLiteral:
		return &Float{Span: e.Span, Value: e.Value}, nil
	case *ast.ArrayLiteral:
		return inferArray(env, state, e)
	case *ast.Variable:
		return inferVariable(env, state, e)
	case *ast.Constructor:
		return inferConstructor(env, state, e)
	case *ast.If:
		return inferIf(env, state, e)
	case *ast.Call:
		return inferCall(env, state, e)
	case *ast.Function:
		return inferFunction(env, state, e)
	default:
		// The pre-AST grammar is closed; the kind checker cannot hand us
		// anything else.
		panic("checker: unknown pre-AST node")
	}
}

// Check verifies expr against an expected type: infer, then unify the
// synthesized type against the expectation.
func Check(env *Env, state *State, expected typesystem.Type, expr ast.Expr) (Expression, error) {
	expression, err := Infer(env, state, expr)
	if err != nil {
		return nil, err
	}
	if err := unify(state, expression.GetSpan(), constraint{
		expected: expected,
		actual:   expression.GetType(),
	}); err != nil {
		return nil, err
	}
	return expression, nil
}

func inferArray(env *Env, state *State, e *ast.ArrayLiteral) (Expression, error) {
	if len(e.Elements) == 0 {
		// Nothing constrains the element type yet; leave it to later
		// unification or the final substitution.
		return &Array{Span: e.Span, ElementType: state.Supply.Fresh()}, nil
	}
	head, err := Infer(env, state, e.Elements[0])
	if err != nil {
		return nil, err
	}
	// The first element is authoritative; the rest must conform to it.
	elementType := head.GetType()
	elements := make([]Expression, 0, len(e.Elements))
	elements = append(elements, head)
	for _, element := range e.Elements[1:] {
		checked, err := Check(env, state, elementType, element)
		if err != nil {
			return nil, err
		}
		elements = append(elements, checked)
	}
	return &Array{Span: e.Span, ElementType: elementType, Elements: elements}, nil
}

func inferVariable(env *Env, state *State, e *ast.Variable) (Expression, error) {
	state.ValueReferences.bump(e.Name)
	value, ok := env.Values[e.Name]
	if !ok {
		return nil, &UnknownVariableError{
			Span:         e.Span,
			Name:         e.Name,
			NamesInScope: env.valueNames(),
		}
	}
	return value.ToExpression(e.Span, &state.Supply), nil
}

func inferConstructor(env *Env, state *State, e *ast.Constructor) (Expression, error) {
	state.ConstructorReferences.bump(e.Name)
	ctor, ok := env.Constructors[e.Name]
	if !ok {
		return nil, &UnknownConstructorError{
			Span:         e.Span,
			Name:         e.Name,
			CtorsInScope: env.constructorNames(),
		}
	}
	return ctor.ToExpression(e.Span, &state.Supply), nil
}

func inferIf(env *Env, state *State, e *ast.If) (Expression, error) {
	condition, err := Check(env, state, typesystem.Bool, e.Condition)
	if err != nil {
		return nil, err
	}
	thenClause, err := Infer(env, state, e.Then)
	if err != nil {
		return nil, err
	}
	// The true branch is authoritative. Resolve its type now so checking
	// the false branch sees the latest bindings.
	trueType := state.Substitution.Apply(thenClause.GetType())
	elseClause, err := Check(env, state, trueType, e.Else)
	if err != nil {
		return nil, err
	}
	return &If{
		Span:       e.Span,
		OutputType: trueType,
		Condition:  condition,
		Then:       thenClause,
		Else:       elseClause,
	}, nil
}

func inferCall(env *Env, state *State, e *ast.Call) (Expression, error) {
	function, err := Infer(env, state, e.Function)
	if err != nil {
		return nil, err
	}
	functionType := state.Substitution.Apply(function.GetType())

	switch ft := functionType.(type) {
	case typesystem.TFunc:
		if len(e.Arguments) != len(ft.Params) {
			return nil, &ArgumentLengthMismatchError{
				FunctionSpan: function.GetSpan(),
				Wanted:       len(ft.Params),
				Got:          len(e.Arguments),
			}
		}
		arguments := make([]Expression, len(e.Arguments))
		for i, argument := range e.Arguments {
			checked, err := Check(env, state, ft.Params[i], argument)
			if err != nil {
				return nil, err
			}
			arguments[i] = checked
		}
		return &Call{
			Span:      e.Span,
			CallType:  ft.Return,
			Function:  function,
			Arguments: arguments,
		}, nil

	case typesystem.TVar:
		// The callee's type isn't pinned down yet. Infer the arguments
		// independently and constrain the variable to a function of them;
		// unification decides later whether that works out.
		arguments := make([]Expression, len(e.Arguments))
		parameters := make([]typesystem.Type, len(e.Arguments))
		for i, argument := range e.Arguments {
			inferred, err := Infer(env, state, argument)
			if err != nil {
				return nil, err
			}
			arguments[i] = inferred
			parameters[i] = inferred.GetType()
		}
		callType := state.Supply.Fresh()
		if err := unify(state, function.GetSpan(), constraint{
			expected: typesystem.TFunc{Params: parameters, Return: callType},
			actual:   ft,
		}); err != nil {
			return nil, err
		}
		return &Call{
			Span:      e.Span,
			CallType:  callType,
			Function:  function,
			Arguments: arguments,
		}, nil

	default:
		return nil, &NotAFunctionError{
			Span:       function.GetSpan(),
			ActualType: functionType,
		}
	}
}

func inferFunction(env *Env, state *State, e *ast.Function) (Expression, error) {
	binders := make([]FunctionBinder, 0, len(e.Binders))
	envValues := env.cloneValues()

	// Reference counts accumulated by outer bindings of the same names are
	// saved aside and zeroed, so uses inside the body count only toward the
	// new binders. They are restored on every exit path, so outer-scope
	// unused-variable analysis stays correct even when checking fails.
	shadowed := make(References)
	defer func() {
		for name, count := range shadowed {
			state.ValueReferences[name] = count
		}
	}()

	for _, binder := range e.Binders {
		for _, previous := range binders {
			if previous.Name == binder.Name {
				return nil, &DuplicateFunctionBinderError{
					PreviousBinder:  previous.Span,
					DuplicateBinder: binder.Span,
					Name:            binder.Name,
				}
			}
		}

		binderType := binder.Annotation
		if binderType == nil {
			binderType = state.Supply.Fresh()
		}

		name := ast.Unqualified(binder.Name)
		if count, ok := state.ValueReferences[name]; ok {
			shadowed[name] = count
			state.ValueReferences[name] = 0
		}

		envValues[name] = EnvValue{
			Span:   binder.Span,
			Scheme: Mono(binderType),
			Name:   name,
		}
		binders = append(binders, FunctionBinder{
			Span: binder.Span,
			Name: binder.Name,
			Type: binderType,
		})
	}

	bodyEnv := env.withValues(envValues)
	var body Expression
	var err error
	if e.ReturnAnnotation != nil {
		body, err = Check(bodyEnv, state, e.ReturnAnnotation, e.Body)
	} else {
		body, err = Infer(bodyEnv, state, e.Body)
	}
	if err != nil {
		return nil, err
	}

	// A binder counts as used only with a positive reference count; a
	// shadowing binder that was zeroed above and never referenced still
	// warns. Either way the entry must not leak into the caller's counts.
	for _, binder := range binders {
		name := ast.Unqualified(binder.Name)
		if state.ValueReferences[name] <= 0 {
			state.warn(&UnusedFunctionBinder{Span: binder.Span, Name: binder.Name})
		}
		delete(state.ValueReferences, name)
	}

	return &Function{Span: e.Span, Binders: binders, Body: body}, nil
}
