package checker

import (
	"fmt"

	"github.com/funvibe/lyra/internal/diagnostics"
	"github.com/funvibe/lyra/internal/token"
)

// Warning is a non-fatal finding accumulated during a check and returned
// alongside a successful result.
type Warning interface {
	Diagnostic() diagnostics.Diagnostic
	warning()
}

// UnusedFunctionBinder flags a parameter that is never referenced in the
// function body.
type UnusedFunctionBinder struct {
	Span token.Span
	Name string
}

func (w *UnusedFunctionBinder) Diagnostic() diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Code:     diagnostics.WarnW001,
		Severity: diagnostics.SeverityWarning,
		Span:     w.Span,
		Message:  fmt.Sprintf("unused function binder '%s'", w.Name),
	}
}

func (w *UnusedFunctionBinder) warning() {}
