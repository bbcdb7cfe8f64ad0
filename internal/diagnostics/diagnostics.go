package diagnostics

import (
	"fmt"

	"github.com/funvibe/lyra/internal/token"
)

// ErrorCode is a stable, user-facing diagnostic code.
type ErrorCode string

const (
	// Typechecker errors.
	ErrT001 ErrorCode = "T001" // unknown variable
	ErrT002 ErrorCode = "T002" // unknown constructor
	ErrT003 ErrorCode = "T003" // types not equal
	ErrT004 ErrorCode = "T004" // argument length mismatch
	ErrT005 ErrorCode = "T005" // not a function
	ErrT006 ErrorCode = "T006" // duplicate function binder
	ErrT007 ErrorCode = "T007" // infinite type

	// Typechecker warnings.
	WarnW001 ErrorCode = "W001" // unused function binder
)

func (c ErrorCode) String() string {
	return string(c)
}

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a fully formed, renderable message. The checker produces
// typed errors/warnings; each of them converts to one of these for user
// facing output.
type Diagnostic struct {
	Code     ErrorCode
	Severity Severity
	Span     token.Span
	Message  string
	Hints    []string
}

// String renders the diagnostic without color, one line plus hint lines.
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s[%s] at %s: %s", d.Severity, d.Code, d.Span, d.Message)
	for _, hint := range d.Hints {
		s += "\n  hint: " + hint
	}
	return s
}
