package token

import "fmt"

// Position is a 1-based line/column location in a source file.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes before other in the source.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Span covers a contiguous region of source text.
// End is exclusive in column terms, matching lexer conventions.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a single-position span, handy for tests.
func NewSpan(line, column int) Span {
	return Span{
		Start: Position{Line: line, Column: column},
		End:   Position{Line: line, Column: column + 1},
	}
}

func (s Span) String() string {
	return s.Start.String()
}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	merged := s
	if other.Start.Before(s.Start) {
		merged.Start = other.Start
	}
	if s.End.Before(other.End) {
		merged.End = other.End
	}
	return merged
}

// IsZero reports whether the span carries no position information.
func (s Span) IsZero() bool {
	return s == Span{}
}
