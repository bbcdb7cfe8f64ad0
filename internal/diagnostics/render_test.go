package diagnostics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/lyra/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Code:     ErrT001,
		Severity: SeverityError,
		Span:     token.NewSpan(2, 3),
		Message:  "unknown variable 'foo'",
		Hints:    []string{"did you mean 'for'?"},
	}
	assert.Equal(t,
		"error[T001] at 2:3: unknown variable 'foo'\n  hint: did you mean 'for'?",
		d.String(),
	)
}

func TestRenderWithColor(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Diagnostic{
		Code:     WarnW001,
		Severity: SeverityWarning,
		Span:     token.NewSpan(1, 5),
		Message:  "unused function binder 'x'",
	}, true)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, ansiYellow)
	assert.Contains(t, out, "warning[W001]")
	assert.Contains(t, out, "unused function binder 'x'")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderAllGolden(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/render.txtar")
	require.NoError(t, err)
	require.Len(t, archive.Files, 1)
	require.Equal(t, "want", archive.Files[0].Name)

	diagnostics := []Diagnostic{
		{
			Code:     ErrT003,
			Severity: SeverityError,
			Span:     token.NewSpan(3, 12),
			Message:  "expected Int but got Bool",
		},
		{
			Code:     ErrT001,
			Severity: SeverityError,
			Span:     token.NewSpan(7, 1),
			Message:  "unknown variable 'lenght'",
			Hints:    []string{"did you mean 'length'?"},
		},
		{
			Code:     WarnW001,
			Severity: SeverityWarning,
			Span:     token.NewSpan(9, 4),
			Message:  "unused function binder 'ctx'",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderAll(&buf, diagnostics, false))
	assert.Equal(t, string(archive.Files[0].Data), buf.String())
}

func TestColorEnabled(t *testing.T) {
	// ColorAuto against a nil handle (no terminal) must stay off.
	assert.True(t, ColorEnabled(ColorAlways, nil))
	assert.False(t, ColorEnabled(ColorNever, nil))
	assert.False(t, ColorEnabled(ColorAuto, nil))
}
