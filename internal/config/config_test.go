package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/lyra/internal/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimal(t *testing.T) {
	cfg, err := Parse([]byte("name: my-project\n"))
	require.NoError(t, err)

	assert.Equal(t, "my-project", cfg.Name)
	assert.True(t, cfg.WarnUnusedBinders())
	assert.Equal(t, diagnostics.ColorAuto, cfg.ColorMode())
}

func TestParseFull(t *testing.T) {
	cfg, err := Parse([]byte(`
name: my-project
checker:
  unused-binder-warnings: false
diagnostics:
  color: never
`))
	require.NoError(t, err)

	assert.False(t, cfg.WarnUnusedBinders())
	assert.Equal(t, diagnostics.ColorNever, cfg.ColorMode())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "Missing name",
			input:   "diagnostics:\n  color: auto\n",
			wantErr: "'name' is required",
		},
		{
			name:    "Invalid color",
			input:   "name: p\ndiagnostics:\n  color: sometimes\n",
			wantErr: "invalid diagnostics.color",
		},
		{
			name:    "Malformed document",
			input:   "name: [unclosed\n",
			wantErr: "config:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("name: loaded\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "loaded", cfg.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestCheckerOptions(t *testing.T) {
	cfg, err := Parse([]byte("name: p\nchecker:\n  unused-binder-warnings: false\n"))
	require.NoError(t, err)

	opts := cfg.CheckerOptions()
	assert.False(t, opts.WarnUnusedBinders)
	assert.Nil(t, opts.Logger)
}
