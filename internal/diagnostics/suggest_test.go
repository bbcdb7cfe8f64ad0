package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"filter", "foldl", "foldr", "map", "mapMaybe"}

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Single close match",
			input: "mpa",
			want:  []string{"map"},
		},
		{
			name:  "Ties broken alphabetically",
			input: "fold",
			want:  []string{"foldl", "foldr"},
		},
		{
			name:  "Closer match first",
			input: "foldll",
			want:  []string{"foldl", "foldr"},
		},
		{
			name:  "Nothing close enough",
			input: "concat",
			want:  nil,
		},
		{
			name:  "Exact match is not a suggestion",
			input: "map",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.input, candidates))
		})
	}
}

func TestDidYouMean(t *testing.T) {
	assert.Equal(t, "did you mean 'map'?", DidYouMean("mpa", []string{"map", "filter"}))
	assert.Equal(t, "", DidYouMean("zipWith", []string{"map", "filter"}))
	assert.Equal(t, "", DidYouMean("anything", nil))
}
