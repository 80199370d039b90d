package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "lowercase", in: "OpenAI", want: "openai"},
		{name: "punctuation", in: "Space-Exploration!", want: "spaceexploration"},
		{name: "collapse spaces", in: "  New   York\tCity ", want: "new york city"},
		{name: "keeps underscore and digits", in: "GPT_4 o1", want: "gpt_4 o1"},
		{name: "only punctuation", in: "?!-", want: ""},
		{name: "unicode letters", in: "Café Münster", want: "café münster"},
		{name: "accent is not ascii-folded", in: "café", want: "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.in))
		})
	}
}

func TestNormalizeMatchKey(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "strips spaces", in: "Space Exploration", want: "spaceexploration"},
		{name: "strips hyphen", in: "space-exploration", want: "spaceexploration"},
		{name: "mixed", in: " A.I. ", want: "ai"},
		{name: "climate change", in: "Climate  Change", want: "climatechange"},
		{name: "keeps accented letters", in: "Café-Crème", want: "cafécrème"},
		{name: "keeps non-latin letters", in: "東京 Tower", want: "東京tower"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMatchKey(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "AI", "Space-Exploration", "  New   York ", "C++ & Go!", "Ünïcode  Tëxt", "a_b c-d"}
	for _, in := range inputs {
		once := NormalizeKey(in)
		assert.Equal(t, once, NormalizeKey(once), "aggregate key for %q", in)

		onceMatch := NormalizeMatchKey(in)
		assert.Equal(t, onceMatch, NormalizeMatchKey(onceMatch), "match key for %q", in)
	}
}

func TestNormalizeMatchKey_Symmetry(t *testing.T) {
	same := [][]string{
		{"AI", "ai", "A.I.", " Ai "},
		{"space-exploration", "Space Exploration", "SpaceExploration", "space exploration!"},
		{"Elon Musk", "elon-musk", "ELON MUSK"},
	}
	for _, group := range same {
		want := NormalizeMatchKey(group[0])
		for _, v := range group[1:] {
			assert.Equal(t, want, NormalizeMatchKey(v), "%q vs %q", group[0], v)
		}
	}
}

func TestNormalizeMatchKeys(t *testing.T) {
	res := NormalizeMatchKeys([]string{"AI", "ai", "", "Space Exploration", "!!", "space-exploration", "Go"})
	assert.Equal(t, []string{"ai", "spaceexploration", "go"}, res)
	assert.Empty(t, NormalizeMatchKeys(nil))
}
