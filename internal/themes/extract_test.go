package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"leading prose", `Here you go: {"a":1}`, `{"a":1}`},
		{"trailing prose", `{"a":1} Hope that helps!`, `{"a":1}`},
		{"nested", `x {"a":{"b":[1,{"c":2}]}} y`, `{"a":{"b":[1,{"c":2}]}}`},
		{"brace in string", `{"theme":"curly } brace"}`, `{"theme":"curly } brace"}`},
		{"escaped quote in string", `{"t":"say \"}\" now"}`, `{"t":"say \"}\" now"}`},
		{"first of two", `{"a":1} and {"b":2}`, `{"a":1}`},
		{"skips non-JSON braces", `use {placeholders} like {"a":1}`, `{"a":1}`},
		{"code fence", "```json\n{\"a\": [1, 2]}\n```", `{"a": [1, 2]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	for _, in := range []string{
		"",
		"no braces at all",
		`{"unterminated": 1`,
		"} backwards {",
		"{not json}",
	} {
		_, err := ExtractJSONObject(in)
		assert.ErrorIs(t, err, ErrNoJSONObject, "input %q", in)
	}
}
