package buildspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldPath(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{name: "plain fields", path: []string{"stages", "name"}, want: "stages.name"},
		{name: "list index", path: []string{"instructions", "0", "image"}, want: "instructions[0].image"},
		{name: "nested indices", path: []string{"stages", "1", "instructions", "0"}, want: "stages[1].instructions[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldPath(tt.path))
		})
	}
}

func TestValidateSchema_AcceptsWellFormedDocument(t *testing.T) {
	errs := validateSchema([]byte(`
instructions:
  - kind: FROM
    image: nginx
`))
	assert.Empty(t, errs)
}

func TestValidateSchema_RejectsUnknownTopLevelField(t *testing.T) {
	errs := validateSchema([]byte(`
version: 2
instructions:
  - kind: FROM
    image: nginx
`))
	require.NotEmpty(t, errs)
}

func TestValidateSchema_RejectsNonIntegerPort(t *testing.T) {
	errs := validateSchema([]byte(`
instructions:
  - kind: EXPOSE
    port: 80.5
`))
	require.NotEmpty(t, errs)
}

func TestNormalizeYAML(t *testing.T) {
	in := map[string]any{
		"list": []any{map[any]any{1: "a"}},
	}
	out := normalizeYAML(in).(map[string]any)
	list := out["list"].([]any)
	assert.Equal(t, map[string]any{"1": "a"}, list[0])
}
