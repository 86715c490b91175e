package containerfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid single-stage document", func(t *testing.T) {
		r := New(From("nginx", nil), Expose(80, nil))
		require.False(t, r.Failed())

		f := r.Value()
		assert.False(t, f.MultiStage())
		assert.Len(t, f.Instructions(), 2)
		assert.Nil(t, f.Stages())
	})

	t.Run("empty input rejected", func(t *testing.T) {
		r := New()
		require.True(t, r.Failed())
		require.Len(t, r.Errs(), 1)
		assert.Equal(t, "instructions", r.Errs()[0].Field)
		assert.Equal(t, "must contain at least one instruction", r.Errs()[0].Message)
	})

	t.Run("every failed element reported", func(t *testing.T) {
		r := New(From("", nil), Run("ok"), Workdir(""))
		require.True(t, r.Failed())
		require.Len(t, r.Errs(), 2)
		assert.Equal(t, "instructions[0].image", r.Errs()[0].Field)
		assert.Equal(t, "instructions[2].path", r.Errs()[1].Field)
	})
}

func TestNewMultiStage(t *testing.T) {
	t.Run("valid multi-stage document", func(t *testing.T) {
		r := NewMultiStage(
			NewStage("builder", From("node:20", &FromOpts{As: "builder"}), Run("npm run build")),
			NewStage("runtime", From("node:20-alpine", nil)),
		)
		require.False(t, r.Failed())

		f := r.Value()
		assert.True(t, f.MultiStage())
		assert.Len(t, f.Stages(), 2)
		assert.Nil(t, f.Instructions())
	})

	t.Run("empty input rejected", func(t *testing.T) {
		r := NewMultiStage()
		require.True(t, r.Failed())
		assert.Equal(t, "stages", r.Errs()[0].Field)
	})

	t.Run("nested errors compose full access paths", func(t *testing.T) {
		r := NewMultiStage(
			NewStage("builder", From("node:20", nil)),
			NewStage("runtime", Copy([]string{"a", ""}, "/dest", nil)),
		)
		require.True(t, r.Failed())
		require.Len(t, r.Errs(), 1)
		assert.Equal(t, "stages[1].instructions[0].src[1]", r.Errs()[0].Field)
	})

	t.Run("errors across all stages accumulate", func(t *testing.T) {
		r := NewMultiStage(
			NewStage("", From("", nil)),
			NewStage("runtime", Workdir("")),
		)
		require.True(t, r.Failed())
		require.Len(t, r.Errs(), 3)
		assert.Equal(t, "stages[0].name", r.Errs()[0].Field)
		assert.Equal(t, "stages[0].instructions[0].image", r.Errs()[1].Field)
		assert.Equal(t, "stages[1].instructions[0].path", r.Errs()[2].Field)
	})
}
