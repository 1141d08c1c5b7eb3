package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	lg, err := New(&buf, "warn")
	require.NoError(t, err)

	lg.Info().Msg("hidden")
	lg.Warn().Uint64("len", 13).Msg("shown")

	out := buf.String()

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "len=")
}

func TestNew_BadLevel(t *testing.T) {
	t.Parallel()

	_, err := New(&bytes.Buffer{}, "loud")

	assert.Error(t, err)
}
