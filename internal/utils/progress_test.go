package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressBar(t *testing.T) {
	t.Run("known total", func(t *testing.T) {
		var buf bytes.Buffer
		bar := NewProgressBar(3, DescChecking, &buf)
		require.NotNil(t, bar)

		require.NoError(t, bar.Add(3))
		require.NoError(t, bar.Finish())
		assert.Contains(t, buf.String(), DescChecking)
	})

	t.Run("unknown total", func(t *testing.T) {
		var buf bytes.Buffer
		bar := NewProgressBar(-1, DescLoading, &buf)
		require.NotNil(t, bar)
	})

	t.Run("default writer", func(t *testing.T) {
		bar := NewProgressBar(0, DescChecking, nil)
		require.NotNil(t, bar)
	})
}

func TestProgressBarDescriptions(t *testing.T) {
	assert.Equal(t, "Checking", DescChecking)
	assert.Equal(t, "Loading", DescLoading)
}
