package testutil

import (
	"bytes"
	"testing"

	"github.com/quantmind-br/stylecfg/internal/utils"
)

// NewBufferLogger creates a debug-level JSON logger writing into the returned buffer
func NewBufferLogger(t *testing.T) (*utils.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})
	logger.Logger = logger.With().Str("test", t.Name()).Logger()
	return logger, &buf
}
