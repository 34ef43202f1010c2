package xinca_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

func TestSlogLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := xinca.NewSlogLogger(slog.New(handler))

	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET"})
	logger.Error("HTTP Request Failed", map[string]interface{}{"status_code": 500})

	out := buf.String()
	assert.Contains(t, out, `level=DEBUG msg="HTTP Request" method=GET`)
	assert.Contains(t, out, `level=ERROR msg="HTTP Request Failed" status_code=500`)
}

func TestNewSlogLogger_NilUsesDefault(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, xinca.NewSlogLogger(nil))
}
