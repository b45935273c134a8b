package logger_test

import (
	"bytes"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/wellness/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, "warn", "json")
	l.Info("hidden")
	l.Warn("shown", "athlete_code", "ana-01")

	var line map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "ana-01", line["athlete_code"])
}

func TestTextLoggerDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, "loud", "text")
	l.Debug("hidden")
	l.Info("visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=visible")
}
