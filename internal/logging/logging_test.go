package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDiscardsWithoutFile(t *testing.T) {
	logger, closer, err := Setup(SetupParams{Level: "debug"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, io.Discard, logger.Out)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestSetupWritesFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "logs", "bulletproof")
	logger, closer, err := Setup(SetupParams{FileName: base, Level: "info", FormatJSON: true})
	require.NoError(t, err)

	logger.WithField("date", "2024-01-03").Info("check-in saved")
	logger.Debug("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"check-in saved"`)
	assert.Contains(t, out, `"date":"2024-01-03"`)
	assert.False(t, strings.Contains(out, "hidden"))
}

func TestGetLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		"DEBUG":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, GetLevel(in), in)
	}
}
