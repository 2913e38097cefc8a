package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	// FileName is the log file. Empty discards logs, since the terminal
	// belongs to the dashboard.
	FileName   string
	Level      string
	FormatJSON bool
}

// Setup builds the application logger. The returned closer flushes and
// closes the log file.
func Setup(params SetupParams) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetLevel(GetLevel(params.Level))
	if params.FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if params.FileName == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	if !strings.HasSuffix(params.FileName, ".log") {
		params.FileName += ".log"
	}
	if err := os.MkdirAll(filepath.Dir(params.FileName), 0o755); err != nil {
		return nil, nil, err
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.FileName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
		Compress:   true,
	}
	logger.SetOutput(lumberJackLogger)
	return logger, lumberJackLogger, nil
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
