package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/berlinuhr/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logLevels = map[string]log.Level{
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

// newLogger writes to stderr, or to a rotating file when the config names one.
// The returned closer is nil unless a file was configured.
func newLogger(cfg *config.Config, stderr io.Writer) (*log.Logger, io.Closer, error) {
	level, ok := logLevels[strings.ToLower(cfg.LogLevel)]
	if !ok {
		return nil, nil, fmt.Errorf("invalid %s %q", config.KeyLogLevel, cfg.LogLevel)
	}

	if cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxAge:   3,
		}
		return log.NewWithOptions(file, log.Options{
			Level:      level,
			TimeFormat: "2006/01/02 15:04:05",
		}), file, nil
	}

	return log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	}), nil, nil
}
