// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/javajoker/product-catalog/internal/config"
)

// Setup configures the standard logrus logger. The returned func closes
// the rotating log file, if one was opened.
func Setup(cfg config.LogConfig) (func(), error) {
	return Configure(logrus.StandardLogger(), os.Stdout, cfg)
}

// Configure sets level, formatter and output on logger. When cfg.File is
// set, entries go to both console and a lumberjack rotating file.
func Configure(logger *logrus.Logger, console io.Writer, cfg config.LogConfig) (func(), error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	if cfg.File == "" {
		logger.SetOutput(console)
		return func() {}, nil
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   false,
	}
	logger.SetOutput(io.MultiWriter(console, rotating))

	return func() {
		if err := rotating.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}, nil
}
