package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/andrescamacho/sectormarket-go/internal/infrastructure/config"
)

// SlogLogger adapts slog to the application logger interface
type SlogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a structured logger from the logging configuration.
// File output rotates through lumberjack when rotation is enabled.
func NewLogger(cfg *config.LoggingConfig) *SlogLogger {
	var writer io.Writer
	switch cfg.Output {
	case "stderr":
		writer = os.Stderr
	case "file":
		if cfg.Rotation.Enabled {
			writer = &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.Rotation.MaxSize,
				MaxBackups: cfg.Rotation.MaxBackups,
				MaxAge:     cfg.Rotation.MaxAge,
				Compress:   cfg.Rotation.Compress,
			}
		} else {
			file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				// Fall back to stderr rather than losing logs
				writer = os.Stderr
			} else {
				writer = file
			}
		}
	default:
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	return &SlogLogger{logger: slog.New(handler)}
}

// Log emits one structured entry with the metadata as attributes
func (l *SlogLogger) Log(level, message string, metadata map[string]interface{}) {
	attrs := make([]any, 0, len(metadata)*2)
	for key, value := range metadata {
		attrs = append(attrs, key, value)
	}

	switch level {
	case "debug":
		l.logger.Debug(message, attrs...)
	case "warn":
		l.logger.Warn(message, attrs...)
	case "error":
		l.logger.Error(message, attrs...)
	default:
		l.logger.Info(message, attrs...)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
