package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger zerolog.Logger

// Config holds logger configuration
type Config struct {
	ServiceName   string
	Level         string
	FilePath      string // empty disables the file sink
	IsDevelopment bool
}

// Init initializes the global logger. Logs always go to stdout; when
// FilePath is set they are also appended to a size-rotated file.
func Init(cfg Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var console io.Writer = os.Stdout
	if cfg.IsDevelopment {
		// Pretty print for development
		console = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
			NoColor:    false,
		}
	}

	writers := []io.Writer{console}
	if cfg.FilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Logger()

	// Set as global logger
	log.Logger = Logger
}

// Info logs at info level
func Info() *zerolog.Event {
	return Logger.Info()
}

// Error logs at error level
func Error() *zerolog.Event {
	return Logger.Error()
}

// Debug logs at debug level
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Warn logs at warn level
func Warn() *zerolog.Event {
	return Logger.Warn()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
