package logger

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// loggerContextKey is the context key for the logger.
type loggerContextKey struct{}

// WithLogger returns a context with the given logger.
// Called once from main so library packages can log without a logger parameter.
func WithLogger(ctx context.Context, log *zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// nopLogger is returned when no logger was stored in the context.
var nopLogger = zerolog.Nop()

// Log returns the logger from context for convenient inline logging.
// Usage: Log(ctx).Debug().Str("key", "value").Msg("debug")
// Returns a disabled logger if none is found in the context.
func Log(ctx context.Context) *zerolog.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*zerolog.Logger); ok && log != nil {
		return log
	}
	return &nopLogger
}

// Init creates a configured zerolog logger with console output on stderr.
func Init() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// SetLogLevel maps a -v counter onto the global zerolog level.
func SetLogLevel(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
}
