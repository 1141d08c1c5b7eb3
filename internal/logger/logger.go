package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a console logger writing to out at the given level.
func New(out io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("incorrect log level %q: %w", level, err)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

// Init replaces the global logger with a console logger on stderr.
func Init(level string) error {
	logger, err := New(os.Stderr, level)
	if err != nil {
		return err
	}

	log.Logger = logger
	zerolog.SetGlobalLevel(logger.GetLevel())

	log.Debug().Str("level", level).Msg("Logger initialized!")

	return nil
}
