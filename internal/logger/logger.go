// Package logger builds the zerolog logger for one minigrep run: console output to stderr and an optional rotated JSON file
package logger

import (
	"io"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/config"
	"github.com/docker/distribution/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger tagged with a fresh run id. The returned closer must be
// called once the run is over; it releases the log file if one is configured.
func New(cfg config.LogConfig, stderr io.Writer) (zerolog.Logger, io.Closer) {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}}
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		writers = append(writers, file)
		closer = file
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Str("run", uuid.Generate().String()).
		Logger()

	return log, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
