// Package appmode wires config, logging, parsing, reading, searching and output into one minigrep invocation
package appmode

import (
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
	"github.com/UnendingLoop/MiniGrep/internal/writer"
	"github.com/rs/zerolog"
)

// Run performs one search described by cfg. Errors are returned unchanged.
func Run(cfg *model.Config, stdout io.Writer, log zerolog.Logger) error {
	log.Debug().
		Str("source", cfg.Source()).
		Bool("case_sensitive", cfg.CaseSensitive()).
		Stringer("target", cfg.Target()).
		Msg("search started")

	// читаем весь файл целиком
	text, err := reader.ReadText(cfg.Source())
	if err != nil {
		return err
	}

	result := processor.Processor{}.ProcessInput(cfg, text)

	// печатаем или сохраняем результат
	report, err := writer.Write(cfg.Target(), result.Lines, stdout)
	if err != nil {
		return err
	}

	log.Debug().
		Int("input_bytes", len(text)).
		Int("matched", len(result.Lines)).
		Uint64("hash", result.HashSumm).
		Int("written_bytes", report.Bytes).
		Msg("search finished")

	return nil
}
