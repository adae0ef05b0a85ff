package appmode

import (
	"errors"
	"fmt"
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/config"
	"github.com/UnendingLoop/MiniGrep/internal/logger"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
	"github.com/rs/zerolog"
)

const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInvalidArgs = 2
)

// Execute runs minigrep over args and returns the process exit code. Only
// matched lines, the file-mode notice and help go to stdout. Ambient settings
// are loaded only after the arguments were accepted, so invalid arguments
// always give ExitInvalidArgs and nothing is read from disk for them.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	// до разбора аргументов логгера ещё нет
	log := zerolog.Nop()
	var closer io.Closer
	defer func() {
		if closer == nil {
			return
		}
		if err := closer.Close(); err != nil {
			fmt.Fprintf(stderr, "minigrep: failed to close log file: %v\n", err)
		}
	}()

	cmd := parser.NewCommand(func(cfg *model.Config) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}
		log, closer = logger.New(settings.Log, stderr)

		return Run(cfg, stdout, log)
	})
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return report(err, stderr, log)
	}
	return ExitOK
}

func report(err error, stderr io.Writer, log zerolog.Logger) int {
	log.Debug().Err(err).Msg("run failed")
	fmt.Fprintf(stderr, "minigrep: %v\n", err)

	switch {
	case errors.Is(err, model.ErrConfiguration):
		fmt.Fprintln(stderr, "Run 'minigrep --help' for usage.")
		return ExitInvalidArgs
	default:
		return ExitFailure
	}
}
