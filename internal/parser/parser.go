// Package parser puts os.Args into model.Config and validates it for any issues
package parser

import (
	"fmt"
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is set at build time with -ldflags "-X .../internal/parser.Version=...".
var Version = "dev"

const usage = "minigrep [flags] <pattern> <file>"

// NewCommand builds the root command. run receives the validated
// configuration and is not called when arguments are invalid or help/version
// was requested. Every argument error wraps model.ErrConfiguration.
func NewCommand(run func(cfg *model.Config) error) *cobra.Command {
	var ignoreCase bool
	var output string

	cmd := &cobra.Command{
		Use:           usage,
		Short:         "Print lines of a file that contain the pattern",
		Long:          "minigrep scans a file line by line and prints every line containing the pattern as a plain substring.",
		Args:          positionalArgs,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd.Flags(), args, output)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&ignoreCase, "ignore-case", "i", false, "all input lines will be lower-cased for search as well as the pattern itself")
	f.StringVarP(&output, "output", "o", "", "write matching lines to the specified file instead of stdout")

	// неизвестные флаги и кривые значения - ошибка конфигурации
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", model.ErrConfiguration, err)
	})

	return cmd
}

// Parse runs the command over args without touching stdout/stderr and returns
// the resulting configuration. It returns nil, nil when help or version was
// requested.
func Parse(args []string) (*model.Config, error) {
	if args == nil {
		args = []string{}
	}

	var cfg *model.Config
	cmd := NewCommand(func(c *model.Config) error {
		cfg = c
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func positionalArgs(_ *cobra.Command, args []string) error {
	// Разбираемся с паттерном и входом
	switch len(args) {
	case 0:
		return fmt.Errorf("%w: pattern not specified\nUsage: %s", model.ErrConfiguration, usage)
	case 1:
		return fmt.Errorf("%w: file not specified\nUsage: %s", model.ErrConfiguration, usage)
	case 2:
		return nil
	default:
		return fmt.Errorf("%w: only one file can be searched, got %d extra arguments %q", model.ErrConfiguration, len(args)-2, args[2:])
	}
}

func buildConfig(flags *pflag.FlagSet, args []string, output string) (*model.Config, error) {
	// -i учитывается по наличию: явное --ignore-case=false не возвращает чувствительность к регистру
	caseSensitive := !flags.Changed("ignore-case")

	// -o без значения отличаем от отсутствующего флага
	target := model.ConsoleTarget()
	if flags.Changed("output") {
		target = model.FileTarget(output)
	}

	return model.NewConfig(args[0], args[1], caseSensitive, target)
}
