// Package writer renders matched lines to the console or to an output file
package writer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

// Report describes what was written, for logging.
type Report struct {
	Target model.OutputTarget
	Lines  int
	Bytes  int
}

// Write sends lines to target. In console mode every line is its own record
// on console; in file mode the lines are joined with "\n" into one write and a
// confirmation notice naming the path goes to console.
func Write(target model.OutputTarget, lines []string, console io.Writer) (*Report, error) {
	switch target.Kind() {
	case model.TargetConsole:
		return writeConsole(target, lines, console)
	case model.TargetFile:
		report, err := writeFile(target, lines)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintf(console, "Results saved to %q (lines: %d)\n", target.Path(), report.Lines); err != nil {
			return nil, fmt.Errorf("%w: console: %w", model.ErrWrite, err)
		}
		return report, nil
	default:
		return nil, fmt.Errorf("%w: unsupported output target %v", model.ErrWrite, target)
	}
}

func writeConsole(target model.OutputTarget, lines []string, console io.Writer) (*Report, error) {
	report := Report{Target: target}
	for _, line := range lines {
		n, err := fmt.Fprintln(console, line)
		report.Bytes += n
		if err != nil {
			return nil, fmt.Errorf("%w: console: %w", model.ErrWrite, err)
		}
		report.Lines++
	}
	return &report, nil
}

func writeFile(target model.OutputTarget, lines []string) (report *Report, err error) {
	// O_TRUNC - существующий файл перезаписывается
	file, err := os.OpenFile(target.Path(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't create file %q: %w", model.ErrWrite, target.Path(), err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			report = nil
			err = fmt.Errorf("%w: couldn't close file %q: %w", model.ErrWrite, target.Path(), cerr)
		}
	}()

	n, err := io.WriteString(file, strings.Join(lines, "\n"))
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't write file %q: %w", model.ErrWrite, target.Path(), err)
	}

	return &Report{Target: target, Lines: len(lines), Bytes: n}, nil
}
