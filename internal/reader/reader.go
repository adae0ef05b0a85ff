// Package reader loads the whole source file into memory as UTF-8 text
package reader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadText returns the full content of fileName. Every error wraps
// model.ErrRead together with the underlying cause.
func ReadText(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: error opening file %q: %w", model.ErrRead, fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("%w: specified source filename %q is a directory", model.ErrRead, fileName)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: couldn't read file %q: %w", model.ErrRead, fileName, err)
	}

	// проверяем что это текст, до снятия BOM - декодер x/text молча заменяет битые байты
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: file %q is not valid UTF-8 text", model.ErrRead, fileName)
	}

	text, _, err := transform.String(unicode.BOMOverride(transform.Nop), string(raw))
	if err != nil {
		return "", fmt.Errorf("%w: couldn't decode file %q: %w", model.ErrRead, fileName, err)
	}

	return text, nil
}
