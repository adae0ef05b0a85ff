// Package processor runs the line search over a text blob and fingerprints the result
package processor

import (
	"github.com/UnendingLoop/MiniGrep/internal/lines"
	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

// Result - найденные строки в порядке их следования во входном тексте и хеш всего набора
type Result struct {
	Lines    []string
	HashSumm uint64
}

type Processor struct{}

func (p Processor) ProcessInput(cfg *model.Config, text string) *Result {
	result := Result{
		Lines: Search(cfg.Pattern(), text, cfg.CaseSensitive()),
	}

	// считаем общий хеш
	result.HashSumm = hasher(result.Lines)

	return &result
}

// Search returns every line of text containing pattern, in input order and
// without deduplication. The lines are substrings of text.
func Search(pattern, text string, caseSensitive bool) []string {
	isMatch := matcher.NewPredicate(pattern, caseSensitive)

	result := []string{}
	for _, line := range lines.Split(text) {
		if isMatch(line) {
			result = append(result, line)
		}
	}

	return result
}

func hasher(input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		_, _ = hs.WriteString(s)
		// разделитель, чтобы ["ab"] и ["a", "b"] не давали один хеш
		_, _ = hs.Write([]byte{'\n'})
	}
	return hs.Sum64()
}
