package processor_test

import (
	"strings"
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

const (
	poem      = "\nRust:\nsafe, fast, productive\nPick three."
	poemTrust = "\nRust:\nsafe, fast, productive\nPick three.\nTrust me."
)

func TestSearch(t *testing.T) {
	cases := []struct {
		name          string
		pattern       string
		text          string
		caseSensitive bool
		wantRes       []string
	}{
		{
			name:          "Positive - one result",
			pattern:       "duct",
			text:          poem,
			caseSensitive: true,
			wantRes:       []string{"safe, fast, productive"},
		},
		{
			name:          "Positive - two results in input order",
			pattern:       "st",
			text:          poem,
			caseSensitive: true,
			wantRes:       []string{"Rust:", "safe, fast, productive"},
		},
		{
			name:          "Positive - ignore case",
			pattern:       "rUsT",
			text:          poemTrust,
			caseSensitive: false,
			wantRes:       []string{"Rust:", "Trust me."},
		},
		{
			name:          "Negative - case-sensitive misses other case",
			pattern:       "rUsT",
			text:          poemTrust,
			caseSensitive: true,
			wantRes:       []string{},
		},
		{
			name:          "Negative - nothing found",
			pattern:       "nothing",
			text:          poem,
			caseSensitive: true,
			wantRes:       []string{},
		},
		{
			name:          "Negative - nothing found, ignore case",
			pattern:       "nothing",
			text:          poemTrust,
			caseSensitive: false,
			wantRes:       []string{},
		},
		{
			name:          "Negative - empty text",
			pattern:       "rust",
			text:          "",
			caseSensitive: true,
			wantRes:       []string{},
		},
		{
			name:          "Positive - duplicate lines are kept",
			pattern:       "dup",
			text:          "dup\nother\ndup\ndup",
			caseSensitive: true,
			wantRes:       []string{"dup", "dup", "dup"},
		},
		{
			name:          "Positive - CRLF input",
			pattern:       "three",
			text:          "Rust:\r\nPick three.\r\n",
			caseSensitive: true,
			wantRes:       []string{"Pick three."},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res := processor.Search(tt.pattern, tt.text, tt.caseSensitive)

			require.Equal(t, tt.wantRes, res)
		})
	}
}

func TestSearchEmptyPatternMatchesAll(t *testing.T) {
	for _, text := range []string{poem, poemTrust, "single", "a\n\nb\n"} {
		want := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
		require.Equal(t, want, processor.Search("", text, true))
		require.Equal(t, want, processor.Search("", text, false))
	}
}

func TestSearchIgnoreCaseIsPatternCaseIndependent(t *testing.T) {
	want := processor.Search("rust", poemTrust, false)
	for _, pattern := range []string{"RUST", "RuSt", "rUsT"} {
		require.Equal(t, want, processor.Search(pattern, poemTrust, false), pattern)
	}
}

func TestSearchFindsEveryVerbatimLine(t *testing.T) {
	// любая строка текста, взятая целиком как паттерн, должна найтись
	for _, line := range []string{"Rust:", "safe, fast, productive", "Pick three.", "Trust me."} {
		require.Contains(t, processor.Search(line, poemTrust, true), line)
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	first := processor.Search("st", poemTrust, false)
	second := processor.Search("st", poemTrust, false)
	require.Equal(t, first, second)
}

func TestProcessInput(t *testing.T) {
	cases := []struct {
		name          string
		pattern       string
		caseSensitive bool
		text          string
		wantRes       *processor.Result
	}{
		{
			name:          "Positive - case-sensitive",
			pattern:       "st",
			caseSensitive: true,
			text:          poem,
			wantRes: &processor.Result{
				Lines:    []string{"Rust:", "safe, fast, productive"},
				HashSumm: hasher(t, []string{"Rust:", "safe, fast, productive"}),
			},
		},
		{
			name:          "Positive - ignore case",
			pattern:       "RUST",
			caseSensitive: false,
			text:          poemTrust,
			wantRes: &processor.Result{
				Lines:    []string{"Rust:", "Trust me."},
				HashSumm: hasher(t, []string{"Rust:", "Trust me."}),
			},
		},
		{
			name:          "Negative - nothing found",
			pattern:       "nothing",
			caseSensitive: true,
			text:          poem,
			wantRes: &processor.Result{
				Lines:    []string{},
				HashSumm: hasher(t, []string{}),
			},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := model.NewConfig(tt.pattern, "poem.txt", tt.caseSensitive, model.ConsoleTarget())
			require.NoError(t, err)

			test := processor.Processor{}
			res := test.ProcessInput(cfg, tt.text)

			require.Equal(t, tt.wantRes, res)
		})
	}
}

func TestProcessInputHashSeparatesLines(t *testing.T) {
	cfg, err := model.NewConfig("x", "f", true, model.ConsoleTarget())
	require.NoError(t, err)

	// ["xaxb"] и ["xa", "xb"] склеиваются в одну строку, но хеши разные
	p := processor.Processor{}
	require.NotEqual(t, p.ProcessInput(cfg, "xaxb").HashSumm, p.ProcessInput(cfg, "xa\nxb").HashSumm)
}

func hasher(t *testing.T, input []string) uint64 {
	t.Helper()
	hs := xxhash.New()
	for _, s := range input {
		_, err := hs.WriteString(s + "\n")
		require.NoError(t, err, "failed to write data to count hash")
	}

	return hs.Sum64()
}
