// Package model contains the validated search configuration, output target and error categories shared by all layers
package model

import (
	"errors"
	"fmt"
)

// Категории ошибок - cmd/app.go выбирает по ним код выхода
var (
	ErrConfiguration = errors.New("invalid configuration")
	ErrRead          = errors.New("read failed")
	ErrWrite         = errors.New("write failed")
)

type TargetKind int

const (
	TargetConsole TargetKind = iota
	TargetFile
)

func (k TargetKind) String() string {
	switch k {
	case TargetConsole:
		return "console"
	case TargetFile:
		return "file"
	default:
		return fmt.Sprintf("TargetKind(%d)", int(k))
	}
}

// OutputTarget - куда отправлять найденные строки: консоль или файл по пути
type OutputTarget struct {
	kind TargetKind
	path string
}

func ConsoleTarget() OutputTarget {
	return OutputTarget{kind: TargetConsole}
}

func FileTarget(path string) OutputTarget {
	return OutputTarget{kind: TargetFile, path: path}
}

func (t OutputTarget) Kind() TargetKind { return t.kind }

// Path is empty for TargetConsole.
func (t OutputTarget) Path() string { return t.path }

func (t OutputTarget) String() string {
	if t.kind == TargetFile {
		return fmt.Sprintf("file(%s)", t.path)
	}
	return t.kind.String()
}

// Config - неизменяемый набор параметров поиска, создается только через NewConfig
type Config struct {
	pattern       string
	source        string
	caseSensitive bool
	target        OutputTarget
}

// NewConfig validates its input and returns an error wrapping ErrConfiguration
// instead of a partially filled Config.
func NewConfig(pattern, source string, caseSensitive bool, target OutputTarget) (*Config, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrConfiguration)
	}
	if source == "" {
		return nil, fmt.Errorf("%w: empty source file path", ErrConfiguration)
	}

	switch target.kind {
	case TargetConsole:
		target.path = ""
	case TargetFile:
		if target.path == "" {
			return nil, fmt.Errorf("%w: empty output file path", ErrConfiguration)
		}
	default:
		return nil, fmt.Errorf("%w: unknown output target %v", ErrConfiguration, target.kind)
	}

	return &Config{
		pattern:       pattern,
		source:        source,
		caseSensitive: caseSensitive,
		target:        target,
	}, nil
}

func (c *Config) Pattern() string      { return c.pattern }
func (c *Config) Source() string       { return c.source }
func (c *Config) CaseSensitive() bool  { return c.caseSensitive }
func (c *Config) Target() OutputTarget { return c.target }
