// Package logger holds the process wide structured logger of the featurebook binary.
// Library packages under pkg/ never log; only the command layer does.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const EnvLevel = "FEATUREBOOK_LOG_LEVEL"

const ErrUnknownLevel errorkit.Error = "logger: unknown level"

type Config struct {
	// Out is where log lines go. Nil means os.Stderr.
	Out io.Writer
	// Level is one of debug, info, warn, error, fatal. Empty falls back to EnvLevel, then to warn.
	Level string
	// Debug forces the debug level.
	Debug bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

func discard() *logging.Logger {
	return &logging.Logger{Out: io.Discard, Level: logging.LevelFatal}
}

// Setup replaces the global logger. The returned function restores the discarding default.
func Setup(cfg Config) (func(), error) {
	level, err := resolveLevel(cfg)
	if err != nil {
		return func() {}, err
	}
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	l := &logging.Logger{Out: out, Level: level}

	mu.Lock()
	global = l
	mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			defer mu.Unlock()
			if global == l {
				global = discard()
			}
		})
	}, nil
}

var levels = map[string]logging.Level{
	"debug": logging.LevelDebug,
	"info":  logging.LevelInfo,
	"warn":  logging.LevelWarn,
	"error": logging.LevelError,
	"fatal": logging.LevelFatal,
}

func resolveLevel(cfg Config) (logging.Level, error) {
	if cfg.Debug {
		return logging.LevelDebug, nil
	}
	name := cfg.Level
	if name == "" {
		fromEnv, ok, err := env.Lookup[string](EnvLevel)
		if err != nil {
			return "", err
		}
		if ok {
			name = fromEnv
		}
	}
	if name == "" {
		return logging.LevelWarn, nil
	}
	level, ok := levels[strings.ToLower(name)]
	if !ok {
		return "", ErrUnknownLevel.F("%q", name)
	}
	return level, nil
}

// L returns the current global logger.
func L() *logging.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
