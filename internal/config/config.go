// Package config resolves the per-invocation search configuration and loads
// the optional user settings file.
package config

import (
	"os"

	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
)

// EnvCaseInsensitive disables case-sensitive matching when present, whatever
// its value.
const EnvCaseInsensitive = "CASE_INSENSITIVE"

// LookupFunc reports the value of an environment variable and whether it is
// set. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// ProcessEnv is the LookupFunc backed by the real process environment.
var ProcessEnv LookupFunc = os.LookupEnv

// Config is the immutable configuration of a single search run.
type Config struct {
	Query         string
	FilePath      string
	CaseSensitive bool
}

// Option adjusts resolution.
type Option func(*resolveOptions)

type resolveOptions struct {
	ignoreCase bool
}

// WithIgnoreCase forces case-insensitive matching when ignore is true.
// It never re-enables case sensitivity disabled by the environment.
func WithIgnoreCase(ignore bool) Option {
	return func(o *resolveOptions) {
		o.ignoreCase = o.ignoreCase || ignore
	}
}

// Resolve builds a Config from args, laid out as [program, query, file, ...],
// and the environment reachable through lookup. Arguments past the file path
// are ignored. A nil lookup behaves as an empty environment.
func Resolve(args []string, lookup LookupFunc, opts ...Option) (Config, error) {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	if len(args) < 2 {
		return Config{}, mgerrors.UsageError(mgerrors.ErrCodeMissingQuery,
			"missing query argument")
	}
	if len(args) < 3 {
		return Config{}, mgerrors.UsageError(mgerrors.ErrCodeMissingFilePath,
			"missing file path argument").WithDetail("query", args[1])
	}

	return Config{
		Query:         args[1],
		FilePath:      args[2],
		CaseSensitive: !o.ignoreCase && !isSet(lookup, EnvCaseInsensitive),
	}, nil
}

func isSet(lookup LookupFunc, key string) bool {
	if lookup == nil {
		return false
	}
	_, ok := lookup(key)
	return ok
}
