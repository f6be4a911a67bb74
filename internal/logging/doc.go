// Package logging configures log/slog for minigrep.
//
// By default only warnings and errors reach stderr, as human-readable text.
// With --debug, JSON records at debug level go to a rotating file under
// ~/.minigrep/logs/. Nothing is ever written to stdout, which carries only
// matched lines.
package logging
