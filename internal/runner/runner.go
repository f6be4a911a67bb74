// Package runner wires a resolved configuration to the search engine: it loads
// the file, runs the search and writes the matched lines.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/Aman-CERP/minigrep/internal/config"
	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/output"
	"github.com/Aman-CERP/minigrep/internal/search"
)

// Result summarizes a completed run.
type Result struct {
	// Matches is the number of lines written.
	Matches int

	// Bytes is the size of the searched file.
	Bytes int

	// Duration covers loading, searching and writing.
	Duration time.Duration
}

// Run loads cfg.FilePath, searches it for cfg.Query and writes each matching
// line to w. A context that is already done stops the run before the file is
// read; once loading starts the run completes.
func Run(ctx context.Context, cfg config.Config, w io.Writer) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()

	contents, err := Load(cfg.FilePath)
	if err != nil {
		return Result{}, err
	}

	matched := search.Search(cfg.Query, contents, cfg.CaseSensitive)

	ow := output.New(w)
	if err := ow.Lines(matched); err != nil {
		return Result{}, mgerrors.New(mgerrors.ErrCodeOutputWrite,
			"failed to write results", err)
	}

	result := Result{
		Matches:  ow.Count(),
		Bytes:    len(contents),
		Duration: time.Since(start),
	}

	slog.Debug("search_complete",
		slog.String("query", cfg.Query),
		slog.String("file", cfg.FilePath),
		slog.Bool("case_sensitive", cfg.CaseSensitive),
		slog.Int("matches", result.Matches),
		slog.Int("bytes", result.Bytes),
		slog.Duration("duration", result.Duration))

	return result, nil
}

// Load reads the whole file at path as UTF-8 text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", classifyReadError(path, err)
	}

	if !utf8.Valid(data) {
		return "", mgerrors.New(mgerrors.ErrCodeInvalidEncoding,
			fmt.Sprintf("%s is not valid UTF-8 text", path), nil).
			WithDetail("path", path)
	}

	return string(data), nil
}

func classifyReadError(path string, err error) error {
	var ge *mgerrors.GrepError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ge = mgerrors.New(mgerrors.ErrCodeFileNotFound,
			fmt.Sprintf("file not found: %s", path), err).
			WithSuggestion("Check the path and try again")
	case errors.Is(err, fs.ErrPermission):
		ge = mgerrors.New(mgerrors.ErrCodeFilePermission,
			fmt.Sprintf("permission denied: %s", path), err).
			WithSuggestion("Check the file permissions")
	default:
		ge = mgerrors.IOError(fmt.Sprintf("cannot read %s", path), err)
	}
	return ge.WithDetail("path", path)
}
