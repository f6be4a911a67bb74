package ui

import (
	"fmt"
	"io"
	"strings"

	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
)

// RenderError formats err for stderr. Without color the result is exactly
// errors.FormatForCLI; with color the same lines are styled.
func RenderError(err error, color bool) string {
	plain := mgerrors.FormatForCLI(err)
	if !color || plain == "" {
		return plain
	}

	styles := DefaultStyles()
	lines := strings.Split(strings.TrimSuffix(plain, "\n"), "\n")

	var sb strings.Builder
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Error:"):
			sb.WriteString(styles.Error.Render(line))
		case strings.HasPrefix(trimmed, "Hint:"):
			sb.WriteString(styles.Hint.Render(line))
		default:
			sb.WriteString(styles.Dim.Render(line))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ReportError writes err to w, styled when w is a color terminal.
func ReportError(w io.Writer, err error) {
	_, _ = fmt.Fprint(w, RenderError(err, UseColor(w)))
}
